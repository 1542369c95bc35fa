// scstat is a command-line companion to the sckit container library.
package main

func main() {
	execute()
}
