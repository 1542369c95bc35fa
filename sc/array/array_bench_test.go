package array

import (
	"encoding/binary"
	"math/rand"
	"testing"
)

func BenchmarkArray_Push(b *testing.B) {
	a := New(8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		binary.LittleEndian.PutUint64(a.Push(), uint64(i))
	}
}

func BenchmarkArray_Sort(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	src := New(4)
	for range 4096 {
		binary.LittleEndian.PutUint32(src.Push(), rng.Uint32())
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a := New(4)
		a.Resize(src.Len())
		for j := range src.Len() {
			copy(a.Index(j), src.Index(j))
		}
		a.Sort(compareI32)
	}
}

func BenchmarkArray_PqueueAddPop(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	a := New(4)
	out := make([]byte, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		binary.LittleEndian.PutUint32(a.Push(), rng.Uint32())
		a.PqueueAdd(compareI32)
		if a.Len() >= 1024 {
			for a.Len() > 0 {
				a.PqueuePop(out, compareI32)
			}
		}
	}
}
