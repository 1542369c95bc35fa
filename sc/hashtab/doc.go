// Package hashtab provides a separate-chaining hash table over
// caller-supplied hash and equality functions.
//
// # Structure
//
// The table is a slot array of list.List chains. An element's slot is
// hashFn(element, userData) mod the slot count. Chain links come from a
// mempool.Pool that the table either owns or borrows; a borrowed pool
// may be shared between several tables and lists, must outlive them
// all, and must not be truncated while any borrower holds live links.
//
// # Operations
//
//   - InsertUnique: O(1) amortized insert-if-absent; reports the stored
//     value's address and whether an insert happened
//   - Lookup: reports presence and the stored value's address
//   - Remove: detaches a matching element, returning its value
//   - Truncate / Unlink / UnlinkDestroy / Destroy: teardown paths whose
//     cost depends on pool ownership (see each method)
//
// When the load factor target is exceeded the slot count doubles and
// all elements are rehashed in O(N); membership is preserved exactly
// and element addresses survive because links are spliced, not
// reallocated. Amortized insertion cost stays O(1), with occasional
// rehash latency spikes.
//
// Absent keys are a normal tri-state outcome, never an error. Tables
// are not safe for concurrent use.
package hashtab
