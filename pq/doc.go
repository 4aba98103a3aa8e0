// Package pq provides a generic binary min-heap parameterized by a
// caller-supplied "less" comparator.
//
// What & why
//
//   - What is a priority queue here?
//     A dense-array binary heap over any value type T, ordered by a strict
//     weak ordering less(a, b T) bool, with push/pop/peek in O(log n).
//
//   - Why it matters here:
//     package kbest drives its partition-refinement search off a frontier
//     ordered by ascending Partition.Cost. Rather than hand-rolling a
//     one-off heap.Interface type for Partition alone, pq wraps the
//     container/heap idiom in a reusable generic type so kbest (and any
//     future caller) need not redeclare Len/Less/Swap/Push/Pop for every
//     element type it ever queues.
//
// Contract
//
//   - Push(x) inserts x, restoring heap order by sift-up.
//   - Pop() removes and returns the minimum under less, restoring order by
//     sift-down; returns ErrEmpty when the heap is empty.
//   - Peek() returns the minimum without removing it; returns ErrEmpty when
//     the heap is empty.
//   - Ordering is by the comparator only; elements the comparator considers
//     equal pop in unspecified order.
//
// Note on complexity: Pop and Push restore heap order by sift-down/sift-up
// in O(log n); a correct implementation must never fall back to rebuilding
// the whole heap from scratch on every call.
package pq
