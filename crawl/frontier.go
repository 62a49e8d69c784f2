package crawl

import (
	"container/heap"
	"sync"

	"github.com/ndtrung/vbpl"
	"github.com/ndtrung/vbpl/bloom"
)

// Compile-time interface verification.
var _ vbpl.Frontier = (*Frontier)(nil)

// Frontier is an in-memory crawl frontier with priority queue and Bloom
// filter deduplication. It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue *refHeap
}

// NewFrontier creates a new Frontier sized for n expected document ids
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	h := &refHeap{}
	heap.Init(h)
	return &Frontier{
		seen:  bloom.NewFilter(n, fpRate),
		queue: h,
	}
}

// Push adds a reference to the frontier.
// Returns false if the document id has already been seen.
func (f *Frontier) Push(ref vbpl.DocRef) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Test(ref.ID) {
		return false
	}
	f.seen.Add(ref.ID)

	heap.Push(f.queue, ref)
	return true
}

// Pop returns the next reference by priority.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (vbpl.DocRef, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.queue.Len() == 0 {
		return vbpl.DocRef{}, false
	}
	ref, _ := heap.Pop(f.queue).(vbpl.DocRef)
	return ref, true
}

// Len returns the number of references in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queue.Len()
}

// Seen returns true if the document id has been processed or queued.
func (f *Frontier) Seen(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(id)
}

// refHeap implements heap.Interface for the DocRef priority queue.
// Higher priority references are popped first.
type refHeap []vbpl.DocRef

func (h refHeap) Len() int { return len(h) }

// Less returns true if i has higher priority than j (max-heap).
func (h refHeap) Less(i, j int) bool {
	return h[i].Priority > h[j].Priority
}

func (h refHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *refHeap) Push(x any) {
	ref, _ := x.(vbpl.DocRef)
	*h = append(*h, ref)
}

func (h *refHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
