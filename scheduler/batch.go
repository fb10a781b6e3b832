package scheduler

import "container/heap"

// Entry pairs a job with its original position in the input slice, so a
// Batch can be executed out of submission order while still letting Run
// report back which input each result belongs to.
type Entry[T any] struct {
	Index int
	Job   Job[T]
}

// Batch is one worker's assigned share of the input jobs.
type Batch[T any] struct {
	Entries []Entry[T]
	Weight  float64
}

// Schedule implements spec §4.6's greedy bin-packing: repeatedly assign the
// next job to the currently least-loaded of workers bins, running total of
// weight. This is the classic LPT-adjacent greedy load-balancing heuristic,
// within a factor of 2 of the optimal max-bin weight (spec §8 property 9).
// workers <= 0 is treated as 1.
func Schedule[T any](jobs []Job[T], workers int) []Batch[T] {
	if workers < 1 {
		workers = 1
	}
	batches := make([]Batch[T], workers)

	bins := make(binHeap, workers)
	for i := range bins {
		bins[i] = &bin{index: i}
	}
	heap.Init(&bins)

	for i, job := range jobs {
		least := bins[0]
		w := job.Weight()
		if w <= 0 {
			w = 1.0
		}
		batches[least.index].Entries = append(batches[least.index].Entries, Entry[T]{Index: i, Job: job})
		batches[least.index].Weight += w
		least.weight += w
		heap.Fix(&bins, 0)
	}

	return batches
}

// bin tracks one worker's running weight total for the greedy assignment
// in Schedule; index identifies its slot in the returned batches slice.
type bin struct {
	index  int
	weight float64
}

// binHeap is a min-heap on weight, giving Schedule O(log workers) access to
// the least-loaded bin at each step.
type binHeap []*bin

func (h binHeap) Len() int            { return len(h) }
func (h binHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h binHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *binHeap) Push(x interface{}) { *h = append(*h, x.(*bin)) }
func (h *binHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
