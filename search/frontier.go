package search

import (
	"container/heap"

	"github.com/NatLabRockies/routee-compass-go/label"
	"github.com/NatLabRockies/routee-compass-go/network"
	"github.com/NatLabRockies/routee-compass-go/state"
)

// frontierItem is one entry in the priority queue: a label with its f =
// g + h priority and a monotonic sequence number used as a tiebreaker so
// equal-priority entries pop in insertion order rather than depending on
// floating-point comparison alone.
type frontierItem struct {
	l        label.Label
	priority float64
	seq      int64
	index    int
}

type frontierHeap []*frontierItem

func (h frontierHeap) Len() int { return len(h) }
func (h frontierHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *frontierHeap) Push(x interface{}) {
	item := x.(*frontierItem)
	item.index = len(*h)
	*h = append(*h, item)
}
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Frontier is the priority queue of (label, f-priority) entries the A*
// driver pops from. It uses a lazy-decrease-key strategy: pushing a new
// entry for a label already in the queue is allowed, and the skip-on-
// pruned check in PopNew discards any entry whose label was since removed
// from the search tree.
type Frontier struct {
	h       frontierHeap
	nextSeq int64
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Push inserts l with the given f = g + h priority.
func (f *Frontier) Push(l label.Label, priority float64) {
	heap.Push(&f.h, &frontierItem{l: l, priority: priority, seq: f.nextSeq})
	f.nextSeq++
}

// Len returns the number of entries currently queued.
func (f *Frontier) Len() int { return f.h.Len() }

func (f *Frontier) pop() (label.Label, bool) {
	if f.h.Len() == 0 {
		var zero label.Label
		return zero, false
	}
	item := heap.Pop(&f.h).(*frontierItem)
	return item.l, true
}

// FrontierInstance bridges a popped frontier entry to edge expansion: the
// label it was popped for, the edge that produced it (nil at the search
// root), and the state vector to expand from.
type FrontierInstance struct {
	PrevLabel label.Label
	PrevEdge  *network.EdgeRef
	PrevState state.StateVector
}

// PopNew pops the next usable entry from frontier. Returns (nil, nil) when
// the search should stop successfully: the queue is exhausted with no
// target, or the popped label's vertex is the target. Returns a
// *NoPathExistsError if the queue is exhausted while a target remains
// unreached. Entries whose label has been pruned from tree (removed while
// still queued) are skipped silently, unless the tree is still empty (the
// root has not yet been inserted).
func PopNew(frontier *Frontier, source network.VertexId, target *network.VertexId, tree *Tree, initialState state.StateVector) (*FrontierInstance, error) {
	for {
		l, ok := frontier.pop()
		if !ok {
			if target != nil {
				return nil, &NoPathExistsError{Source: source, Target: *target, TreeLen: tree.Len()}
			}
			return nil, nil
		}
		if target != nil && l.Vertex() == *target {
			return nil, nil
		}

		node, exists := tree.Get(l)
		if !exists && !tree.IsEmpty() {
			continue
		}

		var prevEdge *network.EdgeRef
		prevState := initialState
		if exists && node.IncomingEdge != nil {
			prevEdge = &network.EdgeRef{EdgeListId: node.IncomingEdge.EdgeListId, EdgeId: node.IncomingEdge.EdgeId}
			prevState = node.IncomingEdge.ResultState
		}

		return &FrontierInstance{PrevLabel: l, PrevEdge: prevEdge, PrevState: prevState}, nil
	}
}
