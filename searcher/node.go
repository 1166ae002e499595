package searcher

import (
	"container/heap"

	"einstein/game"
)

type node struct {
	state     game.State
	firstMove *game.Move // nil at the root
	g         int        // Plies played from the root
	h         int        // Heuristic estimate, always finite on the frontier
	dieIndex  int        // Index of this node's die in the sequence
	seq       int        // Insertion order, breaks cost ties
}

func (n *node) cost() int {
	return n.g + n.h
}

// frontier is a min-heap of nodes by g+h, first inserted first on ties.
type frontier []*node

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].cost() != f[j].cost() {
		return f[i].cost() < f[j].cost()
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(*node)) }
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}

type openSet struct {
	nodes frontier
	next  int
}

func (o *openSet) push(n *node) {
	n.seq = o.next
	o.next++
	heap.Push(&o.nodes, n)
}

func (o *openSet) pop() *node {
	return heap.Pop(&o.nodes).(*node)
}

func (o *openSet) empty() bool {
	return o.nodes.Len() == 0
}
