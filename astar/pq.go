package astar

import "github.com/katalvlaran/mazepath/gridgraph"

// nodeItem is one heap entry: a cell, the g-cost it was pushed with, its
// priority f = g + h and the insertion sequence used to break f ties.
type nodeItem struct {
	cell gridgraph.Cell
	g    int
	f    int
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (f, seq) ascending.
// Outdated entries stay in the heap and are discarded on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
