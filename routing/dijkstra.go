package routing

import (
	"fmt"

	"github.com/ttpr0/go-pathfind/graph"
	. "github.com/ttpr0/go-pathfind/util"
)

type _PQItem struct {
	item int32
	dist int32
}

//*******************************************
// one-to-all dijkstra
//*******************************************

// Computes shortest distances from source to every node of g.
//
// Unreachable nodes report Infinity. The frontier keeps stale duplicate
// entries instead of decreasing keys; a popped entry worse than the
// node's current distance is discarded.
func CalcAllDistances(g graph.IGraph, source int32) (Array[int32], error) {
	if g.NodeCount() == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", ErrEmptyGraph)
	}
	if !g.IsNode(source) {
		return nil, fmt.Errorf("%w: source node %v out of range", ErrInvalidInput, source)
	}
	if err := _CheckWeights(g); err != nil {
		return nil, err
	}

	table := _NewCostTable(int32(g.NodeCount()))
	heap := NewPriorityQueue[_PQItem, int32](100)
	explorer := g.GetGraphExplorer()

	table.Relax(source, 0, -1, -1)
	heap.Enqueue(_PQItem{source, 0}, 0)

	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_flag := table.Get(curr_item.item)
		if curr_flag.Dist < curr_item.dist {
			continue
		}
		if curr_flag.Visited {
			continue
		}
		curr_flag.Visited = true
		explorer.ForAdjacentEdges(curr_item.item, graph.FORWARD, func(ref graph.EdgeRef) {
			other_flag := table.Get(ref.OtherID)
			if other_flag.Visited {
				return
			}
			new_length := curr_flag.Dist + explorer.GetEdgeWeight(ref)
			if table.Relax(ref.OtherID, new_length, curr_item.item, ref.EdgeID) {
				heap.Enqueue(_PQItem{ref.OtherID, new_length}, new_length)
			}
		})
	}

	dist := NewArray[int32](g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		dist[i] = table.Get(int32(i)).Dist
	}
	return dist, nil
}

func _CheckWeights(g graph.IGraph) error {
	explorer := g.GetGraphExplorer()
	for e := 0; e < g.EdgeCount(); e++ {
		weight := explorer.GetEdgeWeight(graph.EdgeRef{EdgeID: int32(e)})
		if weight < 0 {
			return fmt.Errorf("%w: negative weight %v on edge %v", ErrInvalidInput, weight, e)
		}
	}
	return nil
}

//*******************************************
// point-to-point dijkstra
//*******************************************

var _ IShortestPath[int32] = &Dijkstra{}

type Dijkstra struct {
	heap  PriorityQueue[_PQItem, int32]
	graph graph.IGraph
	table _CostTable
	start int32
	end   int32
	found bool
}

func NewDijkstra(g graph.IGraph, start, end int32) (*Dijkstra, error) {
	if g.NodeCount() == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", ErrEmptyGraph)
	}
	if !g.IsNode(start) {
		return nil, fmt.Errorf("%w: start node %v out of range", ErrInvalidInput, start)
	}
	if !g.IsNode(end) {
		return nil, fmt.Errorf("%w: end node %v out of range", ErrInvalidInput, end)
	}
	if err := _CheckWeights(g); err != nil {
		return nil, err
	}
	return &Dijkstra{
		heap:  NewPriorityQueue[_PQItem, int32](100),
		graph: g,
		table: _NewCostTable(int32(g.NodeCount())),
		start: start,
		end:   end,
	}, nil
}

func (self *Dijkstra) CalcShortestPath() bool {
	explorer := self.graph.GetGraphExplorer()

	self.table.Relax(self.start, 0, -1, -1)
	self.heap.Enqueue(_PQItem{self.start, 0}, 0)

	for {
		curr_item, ok := self.heap.Dequeue()
		if !ok {
			return false
		}
		curr_flag := self.table.Get(curr_item.item)
		if curr_flag.Dist < curr_item.dist {
			continue
		}
		if curr_flag.Visited {
			continue
		}
		curr_flag.Visited = true
		if curr_item.item == self.end {
			self.found = true
			return true
		}
		explorer.ForAdjacentEdges(curr_item.item, graph.FORWARD, func(ref graph.EdgeRef) {
			other_flag := self.table.Get(ref.OtherID)
			if other_flag.Visited {
				return
			}
			new_length := curr_flag.Dist + explorer.GetEdgeWeight(ref)
			if self.table.Relax(ref.OtherID, new_length, curr_item.item, ref.EdgeID) {
				self.heap.Enqueue(_PQItem{ref.OtherID, new_length}, new_length)
			}
		})
	}
}

func (self *Dijkstra) GetShortestPath() Path[int32] {
	if !self.found {
		return NewPath(NewArray[int32](0))
	}
	nodes := NewList[int32](10)
	curr := self.end
	for curr != -1 {
		nodes.Add(curr)
		curr = self.table.Get(curr).Prev
	}
	for i, j := 0, nodes.Length()-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return NewPath(Array[int32](nodes))
}

// Accumulated cost of the computed path.
func (self *Dijkstra) GetPathLength() int32 {
	if !self.found {
		return Infinity
	}
	return self.table.Get(self.end).Dist
}
