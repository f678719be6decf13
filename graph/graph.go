package graph

import (
	"github.com/ttpr0/go-pathfind/comps"
	"github.com/ttpr0/go-pathfind/structs"
)

//*******************************************
// graph interfaces
//*******************************************

type IGraph interface {
	GetGraphExplorer() IGraphExplorer
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	GetNode(node int32) structs.Node
	GetEdge(edge int32) structs.Edge
}

// not thread safe, use only one instance per search
type IGraphExplorer interface {
	// Iterates through the adjacency of a node calling the callback for every edge.
	//
	// direction tells the traversal direction (FORWARD means outgoing edges, BACKWARD ingoing edges)
	ForAdjacentEdges(node int32, dir Direction, callback func(EdgeRef))
	GetEdgeWeight(edge EdgeRef) int32
	GetOtherNode(edge EdgeRef, node int32) int32
}

type EdgeRef struct {
	EdgeID  int32
	OtherID int32
}

//*******************************************
// base-graph
//*******************************************

type Graph struct {
	base   comps.IGraphBase
	weight comps.IWeighting
}

func (self *Graph) GetGraphExplorer() IGraphExplorer {
	return &BaseGraphExplorer{
		graph:    self,
		accessor: self.base.GetAccessor(),
		weight:   self.weight,
	}
}
func (self *Graph) NodeCount() int {
	return self.base.NodeCount()
}
func (self *Graph) EdgeCount() int {
	return self.base.EdgeCount()
}
func (self *Graph) IsNode(node int32) bool {
	return self.base.IsNode(node)
}
func (self *Graph) GetNode(node int32) structs.Node {
	return self.base.GetNode(node)
}
func (self *Graph) GetEdge(edge int32) structs.Edge {
	return self.base.GetEdge(edge)
}

//*******************************************
// base-graph explorer
//*******************************************

type BaseGraphExplorer struct {
	graph    *Graph
	accessor structs.IAdjAccessor
	weight   comps.IWeighting
}

func (self *BaseGraphExplorer) ForAdjacentEdges(node int32, direction Direction, callback func(EdgeRef)) {
	self.accessor.SetBaseNode(node, direction == FORWARD)
	for self.accessor.Next() {
		edge_id := self.accessor.GetEdgeID()
		other_id := self.accessor.GetOtherID()
		callback(EdgeRef{
			EdgeID:  edge_id,
			OtherID: other_id,
		})
	}
}
func (self *BaseGraphExplorer) GetEdgeWeight(edge EdgeRef) int32 {
	return self.weight.GetEdgeWeight(edge.EdgeID)
}
func (self *BaseGraphExplorer) GetOtherNode(edge EdgeRef, node int32) int32 {
	e := self.graph.GetEdge(edge.EdgeID)
	if node == e.NodeA {
		return e.NodeB
	}
	if node == e.NodeB {
		return e.NodeA
	}
	return -1
}
