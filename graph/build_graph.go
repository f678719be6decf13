package graph

import (
	"github.com/ttpr0/go-pathfind/comps"
	"github.com/ttpr0/go-pathfind/structs"
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// build graphs
//*******************************************

func BuildGraph(base comps.IGraphBase, weight comps.IWeighting) *Graph {
	return &Graph{
		base:   base,
		weight: weight,
	}
}

// Builds a grid from a walkable/blocked matrix (true = blocked).
func BuildGridGraph(cells [][]bool) *GridGraph {
	rows := int32(len(cells))
	cols := int32(0)
	if rows > 0 {
		cols = int32(len(cells[0]))
	}
	grid := NewGridGraph(rows, cols)
	for r := int32(0); r < rows; r++ {
		for c := int32(0); c < cols; c++ {
			if cells[r][c] {
				grid.SetBlocked(structs.Cell{Row: r, Col: c}, true)
			}
		}
	}
	return grid
}

//*******************************************
// build graph components
//*******************************************

// Builds base and weighting from a plain (from, to, weight) edge list.
//
// With undirected set every edge is inserted in both directions.
func BuildEdgeListGraph(node_count int, edges Array[Triple[int32, int32, int32]], undirected bool) (*comps.GraphBase, *comps.DefaultWeighting) {
	nodes := NewArray[structs.Node](node_count)
	graph_edges := NewList[structs.Edge](edges.Length())
	weights := NewList[int32](edges.Length())
	for _, edge := range edges {
		graph_edges.Add(structs.Edge{NodeA: edge.A, NodeB: edge.B})
		weights.Add(edge.C)
		if undirected {
			graph_edges.Add(structs.Edge{NodeA: edge.B, NodeB: edge.A})
			weights.Add(edge.C)
		}
	}
	base := comps.NewGraphBase(nodes, Array[structs.Edge](graph_edges))
	weight := comps.NewDefaultWeighting(base)
	for i := 0; i < weights.Length(); i++ {
		weight.SetEdgeWeight(int32(i), weights[i])
	}
	return base, weight
}
