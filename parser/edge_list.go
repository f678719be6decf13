package parser

import (
	"fmt"

	"github.com/ttpr0/go-pathfind/comps"
	"github.com/ttpr0/go-pathfind/graph"
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// edge list parser
//*******************************************

type _CSVEdge struct {
	From   int32 `csv:"from"`
	To     int32 `csv:"to"`
	Weight int32 `csv:"weight"`
}

// Reads a weighted edge list from a csv file with columns
// "from", "to" and "weight".
//
// Node count is taken from the largest referenced id; with undirected
// set every edge is inserted in both directions.
func ParseEdgeListCSV(file string, delimiter rune, undirected bool) (*comps.GraphBase, *comps.DefaultWeighting, error) {
	edges := NewList[Triple[int32, int32, int32]](100)
	max_node := int32(-1)
	// range-over-func desugared for pre-1.23 toolchains
	var loop_err error
	ReadCSVFromFile[_CSVEdge](file, delimiter)(func(row _CSVEdge) bool {
		if row.From < 0 || row.To < 0 {
			loop_err = fmt.Errorf("invalid node id in edge (%v, %v)", row.From, row.To)
			return false
		}
		if row.Weight < 0 {
			loop_err = fmt.Errorf("negative weight %v on edge (%v, %v)", row.Weight, row.From, row.To)
			return false
		}
		if row.From > max_node {
			max_node = row.From
		}
		if row.To > max_node {
			max_node = row.To
		}
		edges.Add(MakeTriple(row.From, row.To, row.Weight))
		return true
	})
	if loop_err != nil {
		return nil, nil, loop_err
	}
	if max_node < 0 {
		return nil, nil, fmt.Errorf("edge list is empty")
	}
	base, weight := graph.BuildEdgeListGraph(int(max_node)+1, Array[Triple[int32, int32, int32]](edges), undirected)
	return base, weight, nil
}
