package parser

import (
	"github.com/ttpr0/go-pathfind/structs"
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// parser structs
//*******************************************

type TempNode struct {
	Point structs.Coord
	Count int32
}

type OSMNode struct {
	Point structs.Coord
	Edges List[int32]
}

type OSMEdge struct {
	NodeA  int
	NodeB  int
	Oneway bool
	Length float32
	Nodes  List[structs.Coord]
}
