package routing

import (
	"math"

	. "github.com/ttpr0/go-pathfind/util"
)

// Sentinel distance of unreached and unreachable nodes.
const Infinity int32 = math.MaxInt32

//*******************************************
// cost table
//*******************************************

type _DistFlag struct {
	Dist     int32
	Prev     int32
	PrevEdge int32
	Visited  bool
}

// Per-node best-known costs and predecessors of one search run.
//
// Every cost update of the engines goes through Relax; a node counts
// as improved only on a strictly smaller candidate.
type _CostTable struct {
	flags Flags[_DistFlag]
}

func _NewCostTable(size int32) _CostTable {
	return _CostTable{
		flags: NewFlags(size, _DistFlag{Dist: Infinity, Prev: -1, PrevEdge: -1}),
	}
}

func (self *_CostTable) Get(node int32) *_DistFlag {
	return self.flags.Get(node)
}

func (self *_CostTable) Relax(node int32, candidate int32, via int32, via_edge int32) bool {
	flag := self.flags.Get(node)
	if candidate >= flag.Dist {
		return false
	}
	flag.Dist = candidate
	flag.Prev = via
	flag.PrevEdge = via_edge
	return true
}

func (self *_CostTable) Reset() {
	self.flags.Reset()
}
