package structs

import (
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// adjacency interfaces
//*******************************************

type IAdjAccessor interface {
	SetBaseNode(node int32, forward bool)
	Next() bool
	GetEdgeID() int32
	GetOtherID() int32
}

//*******************************************
// adjacency list
//*******************************************

type _DynEntry struct {
	EdgeID  int32
	OtherID int32
}

type _DynNodeEntry struct {
	FWDEdges List[_DynEntry]
	BWDEdges List[_DynEntry]
}

// Build-time adjacency, one entry list per node.
type AdjacencyList struct {
	node_entries List[_DynNodeEntry]
}

func NewAdjacencyList(node_count int) AdjacencyList {
	node_entries := NewList[_DynNodeEntry](node_count)
	for i := 0; i < node_count; i++ {
		node_entries.Add(_DynNodeEntry{
			FWDEdges: NewList[_DynEntry](4),
			BWDEdges: NewList[_DynEntry](4),
		})
	}
	return AdjacencyList{
		node_entries: node_entries,
	}
}

func (self *AdjacencyList) AddNodeEntry() {
	self.node_entries.Add(_DynNodeEntry{
		FWDEdges: NewList[_DynEntry](4),
		BWDEdges: NewList[_DynEntry](4),
	})
}

func (self *AdjacencyList) AddFWDEntry(node_a, node_b, edge_id int32) {
	entry := self.node_entries[node_a]
	entry.FWDEdges.Add(_DynEntry{EdgeID: edge_id, OtherID: node_b})
	self.node_entries[node_a] = entry
}

func (self *AdjacencyList) AddBWDEntry(node_a, node_b, edge_id int32) {
	entry := self.node_entries[node_b]
	entry.BWDEdges.Add(_DynEntry{EdgeID: edge_id, OtherID: node_a})
	self.node_entries[node_b] = entry
}

//*******************************************
// adjacency array
//*******************************************

type _AdjEntry struct {
	EdgeID  int32
	OtherID int32
}

// Static CSR adjacency frozen from an AdjacencyList.
//
// fwd_starts has node-count+1 entries; the edges of node n live in
// fwd_entries[fwd_starts[n]:fwd_starts[n+1]] ordered by insertion.
type AdjacencyArray struct {
	fwd_starts  Array[int32]
	fwd_entries Array[_AdjEntry]
	bwd_starts  Array[int32]
	bwd_entries Array[_AdjEntry]
}

func AdjacencyListToArray(dyn *AdjacencyList) AdjacencyArray {
	node_count := dyn.node_entries.Length()
	fwd_starts := NewArray[int32](node_count + 1)
	bwd_starts := NewArray[int32](node_count + 1)
	fwd_entries := NewList[_AdjEntry](node_count)
	bwd_entries := NewList[_AdjEntry](node_count)
	for i := 0; i < node_count; i++ {
		fwd_starts[i] = int32(fwd_entries.Length())
		bwd_starts[i] = int32(bwd_entries.Length())
		entry := dyn.node_entries[i]
		for _, e := range entry.FWDEdges {
			fwd_entries.Add(_AdjEntry(e))
		}
		for _, e := range entry.BWDEdges {
			bwd_entries.Add(_AdjEntry(e))
		}
	}
	fwd_starts[node_count] = int32(fwd_entries.Length())
	bwd_starts[node_count] = int32(bwd_entries.Length())
	return AdjacencyArray{
		fwd_starts:  fwd_starts,
		fwd_entries: Array[_AdjEntry](fwd_entries),
		bwd_starts:  bwd_starts,
		bwd_entries: Array[_AdjEntry](bwd_entries),
	}
}

func (self *AdjacencyArray) NodeCount() int {
	return self.fwd_starts.Length() - 1
}

func (self *AdjacencyArray) GetDegree(node int32, forward bool) int16 {
	if forward {
		return int16(self.fwd_starts[node+1] - self.fwd_starts[node])
	}
	return int16(self.bwd_starts[node+1] - self.bwd_starts[node])
}

func (self *AdjacencyArray) GetAccessor() AdjArrayAccessor {
	return AdjArrayAccessor{
		topology: self,
	}
}

//*******************************************
// adjacency array accessor
//*******************************************

type AdjArrayAccessor struct {
	topology *AdjacencyArray
	forward  bool
	state    int32
	end      int32
	curr     _AdjEntry
}

func (self *AdjArrayAccessor) SetBaseNode(node int32, forward bool) {
	self.forward = forward
	if forward {
		self.state = self.topology.fwd_starts[node]
		self.end = self.topology.fwd_starts[node+1]
	} else {
		self.state = self.topology.bwd_starts[node]
		self.end = self.topology.bwd_starts[node+1]
	}
}

func (self *AdjArrayAccessor) Next() bool {
	if self.state >= self.end {
		return false
	}
	if self.forward {
		self.curr = self.topology.fwd_entries[self.state]
	} else {
		self.curr = self.topology.bwd_entries[self.state]
	}
	self.state += 1
	return true
}

func (self *AdjArrayAccessor) GetEdgeID() int32 {
	return self.curr.EdgeID
}

func (self *AdjArrayAccessor) GetOtherID() int32 {
	return self.curr.OtherID
}

//*******************************************
// load and store
//*******************************************

func StoreAdjacency(topology *AdjacencyArray, filename string) {
	writer := NewBufferWriter()
	WriteArray(writer, topology.fwd_starts)
	WriteArray(writer, topology.fwd_entries)
	WriteArray(writer, topology.bwd_starts)
	WriteArray(writer, topology.bwd_entries)
	WriteBufferToFile(writer, filename)
}

func LoadAdjacency(filename string) *AdjacencyArray {
	reader := ReadBufferFromFile(filename)
	fwd_starts := ReadArray[int32](reader)
	fwd_entries := ReadArray[_AdjEntry](reader)
	bwd_starts := ReadArray[int32](reader)
	bwd_entries := ReadArray[_AdjEntry](reader)
	return &AdjacencyArray{
		fwd_starts:  fwd_starts,
		fwd_entries: fwd_entries,
		bwd_starts:  bwd_starts,
		bwd_entries: bwd_entries,
	}
}
