package comps

import (
	"os"

	"github.com/ttpr0/go-pathfind/structs"
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// graph base interface
//*******************************************

type IGraphBase interface {
	NodeCount() int
	EdgeCount() int
	GetNode(node int32) structs.Node
	IsNode(node int32) bool
	GetEdge(edge int32) structs.Edge
	IsEdge(edge int32) bool
	GetAccessor() structs.IAdjAccessor
	GetNodeDegree(node int32, forward bool) int16
}

//*******************************************
// graph base
//*******************************************

var _ IGraphBase = &GraphBase{}

type GraphBase struct {
	nodes    Array[structs.Node]
	edges    Array[structs.Edge]
	topology structs.AdjacencyArray
}

func NewGraphBase(nodes Array[structs.Node], edges Array[structs.Edge]) *GraphBase {
	topology := _BuildTopology(nodes, edges)
	return &GraphBase{
		nodes:    nodes,
		edges:    edges,
		topology: topology,
	}
}

func (self *GraphBase) NodeCount() int {
	return len(self.nodes)
}
func (self *GraphBase) EdgeCount() int {
	return len(self.edges)
}
func (self *GraphBase) IsNode(node int32) bool {
	if node >= 0 && node < int32(len(self.nodes)) {
		return true
	} else {
		return false
	}
}
func (self *GraphBase) GetNode(node int32) structs.Node {
	return self.nodes[node]
}
func (self *GraphBase) IsEdge(edge int32) bool {
	if edge >= 0 && edge < int32(len(self.edges)) {
		return true
	} else {
		return false
	}
}
func (self *GraphBase) GetEdge(edge int32) structs.Edge {
	return self.edges[edge]
}
func (self *GraphBase) GetAccessor() structs.IAdjAccessor {
	accessor := self.topology.GetAccessor()
	return &accessor
}
func (self *GraphBase) GetNodeDegree(node int32, forward bool) int16 {
	return self.topology.GetDegree(node, forward)
}

//*******************************************
// build topology
//*******************************************

func _BuildTopology(nodes Array[structs.Node], edges Array[structs.Edge]) structs.AdjacencyArray {
	dyn := structs.NewAdjacencyList(nodes.Length())
	for id, edge := range edges {
		dyn.AddFWDEntry(edge.NodeA, edge.NodeB, int32(id))
		dyn.AddBWDEntry(edge.NodeA, edge.NodeB, int32(id))
	}
	return structs.AdjacencyListToArray(&dyn)
}

//*******************************************
// load and store methods
//*******************************************

func (self *GraphBase) _Store(path string) {
	_StoreGraphNodes(self.nodes, path+"-nodes")
	_StoreGraphEdges(self.edges, path+"-edges")
	structs.StoreAdjacency(&self.topology, path+"-graph")
}

func (self *GraphBase) _Load(path string) {
	nodes := _LoadGraphNodes(path + "-nodes")
	edges := _LoadGraphEdges(path + "-edges")
	topology := structs.LoadAdjacency(path + "-graph")

	*self = GraphBase{
		nodes:    nodes,
		edges:    edges,
		topology: *topology,
	}
}

func (self *GraphBase) _Remove(path string) {
	os.Remove(path + "-nodes")
	os.Remove(path + "-edges")
	os.Remove(path + "-graph")
}

//*******************************************
// load and store components
//*******************************************

func _StoreGraphNodes(nodes Array[structs.Node], filename string) {
	writer := NewBufferWriter()
	nodecount := nodes.Length()
	Write(writer, int32(nodecount))
	for i := 0; i < nodecount; i++ {
		node := nodes.Get(i)
		Write(writer, node.Loc)
	}
	WriteBufferToFile(writer, filename)
}

func _LoadGraphNodes(file string) Array[structs.Node] {
	reader := ReadBufferFromFile(file)
	nodecount := Read[int32](reader)
	nodes := NewList[structs.Node](int(nodecount))
	for i := 0; i < int(nodecount); i++ {
		loc := Read[structs.Coord](reader)
		nodes.Add(structs.Node{
			Loc: loc,
		})
	}
	return Array[structs.Node](nodes)
}

func _StoreGraphEdges(edges Array[structs.Edge], filename string) {
	writer := NewBufferWriter()
	edgecount := edges.Length()
	Write(writer, int32(edgecount))
	for i := 0; i < edgecount; i++ {
		edge := edges.Get(i)
		Write(writer, edge.NodeA)
		Write(writer, edge.NodeB)
	}
	WriteBufferToFile(writer, filename)
}

func _LoadGraphEdges(file string) Array[structs.Edge] {
	reader := ReadBufferFromFile(file)
	edgecount := Read[int32](reader)
	edges := NewList[structs.Edge](int(edgecount))
	for i := 0; i < int(edgecount); i++ {
		node_a := Read[int32](reader)
		node_b := Read[int32](reader)
		edges.Add(structs.Edge{
			NodeA: node_a,
			NodeB: node_b,
		})
	}
	return Array[structs.Edge](edges)
}
