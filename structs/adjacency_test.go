package structs

import (
	"testing"
)

func _BuildTestAdjacency() AdjacencyArray {
	// 0 -> 1, 0 -> 2, 1 -> 2, 2 -> 0
	edges := []Edge{
		{NodeA: 0, NodeB: 1},
		{NodeA: 0, NodeB: 2},
		{NodeA: 1, NodeB: 2},
		{NodeA: 2, NodeB: 0},
	}
	dyn := NewAdjacencyList(3)
	for id, edge := range edges {
		dyn.AddFWDEntry(edge.NodeA, edge.NodeB, int32(id))
		dyn.AddBWDEntry(edge.NodeA, edge.NodeB, int32(id))
	}
	return AdjacencyListToArray(&dyn)
}

func TestAdjacencyForward(t *testing.T) {
	topology := _BuildTestAdjacency()
	accessor := topology.GetAccessor()

	accessor.SetBaseNode(0, true)
	others := []int32{}
	for accessor.Next() {
		others = append(others, accessor.GetOtherID())
	}
	if len(others) != 2 || others[0] != 1 || others[1] != 2 {
		t.Errorf("forward adjacency of 0 = %v; want [1 2]", others)
	}

	if topology.GetDegree(0, true) != 2 {
		t.Errorf("degree of 0 = %v; want 2", topology.GetDegree(0, true))
	}
}

func TestAdjacencyBackward(t *testing.T) {
	topology := _BuildTestAdjacency()
	accessor := topology.GetAccessor()

	accessor.SetBaseNode(2, false)
	others := []int32{}
	edges := []int32{}
	for accessor.Next() {
		others = append(others, accessor.GetOtherID())
		edges = append(edges, accessor.GetEdgeID())
	}
	if len(others) != 2 || others[0] != 0 || others[1] != 1 {
		t.Errorf("backward adjacency of 2 = %v; want [0 1]", others)
	}
	if len(edges) != 2 || edges[0] != 1 || edges[1] != 2 {
		t.Errorf("backward edges of 2 = %v; want [1 2]", edges)
	}
}

func TestAdjacencyStoreLoad(t *testing.T) {
	topology := _BuildTestAdjacency()
	file := t.TempDir() + "/topology"
	StoreAdjacency(&topology, file)
	loaded := LoadAdjacency(file)

	if loaded.NodeCount() != 3 {
		t.Errorf("node count = %v; want 3", loaded.NodeCount())
	}
	accessor := loaded.GetAccessor()
	accessor.SetBaseNode(1, true)
	count := 0
	for accessor.Next() {
		if accessor.GetOtherID() != 2 {
			t.Errorf("other = %v; want 2", accessor.GetOtherID())
		}
		count++
	}
	if count != 1 {
		t.Errorf("edge count = %v; want 1", count)
	}
}
