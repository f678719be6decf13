package routing

import (
	"errors"
	"testing"

	"github.com/ttpr0/go-pathfind/graph"
	. "github.com/ttpr0/go-pathfind/util"
)

func _BuildTestGraph(node_count int, edges []Triple[int32, int32, int32], undirected bool) graph.IGraph {
	base, weight := graph.BuildEdgeListGraph(node_count, edges, undirected)
	return graph.BuildGraph(base, weight)
}

func TestCalcAllDistances(t *testing.T) {
	// 5 nodes, undirected: (0,1,4)(0,2,2)(1,2,3)(1,3,2)(2,3,4)(3,4,1)
	edges := []Triple[int32, int32, int32]{
		MakeTriple[int32, int32, int32](0, 1, 4),
		MakeTriple[int32, int32, int32](0, 2, 2),
		MakeTriple[int32, int32, int32](1, 2, 3),
		MakeTriple[int32, int32, int32](1, 3, 2),
		MakeTriple[int32, int32, int32](2, 3, 4),
		MakeTriple[int32, int32, int32](3, 4, 1),
	}
	g := _BuildTestGraph(5, edges, true)

	dist, err := CalcAllDistances(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []int32{0, 4, 2, 6, 7}
	for i, want := range expected {
		if dist[i] != want {
			t.Errorf("dist[%v] = %v; want %v", i, dist[i], want)
		}
	}
}

func TestCalcAllDistancesUnreachable(t *testing.T) {
	// node 3 has no edges at all
	edges := []Triple[int32, int32, int32]{
		MakeTriple[int32, int32, int32](0, 1, 1),
		MakeTriple[int32, int32, int32](1, 2, 2),
	}
	g := _BuildTestGraph(4, edges, true)

	dist, err := CalcAllDistances(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist[0] != 0 {
		t.Errorf("dist[source] = %v; want 0", dist[0])
	}
	if dist[3] != Infinity {
		t.Errorf("dist[3] = %v; want Infinity", dist[3])
	}
}

func TestCalcAllDistancesDirected(t *testing.T) {
	// directed edges only, nothing leads back to 0
	edges := []Triple[int32, int32, int32]{
		MakeTriple[int32, int32, int32](0, 1, 5),
		MakeTriple[int32, int32, int32](1, 2, 5),
	}
	g := _BuildTestGraph(3, edges, false)

	dist, err := CalcAllDistances(g, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist[2] != 0 || dist[0] != Infinity || dist[1] != Infinity {
		t.Errorf("dist = %v; want [Infinity Infinity 0]", dist)
	}
}

func TestCalcAllDistancesSelfLoop(t *testing.T) {
	edges := []Triple[int32, int32, int32]{
		MakeTriple[int32, int32, int32](0, 0, 3),
		MakeTriple[int32, int32, int32](0, 1, 2),
		MakeTriple[int32, int32, int32](0, 1, 7),
	}
	g := _BuildTestGraph(2, edges, false)

	dist, err := CalcAllDistances(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dist[0] != 0 || dist[1] != 2 {
		t.Errorf("dist = %v; want [0 2]", dist)
	}
}

func TestCalcAllDistancesErrors(t *testing.T) {
	g := _BuildTestGraph(0, nil, false)
	_, err := CalcAllDistances(g, 0)
	if !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("error = %v; want ErrEmptyGraph", err)
	}

	edges := []Triple[int32, int32, int32]{
		MakeTriple[int32, int32, int32](0, 1, 1),
	}
	g = _BuildTestGraph(2, edges, false)
	_, err = CalcAllDistances(g, 5)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v; want ErrInvalidInput", err)
	}
	_, err = CalcAllDistances(g, -1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v; want ErrInvalidInput", err)
	}

	edges = []Triple[int32, int32, int32]{
		MakeTriple[int32, int32, int32](0, 1, -2),
	}
	g = _BuildTestGraph(2, edges, false)
	_, err = CalcAllDistances(g, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v; want ErrInvalidInput for negative weight", err)
	}
}

func TestCalcAllDistancesIdempotent(t *testing.T) {
	edges := []Triple[int32, int32, int32]{
		MakeTriple[int32, int32, int32](0, 1, 4),
		MakeTriple[int32, int32, int32](0, 2, 2),
		MakeTriple[int32, int32, int32](1, 2, 3),
		MakeTriple[int32, int32, int32](1, 3, 2),
	}
	g := _BuildTestGraph(4, edges, true)

	first, err := CalcAllDistances(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CalcAllDistances(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < first.Length(); i++ {
		if first[i] != second[i] {
			t.Errorf("dist[%v] differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestCalcAllDistancesWeightMonotonicity(t *testing.T) {
	// increasing any edge weight must not decrease any distance
	edges := []Triple[int32, int32, int32]{
		MakeTriple[int32, int32, int32](0, 1, 4),
		MakeTriple[int32, int32, int32](0, 2, 2),
		MakeTriple[int32, int32, int32](1, 2, 3),
		MakeTriple[int32, int32, int32](1, 3, 2),
		MakeTriple[int32, int32, int32](2, 3, 4),
	}
	g := _BuildTestGraph(4, edges, true)
	before, err := CalcAllDistances(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for e := 0; e < len(edges); e++ {
		increased := make([]Triple[int32, int32, int32], len(edges))
		copy(increased, edges)
		increased[e].C += 10
		g2 := _BuildTestGraph(4, increased, true)
		after, err := CalcAllDistances(g2, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 0; i < before.Length(); i++ {
			if after[i] < before[i] {
				t.Errorf("edge %v increased but dist[%v] dropped from %v to %v", e, i, before[i], after[i])
			}
		}
	}
}

func TestDijkstraPointToPoint(t *testing.T) {
	edges := []Triple[int32, int32, int32]{
		MakeTriple[int32, int32, int32](0, 1, 4),
		MakeTriple[int32, int32, int32](0, 2, 2),
		MakeTriple[int32, int32, int32](1, 2, 3),
		MakeTriple[int32, int32, int32](1, 3, 2),
		MakeTriple[int32, int32, int32](2, 3, 4),
		MakeTriple[int32, int32, int32](3, 4, 1),
	}
	g := _BuildTestGraph(5, edges, true)

	alg, err := NewDijkstra(g, 0, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !alg.CalcShortestPath() {
		t.Fatalf("no path found; want path 0 -> 4")
	}
	if alg.GetPathLength() != 7 {
		t.Errorf("path length = %v; want 7", alg.GetPathLength())
	}
	path := alg.GetShortestPath()
	nodes := path.GetNodes()
	if nodes[0] != 0 || nodes[nodes.Length()-1] != 4 {
		t.Errorf("path endpoints = %v, %v; want 0, 4", nodes[0], nodes[nodes.Length()-1])
	}
	// 0 -> 2 -> ... only via existing edges; verify accumulated weight
	total := int32(0)
	explorer := g.GetGraphExplorer()
	for i := 0; i < nodes.Length()-1; i++ {
		found := false
		explorer.ForAdjacentEdges(nodes[i], graph.FORWARD, func(ref graph.EdgeRef) {
			if ref.OtherID == nodes[i+1] && !found {
				total += explorer.GetEdgeWeight(ref)
				found = true
			}
		})
		if !found {
			t.Fatalf("path step %v -> %v is not an edge", nodes[i], nodes[i+1])
		}
	}
	if total != 7 {
		t.Errorf("path weight = %v; want 7", total)
	}
}

func TestDijkstraNoPath(t *testing.T) {
	edges := []Triple[int32, int32, int32]{
		MakeTriple[int32, int32, int32](0, 1, 1),
	}
	g := _BuildTestGraph(3, edges, true)

	alg, err := NewDijkstra(g, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alg.CalcShortestPath() {
		t.Errorf("found path to disconnected node")
	}
	path := alg.GetShortestPath()
	if path.Length() != 0 {
		t.Errorf("path length = %v; want 0", path.Length())
	}
	if alg.GetPathLength() != Infinity {
		t.Errorf("path weight = %v; want Infinity", alg.GetPathLength())
	}
}
