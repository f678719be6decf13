package routing

import (
	"errors"
	"testing"

	"github.com/ttpr0/go-pathfind/graph"
	"github.com/ttpr0/go-pathfind/structs"
	. "github.com/ttpr0/go-pathfind/util"
)

func _BuildTestGrid(pattern []string) *graph.GridGraph {
	cells := make([][]bool, len(pattern))
	for r, row := range pattern {
		cells[r] = make([]bool, len(row))
		for c, ch := range row {
			cells[r][c] = ch == '#'
		}
	}
	return graph.BuildGridGraph(cells)
}

// brute-force reference for shortest 4-connected path lengths
func _BFSDistance(grid *graph.GridGraph, start, goal structs.Cell) int32 {
	dist := NewArray[int32](grid.CellCount())
	for i := 0; i < len(dist); i++ {
		dist[i] = Infinity
	}
	dist[grid.GetCellIndex(start)] = 0
	queue := NewList[structs.Cell](10)
	queue.Add(start)
	for queue.Length() > 0 {
		curr := queue.Get(0)
		queue = queue[1:]
		grid.ForAdjacentCells(curr, func(other structs.Cell) {
			if dist[grid.GetCellIndex(other)] != Infinity {
				return
			}
			dist[grid.GetCellIndex(other)] = dist[grid.GetCellIndex(curr)] + 1
			queue.Add(other)
		})
	}
	return dist[grid.GetCellIndex(goal)]
}

func _CheckPathValid(t *testing.T, grid *graph.GridGraph, path Array[structs.Cell], start, goal structs.Cell) {
	if path.Length() == 0 {
		t.Fatalf("empty path")
	}
	if path[0] != start {
		t.Errorf("path starts at %v; want %v", path[0], start)
	}
	if path[path.Length()-1] != goal {
		t.Errorf("path ends at %v; want %v", path[path.Length()-1], goal)
	}
	for i := 0; i < path.Length(); i++ {
		if !grid.IsWalkable(path[i]) {
			t.Errorf("path cell %v is not walkable", path[i])
		}
	}
	for i := 0; i < path.Length()-1; i++ {
		if graph.ManhattanDistance(path[i], path[i+1]) != 1 {
			t.Errorf("step %v -> %v is not orthogonal", path[i], path[i+1])
		}
	}
}

func TestFindPathAroundObstacle(t *testing.T) {
	grid := _BuildTestGrid([]string{
		"...",
		".#.",
		"...",
	})
	start := structs.Cell{Row: 0, Col: 0}
	goal := structs.Cell{Row: 2, Col: 2}

	path, found, err := FindPath(grid, start, goal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatalf("no path found")
	}
	if path.Length() != 5 {
		t.Errorf("path length = %v cells; want 5", path.Length())
	}
	_CheckPathValid(t, grid, path, start, goal)
	for _, cell := range path {
		if cell == (structs.Cell{Row: 1, Col: 1}) {
			t.Errorf("path crosses the blocked cell")
		}
	}
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	grid := _BuildTestGrid([]string{
		"..",
		"..",
	})
	cell := structs.Cell{Row: 1, Col: 0}
	path, found, err := FindPath(grid, cell, cell)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Fatalf("no path found for start == goal")
	}
	if path.Length() != 1 || path[0] != cell {
		t.Errorf("path = %v; want [%v]", path, cell)
	}
}

func TestFindPathNotFound(t *testing.T) {
	grid := _BuildTestGrid([]string{
		"..#.",
		"..#.",
		"..#.",
	})
	path, found, err := FindPath(grid, structs.Cell{Row: 0, Col: 0}, structs.Cell{Row: 2, Col: 3})
	if err != nil {
		t.Fatalf("walled-off goal must not be an error, got: %v", err)
	}
	if found {
		t.Errorf("found a path through a full wall")
	}
	if path.Length() != 0 {
		t.Errorf("path length = %v; want 0", path.Length())
	}
}

func TestFindPathErrors(t *testing.T) {
	grid := _BuildTestGrid([]string{
		"..",
		".#",
	})

	_, _, err := FindPath(grid, structs.Cell{Row: 0, Col: 0}, structs.Cell{Row: 1, Col: 1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blocked goal: error = %v; want ErrInvalidInput", err)
	}
	_, _, err = FindPath(grid, structs.Cell{Row: 1, Col: 1}, structs.Cell{Row: 0, Col: 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blocked start: error = %v; want ErrInvalidInput", err)
	}
	_, _, err = FindPath(grid, structs.Cell{Row: 0, Col: 0}, structs.Cell{Row: 5, Col: 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("out-of-bounds goal: error = %v; want ErrInvalidInput", err)
	}
	_, _, err = FindPath(grid, structs.Cell{Row: -1, Col: 0}, structs.Cell{Row: 0, Col: 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("out-of-bounds start: error = %v; want ErrInvalidInput", err)
	}

	empty := graph.NewGridGraph(0, 0)
	_, _, err = FindPath(empty, structs.Cell{Row: 0, Col: 0}, structs.Cell{Row: 0, Col: 0})
	if !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("empty grid: error = %v; want ErrEmptyGraph", err)
	}
}

func TestFindPathOptimalLength(t *testing.T) {
	// a* path lengths have to match brute-force bfs
	patterns := [][]string{
		{
			".....",
			".###.",
			".....",
			"###..",
			".....",
		},
		{
			"......",
			"####.#",
			"......",
			".####.",
			"......",
		},
		{
			"...",
			"...",
			"...",
		},
	}
	for p, pattern := range patterns {
		grid := _BuildTestGrid(pattern)
		start := structs.Cell{Row: 0, Col: 0}
		goal := structs.Cell{Row: grid.RowCount() - 1, Col: grid.ColCount() - 1}

		path, found, err := FindPath(grid, start, goal)
		if err != nil {
			t.Fatalf("grid %v: unexpected error: %v", p, err)
		}
		want := _BFSDistance(grid, start, goal)
		if !found {
			if want != Infinity {
				t.Errorf("grid %v: no path found, bfs found %v steps", p, want)
			}
			continue
		}
		_CheckPathValid(t, grid, path, start, goal)
		if int32(path.Length()-1) != want {
			t.Errorf("grid %v: path has %v steps; bfs found %v", p, path.Length()-1, want)
		}
	}
}

func TestFindPathDeterministic(t *testing.T) {
	grid := _BuildTestGrid([]string{
		"....",
		".#..",
		"....",
	})
	start := structs.Cell{Row: 0, Col: 0}
	goal := structs.Cell{Row: 2, Col: 3}

	first, found, err := FindPath(grid, start, goal)
	if err != nil || !found {
		t.Fatalf("first run failed: found = %v, err = %v", found, err)
	}
	second, found, err := FindPath(grid, start, goal)
	if err != nil || !found {
		t.Fatalf("second run failed: found = %v, err = %v", found, err)
	}
	if first.Length() != second.Length() {
		t.Fatalf("path lengths differ between runs: %v vs %v", first.Length(), second.Length())
	}
	for i := 0; i < first.Length(); i++ {
		if first[i] != second[i] {
			t.Errorf("path cell %v differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}
