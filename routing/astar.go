package routing

import (
	"fmt"

	"github.com/ttpr0/go-pathfind/graph"
	"github.com/ttpr0/go-pathfind/structs"
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// grid a-star
//*******************************************

var _ IShortestPath[structs.Cell] = &AStarGrid{}

// A* over an implicit 4-connected grid with the Manhattan heuristic.
//
// The frontier is ordered by accumulated cost plus remaining estimate;
// entries popped for an already expanded cell are stale and skipped.
type AStarGrid struct {
	heap  PriorityQueue[structs.Cell, int32]
	grid  *graph.GridGraph
	table _CostTable
	start structs.Cell
	goal  structs.Cell
	found bool
}

func NewAStarGrid(grid *graph.GridGraph, start, goal structs.Cell) (*AStarGrid, error) {
	if grid.RowCount() == 0 || grid.ColCount() == 0 {
		return nil, fmt.Errorf("%w: grid has no cells", ErrEmptyGraph)
	}
	if !grid.IsInBounds(start) {
		return nil, fmt.Errorf("%w: start cell %v out of bounds", ErrInvalidInput, start)
	}
	if !grid.IsInBounds(goal) {
		return nil, fmt.Errorf("%w: goal cell %v out of bounds", ErrInvalidInput, goal)
	}
	if !grid.IsWalkable(start) {
		return nil, fmt.Errorf("%w: start cell %v is blocked", ErrInvalidInput, start)
	}
	if !grid.IsWalkable(goal) {
		return nil, fmt.Errorf("%w: goal cell %v is blocked", ErrInvalidInput, goal)
	}
	return &AStarGrid{
		heap:  NewPriorityQueue[structs.Cell, int32](100),
		grid:  grid,
		table: _NewCostTable(int32(grid.CellCount())),
		start: start,
		goal:  goal,
	}, nil
}

func (self *AStarGrid) CalcShortestPath() bool {
	self.table.Relax(self.grid.GetCellIndex(self.start), 0, -1, -1)
	self.heap.Enqueue(self.start, graph.ManhattanDistance(self.start, self.goal))

	for {
		curr, ok := self.heap.Dequeue()
		if !ok {
			return false
		}
		curr_flag := self.table.Get(self.grid.GetCellIndex(curr))
		if curr_flag.Visited {
			continue
		}
		curr_flag.Visited = true
		if curr == self.goal {
			self.found = true
			return true
		}
		self.grid.ForAdjacentCells(curr, func(other structs.Cell) {
			other_index := self.grid.GetCellIndex(other)
			other_flag := self.table.Get(other_index)
			if other_flag.Visited {
				return
			}
			new_length := curr_flag.Dist + 1
			if self.table.Relax(other_index, new_length, self.grid.GetCellIndex(curr), -1) {
				self.heap.Enqueue(other, new_length+graph.ManhattanDistance(other, self.goal))
			}
		})
	}
}

func (self *AStarGrid) GetShortestPath() Path[structs.Cell] {
	if !self.found {
		return NewPath(NewArray[structs.Cell](0))
	}
	cells := NewList[structs.Cell](10)
	curr := self.grid.GetCellIndex(self.goal)
	for curr != -1 {
		cells.Add(self.grid.GetCell(curr))
		curr = self.table.Get(curr).Prev
	}
	for i, j := 0, cells.Length()-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return NewPath(Array[structs.Cell](cells))
}

// Number of steps of the computed path.
func (self *AStarGrid) GetPathLength() int32 {
	if !self.found {
		return Infinity
	}
	return self.table.Get(self.grid.GetCellIndex(self.goal)).Dist
}

//*******************************************
// convenience wrapper
//*******************************************

// Computes one shortest path from start to goal.
//
// A missing path is a regular result reported through the bool, not an
// error; errors are raised for invalid inputs only.
func FindPath(grid *graph.GridGraph, start, goal structs.Cell) (Array[structs.Cell], bool, error) {
	alg, err := NewAStarGrid(grid, start, goal)
	if err != nil {
		return nil, false, err
	}
	if !alg.CalcShortestPath() {
		return NewArray[structs.Cell](0), false, nil
	}
	path := alg.GetShortestPath()
	return path.GetNodes(), true, nil
}
