package graph

import (
	"github.com/ttpr0/go-pathfind/structs"
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// grid graph
//*******************************************

// Implicit 4-connected grid.
//
// Every walkable cell has a unit-weight edge to each of its in-bounds
// walkable orthogonal neighbours; no adjacency is materialized.
type GridGraph struct {
	rows     int32
	cols     int32
	walkable Array[bool]
}

func NewGridGraph(rows, cols int32) *GridGraph {
	walkable := NewArray[bool](int(rows * cols))
	for i := 0; i < len(walkable); i++ {
		walkable[i] = true
	}
	return &GridGraph{
		rows:     rows,
		cols:     cols,
		walkable: walkable,
	}
}

func (self *GridGraph) RowCount() int32 {
	return self.rows
}
func (self *GridGraph) ColCount() int32 {
	return self.cols
}
func (self *GridGraph) CellCount() int {
	return int(self.rows * self.cols)
}
func (self *GridGraph) IsInBounds(cell structs.Cell) bool {
	return cell.Row >= 0 && cell.Row < self.rows && cell.Col >= 0 && cell.Col < self.cols
}
func (self *GridGraph) IsWalkable(cell structs.Cell) bool {
	if !self.IsInBounds(cell) {
		return false
	}
	return self.walkable[self.GetCellIndex(cell)]
}
func (self *GridGraph) SetBlocked(cell structs.Cell, blocked bool) {
	self.walkable[self.GetCellIndex(cell)] = !blocked
}

// Maps a cell to its packed index used for per-cell records.
func (self *GridGraph) GetCellIndex(cell structs.Cell) int32 {
	return cell.Row*self.cols + cell.Col
}
func (self *GridGraph) GetCell(index int32) structs.Cell {
	return structs.Cell{Row: index / self.cols, Col: index % self.cols}
}

var grid_directions = [4]structs.Cell{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Iterates the walkable orthogonal neighbours of a cell calling the
// callback for every implicit edge.
func (self *GridGraph) ForAdjacentCells(cell structs.Cell, callback func(structs.Cell)) {
	for _, dir := range grid_directions {
		other := structs.Cell{Row: cell.Row + dir.Row, Col: cell.Col + dir.Col}
		if !self.IsInBounds(other) {
			continue
		}
		if !self.walkable[self.GetCellIndex(other)] {
			continue
		}
		callback(other)
	}
}

//*******************************************
// grid heuristic
//*******************************************

// Manhattan distance, admissible and consistent on a unit-cost
// 4-connected grid.
func ManhattanDistance(a, b structs.Cell) int32 {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
