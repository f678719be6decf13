package parser

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ttpr0/go-pathfind/graph"
	"github.com/ttpr0/go-pathfind/structs"
)

//*******************************************
// grid map parser
//*******************************************

// Reads a grid map file.
//
// Format: first line "rows cols", followed by rows lines of cols
// whitespace-separated cell states (0 = walkable, 1 = blocked).
func ParseGridFile(file string) (*graph.GridGraph, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file: %w", err)
	}
	defer f.Close()
	return ParseGrid(f)
}

func ParseGrid(f *os.File) (*graph.GridGraph, error) {
	reader := bufio.NewReader(f)

	var rows, cols int32
	_, err := fmt.Fscan(reader, &rows, &cols)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid dimensions: %w", err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid grid dimensions %vx%v", rows, cols)
	}

	grid := graph.NewGridGraph(rows, cols)
	for r := int32(0); r < rows; r++ {
		for c := int32(0); c < cols; c++ {
			var state int
			_, err := fmt.Fscan(reader, &state)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell (%v,%v): %w", r, c, err)
			}
			if state != 0 && state != 1 {
				return nil, fmt.Errorf("invalid cell state %v at (%v,%v)", state, r, c)
			}
			if state == 1 {
				grid.SetBlocked(structs.Cell{Row: r, Col: c}, true)
			}
		}
	}
	return grid, nil
}
