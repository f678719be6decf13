package main

import (
	"fmt"

	"github.com/ttpr0/go-pathfind/routing"
	"github.com/ttpr0/go-pathfind/structs"
	"golang.org/x/exp/slog"
)

//**********************************************************
// routing requests and responses
//**********************************************************

type RoutingRequest struct {
	Start []int32 `json:"start"`
	Goal  []int32 `json:"goal"`
}

type RoutingResponse struct {
	Found bool      `json:"found"`
	Path  [][]int32 `json:"path"`
	Steps int32     `json:"steps"`
}

func NewRoutingResponse(path routing.Path[structs.Cell], found bool) RoutingResponse {
	resp := RoutingResponse{}
	resp.Found = found
	resp.Path = make([][]int32, 0, path.Length())
	for _, cell := range path.GetNodes() {
		resp.Path = append(resp.Path, []int32{cell.Row, cell.Col})
	}
	if found {
		resp.Steps = int32(path.Length() - 1)
	}
	return resp
}

type DistancesRequest struct {
	Source int32 `json:"source"`
}

type DistancesResponse struct {
	Source    int32   `json:"source"`
	Distances []int32 `json:"distances"`
}

type StatusResponse struct {
	Status string `json:"status"`
	Grid   bool   `json:"grid"`
	Graph  bool   `json:"graph"`
}

//**********************************************************
// routing handlers
//**********************************************************

func HandleRoutingRequest(req RoutingRequest) Result {
	if len(req.Start) != 2 || len(req.Goal) != 2 {
		return BadRequest("start and goal must be [row, col] pairs")
	}
	grid_ := MANAGER.GetGrid()
	if !grid_.HasValue() {
		return BadRequest("no grid loaded")
	}
	grid := grid_.Value
	start := structs.Cell{Row: req.Start[0], Col: req.Start[1]}
	goal := structs.Cell{Row: req.Goal[0], Col: req.Goal[1]}

	slog.Debug(fmt.Sprintf("searching path between %v and %v", start, goal))
	alg, err := routing.NewAStarGrid(grid, start, goal)
	if err != nil {
		return BadRequest(err.Error())
	}
	if !alg.CalcShortestPath() {
		slog.Debug("no path found")
		return OK(NewRoutingResponse(routing.Path[structs.Cell]{}, false))
	}
	slog.Debug("shortest path found")
	path := alg.GetShortestPath()
	return OK(NewRoutingResponse(path, true))
}

func HandleDistancesRequest(req DistancesRequest) Result {
	graph_ := MANAGER.GetGraph()
	if !graph_.HasValue() {
		return BadRequest("no graph loaded")
	}
	g := graph_.Value

	slog.Debug(fmt.Sprintf("computing distances from node %v", req.Source))
	dist, err := routing.CalcAllDistances(g, req.Source)
	if err != nil {
		return BadRequest(err.Error())
	}
	distances := make([]int32, g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		if dist[i] == routing.Infinity {
			// unreachable nodes are reported as -1
			distances[i] = -1
		} else {
			distances[i] = dist[i]
		}
	}
	return OK(DistancesResponse{
		Source:    req.Source,
		Distances: distances,
	})
}

func HandleStatusRequest(none) Result {
	return OK(StatusResponse{
		Status: "ok",
		Grid:   MANAGER.GetGrid().HasValue(),
		Graph:  MANAGER.GetGraph().HasValue(),
	})
}
