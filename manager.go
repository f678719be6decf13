package main

import (
	"github.com/ttpr0/go-pathfind/comps"
	"github.com/ttpr0/go-pathfind/graph"
	"github.com/ttpr0/go-pathfind/parser"
	. "github.com/ttpr0/go-pathfind/util"
	"golang.org/x/exp/slog"
)

//**********************************************************
// pathfind manager
//**********************************************************

type PathfindManager struct {
	grid  Optional[*graph.GridGraph]
	graph Optional[*graph.Graph]
}

// Loads the search structures selected by the config.
//
// A stored graph directory takes precedence over a csv edge list,
// a csv edge list over an osm file. Freshly parsed graphs are stored
// back when store-graphs is set.
func NewPathfindManager(config Config) *PathfindManager {
	manager := &PathfindManager{
		grid:  None[*graph.GridGraph](),
		graph: None[*graph.Graph](),
	}

	if config.Source.Grid != "" {
		grid, err := parser.ParseGridFile(config.Source.Grid)
		if err != nil {
			slog.Error("failed to load grid: " + err.Error())
			panic(err)
		}
		slog.Info("loaded grid source")
		manager.grid = Some(grid)
	}

	switch {
	case config.Source.Graph != "":
		base := comps.Load[*comps.GraphBase](config.Source.Graph)
		weight := comps.Load[*comps.DefaultWeighting](config.Source.Graph)
		slog.Info("loaded stored graph")
		manager.graph = Some(graph.BuildGraph(base, weight))
	case config.Source.CSV != "":
		base, weight, err := parser.ParseEdgeListCSV(config.Source.CSV, ';', true)
		if err != nil {
			slog.Error("failed to parse edge list: " + err.Error())
			panic(err)
		}
		slog.Info("parsed csv graph source")
		manager.graph = Some(graph.BuildGraph(base, weight))
		if config.StoreGraphs {
			comps.Store(base, config.Source.CSV)
			comps.Store(weight, config.Source.CSV)
		}
	case config.Source.OSM != "":
		base, weight, err := parser.ParseGraph(config.Source.OSM, &parser.WalkingDecoder{})
		if err != nil {
			slog.Error("failed to parse osm file: " + err.Error())
			panic(err)
		}
		slog.Info("parsed osm graph source")
		manager.graph = Some(graph.BuildGraph(base, weight))
		if config.StoreGraphs {
			comps.Store(base, config.Source.OSM)
			comps.Store(weight, config.Source.OSM)
		}
	}

	return manager
}

func (self *PathfindManager) GetGrid() Optional[*graph.GridGraph] {
	return self.grid
}

func (self *PathfindManager) GetGraph() Optional[*graph.Graph] {
	return self.graph
}
