package parser

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/ttpr0/go-pathfind/comps"
	"github.com/ttpr0/go-pathfind/structs"
	. "github.com/ttpr0/go-pathfind/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// osm parser
//*******************************************

// Parses a road network from an osm.pbf file into graph components.
//
// Ways are filtered through the decoder, split at junction nodes and
// weighted by their length in metres (rounded up, at least 1).
func ParseGraph(pbf_file string, decoder IOSMDecoder) (*comps.GraphBase, *comps.DefaultWeighting, error) {
	nodes := NewList[OSMNode](10000)
	edges := NewList[OSMEdge](10000)
	index_mapping := NewDict[int64, int](10000)
	err := _ParseOsm(pbf_file, decoder, &nodes, &edges, &index_mapping)
	if err != nil {
		return nil, nil, err
	}
	slog.Info(fmt.Sprintf("parsed osm file: %v nodes, %v edges", nodes.Length(), edges.Length()))
	base, weight := _CreateGraphComponents(&nodes, &edges)
	return base, weight, nil
}

func _ParseOsm(filename string, decoder IOSMDecoder, nodes *List[OSMNode], edges *List[OSMEdge], index_mapping *Dict[int64, int]) error {
	osm_nodes := NewDict[int64, TempNode](1000)

	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open osm file: %w", err)
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_InitWayHandler(scanner, decoder, &osm_nodes)
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_NodeHandler(scanner, &osm_nodes, nodes, index_mapping)
	scanner.Close()
	file.Seek(0, 0)
	scanner = osmpbf.New(context.Background(), file, runtime.GOMAXPROCS(-1))
	_WayHandler(scanner, decoder, edges, &osm_nodes, index_mapping)
	scanner.Close()
	return nil
}

func _CreateGraphComponents(osmnodes *List[OSMNode], osmedges *List[OSMEdge]) (*comps.GraphBase, *comps.DefaultWeighting) {
	nodes := NewList[structs.Node](osmnodes.Length())
	edges := NewList[structs.Edge](osmedges.Length() * 2)
	weights := NewList[int32](osmedges.Length() * 2)

	for _, osmedge := range *osmedges {
		weight := int32(osmedge.Length + 1)
		edges.Add(structs.Edge{
			NodeA: int32(osmedge.NodeA),
			NodeB: int32(osmedge.NodeB),
		})
		weights.Add(weight)
		if !osmedge.Oneway {
			edges.Add(structs.Edge{
				NodeA: int32(osmedge.NodeB),
				NodeB: int32(osmedge.NodeA),
			})
			weights.Add(weight)
		}
	}

	for _, osmnode := range *osmnodes {
		nodes.Add(structs.Node{
			Loc: osmnode.Point,
		})
	}

	base := comps.NewGraphBase(Array[structs.Node](nodes), Array[structs.Edge](edges))
	weight := comps.NewDefaultWeighting(base)
	for i := 0; i < weights.Length(); i++ {
		weight.SetEdgeWeight(int32(i), weights[i])
	}
	return base, weight
}

//*******************************************
// osm handler methods
//*******************************************

func _InitWayHandler(scanner *osmpbf.Scanner, decoder IOSMDecoder, osm_nodes *Dict[int64, TempNode]) {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			for i := 0; i < l; i++ {
				ndref := nodes[i].FeatureID().Ref()
				if !osm_nodes.ContainsKey(ndref) {
					(*osm_nodes)[ndref] = TempNode{structs.Coord{0, 0}, 1}
				} else {
					node := (*osm_nodes)[ndref]
					node.Count += 1
					(*osm_nodes)[ndref] = node
				}
			}
			node_a := (*osm_nodes)[nodes[0].FeatureID().Ref()]
			node_b := (*osm_nodes)[nodes[l-1].FeatureID().Ref()]
			node_a.Count += 1
			node_b.Count += 1
			(*osm_nodes)[nodes[0].FeatureID().Ref()] = node_a
			(*osm_nodes)[nodes[l-1].FeatureID().Ref()] = node_b
		default:
			continue
		}
	}
}

func _NodeHandler(scanner *osmpbf.Scanner, osm_nodes *Dict[int64, TempNode], nodes *List[OSMNode], index_mapping *Dict[int64, int]) {
	i := 0
	scanner.SkipWays = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Node:
			id := object.FeatureID().Ref()
			if !osm_nodes.ContainsKey(id) {
				continue
			}
			on := osm_nodes.Get(id)
			if on.Count > 1 {
				node := OSMNode{
					Point: structs.Coord{float32(object.Lon), float32(object.Lat)},
					Edges: NewList[int32](3),
				}
				nodes.Add(node)
				index_mapping.Set(id, i)
				i += 1
			}
			on.Point[0] = float32(object.Lon)
			on.Point[1] = float32(object.Lat)
			osm_nodes.Set(id, on)
		default:
			continue
		}
	}
}

func _WayHandler(scanner *osmpbf.Scanner, decoder IOSMDecoder, edges *List[OSMEdge], osm_nodes *Dict[int64, TempNode], index_mapping *Dict[int64, int]) {
	scanner.SkipNodes = true
	scanner.SkipRelations = true
	for scanner.Scan() {
		switch object := scanner.Object().(type) {
		case *osm.Way:
			tags := Dict[string, string](object.TagMap())
			if !decoder.IsValidHighway(tags) {
				continue
			}
			oneway := decoder.IsOneway(tags)

			nodes := object.Nodes.NodeIDs()
			l := len(nodes)
			start := nodes[0].FeatureID().Ref()
			curr := int64(0)
			e := OSMEdge{Nodes: NewList[structs.Coord](2)}
			for i := 0; i < l; i++ {
				curr = nodes[i].FeatureID().Ref()
				on := osm_nodes.Get(curr)
				e.Nodes.Add(on.Point)
				if on.Count > 1 && curr != start {
					e.NodeA = index_mapping.Get(start)
					e.NodeB = index_mapping.Get(curr)
					e.Oneway = oneway
					e.Length = _PolylineLength(e.Nodes)
					edges.Add(e)
					start = curr
					e = OSMEdge{Nodes: NewList[structs.Coord](2)}
					e.Nodes.Add(on.Point)
				}
			}
		default:
			continue
		}
	}
}

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	IsOneway(tags Dict[string, string]) bool
}

type WalkingDecoder struct{}

var walking_types = Dict[string, bool]{"footway": true, "path": true, "steps": true, "pedestrian": true,
	"living_street": true, "track": true, "residential": true, "service": true, "unclassified": true,
	"tertiary": true, "tertiary_link": true, "secondary": true, "secondary_link": true, "road": true}

func (self *WalkingDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if !tags.ContainsKey("highway") {
		return false
	}
	if !walking_types.ContainsKey(tags.Get("highway")) {
		return false
	}
	return true
}
func (self *WalkingDecoder) IsOneway(tags Dict[string, string]) bool {
	// pedestrians ignore oneway restrictions
	return false
}
