package parser

import (
	"math"

	"github.com/ttpr0/go-pathfind/structs"
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// utility methods
//*******************************************

const earth_radius = 6371000.0

// Haversine distance in metres between two (lon, lat) coordinates.
func _HaversineDistance(a, b structs.Coord) float64 {
	lat1 := float64(a[1]) * math.Pi / 180
	lat2 := float64(b[1]) * math.Pi / 180
	dlat := lat2 - lat1
	dlon := (float64(b[0]) - float64(a[0])) * math.Pi / 180

	h := math.Sin(dlat/2)*math.Sin(dlat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	return 2 * earth_radius * math.Asin(math.Sqrt(h))
}

func _PolylineLength(coords List[structs.Coord]) float32 {
	length := 0.0
	for i := 0; i < coords.Length()-1; i++ {
		length += _HaversineDistance(coords[i], coords[i+1])
	}
	return float32(length)
}
