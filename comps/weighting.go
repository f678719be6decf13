package comps

import (
	"os"

	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// weighting interface
//*******************************************

type IWeighting interface {
	GetEdgeWeight(edge int32) int32
	EdgeCount() int
}

//*******************************************
// default weighting
//*******************************************

type DefaultWeighting struct {
	edge_weights []int32
}

func NewDefaultWeighting(base IGraphBase) *DefaultWeighting {
	return &DefaultWeighting{
		edge_weights: make([]int32, base.EdgeCount()),
	}
}

func (self *DefaultWeighting) GetEdgeWeight(edge int32) int32 {
	return self.edge_weights[edge]
}
func (self *DefaultWeighting) SetEdgeWeight(edge int32, weight int32) {
	self.edge_weights[edge] = weight
}
func (self *DefaultWeighting) EdgeCount() int {
	return len(self.edge_weights)
}

func (self *DefaultWeighting) _Load(path string) {
	filename := path + "-weight"
	reader := ReadBufferFromFile(filename)

	edgecount := Read[int32](reader)
	weights := make([]int32, edgecount)
	for i := 0; i < int(edgecount); i++ {
		weights[i] = Read[int32](reader)
	}

	*self = DefaultWeighting{
		edge_weights: weights,
	}
}
func (self *DefaultWeighting) _Store(path string) {
	filename := path + "-weight"
	writer := NewBufferWriter()

	edgecount := len(self.edge_weights)
	Write(writer, int32(edgecount))
	for i := 0; i < edgecount; i++ {
		Write(writer, self.GetEdgeWeight(int32(i)))
	}

	WriteBufferToFile(writer, filename)
}
func (self *DefaultWeighting) _Remove(path string) {
	os.Remove(path + "-weight")
}

//*******************************************
// equal weighting
//*******************************************

// Unit weights for every edge, used by the grid engine cross-checks
// and wherever hop-count distances are wanted.
type EqualWeighting struct {
	edge_count int
}

func NewEqualWeighting(base IGraphBase) *EqualWeighting {
	return &EqualWeighting{
		edge_count: base.EdgeCount(),
	}
}

func (self *EqualWeighting) GetEdgeWeight(edge int32) int32 {
	return 1
}
func (self *EqualWeighting) EdgeCount() int {
	return self.edge_count
}
