package routing

import (
	. "github.com/ttpr0/go-pathfind/util"
)

//*******************************************
// shortest path interface
//*******************************************

type IShortestPath[T any] interface {
	CalcShortestPath() bool
	GetShortestPath() Path[T]
}

//*******************************************
// path
//*******************************************

type Path[T any] struct {
	nodes Array[T]
}

func NewPath[T any](nodes Array[T]) Path[T] {
	return Path[T]{
		nodes: nodes,
	}
}

func (self *Path[T]) Length() int {
	return self.nodes.Length()
}

func (self *Path[T]) GetNodes() Array[T] {
	return self.nodes
}
