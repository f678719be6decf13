package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type pq_entry[T any, P constraints.Ordered] struct {
	item     T
	priority P
	seq      int64
}

// Binary min-heap ordered by priority.
//
// Entries with equal priority are dequeued in insertion order.
// Duplicate items with different priorities are allowed; callers
// following the lazy-deletion pattern have to check popped entries
// against their current state.
type PriorityQueue[T any, P constraints.Ordered] struct {
	entries List[pq_entry[T, P]]
	seq     int64
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		entries: NewList[pq_entry[T, P]](cap),
	}
}

func (self *PriorityQueue[T, P]) Len() int {
	return self.entries.Length()
}

func (self *PriorityQueue[T, P]) Clear() {
	self.entries.Clear()
	self.seq = 0
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	entry := pq_entry[T, P]{item: item, priority: priority, seq: self.seq}
	self.seq += 1
	self.entries.Add(entry)
	self._SiftUp(self.entries.Length() - 1)
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.entries.Length() == 0 {
		var t T
		return t, false
	}
	min := self.entries.Get(0)
	last := self.entries.Length() - 1
	self.entries.Set(0, self.entries.Get(last))
	self.entries = self.entries[:last]
	if self.entries.Length() > 0 {
		self._SiftDown(0)
	}
	return min.item, true
}

func (self *PriorityQueue[T, P]) _Less(i, j int) bool {
	a := self.entries.Get(i)
	b := self.entries.Get(j)
	if a.priority == b.priority {
		return a.seq < b.seq
	}
	return a.priority < b.priority
}

func (self *PriorityQueue[T, P]) _SiftUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if !self._Less(index, parent) {
			break
		}
		self.entries[index], self.entries[parent] = self.entries[parent], self.entries[index]
		index = parent
	}
}

func (self *PriorityQueue[T, P]) _SiftDown(index int) {
	length := self.entries.Length()
	for {
		smallest := index
		left := 2*index + 1
		right := 2*index + 2
		if left < length && self._Less(left, smallest) {
			smallest = left
		}
		if right < length && self._Less(right, smallest) {
			smallest = right
		}
		if smallest == index {
			break
		}
		self.entries[index], self.entries[smallest] = self.entries[smallest], self.entries[index]
		index = smallest
	}
}
