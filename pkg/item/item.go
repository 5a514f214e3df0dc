package item

import (
	"go.uber.org/atomic"
)

// Item is a keyed element counting how many times it has been visited.
type Item struct {
	Id          int
	AccessCount *atomic.Int64
}

func New(id int) *Item {
	return &Item{Id: id, AccessCount: atomic.NewInt64(0)}
}

func (it *Item) Identity() uint64 {
	return uint64(it.Id)
}

// Touch records one visit and returns the new count.
func (it *Item) Touch() int64 {
	return it.AccessCount.Inc()
}
