package game

import (
	"sync"
)

// iterPool holds row headers for square layers, keyed by side length.
var iterPool = make(map[int]*sync.Pool)
var iterLock sync.Mutex

func borrowIterator(n int) [][]Colour {
	iterLock.Lock()
	p, ok := iterPool[n]
	iterLock.Unlock()
	if ok {
		return p.Get().([][]Colour)
	}
	return make([][]Colour, n)
}

// ReturnIterator hands an iterator made by MakeIterator back for reuse.
func ReturnIterator(n int, it [][]Colour) {
	for i := range it {
		it[i] = nil
	}
	iterLock.Lock()
	p, ok := iterPool[n]
	if !ok {
		p = &sync.Pool{
			New: func() interface{} { return make([][]Colour, n) },
		}
		iterPool[n] = p
	}
	iterLock.Unlock()
	p.Put(it)
}
