package game

// MakeIterator makes a row-major iterator over a square n×n board of colours.
// The rows alias board; nothing is copied.
func MakeIterator(board []Colour, n int) (retVal [][]Colour) {
	retVal = borrowIterator(n)
	for i := range retVal {
		start := i * n
		retVal[i] = board[start : start+n : start+n]
	}
	return
}
