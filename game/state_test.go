package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColourFormat(t *testing.T) {
	assert.Equal(t, "· X O", fmt.Sprintf("%s %s %s", None, Black, White))
	assert.Equal(t, "None Black White", fmt.Sprintf("%v %v %v", None, Black, White))
	assert.Equal(t, "X", fmt.Sprintf("%s", Player(Black)))
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, Player(White), Opponent(Player(Black)))
	assert.Equal(t, Player(Black), Opponent(Player(White)))
	assert.Panics(t, func() { Opponent(Player(None)) })
	assert.False(t, Player(None).IsValid())
}

func TestMakeIterator(t *testing.T) {
	board := []Colour{
		Black, None, None,
		None, White, None,
		None, None, Black,
	}
	it := MakeIterator(board, 3)
	if len(it) != 3 {
		t.Fatalf("Expected 3 rows. Got %d", len(it))
	}
	assert.Equal(t, White, it[1][1])

	// rows alias the board
	it[2][0] = White
	assert.Equal(t, White, board[6])
	ReturnIterator(3, it)

	it = MakeIterator(board, 3)
	assert.Equal(t, []Colour{White, None, Black}, it[2])
	ReturnIterator(3, it)
}
