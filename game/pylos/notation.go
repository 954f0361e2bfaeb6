package pylos

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// String renders the position as "layer:ColumnRow", e.g. "1:B3" is column 2, row 3 of the base.
func (p Position) String() string {
	layer, x, y := p.Coordinates()
	return fmt.Sprintf("%d:%c%d", layer, 'A'+rune(x-1), y)
}

// Format implements fmt.Formatter. %d prints the offset, %+v the coordinates and offset, anything else the notation.
func (p Position) Format(s fmt.State, c rune) {
	switch c {
	case 'd':
		fmt.Fprintf(s, "%d", p.offset)
	case 'v':
		if s.Flag('+') {
			layer, x, y := p.Coordinates()
			fmt.Fprintf(s, "{layer: %d, x: %d, y: %d, offset: %d}", layer, x, y, p.offset)
			return
		}
		fallthrough
	default:
		fmt.Fprint(s, p.String())
	}
}

// ParsePosition parses the form written by Position.String. The column letter is case insensitive.
func ParsePosition(cfg Config, s string) (Position, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexByte(s, ':')
	if i <= 0 || i == len(s)-1 {
		return Position{}, errors.WithMessagef(ErrBadNotation, "%q: expected layer:ColumnRow", s)
	}
	layer, err := strconv.Atoi(s[:i])
	if err != nil {
		return Position{}, errors.WithMessagef(ErrBadNotation, "%q: unable to parse layer", s)
	}
	r, w := utf8.DecodeRuneInString(s[i+1:])
	if r > unicode.MaxASCII || !unicode.IsLetter(r) {
		return Position{}, errors.WithMessagef(ErrBadNotation, "%q: expected a column letter", s)
	}
	r = unicode.ToUpper(r)
	y, err := strconv.Atoi(s[i+1+w:])
	if err != nil {
		return Position{}, errors.WithMessagef(ErrBadNotation, "%q: unable to parse row", s)
	}
	return NewPosition(cfg, layer, int(r-'A')+1, y)
}

// ParsePositions parses a comma separated list of positions. Empty entries are skipped.
func ParsePositions(cfg Config, s string) ([]Position, error) {
	var retVal []Position
	for _, f := range strings.Split(s, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		p, err := ParsePosition(cfg, f)
		if err != nil {
			return nil, err
		}
		retVal = append(retVal, p)
	}
	return retVal, nil
}
