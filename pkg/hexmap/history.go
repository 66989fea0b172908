package hexmap

import (
	"strconv"
	"strings"
)

// History is the durable log of visited grid coordinates, oldest first.
// The last record always equals the HexMap's current position.
type History interface {
	Append(c Coordinate) error
	ReadAll() ([]Coordinate, error)
	Truncate() error
	// RemoveLast drops the newest record and returns the one before it.
	// It fails with ErrEmptyHistory when fewer than two records exist.
	RemoveLast() (Coordinate, error)
}

// FormatRecord renders c as a history line including the newline.
func FormatRecord(c Coordinate) string {
	return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) + "\n"
}

// ParseRecord parses one history line. lineNo is only used for error reporting.
func ParseRecord(lineNo int, line string) (Coordinate, error) {
	text := strings.TrimRight(line, "\r\n")
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return Coordinate{}, &ParseError{Line: lineNo, Text: text}
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coordinate{}, &ParseError{Line: lineNo, Text: text, Err: err}
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coordinate{}, &ParseError{Line: lineNo, Text: text, Err: err}
	}
	return Coordinate{X: x, Y: y}, nil
}
