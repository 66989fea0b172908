// pkg/hexmap/direction.go
package hexmap

import "strings"

// Direction is one of the six neighbours of a cell.
type Direction int

const (
	UpperLeft Direction = iota
	UpperRight
	Left
	Right
	LowerLeft
	LowerRight
)

// Directions lists all six neighbours, clockwise from the upper left.
var Directions = []Direction{UpperLeft, UpperRight, Right, LowerRight, LowerLeft, Left}

var directionNames = [...]string{
	UpperLeft:  "upper_left",
	UpperRight: "upper_right",
	Left:       "left",
	Right:      "right",
	LowerLeft:  "lower_left",
	LowerRight: "lower_right",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "direction(?)"
	}
	return directionNames[d]
}

// Delta is the grid step for d. Diagonal steps depend on whether the current
// row is staggered: a staggered row reaches its right-hand diagonals by moving
// one column right, a non-staggered row reaches its left-hand diagonals by
// moving one column left.
func (d Direction) Delta(stagger bool) Coordinate {
	right, left := 0, -1
	if stagger {
		right, left = 1, 0
	}
	switch d {
	case UpperLeft:
		return Coordinate{X: left, Y: -1}
	case UpperRight:
		return Coordinate{X: right, Y: -1}
	case Left:
		return Coordinate{X: -1}
	case Right:
		return Coordinate{X: 1}
	case LowerLeft:
		return Coordinate{X: left, Y: 1}
	case LowerRight:
		return Coordinate{X: right, Y: 1}
	}
	return Coordinate{}
}

// Neighbor returns the cell next to g in direction d.
func (d Direction) Neighbor(g Coordinate) Coordinate {
	return g.Add(d.Delta(CheckStagger(g)))
}

// Command is a HexMap control input.
type Command int

const (
	MoveUpperLeft Command = iota
	MoveUpperRight
	MoveLeft
	MoveRight
	MoveLowerLeft
	MoveLowerRight
	Undo
	ToggleHistory
	ToggleFog
)

var commandTokens = [...]string{
	MoveUpperLeft:  "upper_left",
	MoveUpperRight: "upper_right",
	MoveLeft:       "left",
	MoveRight:      "right",
	MoveLowerLeft:  "lower_left",
	MoveLowerRight: "lower_right",
	Undo:           "undo",
	ToggleHistory:  "history",
	ToggleFog:      "fog",
}

// Tokens returns the nine accepted command tokens in declaration order.
func Tokens() []string {
	out := make([]string, len(commandTokens))
	copy(out, commandTokens[:])
	return out
}

// ParseCommand maps a token to its Command.
func ParseCommand(token string) (Command, error) {
	t := strings.TrimSpace(token)
	for i, name := range commandTokens {
		if name == t {
			return Command(i), nil
		}
	}
	return 0, &UnknownCommandError{Token: token}
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandTokens) {
		return "command(?)"
	}
	return commandTokens[c]
}

// Direction reports the move direction of c, if c is a move.
func (c Command) Direction() (Direction, bool) {
	if c >= MoveUpperLeft && c <= MoveLowerRight {
		return Direction(c - MoveUpperLeft), true
	}
	return 0, false
}
