package hexmap

import (
	"errors"
	"fmt"
)

// ErrEmptyHistory means the history has nothing to revert to.
var ErrEmptyHistory = errors.New("hexmap: not enough history to undo")

// ParseError reports a history record that is not two comma separated integers.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line, without the newline
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hexmap: history line %d %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("hexmap: history line %d %q: want \"x,y\"", e.Line, e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownCommandError is returned for a command token outside the command set.
type UnknownCommandError struct {
	Token string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("hexmap: unknown command %q", e.Token)
}
