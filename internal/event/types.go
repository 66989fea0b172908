package event

import "hexmancer/pkg/hexmap"

type Type string

const (
	Moved          Type = "moved"
	Undone         Type = "undone"
	HistoryToggled Type = "history_toggled"
	FogToggled     Type = "fog_toggled"
)

// Types lists every event a Dispatcher can carry.
var Types = []Type{Moved, Undone, HistoryToggled, FogToggled}

// ForCommand names the event emitted after cmd has been applied.
func ForCommand(cmd hexmap.Command) Type {
	switch cmd {
	case hexmap.Undo:
		return Undone
	case hexmap.ToggleHistory:
		return HistoryToggled
	case hexmap.ToggleFog:
		return FogToggled
	}
	return Moved
}
