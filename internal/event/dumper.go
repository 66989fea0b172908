package event

import (
	"log/slog"

	"github.com/dustin/go-humanize"

	"hexmancer/pkg/hexmap"
)

// Dumper writes the rendered view to Path on every event so another process
// can pick it up.
type Dumper struct {
	Map    *hexmap.HexMap
	Path   string
	Logger *slog.Logger

	Written int
	Err     error
}

func (d *Dumper) OnEvent(e Event) {
	n, err := d.Map.Dump(d.Path)
	if err != nil {
		d.Err = err
		d.Logger.Error("dump failed", "path", d.Path, "event", e.Type, "error", err)
		return
	}
	d.Written++
	d.Logger.Debug("dumped frame", "path", d.Path, "event", e.Type, "grid", e.Status.Grid.String(), "size", humanize.Bytes(uint64(n)))
}
