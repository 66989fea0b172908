// Command hexctl drives the hex map without a window: it applies command
// tokens, prints where the player ended up and writes the rendered view.
//
//	hexctl -config settings.yaml -out view.png right right lower_left history
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"hexmancer/internal/config"
	"hexmancer/internal/history"
	"hexmancer/pkg/hexmap"
	"hexmancer/pkg/render"
)

type options struct {
	configPath string
	outPath    string
	thumbPath  string
	importPath string
	gotoTarget string
	reset      bool
	verbose    bool
	commands   []string
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fl := flag.NewFlagSet("hexctl", flag.ContinueOnError)
	fl.SetOutput(stderr)
	o := &options{}
	fl.StringVar(&o.configPath, "config", "settings.yaml", "settings file")
	fl.StringVar(&o.outPath, "out", "", "rendered view path (default projector.dump_path)")
	fl.StringVar(&o.thumbPath, "thumb", "", "also write a preview thumbnail here")
	fl.StringVar(&o.importPath, "import", "", "replace the history with this text log first")
	fl.StringVar(&o.gotoTarget, "goto", "", "walk to x,y along a shortest route after the commands")
	fl.BoolVar(&o.reset, "reset", false, "truncate the history before applying commands")
	fl.BoolVar(&o.verbose, "v", false, "debug logging")
	fl.Usage = func() {
		fmt.Fprintf(stderr, "usage: hexctl [flags] [command...]\ncommands: %s\n", strings.Join(hexmap.Tokens(), " "))
		fl.PrintDefaults()
	}
	if err := fl.Parse(args); err != nil {
		return nil, err
	}
	o.commands = fl.Args()
	for _, c := range o.commands {
		if _, err := hexmap.ParseCommand(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func main() {
	o, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(o, os.Stdout); err != nil {
		slog.Error("hexctl failed", "error", err)
		os.Exit(1)
	}
}

func run(o *options, stdout io.Writer) error {
	cfg, err := config.Load(o.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return err
	}

	store, err := history.Open(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if o.importPath != "" {
		if _, err := os.Stat(o.importPath); err != nil {
			return fmt.Errorf("import: %w", err)
		}
		n, err := history.Copy(store, history.NewFileStore(o.importPath))
		if err != nil {
			return fmt.Errorf("import %s: %w", o.importPath, err)
		}
		fmt.Fprintf(stdout, "imported %d records from %s\n", n, o.importPath)
	}
	if o.reset {
		if err := store.Truncate(); err != nil {
			return err
		}
	}

	hm, err := hexmap.Open(cfg.HexMap(), cfg.Map.Image, store)
	if err != nil {
		return err
	}
	for _, c := range o.commands {
		if err := hm.Command(c); err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
	}
	if o.gotoTarget != "" {
		goal, err := hexmap.ParseRecord(0, o.gotoTarget)
		if err != nil {
			return fmt.Errorf("goto: %w", err)
		}
		n, err := hm.Walk(goal)
		if err != nil {
			return fmt.Errorf("goto %v: %w", goal, err)
		}
		fmt.Fprintf(stdout, "walked %d steps to %v\n", n, goal)
	}
	fmt.Fprintln(stdout, hm.Status())

	out := o.outPath
	if out == "" {
		out = cfg.Projector.DumpPath
	}
	img, err := hm.Render()
	if err != nil {
		return err
	}
	n, err := render.SavePNG(out, img)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s (%s)\n", out, humanize.Bytes(uint64(n)))

	if o.thumbPath != "" {
		t := cfg.Projector.Thumbnail
		n, err := render.SavePNG(o.thumbPath, render.Thumbnail(img, t[0], t[1]))
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote %s (%s)\n", o.thumbPath, humanize.Bytes(uint64(n)))
	}
	return nil
}
