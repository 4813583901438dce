// Package main is the entry point for the lineup review tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/lineup/internal/app"
	"github.com/dshills/lineup/internal/config"
	"github.com/dshills/lineup/internal/input/key"
	"github.com/dshills/lineup/internal/renderer"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	searching  bool
	file       string
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	session, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer session.Close()

	if err := session.LoadFile(opts.file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil)) // best-effort; event queue may be full
	}()

	if err := eventLoop(screen, session); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Write the annotated file back on exit.
	if err := session.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// eventLoop runs the render/input cycle until quit.
func eventLoop(screen tcell.Screen, session *app.Session) error {
	view := renderer.NewView()
	render := func() {
		view.Render(screen, session.Buffer(), session.Cursor(), session.Marker(),
			session.Lighter(), session.LastReport())
	}
	render()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			render()

		case *tcell.EventInterrupt:
			return nil

		case *tcell.EventKey:
			kev := renderer.TranslateKey(ev)
			switch kev.Key {
			case key.KeyCtrlQ:
				return nil
			case key.KeyCtrlS:
				if err := session.Save(); err != nil {
					return err
				}
				render()
				continue
			case key.KeyNone:
				continue
			}

			result, consumed := session.HandleKey(kev)
			if !consumed {
				continue
			}
			_, height := screen.Size()
			view.Apply(result.ViewUpdate, height)
			render()
		}
	}
}

// loadConfig builds the configuration from the config file and flags.
func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	if opts.searching {
		cfg.Searching = true
	}
	return cfg, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to Lua configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to Lua configuration file (shorthand)")
	flag.BoolVar(&opts.searching, "search", false, "Enable searching mode")
	flag.BoolVar(&opts.searching, "s", false, "Enable searching mode (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Lineup - review line-oriented lists\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lineup [options] file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lineup list.txt             Review a list\n")
		fmt.Fprintf(os.Stderr, "  lineup -s list.txt          Review with lookups on advance\n")
		fmt.Fprintf(os.Stderr, "  lineup -c lineup.lua list   Review with a custom alphabet\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("lineup %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.file = flag.Arg(0)

	return opts
}
