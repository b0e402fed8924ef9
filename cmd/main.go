// devicequery - print, serve or show the global mouse and keyboard state
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"devicequery"
	"devicequery/internal/api"
	"devicequery/internal/config"
	"devicequery/internal/protocol"
	"devicequery/internal/tray"
	"devicequery/internal/watch"
)

var (
	version    = "0.1.0"
	configPath = flag.String("config", "", "Configuration file (.json, .yaml or .yml)")
	display    = flag.String("display", "", "X11 display to query (default $DISPLAY)")
	interval   = flag.Duration("interval", 0, "Poll interval, e.g. 20ms")
	watchMode  = flag.String("watch", "", "Events to print: mouse, keys or all")
	once       = flag.Bool("once", false, "Print one snapshot and exit")
	serve      = flag.Bool("serve", false, "Serve the monitor API")
	port       = flag.Int("port", 0, "Monitor API port")
	showTray   = flag.Bool("tray", false, "Show the state in the system tray")
	debug      = flag.Bool("debug", false, "Debug logging")
	showVer    = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Printf("devicequery version %s\n", version)
		return
	}

	var logger golog.Logger
	if *debug {
		logger = golog.NewDebugLogger("devicequery")
	} else {
		logger = golog.NewDevelopmentLogger("devicequery")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		logger.Fatalw("invalid configuration", "error", err)
	}

	state := devicequery.New(
		devicequery.WithDisplay(cfg.Display),
		devicequery.WithLogger(logger.Named("query")),
	)

	if *once {
		err := printSnapshot(os.Stdout, watch.Take(state), cfg.Watch)
		if err := multierr.Combine(err, state.Close()); err != nil {
			logger.Fatalw("failed to print snapshot", "error", err)
		}
		return
	}

	if err := run(cfg, state, logger); err != nil {
		logger.Fatalw("stopped with error", "error", err)
	}
}

// loadConfig reads path, or the default location when path is empty.
func loadConfig(path string) (*config.Config, error) {
	mgr, err := config.NewManager(path)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	return mgr.Get(), nil
}

// applyFlags overrides the configuration with the flags given on the command
// line.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "display":
			cfg.Display = *display
		case "interval":
			cfg.PollIntervalMS = int(*interval / time.Millisecond)
		case "watch":
			cfg.Watch = *watchMode
		case "serve":
			cfg.API.Enabled = *serve
		case "port":
			cfg.API.Port = *port
		case "tray":
			cfg.Tray.Enabled = *showTray
		}
	})
}

func run(cfg *config.Config, state *devicequery.DeviceState, logger golog.Logger) (err error) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	defer func() {
		err = multierr.Combine(err, state.Close())
	}()

	chord, err := cfg.Chord()
	if err != nil {
		return err
	}

	var server *api.Server
	if cfg.API.Enabled {
		server = api.NewServer(state, cfg.API.Token, logger.Named("api"))
		if err := server.Start(fmt.Sprintf("127.0.0.1:%d", cfg.API.Port)); err != nil {
			return errors.Wrap(err, "failed to start monitor API")
		}
		defer func() {
			err = multierr.Combine(err, server.Close())
		}()
	}

	var tr *tray.Tray
	if cfg.Tray.Enabled {
		tr = tray.New("devicequery", cancel)
	}

	out := json.NewEncoder(os.Stdout)
	watcher := &watch.Watcher{
		Source:   state,
		Interval: cfg.PollInterval(),
		Logger:   logger.Named("watch"),
	}
	poll := func(s watch.Snapshot, events []watch.Event) {
		for _, e := range filterEvents(cfg.Watch, events) {
			if err := out.Encode(e); err != nil {
				logger.Debugw("failed to print event", "error", err)
			}
		}
		if server != nil {
			server.Publish(s, events)
		}
		if tr != nil {
			tr.Update(s)
		}
		if chord.Matches(s.Keys) {
			logger.Infow("quit chord pressed", "chord", chord.String())
			cancel()
		}
	}

	logger.Infow("watching", "interval", watcher.Interval, "watch", cfg.Watch)
	if tr == nil {
		return watcher.Run(ctx, poll)
	}

	// The tray owns the main goroutine while the watcher polls.
	done := make(chan error, 1)
	go func() {
		done <- watcher.Run(ctx, poll)
		tr.Stop()
	}()
	tr.Run()
	cancel()
	return <-done
}

// filterEvents keeps the events selected by the watch mode.
func filterEvents(mode string, events []watch.Event) []watch.Event {
	if mode == config.WatchAll {
		return events
	}
	var kept []watch.Event
	for _, e := range events {
		isKey := e.Type == watch.EventKey
		if isKey == (mode == config.WatchKeys) {
			kept = append(kept, e)
		}
	}
	return kept
}

// printSnapshot writes one snapshot as JSON, restricted by the watch mode.
func printSnapshot(w io.Writer, s watch.Snapshot, mode string) error {
	payload := protocol.NewSnapshot(s).Payload.(protocol.SnapshotPayload)
	var v interface{}
	switch mode {
	case config.WatchMouse:
		v = payload.Mouse
	case config.WatchKeys:
		v = payload.Keys
	default:
		v = payload
	}
	return json.NewEncoder(w).Encode(v)
}
