package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/qnkhuat/tetriterm/pkg"
	"github.com/qnkhuat/tetriterm/pkg/gui"
)

var errNotTerminal = errors.New("non-interactive terminals are not supported")

func fail(format string, a ...interface{}) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "tetriterm: "+format+"\n", a...)
	os.Exit(1)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fail("%v", err)
	}
}

// run returns instead of exiting so that deferred cleanup, the log file
// included, happens on every path.
func run(args []string) error {
	fs := flag.NewFlagSet("tetriterm", flag.ContinueOnError)
	envFile := fs.String("env", ".env", "path to dotenv file")
	level := fs.Int("level", 1, "starting level")
	seed := fs.Int64("seed", 0, "piece sequence seed, 0 picks one from the clock")
	name := fs.String("name", "", "player name, generated when empty")
	theme := fs.String("theme", "basic", "color theme (basic, mono)")
	logPath := fs.String("log", "./tetriterm.log", "path to log file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := pkg.LoadConfig(*envFile)
	if err != nil {
		return err
	}

	// Flags given on the command line win over the environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.Level = *level
		case "seed":
			cfg.Seed = *seed
		case "name":
			cfg.Name = *name
		case "theme":
			cfg.Theme = *theme
		case "log":
			cfg.LogPath = *logPath
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	t, err := gui.ImportThemes(cfg.Theme, gui.Themes)
	if err != nil {
		return fmt.Errorf("%w: %s", err, cfg.Theme)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	logFile, err := pkg.InitLog(cfg.LogPath, "CLIENT: ")
	if err != nil {
		return err
	}
	defer logFile.Close()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := pkg.NewSession(cfg.Name, cfg.Level, cfg.Seed)
	cl := pkg.NewClient(s, t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	go cl.HandleRead(ctx)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	defer signal.Stop(sigc)
	go func() {
		<-sigc

		cl.App.Stop()
	}()

	if err := cl.App.Run(); err != nil {
		log.Printf("failed to run application: %v", err)
		return err
	}

	cancel()
	<-done

	bold := color.New(color.Bold)
	bold.Printf("%s", s.Name)
	if s.Over {
		color.Red(" topped out")
	} else {
		color.Yellow(" quit")
	}
	color.Cyan("level %d, %d lines, seed %d", s.Game.Level, s.Lines, cfg.Seed)

	return nil
}
