package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/juwon-cha/TycoonPlayableAD/config"
	"github.com/juwon-cha/TycoonPlayableAD/core"
	"github.com/juwon-cha/TycoonPlayableAD/engine"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML tuning file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/office-cat.log")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective tuning as YAML and exit")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.LoadFile(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *dumpFlag {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic recovery: the terminal is reset even if the game loop crashes
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	g, err := newGame(screen, cfg.ToSettings(), engine.NewMonotonicTimeProvider())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	log.Printf("starting: gold=%d queue=%d offices=%d tick=%v",
		cfg.Economy.StartingGold, cfg.Queue.Size, cfg.Offices.Max, cfg.ToSettings().TickInterval)

	core.Go(g.input.Run)
	g.scheduler.Run()

	log.Printf("stopped after %d ticks", g.scheduler.TickCount())
}
