package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/saeidalz13/battleship-board/config"
	"github.com/saeidalz13/battleship-board/internal/boardview"
	mb "github.com/saeidalz13/battleship-board/models/board"
	"github.com/saeidalz13/battleship-board/render/terminal"
)

var (
	layoutFlag = flag.String("layout", os.Getenv(config.EnvBoardLayout), "path to a YAML board layout")
	logFlag    = flag.String("log", "", "file to write logs to, discarded when empty")
)

func main() {
	flag.Parse()

	// the screen owns stdout, logs must go elsewhere
	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	layout := mb.DefaultLayout()
	if *layoutFlag != "" {
		var err error
		layout, err = config.LoadLayout(*layoutFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load layout: %v\n", err)
			os.Exit(1)
		}
	}

	scene, err := mb.NewScene(layout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create scene: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = boardview.New(screen, scene, terminal.DefaultViewport()).Run(ctx)
	screen.Fini()
	if err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
