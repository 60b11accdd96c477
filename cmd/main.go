package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/saeidalz13/battleship-board/api"
	"github.com/saeidalz13/battleship-board/config"
	"github.com/saeidalz13/battleship-board/db"
	"github.com/saeidalz13/battleship-board/db/sqlc"
	mb "github.com/saeidalz13/battleship-board/models/board"
	mc "github.com/saeidalz13/battleship-board/models/connection"
)

const shutdownTimeout = time.Second * 10

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	// analytics are optional; the board works without a database
	var querier sqlc.Querier
	if cfg.DatabaseUrl != "" {
		psql := db.MustConnectToDb(cfg.DatabaseUrl)
		defer psql.Close()
		querier = sqlc.New(psql)
	} else {
		log.Println("DATABASE_URL not set, analytics disabled")
	}

	bsm := mc.NewBoardSessionManager()
	scm := mb.NewBoardSceneManager(cfg.Layout)
	rp := api.NewRequestProcessor(bsm, scm, querier)

	mux := http.NewServeMux()
	mux.Handle("GET /battleship-board", rp)

	server := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Listening to port %d (stage: %s)\n", cfg.Port, cfg.Stage)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return bsm.CleanupPeriodically(ctx)
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalln(err)
	}
}
