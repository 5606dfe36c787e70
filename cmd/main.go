package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/saeidalz13/battleship-console/api"
	"github.com/saeidalz13/battleship-console/db"
	"github.com/saeidalz13/battleship-console/db/sqlc"
	"github.com/saeidalz13/battleship-console/internal"
	"github.com/saeidalz13/battleship-console/internal/console"
	mb "github.com/saeidalz13/battleship-console/models/battleship"
	"github.com/sqlc-dev/pqtype"
)

func main() {
	showStats := flag.Bool("stats", false, "print the game counters of this host and exit")
	flag.Parse()

	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverIpNet := internal.LocalIPNet()

	var dbManager *sqlc.DbManager
	if cfg.DatabaseURL != "" {
		DB := db.MustConnectToDb(cfg.DatabaseURL)
		defer DB.Close()

		m := sqlc.NewDbManager(sqlc.New(DB))
		dbManager = &m
	}

	if *showStats {
		if dbManager == nil {
			log.Fatalln("DATABASE_URL must be set to show stats")
		}
		printStats(ctx, dbManager, pqtype.Inet{IPNet: serverIpNet, Valid: true})
		return
	}

	game, err := mb.NewStandardGame(
		mb.Setup{
			Rnd:                mb.NewMathRandomizer(cfg.Seed),
			Input:              console.NewReader(os.Stdin, os.Stdout),
			OnInvalidInput:     console.InvalidInputPrinter(os.Stdout),
			MaxPlacementResets: cfg.MaxPlacementResets,
		},
		mb.WithRepeatOnHit(cfg.RepeatOnHit),
		mb.WithEventHandler(console.EventPrinter(os.Stdout)),
	)
	if err != nil {
		log.Fatalln(err)
	}

	if dbManager != nil {
		game.Subscribe(dbManager.Analytics.GameEventHandler(serverIpNet))
	}

	if cfg.SpectatePort != 0 {
		server := api.NewServer(api.WithPort(cfg.SpectatePort), api.WithStage(cfg.Stage))
		go server.Hub.Run(ctx)
		go func() {
			if err := server.ListenAndServe(); err != nil {
				log.Println(err)
			}
		}()
		game.Subscribe(server.Hub.GameEventHandler())
	}

	log.Printf("game %s started\tstage: %s\tseed: %d\n", game.Uuid(), cfg.Stage, cfg.Seed)
	console.Greet(os.Stdout)

	status, err := game.Play(ctx)
	if err != nil {
		log.Printf("game %s stopped: %v\n", game.Uuid(), err)
		return
	}
	log.Printf("game %s finished: %s after %d turns\n", game.Uuid(), status, game.TurnsPlayed())
}

func printStats(ctx context.Context, dbManager *sqlc.DbManager, inet pqtype.Inet) {
	ctx, cancel := context.WithTimeout(ctx, sqlc.QuerierCtxTimeout)
	defer cancel()

	row, err := dbManager.Analytics.GetAnalytics(ctx, inet)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("host:          %s\n", inet.IPNet.IP)
	fmt.Printf("games created: %d\n", row.GamesCreated)
	fmt.Printf("user wins:     %d\n", row.UserWins)
	fmt.Printf("computer wins: %d\n", row.ComputerWins)
}
