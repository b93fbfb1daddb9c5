package main

import (
	"context"
	"flag"
	"log"
	"os"

	"marketflow/internal/config"
	"marketflow/internal/db"
	"marketflow/internal/migrate"
)

func main() {
	var down bool
	flag.BoolVar(&down, "down", false, "roll all migrations back down")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if down {
		if err := migrate.Reset(ctx, pool); err != nil {
			logger.Fatalf("reset migrations: %v", err)
		}
		logger.Println("migrations rolled back")
		return
	}

	if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply migrations: %v", err)
	}
	logger.Println("migrations applied")
}
