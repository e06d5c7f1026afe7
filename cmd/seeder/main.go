// Command seeder fills the database with demo users, friendships, polls,
// votes and comments. It is meant for local development and is safe to
// rerun: existing accounts and duplicate votes are skipped.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        generate data without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/polls-backend/internal/adapter/postgres"
	"github.com/heartmarshall/polls-backend/internal/adapter/postgres/comment"
	"github.com/heartmarshall/polls-backend/internal/adapter/postgres/poll"
	"github.com/heartmarshall/polls-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/polls-backend/internal/app"
	"github.com/heartmarshall/polls-backend/internal/app/seeder"
	"github.com/heartmarshall/polls-backend/internal/auth"
	"github.com/heartmarshall/polls-backend/internal/config"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "generate data without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repos := seeder.Repos{
		Users:    user.New(pool),
		Polls:    poll.New(pool),
		Comments: comment.New(pool),
	}

	pipeline := seeder.NewPipeline(logger, repos, auth.NewHasher(bcrypt.DefaultCost), *seederCfg)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
