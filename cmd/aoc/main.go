package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/zargony/advent-of-code-2021/internal/config"
	"github.com/zargony/advent-of-code-2021/internal/fetch"
	"github.com/zargony/advent-of-code-2021/internal/puzzle"
	"github.com/zargony/advent-of-code-2021/internal/runner"
	_ "github.com/zargony/advent-of-code-2021/internal/solutions"
)

func main() {
	startTime := time.Now()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	day := flag.Int("day", 0, "Puzzle day to solve (1-25), 0 solves all days")
	workers := flag.Int("workers", 0, "Concurrent solver workers, 0 uses the AOC_WORKERS setting")
	download := flag.Bool("fetch", false, "Download missing puzzle inputs before solving")
	check := flag.Bool("check", false, "Compare answers against configs/answers.yaml")
	list := flag.Bool("list", false, "List available puzzle days and exit")

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	ctx, cancel := setupGracefulShutdown()
	defer cancel()

	cfg := config.Load()

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = log.Logger.With().Str("run_id", uuid.New().String()).Logger()

	if *list {
		listDaysAndExit()
	}

	solvers := selectSolvers(*day)
	if *workers > 0 {
		cfg.Workers = *workers
	}

	if *download {
		fetchInputs(ctx, cfg, solvers)
	}

	// Solve with worker pool
	pool := runner.NewPool(cfg.Workers, &log.Logger)
	outcomes := pool.Run(ctx, solvers)

	// Print results
	solvedCount := 0
	errorCount := 0

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			log.Error().Err(outcome.Err).Int("day", outcome.Day).Msg("Puzzle not solved")
			errorCount++
			continue
		}

		printResult(outcome.Result)
		solvedCount++
	}

	// Compare answers against expectations
	mismatchCount := 0
	if *check {
		mismatchCount = checkAnswers(outcomes)
	}

	log.Info().
		Int("solved", solvedCount).
		Int("errors", errorCount).
		Int("mismatches", mismatchCount).
		Dur("duration", time.Since(startTime)).
		Msg("Processing complete")

	if errorCount > 0 || mismatchCount > 0 {
		os.Exit(1)
	}
}

func setupGracefulShutdown() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Warn().Msg("Received interrupt signal, finishing current work...")
		cancel()
	}()

	return ctx, cancel
}

func listDaysAndExit() {
	for _, solver := range puzzle.Solvers() {
		fmt.Printf("Day %02d: %s\n", solver.Day(), solver.Title())
	}

	os.Exit(0)
}

func selectSolvers(day int) []puzzle.Solver {
	if day == 0 {
		return puzzle.Solvers()
	}

	solver, err := puzzle.Get(day)
	if err != nil {
		log.Fatal().Err(err).Int("day", day).Msg("No solver for requested day")
	}

	return []puzzle.Solver{solver}
}

func fetchInputs(ctx context.Context, cfg *config.Config, solvers []puzzle.Solver) {
	client, err := fetch.NewClient(cfg.BaseURL, cfg.Session, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create download client")
	}

	for _, solver := range solvers {
		if err := client.Ensure(ctx, cfg.InputDir, solver.Day()); err != nil {
			log.Fatal().Err(err).Int("day", solver.Day()).Msg("Failed to download puzzle input")
		}
	}
}

func printResult(result *puzzle.Result) {
	fmt.Printf("Day %02d: %s\n", result.Day, result.Title)

	for _, answer := range result.Answers {
		if strings.Contains(answer.Value, "\n") {
			fmt.Printf("  %s:\n%s\n", answer.Label, answer.Value)
		} else {
			fmt.Printf("  %s: %s\n", answer.Label, answer.Value)
		}
	}
}

func checkAnswers(outcomes []runner.Outcome) int {
	answers, err := config.LoadAnswers()
	if err != nil {
		log.Warn().Err(err).Msg("Expected answers not available, skipping check")
		return 0
	}

	failures := runner.Check(outcomes, answers, &log.Logger)

	return len(failures)
}
