// Copyright 2025 Amharies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	bionary "github.com/amharies/BIONARY--CHATBOT"
	"github.com/amharies/BIONARY--CHATBOT/ingest"
	"github.com/amharies/BIONARY--CHATBOT/reindex"
)

func main() {
	app := &cli.App{
		Name:  "bionary",
		Usage: "University events question-answering agent",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "Override the store backend (sqlite, badger)",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Override the store path",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer one question against the event catalog",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.Float64Flag{
						Name:  "min-similarity",
						Usage: "Override the fuzzy-match similarity threshold",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Override the maximum number of retrieved records",
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Load event records from a CSV file into the catalog",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "Path to the event catalog CSV file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to write in each batch",
					},
				},
			},
			{
				Name:   "add",
				Usage:  "Add a single event record to the catalog",
				Action: addCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "Event name", Required: true},
					&cli.StringFlag{Name: "domain", Usage: "Event domain", Required: true},
					&cli.StringFlag{Name: "date", Usage: "Event date (YYYY-MM-DD)", Required: true},
					&cli.StringFlag{Name: "description", Usage: "Event description", Required: true},
					&cli.StringFlag{Name: "time", Usage: "Time of day"},
					&cli.StringFlag{Name: "venue", Usage: "Venue"},
					&cli.StringFlag{Name: "mode", Usage: "Mode of event (Online, Offline)"},
					&cli.StringFlag{Name: "fee", Usage: "Registration fee (0 means free)"},
					&cli.StringFlag{Name: "speakers", Usage: "Speakers"},
					&cli.StringFlag{Name: "faculty", Usage: "Faculty coordinators"},
					&cli.StringFlag{Name: "students", Usage: "Student coordinators"},
					&cli.StringFlag{Name: "perks", Usage: "Perks"},
					&cli.StringFlag{Name: "collaboration", Usage: "Collaboration"},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Recompute derived search fields for every stored record",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "logs",
				Usage:  "Show the most recent answered questions",
				Action: logsCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of entries to show",
						Value: 20,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig resolves the effective configuration from the config file
// flag plus any store overrides.
func loadConfig(c *cli.Context) (*bionary.Config, error) {
	cfg := bionary.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := bionary.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if backend := c.String("store"); backend != "" {
		cfg.Store.Backend = bionary.StoreBackend(backend)
	}
	if path := c.String("db"); path != "" {
		cfg.Store.Path = path
	}
	return cfg, nil
}

func openAgent(c *cli.Context) (*bionary.Agent, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return bionary.NewAgent(cfg)
}

func askCommand(c *cli.Context) error {
	ctx := context.Background()

	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if threshold := c.Float64("min-similarity"); threshold >= 0 {
		cfg.Search.MinSimilarity = threshold
	}
	if max := c.Int("max-results"); max > 0 {
		cfg.Search.MaxResults = max
	}

	agent, err := bionary.NewAgent(cfg)
	if err != nil {
		return err
	}
	defer agent.Close()

	answer, err := agent.Ask(ctx, question)
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	file, err := os.Open(c.String("csv"))
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	inputs, err := ingest.ReadCSV(file)
	if err != nil {
		return fmt.Errorf("failed to read CSV file: %w", err)
	}

	agent, err := openAgent(c)
	if err != nil {
		return err
	}
	defer agent.Close()

	var opts []ingest.Option
	if size := c.Int("batch-size"); size > 0 {
		opts = append(opts, ingest.WithBatchSize(size))
	}
	pipeline, err := agent.NewIngestPipeline(opts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	report, err := pipeline.Ingest(ctx, inputs)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Added %d records, skipped %d\n", report.Added, report.Skipped)
	return nil
}

func addCommand(c *cli.Context) error {
	ctx := context.Background()

	agent, err := openAgent(c)
	if err != nil {
		return err
	}
	defer agent.Close()

	pipeline, err := agent.NewIngestPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	input := &ingest.EventInput{
		Name:                c.String("name"),
		Domain:              c.String("domain"),
		Date:                c.String("date"),
		TimeOfDay:           c.String("time"),
		Venue:               c.String("venue"),
		Mode:                c.String("mode"),
		RegistrationFee:     c.String("fee"),
		Speakers:            c.String("speakers"),
		FacultyCoordinators: c.String("faculty"),
		StudentCoordinators: c.String("students"),
		Perks:               c.String("perks"),
		Collaboration:       c.String("collaboration"),
		Description:         c.String("description"),
	}

	report, err := pipeline.Ingest(ctx, []*ingest.EventInput{input})
	if err != nil {
		return err
	}
	if report.Added == 0 {
		return fmt.Errorf("record was not added (invalid or duplicate)")
	}

	fmt.Fprintf(os.Stderr, "Added %q\n", c.String("name"))
	return nil
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	agent, err := openAgent(c)
	if err != nil {
		return err
	}
	defer agent.Close()

	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reindexer, err := agent.NewReindexer(config, os.Stderr)
	if err != nil {
		return err
	}

	if _, err := reindexer.Run(ctx); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}
	return nil
}

func logsCommand(c *cli.Context) error {
	ctx := context.Background()

	agent, err := openAgent(c)
	if err != nil {
		return err
	}
	defer agent.Close()

	entries, err := agent.LogRepository().RecentLogs(ctx, c.Int("limit"))
	if err != nil {
		return err
	}

	for _, entry := range entries {
		fmt.Printf("[%s] Q: %s\n", entry.AskedAt.Format(time.RFC3339), entry.Question)
		fmt.Printf("  A: %s\n", entry.Answer)
		fmt.Printf("  query: %s\n", entry.QueryText)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
