/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/onsa/fatsecret-crawler/pkg/crawler"
	"github.com/onsa/fatsecret-crawler/pkg/defaults"
	"github.com/onsa/fatsecret-crawler/pkg/measurement"
)

type searchCmdOptions struct {
	term        string
	hits        int
	baseURL     string
	userAgent   string
	rate        float64
	burst       int
	concurrency int
}

func parseSearchCmdOptions(cmd *cli.Command) (*searchCmdOptions, error) {
	opts := &searchCmdOptions{
		term:        cmd.String("term"),
		hits:        cmd.Int("hits"),
		baseURL:     cmd.String("base-url"),
		userAgent:   cmd.String("user-agent"),
		rate:        cmd.Float("rate"),
		burst:       cmd.Int("burst"),
		concurrency: cmd.Int("concurrency"),
	}

	if opts.term == "" {
		opts.term = cmd.Args().First()
	}
	if opts.term == "" {
		return nil, fmt.Errorf("--term is required")
	}
	if opts.hits < 1 || opts.hits > defaults.MaxHits {
		return nil, fmt.Errorf("--hits must be between 1 and %d, got %d", defaults.MaxHits, opts.hits)
	}
	if opts.concurrency < 1 {
		return nil, fmt.Errorf("--concurrency must be positive, got %d", opts.concurrency)
	}

	return opts, nil
}

func (o *searchCmdOptions) crawler() *crawler.Crawler {
	f := crawler.NewHTTPFetcher(
		crawler.WithBaseURL(o.baseURL),
		crawler.WithUserAgent(o.userAgent),
		crawler.WithRateLimit(rate.Limit(o.rate), o.burst),
	)
	return crawler.New(f, crawler.WithConcurrency(o.concurrency))
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:                  "search",
		EnableShellCompletion: true,
		Usage:                 "Search FatSecret and parse the matching ingredients",
		ArgsUsage:             "[term]",
		Description: `Crawls the search results for a term and parses each result into an
ingredient with its measurements. Vague servings are dropped, US volumes are
converted to imperial, and density is derived where a mass and a volume
serving are both known. Sugar is read from the detail page when linked.

Examples:

  fatsecret search --term milk --hits 5
  fatsecret search flour -t table
  fatsecret search --term oats --rate 1 --concurrency 2 -o oats.json -t json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "term",
				Aliases: []string{"q"},
				Usage:   "Search term (may also be given as the first argument)",
			},
			&cli.IntFlag{
				Name:  "hits",
				Value: 10,
				Usage: fmt.Sprintf("Maximum number of ingredients to return (1-%d)", defaults.MaxHits),
			},
			&cli.StringFlag{
				Name:    "base-url",
				Value:   crawler.DefaultBaseURL,
				Usage:   "Site root to crawl",
				Sources: cli.EnvVars("FATSECRET_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "user-agent",
				Value:   crawler.DefaultUserAgent,
				Usage:   "User-Agent sent with page requests",
				Sources: cli.EnvVars("FATSECRET_USER_AGENT"),
			},
			&cli.FloatFlag{
				Name:    "rate",
				Value:   defaults.CrawlRate,
				Usage:   "Page requests per second (0 disables limiting)",
				Sources: cli.EnvVars("FATSECRET_CRAWL_RATE"),
			},
			&cli.IntFlag{
				Name:    "burst",
				Value:   defaults.CrawlBurst,
				Usage:   "Request burst allowed by the rate limiter",
				Sources: cli.EnvVars("FATSECRET_CRAWL_BURST"),
			},
			&cli.IntFlag{
				Name:    "concurrency",
				Value:   defaults.CrawlConcurrency,
				Usage:   "Result rows processed in parallel",
				Sources: cli.EnvVars("FATSECRET_CRAWL_CONCURRENCY"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLISearchTimeout,
				Usage: "Overall search timeout",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			opts, err := parseSearchCmdOptions(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			slog.Info("searching",
				"term", opts.term,
				"hits", opts.hits,
				"baseURL", opts.baseURL)

			ings, err := opts.crawler().Search(ctx, opts.term, opts.hits)
			if err != nil {
				return fmt.Errorf("search for %q failed: %w", opts.term, err)
			}

			return writeOutput(ctx, cmd, outFormat, measurement.Ingredients(ings))
		},
	}
}
