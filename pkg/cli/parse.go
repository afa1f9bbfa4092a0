/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/onsa/fatsecret-crawler/pkg/crawler"
	"github.com/onsa/fatsecret-crawler/pkg/measurement"
	"github.com/onsa/fatsecret-crawler/pkg/serializer"
)

func parseCmd() *cli.Command {
	return &cli.Command{
		Name:                  "parse",
		EnableShellCompletion: true,
		Usage:                 "Parse nutrition summary text without crawling",
		Description: `Parses a result summary that was already fetched, for example:

  per 100ml - Calories: 52kcal | Fat: 1.80g | Carbs: 4.70g | Prot: 3.60g
  1 cup - 122kcal
  100 g - 50kcal

The summary is read from --file, or from stdin when --file is "-" or not set.
Use --rows to parse a YAML or JSON list of scraped rows instead:

  - prominent: Semi Skimmed Milk
    brand: Tesco
    summary: |
      per 100ml - Calories: 52kcal
      100 g - 50kcal

Rows whose summary cannot be parsed are skipped.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   `Summary text file ("-" for stdin)`,
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "Ingredient name for a single summary",
			},
			&cli.StringFlag{
				Name:  "brand",
				Usage: "Ingredient brand for a single summary",
			},
			&cli.StringFlag{
				Name:  "rows",
				Usage: "YAML or JSON file of scraped rows to parse in batch",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			if rowsPath := cmd.String("rows"); rowsPath != "" {
				ings, err := parseRowsFile(rowsPath)
				if err != nil {
					return err
				}
				return writeOutput(ctx, cmd, outFormat, ings)
			}

			summary, err := readSummary(cmd.String("file"), cmd.Root().Reader)
			if err != nil {
				return err
			}

			ing, err := crawler.BuildIngredient(cmd.String("name"), cmd.String("brand"), summary)
			if err != nil {
				return fmt.Errorf("failed to parse summary: %w", err)
			}

			if outFormat == serializer.FormatTable {
				return writeOutput(ctx, cmd, outFormat, measurement.Ingredients{ing})
			}
			return writeOutput(ctx, cmd, outFormat, ing)
		},
	}
}

// readSummary reads summary text from path, or from stdin when path is
// empty or "-".
func readSummary(path string, stdin io.Reader) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read summary: %w", err)
	}

	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("summary is empty")
	}
	return s, nil
}

// parseRowsFile builds an ingredient for every parsable row in path.
func parseRowsFile(path string) (measurement.Ingredients, error) {
	rows, err := serializer.FromFile[[]crawler.Row](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load rows from %q: %w", path, err)
	}

	out := make(measurement.Ingredients, 0, len(*rows))
	for _, row := range *rows {
		ing, err := crawler.BuildIngredient(row.Prominent, row.Brand, row.Summary)
		if err != nil {
			slog.Warn("skipping row", "prominent", row.Prominent, "error", err)
			continue
		}
		out = append(out, ing)
	}
	return out, nil
}
