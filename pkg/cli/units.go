/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/onsa/fatsecret-crawler/pkg/unit"
)

func unitsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "units",
		EnableShellCompletion: true,
		Usage:                 "List recognised units and conversion factors",
		Description: `Lists every unit the parser recognises with its family (mass or volume),
the US to imperial factor applied to US volumes, and the factor to the
family base unit (g or ml).`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, outFormat, unit.Table())
		},
	}
}
