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

	"github.com/onsa/fatsecret-crawler/pkg/serializer"
)

// parseOutputFormat validates the --format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v",
			f, serializer.SupportedFormats())
	}
	return f, nil
}

// writeOutput serializes v to --output (stdout by default) in format f.
func writeOutput(ctx context.Context, cmd *cli.Command, f serializer.Format, v any) error {
	ser := serializer.NewFileWriterOrStdout(f, cmd.String("output"))
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, v)
}
