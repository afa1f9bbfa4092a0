// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/onsa/fatsecret-crawler/pkg/errors"
	"github.com/onsa/fatsecret-crawler/pkg/measurement"
)

// separator divides a serving from its macros on every summary line.
const separator = " - "

// markers are non-data lines the listing page mixes into alternate sizes.
var markers = []string{"Other sizes", "more...", "Nutrition Facts - Similar"}

// parenRe matches a parenthesised serving, e.g. the "(240ml)" in "1 cup (240ml)".
var parenRe = regexp.MustCompile(`\((\d+\.?\d*[^)]*)\)`)

// ParseSummary parses a full result summary: one primary line followed by
// any number of alternate lines. Measurements are returned in source order.
func ParseSummary(text string) ([]measurement.Measurement, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedSummaryLine, "empty summary")
	}

	ms, err := ParsePrimaryLine(lines[0])
	if err != nil {
		return nil, err
	}
	alts, err := ParseAlternateLines(lines[1:])
	if err != nil {
		return nil, err
	}
	return append(ms, alts...), nil
}

// ParsePrimaryLine parses "Per <serving> [(<serving>)] - <macro line>".
// The parenthesised serving, when present, comes first in the result.
// Both servings carry the full macro line.
func ParsePrimaryLine(line string) ([]measurement.Measurement, error) {
	head, macroLine, ok := cutSeparator(line)
	if !ok {
		return nil, malformed(line, "primary line has no macro separator")
	}

	var out []measurement.Measurement
	if loc := parenRe.FindStringSubmatchIndex(head); loc != nil {
		if m, ok := parseServing(head[loc[2]:loc[3]]); ok {
			out = append(out, *Annotate(&m, macroLine))
		}
		head = head[:loc[0]]
	}

	head = strings.TrimSpace(head)
	if rest, ok := cutPer(head); ok {
		head = rest
	}
	if m, ok := parseServing(head); ok {
		out = append(out, *Annotate(&m, macroLine))
	}

	return out, nil
}

// ParseAlternateLines parses the "<serving> - <calories>" lines following
// the primary line. Marker and blank lines are skipped, as are lines whose
// serving or calorie cannot be read.
func ParseAlternateLines(lines []string) ([]measurement.Measurement, error) {
	var out []measurement.Measurement
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || isMarker(line) {
			continue
		}

		m, err := ParseAlternateLine(line)
		if err != nil {
			if errors.HasCode(err, errors.ErrCodeMalformedSummaryLine) {
				return nil, err
			}
			slog.Debug("skipping alternate line", "line", line, "error", err)
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// ParseAlternateLine parses a single "<serving> - <calories>" line, for
// example "1 cup - 103kcal". Thousands separators are ignored.
func ParseAlternateLine(line string) (measurement.Measurement, error) {
	line = strings.ReplaceAll(line, ",", "")
	serving, calories, ok := cutSeparator(line)
	if !ok {
		return measurement.Measurement{}, malformed(line, "alternate line has no calorie separator")
	}

	m, err := ParseMeasurement(serving)
	if err != nil {
		return measurement.Measurement{}, err
	}
	kcal, err := ParseMacro(measurement.Calorie, calories)
	if err != nil {
		return measurement.Measurement{}, err
	}
	m.Calorie = kcal
	return m, nil
}

// cutSeparator splits line at the first separator and trims both halves.
// The right half stops at a second separator, if any.
func cutSeparator(line string) (string, string, bool) {
	left, right, ok := strings.Cut(strings.TrimSpace(line), separator)
	if !ok {
		return "", "", false
	}
	if i := strings.Index(right, separator); i >= 0 {
		right = right[:i]
	}
	return strings.TrimSpace(left), strings.TrimSpace(right), true
}

func cutPer(s string) (string, bool) {
	fields := strings.Fields(s)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "per") {
		return s, false
	}
	return strings.TrimSpace(s[strings.Index(s, fields[0])+len(fields[0]):]), true
}

func parseServing(text string) (measurement.Measurement, bool) {
	m, err := ParseMeasurement(text)
	if err != nil {
		slog.Debug("dropping unparsable serving", "text", text, "error", err)
		return measurement.Measurement{}, false
	}
	return m, true
}

func isMarker(line string) bool {
	for _, marker := range markers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func malformed(line, msg string) error {
	return errors.NewWithContext(errors.ErrCodeMalformedSummaryLine,
		fmt.Sprintf("%s: %q", msg, line),
		map[string]any{"line": line})
}
