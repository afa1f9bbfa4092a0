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
	"log/slog"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/onsa/fatsecret-crawler/pkg/measurement"
)

// labels maps the summary dialect's nutrient labels to macro kinds.
// Sugar has no label in the summary; it only appears on detail pages.
var labels = map[string]measurement.MacroKind{
	"Calories": measurement.Calorie,
	"Fat":      measurement.Fat,
	"Carbs":    measurement.Carbohydrate,
	"Prot":     measurement.Protein,
}

var macroLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// macroSegment is one "Label: <amount><unit>" entry of a macro line.
type macroSegment struct {
	Label  []string `@Word+ Colon`
	Amount string   `@Number`
	Unit   string   `@Word?`
}

var segmentParser = participle.MustBuild[macroSegment](
	participle.Lexer(macroLexer),
	participle.Elide("Whitespace"),
)

// LabelKind resolves a summary label such as "Carbs" to its macro kind.
func LabelKind(label string) (measurement.MacroKind, bool) {
	k, ok := labels[strings.TrimSpace(label)]
	return k, ok
}

// Annotate parses a macro line like
//
//	Calories: 24kcal | Fat: 1.20g | Carbs: 2.70g | Prot: 0.80g
//
// and sets each recognised macro on m. Unknown labels and unparsable
// values are skipped. m is modified in place and returned.
func Annotate(m *measurement.Measurement, macroLine string) *measurement.Measurement {
	for _, segment := range strings.Split(macroLine, "|") {
		seg, err := segmentParser.ParseString("", strings.ReplaceAll(segment, ",", ""))
		if err != nil {
			slog.Debug("ignoring malformed macro", "segment", strings.TrimSpace(segment), "error", err)
			continue
		}
		label := strings.Join(seg.Label, " ")
		k, ok := LabelKind(label)
		if !ok {
			slog.Debug("ignoring unknown macro label", "label", label)
			continue
		}

		macro, err := ParseMacro(k, seg.Amount+seg.Unit)
		if err != nil {
			slog.Debug("ignoring unparsable macro", "kind", k, "value", seg.Amount+seg.Unit, "error", err)
			continue
		}
		m.SetMacro(k, macro)
	}
	return m
}
