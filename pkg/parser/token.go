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
	"regexp"
	"strconv"
	"strings"

	"github.com/onsa/fatsecret-crawler/pkg/errors"
	"github.com/onsa/fatsecret-crawler/pkg/measurement"
	"github.com/onsa/fatsecret-crawler/pkg/unit"
)

// numericRe matches a plain decimal number, optionally padded with spaces.
var numericRe = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)

// amountRe matches the longest numeric prefix of a token.
var amountRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

func isNumeric(s string) bool {
	return numericRe.MatchString(s)
}

// Tokenize splits a single "<amount><unit>" token such as "13kcal",
// "0.8 g" or "1/2 cup" into its amount and unit.
//
// Without a '/', the amount is the longest numeric prefix of the trimmed
// text and the unit is everything after it, trimmed. With a '/', the amount
// is the fraction (plus a leading whole number, "1 1/2") and the unit is the
// text following the denominator; an empty unit is valid there.
func Tokenize(text string) (float64, string, error) {
	s := strings.TrimSpace(text)
	if strings.Contains(s, "/") {
		return tokenizeFraction(s)
	}

	prefix := amountRe.FindString(s)
	if prefix == "" {
		return 0, "", unparsable(text, nil)
	}

	amount, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0, "", unparsable(text, err)
	}
	return amount, strings.TrimSpace(s[len(prefix):]), nil
}

func tokenizeFraction(s string) (float64, string, error) {
	amount, span, err := findFraction(s)
	if err != nil {
		return 0, "", unparsable(s, err)
	}

	// A leading whole number is added, so "1 1/2" reads as 1.5 rather than 0.5.
	if whole := strings.TrimSpace(s[:span[0]]); whole != "" && isNumeric(whole) {
		w, err := strconv.ParseFloat(whole, 64)
		if err == nil {
			amount += w
		}
	}

	rest := strings.TrimSpace(s[span[1]:])
	if _, ok := unit.Parse(rest); ok {
		return amount, rest, nil
	}
	if fields := strings.Fields(rest); len(fields) > 0 {
		return amount, fields[0], nil
	}
	return amount, "", nil
}

func unparsable(text string, cause error) error {
	msg := fmt.Sprintf("no numeric amount in %q", text)
	if cause != nil {
		return errors.WrapWithContext(errors.ErrCodeUnparsableAmount, msg, cause,
			map[string]any{"text": text})
	}
	return errors.NewWithContext(errors.ErrCodeUnparsableAmount, msg,
		map[string]any{"text": text})
}

// ParseMeasurement tokenizes a serving size. The amount must be positive.
func ParseMeasurement(text string) (measurement.Measurement, error) {
	amount, u, err := Tokenize(text)
	if err != nil {
		return measurement.Measurement{}, err
	}
	if amount <= 0 {
		return measurement.Measurement{}, errors.NewWithContext(errors.ErrCodeUnparsableAmount,
			fmt.Sprintf("serving amount must be positive in %q", text),
			map[string]any{"text": text, "amount": amount})
	}
	return measurement.Measurement{Amount: amount, Unit: u}, nil
}

// ParseMacro tokenizes a nutrient value of kind k. A missing unit takes the
// kind's default ("kcal" for calories, "g" otherwise).
func ParseMacro(k measurement.MacroKind, text string) (*measurement.Macro, error) {
	amount, u, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	if amount < 0 {
		return nil, errors.NewWithContext(errors.ErrCodeUnparsableAmount,
			fmt.Sprintf("negative %s amount in %q", k, text),
			map[string]any{"text": text, "amount": amount})
	}
	if u == "" {
		u = k.DefaultUnit()
	}
	return &measurement.Macro{Amount: amount, Unit: u}, nil
}
