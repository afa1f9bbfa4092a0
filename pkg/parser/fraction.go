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

	"github.com/onsa/fatsecret-crawler/pkg/errors"
)

var fractionRe = regexp.MustCompile(`(\d+)/(\d+)`)

// ParseFraction returns the value of the first "a/b" fraction in text.
// Text without a fraction fails with ErrCodeNoFractionFound; callers are
// expected to check for a '/' first. A zero denominator fails with ErrCodeParse.
func ParseFraction(text string) (float64, error) {
	v, _, err := findFraction(text)
	return v, err
}

// findFraction is ParseFraction that also reports the byte span of the match.
func findFraction(text string) (float64, []int, error) {
	loc := fractionRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return 0, nil, errors.NewWithContext(errors.ErrCodeNoFractionFound,
			fmt.Sprintf("no fraction in %q", text),
			map[string]any{"text": text})
	}

	num, err := strconv.ParseFloat(text[loc[2]:loc[3]], 64)
	if err != nil {
		return 0, nil, errors.Wrap(errors.ErrCodeParse, "invalid numerator", err)
	}
	den, err := strconv.ParseFloat(text[loc[4]:loc[5]], 64)
	if err != nil {
		return 0, nil, errors.Wrap(errors.ErrCodeParse, "invalid denominator", err)
	}
	if den == 0 {
		return 0, nil, errors.NewWithContext(errors.ErrCodeParse,
			fmt.Sprintf("zero denominator in %q", text),
			map[string]any{"text": text})
	}

	return num / den, loc[:2], nil
}
