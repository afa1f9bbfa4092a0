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

package crawler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/onsa/fatsecret-crawler/pkg/defaults"
	"github.com/onsa/fatsecret-crawler/pkg/errors"
)

// PageCount derives the number of result pages from a result summary such
// as "1 - 10 of 1,234", assuming defaults.ResultsPerPage results per page.
func PageCount(summary string) (int, error) {
	i := strings.LastIndex(summary, "of")
	if i < 0 {
		return 0, errors.NewWithContext(errors.ErrCodeParse,
			fmt.Sprintf("no result total in %q", summary),
			map[string]any{"summary": summary})
	}

	fields := strings.Fields(strings.ReplaceAll(summary[i+len("of"):], ",", ""))
	if len(fields) == 0 {
		return 0, errors.NewWithContext(errors.ErrCodeParse,
			fmt.Sprintf("no result total in %q", summary),
			map[string]any{"summary": summary})
	}

	total, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, errors.WrapWithContext(errors.ErrCodeParse,
			fmt.Sprintf("invalid result total in %q", summary), err,
			map[string]any{"summary": summary})
	}
	if total <= 0 {
		return 0, nil
	}

	return int(math.Ceil(float64(total) / defaults.ResultsPerPage)), nil
}
