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

// Package parser turns FatSecret result summaries into measurements.
//
// A summary is a block of text with a primary line followed by alternate
// serving sizes:
//
//	Per 100g - Calories: 52kcal | Fat: 0.17g | Carbs: 13.81g | Prot: 0.26g
//	Other sizes:
//	1 cup, quartered or chopped - 65kcal
//	1 large - 116kcal
//
// The primary line yields one or two measurements carrying every macro it
// lists. Each alternate line yields one measurement carrying calories only.
//
// Lower-level helpers are exported for reuse:
//
//	amount, unit, err := parser.Tokenize("1 1/2 cup") // 1.5, "cup"
//	m, err := parser.ParseMeasurement("100g")
//	parser.Annotate(&m, "Calories: 52kcal | Fat: 0.17g")
//
// Failures are *errors.StructuredError values with codes
// UNPARSABLE_AMOUNT, NO_FRACTION_FOUND, PARSE_ERROR or
// MALFORMED_SUMMARY_LINE.
package parser
