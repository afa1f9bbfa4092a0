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

// Package unit holds the static taxonomy of recognized mass and volume units
// and their conversion coefficients.
//
// Two families are recognized:
//
//	volume: cup, tbsp, tsp, l, ml, fl oz, pint
//	mass:   g, kg, oz, lb
//
// Anything else ("serving", "helping", "slice") is vague and carries no
// convertible quantity.
//
// Each volume unit has a US to UK coefficient, applied to nutrient amounts
// quoted for a US-convention serving. Every unit has a coefficient to its base
// unit (ml or g) for UK-standard amounts:
//
//	f, _ := unit.ToBaseFactor("fl oz") // 28.4130625
//	f, _ = unit.USToUKFactor("cup")    // 0.844682
//
// Lookups tolerate one trailing character ("cups", "lbs") and are otherwise
// exact. The table is never mutated at runtime.
package unit
