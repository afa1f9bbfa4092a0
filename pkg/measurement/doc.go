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

// Package measurement provides the nutrition data model produced by the
// crawler and the US to UK unit conversion applied to it.
//
// # Core Types
//
//   - Macro: a scalar nutrient quantity ("24kcal", "1.2g")
//   - Measurement: a serving size with optional Calorie, Fat, Carbohydrate,
//     Sugar and Protein macros; nil means the nutrient was not quoted
//   - Ingredient: a scraped record with its ordered measurements and an
//     optional density
//   - MacroKind: the closed set of nutrient fields, used instead of
//     addressing fields by name
//
// # Creating Measurements
//
//	m := measurement.NewBuilder(10, "fl oz").
//	    Calorie(132).
//	    Fat(0.5).
//	    Build()
//
// # Conversion
//
// Clear drops servings whose unit is vague ("serving", "helping") and
// imperialises volume servings: every attached macro amount is multiplied by
// the unit's US to UK factor and rounded to four decimals.
//
//	ing.Clear()
//
// # Serialization
//
// All types marshal to JSON and YAML; absent macros and densities are omitted.
package measurement
