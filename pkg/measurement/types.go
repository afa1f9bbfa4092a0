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

package measurement

import (
	"fmt"
	"math"
	"strconv"

	"github.com/onsa/fatsecret-crawler/pkg/unit"
)

// Precision is the number of decimal places kept after every conversion.
const Precision = 4

// Round rounds v half away from zero to Precision decimal places.
func Round(v float64) float64 {
	p := math.Pow10(Precision)
	return math.Round(v*p) / p
}

// Default macro units, used when the source text does not state one.
const (
	UnitKcal = "kcal"
	UnitGram = "g"
)

// MacroKind identifies one of the nutrient fields of a Measurement.
type MacroKind string

// String returns the string representation of the MacroKind.
func (k MacroKind) String() string {
	return string(k)
}

const (
	Calorie      MacroKind = "calorie"
	Fat          MacroKind = "fat"
	Carbohydrate MacroKind = "carbohydrate"
	Sugar        MacroKind = "sugar"
	Protein      MacroKind = "protein"
)

// MacroKinds is the closed set of macro kinds, in output order.
var MacroKinds = []MacroKind{Calorie, Fat, Carbohydrate, Sugar, Protein}

// DefaultUnit returns the unit assumed for a macro of kind k.
func (k MacroKind) DefaultUnit() string {
	if k == Calorie {
		return UnitKcal
	}
	return UnitGram
}

// Macro is a scalar nutrient quantity attached to a Measurement.
type Macro struct {
	Amount float64 `json:"amount" yaml:"amount"`
	Unit   string  `json:"unit" yaml:"unit"`
}

// String renders the macro as "<amount><unit>".
func (m Macro) String() string {
	return strconv.FormatFloat(m.Amount, 'f', -1, 64) + m.Unit
}

// Measurement is one serving size of an ingredient with the nutrients quoted
// for it. A nil macro field means the source did not state that nutrient.
type Measurement struct {
	Amount       float64 `json:"amount" yaml:"amount"`
	Unit         string  `json:"unit" yaml:"unit"`
	Calorie      *Macro  `json:"calorie,omitempty" yaml:"calorie,omitempty"`
	Fat          *Macro  `json:"fat,omitempty" yaml:"fat,omitempty"`
	Carbohydrate *Macro  `json:"carbohydrate,omitempty" yaml:"carbohydrate,omitempty"`
	Sugar        *Macro  `json:"sugar,omitempty" yaml:"sugar,omitempty"`
	Protein      *Macro  `json:"protein,omitempty" yaml:"protein,omitempty"`
}

// field returns the address of the macro slot for kind k.
func (m *Measurement) field(k MacroKind) **Macro {
	switch k {
	case Calorie:
		return &m.Calorie
	case Fat:
		return &m.Fat
	case Carbohydrate:
		return &m.Carbohydrate
	case Sugar:
		return &m.Sugar
	case Protein:
		return &m.Protein
	default:
		panic(fmt.Sprintf("measurement: unknown macro kind %q", k))
	}
}

// Macro returns the macro of kind k, or nil when absent.
func (m *Measurement) Macro(k MacroKind) *Macro {
	return *m.field(k)
}

// SetMacro sets (or clears, with nil) the macro of kind k.
func (m *Measurement) SetMacro(k MacroKind, macro *Macro) {
	*m.field(k) = macro
}

// Family returns the unit family of the measurement.
func (m Measurement) Family() unit.Family {
	return unit.FamilyOf(m.Unit)
}

// String renders the serving size, e.g. "1/2 cup" is rendered "0.5 cup".
func (m Measurement) String() string {
	s := strconv.FormatFloat(m.Amount, 'f', -1, 64)
	if m.Unit == "" {
		return s
	}
	return s + " " + m.Unit
}

// clone returns a deep copy so callers can transform it without aliasing macros.
func (m Measurement) clone() Measurement {
	out := m
	for _, k := range MacroKinds {
		if src := m.Macro(k); src != nil {
			cp := *src
			out.SetMacro(k, &cp)
		}
	}
	return out
}

// Ingredient is one scraped record. Measurements[0] is the primary serving;
// later entries are alternates in source order.
type Ingredient struct {
	Prominent    string        `json:"prominent" yaml:"prominent"`
	Brand        string        `json:"brand,omitempty" yaml:"brand,omitempty"`
	Measurements []Measurement `json:"measurements" yaml:"measurements"`
	// Density in g/ml, absent when no mass/volume pair exists.
	Density *float64 `json:"density,omitempty" yaml:"density,omitempty"`
}

// Primary returns the first measurement, or nil when there is none.
func (i *Ingredient) Primary() *Measurement {
	if len(i.Measurements) == 0 {
		return nil
	}
	return &i.Measurements[0]
}

// Ingredients is an ordered result set.
type Ingredients []Ingredient

// TableRows renders one row per measurement for tabular output.
func (in Ingredients) TableRows() [][]string {
	rows := [][]string{{"INGREDIENT", "BRAND", "SERVING", "KCAL", "FAT", "CARBS", "SUGAR", "PROT", "DENSITY"}}
	for _, ing := range in {
		density := "-"
		if ing.Density != nil {
			density = strconv.FormatFloat(*ing.Density, 'f', -1, 64)
		}
		if len(ing.Measurements) == 0 {
			rows = append(rows, []string{ing.Prominent, ing.Brand, "-", "-", "-", "-", "-", "-", density})
			continue
		}
		for i, m := range ing.Measurements {
			name, brand, d := ing.Prominent, ing.Brand, density
			if i > 0 {
				name, brand, d = "", "", ""
			}
			row := []string{name, brand, m.String()}
			for _, k := range MacroKinds {
				row = append(row, macroCell(m.Macro(k)))
			}
			rows = append(rows, append(row, d))
		}
	}
	return rows
}

func macroCell(m *Macro) string {
	if m == nil {
		return "-"
	}
	return m.String()
}
