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

package unit

import (
	"fmt"
	"strings"

	"github.com/onsa/fatsecret-crawler/pkg/errors"
)

// Family is the measurement system a unit belongs to.
type Family string

// String returns the string representation of the Family.
func (f Family) String() string {
	return string(f)
}

const (
	// FamilyNone marks a vague unit such as "serving" or "helping".
	FamilyNone   Family = ""
	FamilyVolume Family = "volume"
	FamilyMass   Family = "mass"
)

// Unit is a recognized mass or volume unit token as it appears in summary text.
type Unit string

// String returns the string representation of the Unit.
func (u Unit) String() string {
	return string(u)
}

const (
	Cup        Unit = "cup"
	Tablespoon Unit = "tbsp"
	Teaspoon   Unit = "tsp"
	Litre      Unit = "l"
	Millilitre Unit = "ml"
	FluidOunce Unit = "fl oz"
	Pint       Unit = "pint"

	Gram     Unit = "g"
	Kilogram Unit = "kg"
	Ounce    Unit = "oz"
	Pound    Unit = "lb"
)

// Volumes is the list of recognized volume units.
var Volumes = []Unit{Cup, Tablespoon, Teaspoon, Litre, Millilitre, FluidOunce, Pint}

// Masses is the list of recognized mass units.
var Masses = []Unit{Gram, Kilogram, Ounce, Pound}

type entry struct {
	family Family
	// usToUK converts a US-convention volume to its UK equivalent; zero for masses.
	usToUK float64
	// toBase converts a UK-standard amount to ml (volume) or g (mass).
	toBase float64
}

var table = map[Unit]entry{
	Cup:        {family: FamilyVolume, usToUK: 0.844682, toBase: 284},
	Tablespoon: {family: FamilyVolume, usToUK: 0.832674, toBase: 17.75},
	Teaspoon:   {family: FamilyVolume, usToUK: 0.832674, toBase: 5.916666667},
	Litre:      {family: FamilyVolume, usToUK: 1, toBase: 1000},
	Millilitre: {family: FamilyVolume, usToUK: 1, toBase: 1},
	FluidOunce: {family: FamilyVolume, usToUK: 1.04084, toBase: 28.4130625},
	Pint:       {family: FamilyVolume, usToUK: 0.832674, toBase: 568.26125},

	Gram:     {family: FamilyMass, toBase: 1},
	Kilogram: {family: FamilyMass, toBase: 1000},
	Ounce:    {family: FamilyMass, toBase: 28.349523125},
	Pound:    {family: FamilyMass, toBase: 453.59237},
}

// Parse resolves a unit string to a recognized Unit. An exact match wins;
// otherwise a trailing "s" is stripped to accept plurals such as "cups" or
// "lbs". The stem must be at least two characters so "ls" is not a litre.
func Parse(s string) (Unit, bool) {
	if _, ok := table[Unit(s)]; ok {
		return Unit(s), true
	}
	stem, ok := strings.CutSuffix(s, "s")
	if !ok || len(stem) < 2 {
		return "", false
	}
	trimmed := Unit(stem)
	if _, ok := table[trimmed]; ok {
		return trimmed, true
	}
	return "", false
}

// FamilyOf returns the family of s, or FamilyNone when s is vague.
func FamilyOf(s string) Family {
	u, ok := Parse(s)
	if !ok {
		return FamilyNone
	}
	return table[u].family
}

// IsVolume reports whether s resolves to a volume unit.
func IsVolume(s string) bool {
	return FamilyOf(s) == FamilyVolume
}

// IsMass reports whether s resolves to a mass unit.
func IsMass(s string) bool {
	return FamilyOf(s) == FamilyMass
}

// USToUKFactor returns the coefficient that turns a US-convention volume
// amount into its UK equivalent. Mass units have no such factor.
func USToUKFactor(s string) (float64, error) {
	u, ok := Parse(s)
	if !ok || table[u].family != FamilyVolume {
		return 0, errors.NewWithContext(errors.ErrCodeUnknownUnit,
			fmt.Sprintf("no US to UK factor for unit %q", s),
			map[string]any{"unit": s})
	}
	return table[u].usToUK, nil
}

// ToBaseFactor returns the coefficient that converts a UK-standard amount
// of s into its base unit (ml for volumes, g for masses).
func ToBaseFactor(s string) (float64, error) {
	u, ok := Parse(s)
	if !ok {
		return 0, errors.NewWithContext(errors.ErrCodeUnknownUnit,
			fmt.Sprintf("no base factor for unit %q", s),
			map[string]any{"unit": s})
	}
	return table[u].toBase, nil
}

// Base returns the base unit of a family.
func Base(f Family) Unit {
	switch f {
	case FamilyVolume:
		return Millilitre
	case FamilyMass:
		return Gram
	default:
		return ""
	}
}

// Row describes one unit of the conversion table.
type Row struct {
	Unit   Unit    `json:"unit" yaml:"unit"`
	Family Family  `json:"family" yaml:"family"`
	USToUK float64 `json:"usToUk,omitempty" yaml:"usToUk,omitempty"`
	ToBase float64 `json:"toBase" yaml:"toBase"`
	Base   Unit    `json:"base" yaml:"base"`
}

// Rows is the conversion table in volume-then-mass order.
type Rows []Row

// Table returns a copy of the conversion table.
func Table() Rows {
	rows := make(Rows, 0, len(table))
	for _, group := range [][]Unit{Volumes, Masses} {
		for _, u := range group {
			e := table[u]
			rows = append(rows, Row{
				Unit:   u,
				Family: e.family,
				USToUK: e.usToUK,
				ToBase: e.toBase,
				Base:   Base(e.family),
			})
		}
	}
	return rows
}

// TableRows renders the table for tabular output.
func (r Rows) TableRows() [][]string {
	out := [][]string{{"UNIT", "FAMILY", "US->UK", "TO BASE", "BASE"}}
	for _, row := range r {
		usToUK := "-"
		if row.USToUK != 0 {
			usToUK = fmt.Sprintf("%g", row.USToUK)
		}
		out = append(out, []string{
			row.Unit.String(),
			row.Family.String(),
			usToUK,
			fmt.Sprintf("%g", row.ToBase),
			row.Base.String(),
		})
	}
	return out
}
