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

package density

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/onsa/fatsecret-crawler/pkg/errors"
	"github.com/onsa/fatsecret-crawler/pkg/measurement"
	"github.com/onsa/fatsecret-crawler/pkg/unit"
)

// Standardise returns calories per base unit (ml or g) for a serving,
// rounded to measurement.Precision places.
func Standardise(calories float64, m measurement.Measurement) (float64, error) {
	factor, err := unit.ToBaseFactor(m.Unit)
	if err != nil {
		return 0, err
	}
	if m.Amount <= 0 || math.IsNaN(m.Amount) || math.IsInf(m.Amount, 0) {
		return 0, errors.NewWithContext(errors.ErrCodeUnparsableAmount,
			fmt.Sprintf("cannot standardise serving %s", m),
			map[string]any{"amount": m.Amount, "unit": m.Unit})
	}
	return measurement.Round(calories / m.Amount / factor), nil
}

// Density derives a g/ml ratio from the first measurement and the first
// later measurement of the other unit family. It returns nil when there
// are fewer than two measurements, when no such pair exists, or when
// either side of the pair lacks calories.
//
// Measurements are expected to have been through measurement.Clear.
func Density(ms []measurement.Measurement) (*float64, error) {
	if len(ms) < 2 {
		return nil, nil
	}

	ref := ms[0]
	refFamily := ref.Family()
	if refFamily == unit.FamilyNone {
		return nil, nil
	}

	var other *measurement.Measurement
	for i := 1; i < len(ms); i++ {
		if f := ms[i].Family(); f != unit.FamilyNone && f != refFamily {
			other = &ms[i]
			break
		}
	}
	if other == nil || ref.Calorie == nil || other.Calorie == nil {
		return nil, nil
	}

	refCal, err := Standardise(ref.Calorie.Amount, ref)
	if err != nil {
		return nil, err
	}
	otherCal, err := Standardise(other.Calorie.Amount, *other)
	if err != nil {
		return nil, err
	}

	// kcal/ml divided by kcal/g gives g/ml.
	num, den := refCal, otherCal
	if refFamily == unit.FamilyMass {
		num, den = otherCal, refCal
	}
	if den == 0 {
		return nil, nil
	}

	d := measurement.Round(num / den)
	return &d, nil
}

// Annotate sets ing.Density from its measurements. A density that cannot
// be computed leaves the field nil.
func Annotate(ing *measurement.Ingredient) error {
	d, err := Density(ing.Measurements)
	if err != nil {
		ing.Density = nil
		return err
	}
	ing.Density = d
	if d == nil {
		slog.Debug("density not derivable", "ingredient", ing.Prominent)
	}
	return nil
}
