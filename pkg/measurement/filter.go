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
	"log/slog"

	"github.com/onsa/fatsecret-crawler/pkg/unit"
)

// Clear drops measurements with vague units and imperialises the rest.
// Units are rewritten to their canonical table form ("cups" becomes "cup").
// Order of the remaining measurements is preserved.
func Clear(ms []Measurement) []Measurement {
	out := make([]Measurement, 0, len(ms))
	for _, m := range ms {
		u, ok := unit.Parse(m.Unit)
		if !ok {
			slog.Debug("dropping vague measurement", "measurement", m.String())
			continue
		}
		m.Unit = u.String()

		im, err := Imperialise(m)
		if err != nil {
			slog.Debug("dropping unconvertible measurement", "measurement", m.String(), "error", err)
			continue
		}
		out = append(out, im)
	}
	return out
}

// Clear replaces the ingredient's measurements with their cleared form.
func (i *Ingredient) Clear() {
	i.Measurements = Clear(i.Measurements)
}
