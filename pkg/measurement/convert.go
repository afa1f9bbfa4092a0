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
	"github.com/onsa/fatsecret-crawler/pkg/unit"
)

// Imperialise converts the nutrients of a US-convention volume serving into
// their UK equivalents. Every present macro amount is multiplied by the
// unit's US to UK factor and rounded; the serving amount itself is kept.
// Mass servings are returned unchanged. The input is never modified.
func Imperialise(m Measurement) (Measurement, error) {
	out := m.clone()
	if m.Family() != unit.FamilyVolume {
		return out, nil
	}

	factor, err := unit.USToUKFactor(m.Unit)
	if err != nil {
		return m, err
	}

	for _, k := range MacroKinds {
		if macro := out.Macro(k); macro != nil {
			macro.Amount = Round(macro.Amount * factor)
		}
	}
	return out, nil
}
