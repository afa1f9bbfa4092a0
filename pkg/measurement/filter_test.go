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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearDropsVagueMeasurements(t *testing.T) {
	ing := Ingredient{
		Prominent: "MockBean",
		Brand:     "MockMarket",
		Measurements: []Measurement{
			NewBuilder(10, "fl oz").Calorie(132).Build(),
			NewBuilder(3, "helping").Build(),
		},
	}

	ing.Clear()

	require.Len(t, ing.Measurements, 1)
	assert.Equal(t, "fl oz", ing.Measurements[0].Unit)
	assert.Equal(t, Round(132*1.04084), ing.Measurements[0].Calorie.Amount)
}

func TestClearPreservesOrderAndCanonicalisesUnits(t *testing.T) {
	in := []Measurement{
		NewBuilder(1, "serving").Calorie(103).Build(),
		NewBuilder(100, "g").Calorie(42).Build(),
		NewBuilder(2, "cups").Calorie(206).Build(),
		NewBuilder(1, "").Calorie(5).Build(),
		NewBuilder(1, "lbs").Calorie(190).Build(),
	}

	out := Clear(in)

	require.Len(t, out, 3)
	assert.Equal(t, "g", out[0].Unit)
	assert.Equal(t, 42.0, out[0].Calorie.Amount)
	assert.Equal(t, "cup", out[1].Unit)
	assert.Equal(t, Round(206*0.844682), out[1].Calorie.Amount)
	assert.Equal(t, "lb", out[2].Unit)
	assert.Equal(t, 190.0, out[2].Calorie.Amount)

	assert.Equal(t, "cups", in[2].Unit, "input slice is not modified")
	assert.Equal(t, 206.0, in[2].Calorie.Amount)
}

func TestClearDropsServingsResemblingUnits(t *testing.T) {
	in := []Measurement{
		NewBuilder(1, "lg").Calorie(80).Build(),
		NewBuilder(1, "md").Calorie(60).Build(),
		NewBuilder(100, "g").Calorie(100).Build(),
	}

	out := Clear(in)

	require.Len(t, out, 1)
	assert.Equal(t, "g", out[0].Unit)
}

func TestClearEmpty(t *testing.T) {
	assert.Empty(t, Clear(nil))
	assert.NotNil(t, Clear(nil))
}
