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

// Package density derives ingredient density from servings measured in
// different unit families.
//
// Each serving is reduced to calories per millilitre or per gram. The ratio
// of the two is the ingredient's density in g/ml:
//
//	ing.Clear()
//	if err := density.Annotate(&ing); err != nil {
//		return err
//	}
//	if ing.Density != nil {
//		fmt.Printf("%.4f g/ml\n", *ing.Density)
//	}
package density
