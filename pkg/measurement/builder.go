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

// Builder provides a fluent API for building Measurement instances.
type Builder struct {
	m Measurement
}

// NewBuilder creates a new Builder for a serving of amount in unit u.
func NewBuilder(amount float64, u string) *Builder {
	return &Builder{m: Measurement{Amount: amount, Unit: u}}
}

// WithMacro sets the macro of kind k. An empty unit takes the kind's default.
func (b *Builder) WithMacro(k MacroKind, amount float64, u string) *Builder {
	if u == "" {
		u = k.DefaultUnit()
	}
	b.m.SetMacro(k, &Macro{Amount: amount, Unit: u})
	return b
}

// Calorie is a convenience method for a kcal value.
func (b *Builder) Calorie(amount float64) *Builder {
	return b.WithMacro(Calorie, amount, "")
}

// Fat is a convenience method for a fat value in grams.
func (b *Builder) Fat(amount float64) *Builder {
	return b.WithMacro(Fat, amount, "")
}

// Carbohydrate is a convenience method for a carbohydrate value in grams.
func (b *Builder) Carbohydrate(amount float64) *Builder {
	return b.WithMacro(Carbohydrate, amount, "")
}

// Sugar is a convenience method for a sugar value in grams.
func (b *Builder) Sugar(amount float64) *Builder {
	return b.WithMacro(Sugar, amount, "")
}

// Protein is a convenience method for a protein value in grams.
func (b *Builder) Protein(amount float64) *Builder {
	return b.WithMacro(Protein, amount, "")
}

// Build returns a copy of the built Measurement.
func (b *Builder) Build() Measurement {
	return b.m.clone()
}
