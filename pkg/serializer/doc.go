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

// Package serializer writes crawl results as JSON, YAML or tables and
// reads JSON or YAML input files.
//
// Usage:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatTable, path)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, measurement.Ingredients(ings)); err != nil {
//		return err
//	}
//
// Values implementing TableRenderer control their own table columns; any
// other value is flattened to FIELD/VALUE rows with dotted keys.
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// RespondJSON buffers the encoding so an encoding failure never produces a
// partial response.
package serializer
