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

package header

import (
	"testing"
	"time"
)

func TestInit(t *testing.T) {
	var h Header
	h.Init(KindSearchResult, "1.2.3")
	h.Set("term", "milk")

	if h.Kind != KindSearchResult || h.APIVersion != APIVersion {
		t.Errorf("unexpected header: %+v", h)
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata["timestamp"]); err != nil {
		t.Errorf("invalid timestamp %q: %v", h.Metadata["timestamp"], err)
	}
	if h.Metadata["version"] != "1.2.3" || h.Metadata["term"] != "milk" {
		t.Errorf("unexpected metadata: %v", h.Metadata)
	}

	h.Init(KindParseResult, "")
	if _, ok := h.Metadata["version"]; ok {
		t.Error("expected no version when empty")
	}
	if _, ok := h.Metadata["term"]; ok {
		t.Error("expected Init to reset metadata")
	}
}

func TestKindIsValid(t *testing.T) {
	for _, k := range []Kind{KindSearchResult, KindParseResult} {
		if !k.IsValid() {
			t.Errorf("%s should be valid", k)
		}
	}
	if Kind("Snapshot").IsValid() {
		t.Error("unknown kind should be invalid")
	}
}
