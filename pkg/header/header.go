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
	"time"
)

// APIVersion is the version stamped on every result envelope.
const APIVersion = "fatsecret/v1"

// Kind identifies the type of a result envelope.
type Kind string

const (
	KindSearchResult Kind = "SearchResult"
	KindParseResult  Kind = "ParseResult"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindSearchResult, KindParseResult:
		return true
	default:
		return false
	}
}

// Header carries the kind, API version and metadata of a result.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init sets the kind and API version and stamps the metadata with the
// current time and, when set, the producing tool's version.
func (h *Header) Init(kind Kind, version string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if version != "" {
		h.Metadata["version"] = version
	}
}

// Set records a metadata value.
func (h *Header) Set(key, value string) {
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata[key] = value
}
