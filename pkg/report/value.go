// Copyright (c) 2026, cpuinfo-app authors. All rights reserved.
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

package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sentinel is the placeholder emitted for any field whose true value could
// not be determined. It is the only representation of missing data on the
// wire; fields are never omitted or null.
const Sentinel = "N/A"

// Value wraps a leaf value that may be unknown. Known values serialize as
// the raw underlying value (not an object wrapper); unknown values serialize
// as the Sentinel string. This keeps the document shape fixed regardless of
// which probes succeeded.
type Value[T any] struct {
	v  T
	ok bool
}

// Known returns a Value holding v.
func Known[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// Unknown returns a Value with no underlying data.
func Unknown[T any]() Value[T] {
	return Value[T]{}
}

// KnownIf returns Known(v) when ok is true, Unknown otherwise.
func KnownIf[T any](v T, ok bool) Value[T] {
	if !ok {
		return Unknown[T]()
	}
	return Known(v)
}

// IsKnown reports whether the value carries real data.
func (v Value[T]) IsKnown() bool {
	return v.ok
}

// Get returns the underlying value and whether it is known.
func (v Value[T]) Get() (T, bool) {
	return v.v, v.ok
}

// Or returns the underlying value, or fallback when unknown.
func (v Value[T]) Or(fallback T) T {
	if !v.ok {
		return fallback
	}
	return v.v
}

// String returns the natural string form of the value, or the Sentinel.
func (v Value[T]) String() string {
	if !v.ok {
		return Sentinel
	}
	return fmt.Sprintf("%v", v.v)
}

// MarshalJSON emits the raw underlying value, or the Sentinel string.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return json.Marshal(Sentinel)
	}
	return json.Marshal(v.v)
}

// UnmarshalJSON accepts either the underlying type, the Sentinel string, or
// null. A bare Sentinel string decodes as unknown even for string values;
// the sentinel is reserved and cannot round-trip as real data.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*v = Unknown[T]()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil && s == Sentinel {
		*v = Unknown[T]()
		return nil
	}
	var raw T
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = Known(raw)
	return nil
}

// MarshalYAML emits the raw underlying value, or the Sentinel string.
func (v Value[T]) MarshalYAML() (any, error) {
	if !v.ok {
		return Sentinel, nil
	}
	return v.v, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML documents.
func (v *Value[T]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil && s == Sentinel {
		*v = Unknown[T]()
		return nil
	}
	var raw T
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*v = Known(raw)
	return nil
}
