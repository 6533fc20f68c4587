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

// Package serializer provides encoding of snapshot data in multiple formats.
//
// # Overview
//
// The serializer package converts collected snapshot structures into output
// streams. It owns the Format enum shared by every output path and the
// machine-readable encoders (JSON and YAML). The human-readable table is a
// separate Serializer implementation in the render package; this package
// only declares its format constant.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, indented representation
//   - Suitable for piping into other tools
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for configuration-style consumption
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Localized, bordered terminal table
//   - Produced by the render package (render.TableWriter)
//   - Write-only; requesting it from a Writer returns an error
//
// # Core Types
//
// Format: Enum representing output formats (JSON, YAML, Table)
//
// Serializer: Interface for encoding data to output
//
//	type Serializer interface {
//	    Serialize(ctx context.Context, snapshot any) error
//	}
//
// Writer: Encodes JSON or YAML to an io.Writer
//
//	type Writer struct {
//	    format Format
//	    output io.Writer
//	    closer io.Closer
//	}
//
// # Usage
//
// Write to stdout (YAML):
//
//	writer := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := writer.Serialize(ctx, snap); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout when the file cannot be created:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "snapshot.json")
//	defer writer.Close()
//
//	if err := writer.Serialize(ctx, snap); err != nil {
//	    log.Fatal(err)
//	}
//
// Resolve an output destination for a non-Writer serializer (the table
// renderer takes an io.Writer directly):
//
//	output, closer := serializer.NewOutput(path)
//	if closer != nil {
//	    defer closer.Close()
//	}
//
// # Unknown Values
//
// Snapshot leaves that could not be collected are not omitted from the
// output; the report package marshals them as its sentinel string. The
// encoders here never see a partial document.
//
// # Resource Management
//
// Writers that open files must be closed:
//
//	writer := serializer.NewFileWriterOrStdout(serializer.FormatJSON, path)
//	defer writer.Close()
//
// Stdout writers don't require closing but Close() is safe to call.
//
// # Error Handling
//
// Errors are returned when:
//   - Data cannot be marshaled
//   - A Writer is asked to serialize the table format
//
// Output-file creation failures are not errors; the Writer logs and falls
// back to stdout so a snapshot is never silently dropped.
//
// # Integration
//
// Used by:
//   - pkg/cli - selects the format and destination from flags
//   - pkg/render - implements Serializer for the table format
package serializer
