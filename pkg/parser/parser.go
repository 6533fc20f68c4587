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

package parser

import (
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/avelev99/cpuinfo-app/pkg/errors"
)

// Option configures the Parser.
type Option func(*Parser)

// Parser reads pseudo-files (/proc, /sys) with customizable settings.
type Parser struct {
	delimiter    string
	maxSize      int
	skipComments bool
	kvDelimiter  string
}

// WithDelimiter sets the delimiter used to split entries in the file.
// Default is newline ("\n").
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize sets the maximum size (in bytes) of the file to be parsed.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip comment lines in the file.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used by FirstValue.
// Default is ":".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// NewParser creates a new pseudo-file parser with the provided options.
// Default settings: newline delimiter, 1MB max file size, ":" key-value
// delimiter.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:    "\n",
		maxSize:      1 << 20, // 1MB default
		skipComments: true,
		kvDelimiter:  ":",
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FirstValue scans the file for the first line whose key (the part before
// the key-value delimiter, trimmed) equals key and whose trimmed value is
// non-empty, and returns that value. Pseudo-files like /proc/cpuinfo repeat
// the same keys per processor; the first usable occurrence wins. Returns
// ErrCodeUnavailable when the file cannot be read or no line qualifies.
func (p *Parser) FirstValue(path, key string) (string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return "", err
	}

	for _, line := range lines {
		kv := strings.SplitN(line, p.kvDelimiter, 2)
		if len(kv) != 2 {
			continue
		}
		if strings.TrimSpace(kv[0]) != key {
			continue
		}
		if v := strings.TrimSpace(kv[1]); v != "" {
			return v, nil
		}
	}

	return "", errors.NewWithContext(errors.ErrCodeUnavailable, "key not found",
		map[string]any{"path": path, "key": key})
}

// Value reads a single-value pseudo-file (sysfs attribute, kernel sysctl
// export) and returns its content with surrounding whitespace trimmed.
// Returns ErrCodeUnavailable when the file cannot be read or is empty.
func (p *Parser) Value(path string) (string, error) {
	b, err := p.read(path)
	if err != nil {
		return "", err
	}

	v := strings.TrimSpace(string(b))
	if v == "" {
		return "", errors.NewWithContext(errors.ErrCodeUnavailable, "file is empty",
			map[string]any{"path": path})
	}
	return v, nil
}

// GetLines reads the file at the given path and splits its content into
// trimmed, non-empty lines based on the configured delimiter.
func (p *Parser) GetLines(path string) ([]string, error) {
	b, err := p.read(path)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(string(b), p.delimiter)

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		cleanPart := strings.TrimSpace(part)
		if cleanPart == "" {
			continue
		}

		if p.skipComments && strings.HasPrefix(cleanPart, "#") {
			continue
		}

		result = append(result, cleanPart)
	}

	return result, nil
}

func (p *Parser) read(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New(errors.ErrCodeUnavailable, "file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to read file", err)
	}

	if !utf8.Valid(b) {
		slog.Debug("file content is not valid UTF-8", slog.String("path", path))
		return nil, errors.NewWithContext(errors.ErrCodeUnavailable, "content is not valid UTF-8",
			map[string]any{"path": path})
	}

	if len(b) > p.maxSize {
		return nil, errors.NewWithContext(errors.ErrCodeUnavailable, "file exceeds maximum size",
			map[string]any{"path": path, "max_bytes": p.maxSize})
	}

	return b, nil
}
