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

package cpu

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/avelev99/cpuinfo-app/pkg/errors"
	"github.com/avelev99/cpuinfo-app/pkg/parser"
	"github.com/avelev99/cpuinfo-app/pkg/probe"
	"github.com/avelev99/cpuinfo-app/pkg/report"
)

// cacheSizeRe matches size labels such as "32K", "1M" or "1.5M". The
// unit suffix is case-insensitive.
var cacheSizeRe = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)([KMG])$`)

// collectCache walks the cache topology directory and keeps, per cache
// level, the size label with the largest byte count seen across the
// index entries. Multiple cores reporting the same level this way
// resolve to one label. Entries with a missing or unparsable level or
// size are skipped. A missing directory leaves all levels unknown.
func (c *Collector) collectCache() report.Cache {
	labels, ok := probe.Try("cpu_cache", func() (map[string]string, error) {
		return scanCacheDir(c.cacheDir())
	})
	if !ok {
		return report.Cache{}
	}
	return report.Cache{
		L1: labelValue(labels, "L1"),
		L2: labelValue(labels, "L2"),
		L3: labelValue(labels, "L3"),
	}
}

func labelValue(labels map[string]string, level string) report.Value[string] {
	label, ok := labels[level]
	return report.KnownIf(label, ok)
}

func scanCacheDir(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnavailable, "cache directory is not readable", err)
	}

	fileParser := parser.NewParser()
	bestSizes := make(map[string]int64)
	bestLabels := make(map[string]string)

	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "index") {
			continue
		}
		idxDir := filepath.Join(dir, entry.Name())
		level, err := fileParser.Value(filepath.Join(idxDir, "level"))
		if err != nil {
			continue
		}
		sizeText, err := fileParser.Value(filepath.Join(idxDir, "size"))
		if err != nil {
			continue
		}
		sizeBytes, ok := parseCacheSize(sizeText)
		if !ok {
			continue
		}
		key := "L" + level
		if best, seen := bestSizes[key]; !seen || sizeBytes > best {
			bestSizes[key] = sizeBytes
			bestLabels[key] = sizeText
		}
	}
	return bestLabels, nil
}

// parseCacheSize converts a size label such as "512K" into a byte
// count using binary multipliers, so K means 1024 and G means 1024
// cubed. The label keeps its raw text elsewhere, the byte count only
// ranks competing labels.
func parseCacheSize(text string) (int64, bool) {
	m := cacheSizeRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	var multiplier float64
	switch strings.ToUpper(m[2]) {
	case "K":
		multiplier = 1 << 10
	case "M":
		multiplier = 1 << 20
	case "G":
		multiplier = 1 << 30
	}
	return int64(value * multiplier), true
}
