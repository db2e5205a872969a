/*
 * Copyright (c) The Kowabunga Project
 * Apache License, Version 2.0 (see LICENSE or https://www.apache.org/licenses/LICENSE-2.0.txt)
 * SPDX-License-Identifier: Apache-2.0
 */

package workload

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/juju/errors"
)

const (
	KindSuggestionMaxDistance = 3
)

// Factory builds a fully-defaulted descriptor of one workload kind
type Factory func(gen Generators, passwordLength int) (Workload, error)

type KindInfo struct {
	Kind        string
	Prefix      string
	Description string
	DiskSize    int64 // GiB
	New         Factory
}

// populated by workload init() functions, read-only afterwards
var registry = map[string]KindInfo{}

func newFactory[W Workload](f func(Generators, int) (W, error)) Factory {
	return func(gen Generators, passwordLength int) (Workload, error) {
		w, err := f(gen, passwordLength)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
}

// Register makes a workload kind available to New. Registering the same
// kind twice panics.
func Register(info KindInfo) {
	key := strings.ToLower(info.Kind)
	if _, exists := registry[key]; exists {
		panic(fmt.Sprintf("workload: kind %s registered twice", info.Kind))
	}
	if info.New == nil {
		panic(fmt.Sprintf("workload: kind %s has no factory", info.Kind))
	}
	registry[key] = info
}

func Kinds() []KindInfo {
	kinds := make([]KindInfo, 0, len(registry))
	for _, k := range registry {
		kinds = append(kinds, k)
	}
	slices.SortFunc(kinds, func(a, b KindInfo) int {
		return strings.Compare(a.Kind, b.Kind)
	})
	return kinds
}

func suggestKind(kind string) string {
	best := ""
	bestDistance := KindSuggestionMaxDistance + 1
	for _, k := range Kinds() {
		d := levenshtein.ComputeDistance(strings.ToLower(kind), k.Kind)
		if d < bestDistance {
			best = k.Kind
			bestDistance = d
		}
	}
	return best
}

// Lookup finds a registered workload kind, case-insensitively
func Lookup(kind string) (KindInfo, error) {
	info, ok := registry[strings.ToLower(kind)]
	if ok {
		return info, nil
	}

	msg := fmt.Sprintf("unknown workload kind %q", kind)
	if s := suggestKind(kind); s != "" {
		msg = fmt.Sprintf("%s, did you mean %q?", msg, s)
	}
	return KindInfo{}, errors.NewNotFound(nil, msg)
}

func New(kind string, gen Generators, passwordLength int) (Workload, error) {
	info, err := Lookup(kind)
	if err != nil {
		return nil, err
	}

	w, err := info.New(gen, passwordLength)
	if err != nil {
		descriptorsFailed.WithLabelValues(info.Kind).Inc()
		return nil, err
	}
	descriptorsCreated.WithLabelValues(info.Kind).Inc()

	return w, nil
}
