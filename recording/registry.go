// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"fmt"
	"sort"
	"sync"
)

// TargetFactory creates a playback target for a surface of the given size.
// Factories are registered via Register() and called by NewTarget().
type TargetFactory func(width, height int) (Target, error)

var (
	registryMu sync.RWMutex
	targets    = make(map[string]TargetFactory)
)

// Register registers a target factory with the given name.
// It is typically called from init() in the package providing the target,
// following the database/sql driver pattern:
//
//	func init() {
//	    recording.Register("raster", func(w, h int) (recording.Target, error) {
//	        c, err := New(w, h)
//	        if err != nil {
//	            return nil, err
//	        }
//	        return c, nil
//	    })
//	}
//
// Register panics if factory is nil or if a target with the same name is
// already registered.
func Register(name string, factory TargetFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	if _, dup := targets[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	targets[name] = factory
}

// Unregister removes a target from the registry. It is a no-op when the
// name is not registered.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(targets, name)
}

// NewTarget creates a target by name for a surface of the given size.
// The error for an unknown name hints at a forgotten import.
func NewTarget(name string, width, height int) (Target, error) {
	registryMu.RLock()
	factory, ok := targets[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("recording: unknown target %q (forgotten import?)", name)
	}
	t, err := factory(width, height)
	if err != nil {
		return nil, fmt.Errorf("recording: create target %q: %w", name, err)
	}
	return t, nil
}

// Targets returns the registered target names in alphabetical order.
func Targets() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a target with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := targets[name]
	return ok
}
