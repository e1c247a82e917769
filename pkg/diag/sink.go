/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package diag

import (
	"slices"
	"sync"
)

// Sink of error records, shared by one schema compilation pass.
type ISink interface {
	Add(...Error)
}

// Error records collector.
//
// # Implements:
//   - ISink
//
// Safe for concurrent use. Order of records added concurrently is not defined.
type Collector struct {
	mu   sync.Mutex
	errs []Error
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(errs ...Error) {
	if len(errs) == 0 {
		return
	}
	c.mu.Lock()
	c.errs = append(c.errs, errs...)
	c.mu.Unlock()
}

// Returns copy of collected errors
func (c *Collector) Errors() []Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.errs)
}

// Returns count of collected errors
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.errs)
}

// Returns is collector contains at least one record with Error severity
func (c *Collector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return HasErrors(c.errs)
}

// Returns collected errors joined into single error, or nil if nothing collected.
func (c *Collector) Err() error {
	return Join(c.Errors())
}

// Sink that discards all records
type discard struct{}

func (discard) Add(...Error) {}

// Discard is a sink on which all Add calls succeed without doing anything.
var Discard ISink = discard{}
