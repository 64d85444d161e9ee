// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"sync"
	"time"
)

// IDGenerator hands out record ids derived from the current time in unix
// milliseconds. Ids are strictly increasing: two calls within the same
// millisecond get consecutive values.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// Seed makes the generator continue after an already issued id, so ids
// loaded from storage are never handed out again.
func (g *IDGenerator) Seed(lastIssued int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if lastIssued > g.last {
		g.last = lastIssued
	}
}

// Next returns max(now in ms, last id + 1).
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id

	return id
}
