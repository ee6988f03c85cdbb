// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides structured operation logging for the
// engine and its serving layer.
package observability

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Level controls how much the observer emits.
type Level int

const (
	Off     Level = 0
	Metrics Level = 1
	Debug   Level = 2
)

// Observer logs engine operations as JSON records. Safe for concurrent use.
type Observer struct {
	level  Level
	mu     sync.Mutex
	writer io.Writer
}

// OperationData is one logged operation.
type OperationData struct {
	Component  string         `json:"component"`
	Operation  string         `json:"operation"`
	DurationMs int64          `json:"duration_ms,omitempty"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
	MatchCount int            `json:"match_count,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// NewObserver creates an observer writing to w. A nil writer or Off level
// produces a no-op observer.
func NewObserver(level Level, w io.Writer) *Observer {
	return &Observer{level: level, writer: w}
}

// StartTiming returns a completion function that logs the operation with
// its elapsed time.
func (o *Observer) StartTiming(component, operation string) func(success bool, matchCount int, metadata map[string]any) {
	start := time.Now()
	return func(success bool, matchCount int, metadata map[string]any) {
		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			MatchCount: matchCount,
			Metadata:   metadata,
		})
	}
}

// LogOperation writes one operation record as JSON. The metrics level
// strips the free-form metadata; the debug level emits it in full.
func (o *Observer) LogOperation(data OperationData) {
	if o == nil || o.level < Metrics || o.writer == nil {
		return
	}
	if o.level < Debug {
		data.Metadata = nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	_ = json.NewEncoder(o.writer).Encode(data)
}
