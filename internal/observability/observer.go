// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package observability provides leveled operation logging for the cleaning
// pipeline. Observers are optional everywhere they appear; a nil observer
// disables instrumentation without conditional wiring at call sites.
package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver records operation timings and outcomes as JSON lines.
type StandardObserver struct {
	level  Level
	writer io.Writer
}

type Level int

const (
	LevelOff     Level = 0
	LevelMetrics Level = 1
	LevelDebug   Level = 2
)

// NewStandardObserver creates an observer writing to the given writer.
func NewStandardObserver(level Level, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming begins timing an operation and returns the completion
// function. The returned function is safe to call on a nil observer's
// behalf; callers keep the usual nil check on the observer itself.
func (o *StandardObserver) StartTiming(component, operation, source string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		o.LogOperation(OperationData{
			Component:  component,
			Operation:  operation,
			Source:     source,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation writes one operation record. Records are emitted only at
// debug level; metrics level reserves the hook without the log volume.
func (o *StandardObserver) LogOperation(data OperationData) {
	if o == nil || o.level == LevelOff {
		return
	}

	data.RequestID = "run-" + time.Now().Format("20060102-150405")

	if o.level == LevelDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// OperationData is one logged operation record.
type OperationData struct {
	Component    string                 `json:"component"`
	Operation    string                 `json:"operation"`
	RequestID    string                 `json:"request_id"`
	Source       string                 `json:"source,omitempty"`
	DurationMs   int64                  `json:"duration_ms,omitempty"`
	Success      bool                   `json:"success"`
	Error        string                 `json:"error,omitempty"`
	RecordCount  int                    `json:"record_count,omitempty"`
	InvalidCount int                    `json:"invalid_count,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}
