// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestObserverDebugEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(Debug, &buf)

	done := o.StartTiming("matcher", "correct")
	done(true, 3, map[string]any{"country": "SE"})

	var data OperationData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data.Component != "matcher" || data.Operation != "correct" {
		t.Errorf("unexpected record: %+v", data)
	}
	if !data.Success || data.MatchCount != 3 {
		t.Errorf("unexpected record: %+v", data)
	}
	if data.Metadata["country"] != "SE" {
		t.Errorf("metadata not preserved: %+v", data.Metadata)
	}
}

func TestObserverOffIsSilent(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(Off, &buf)
	o.LogOperation(OperationData{Component: "web", Operation: "correct"})
	if buf.Len() != 0 {
		t.Error("Off level should not emit output")
	}
}

func TestObserverMetricsStripsMetadata(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(Metrics, &buf)
	o.LogOperation(OperationData{
		Component:  "matcher",
		Operation:  "correct",
		Success:    true,
		MatchCount: 2,
		Metadata:   map[string]any{"country": "SE"},
	})

	var data OperationData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if data.Component != "matcher" || data.MatchCount != 2 {
		t.Errorf("unexpected record: %+v", data)
	}
	if data.Metadata != nil {
		t.Errorf("metrics level must strip metadata, got %+v", data.Metadata)
	}
}

func TestObserverNilSafe(t *testing.T) {
	var o *Observer
	done := o.StartTiming("matcher", "correct")
	done(false, 0, nil)
	o.LogOperation(OperationData{})
}
