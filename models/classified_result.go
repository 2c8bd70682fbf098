// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Field is one display-ready (label, value) pair extracted from a payload.
type Field struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// ClassifiedResult is the decode-side outcome of a single scan event.
//
// A result is created exactly once per scan and is never mutated afterwards;
// ownership passes to the history store. Fields are re-derivable from Data and
// Kind, so stores are free to persist only the first four members.
type ClassifiedResult struct {
	// ID is unique and monotonic within a process, assigned at classification time.
	ID int64 `json:"id" yaml:"id"`

	// Data is the exact decoded string, unmodified.
	Data string `json:"data" yaml:"data"`

	// Kind is the semantic category picked by the classifier.
	Kind ContentKind `json:"type" yaml:"type"`

	// CapturedAt is set once when the result is assembled.
	CapturedAt time.Time `json:"timestamp" yaml:"timestamp"`

	// Fields are extracted from Data according to Kind; empty for url and text.
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Lookup returns the value of the first field carrying label.
func (r ClassifiedResult) Lookup(label string) (string, bool) {
	for _, f := range r.Fields {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// ActionType tells the dispatcher how to execute an [Action].
type ActionType string

const (
	// ActionOpen navigates to Action.Target (a URL or URI).
	ActionOpen ActionType = "open"

	// ActionDownload saves the raw payload to Action.FileName.
	ActionDownload ActionType = "download"
)

// Action is a type-specific operation the UI dispatcher may offer for a result.
type Action struct {
	Label    string     `json:"label" yaml:"label"`
	Type     ActionType `json:"type" yaml:"type"`
	Target   string     `json:"target,omitempty" yaml:"target,omitempty"`
	FileName string     `json:"file_name,omitempty" yaml:"file_name,omitempty"`
}

// ResultView bundles a result with the presentation data derived from it.
type ResultView struct {
	ClassifiedResult `yaml:",inline"`

	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Display     string   `json:"display" yaml:"display"`
	Actions     []Action `json:"actions" yaml:"actions"`
}

// TypeInfo describes the grammar rule that matched a payload.
type TypeInfo struct {
	Type    ContentKind `json:"type"`
	Pattern string      `json:"pattern"`
}

// HistoryEntry is the persisted history format:
// a JSON array of {id, data, type, timestamp, typeInfo}.
type HistoryEntry struct {
	ID        int64       `json:"id"`
	Data      string      `json:"data"`
	Type      ContentKind `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	TypeInfo  *TypeInfo   `json:"typeInfo,omitempty"`
}

// ScanRequest carries a raw payload from a capture provider.
type ScanRequest struct {
	Data string `json:"data"`
}

// HistoryFilter narrows a history listing. A zero Kind means every kind and a
// zero Limit means no limit.
type HistoryFilter struct {
	Kind  ContentKind
	Limit int
}
