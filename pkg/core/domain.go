// Event types and classification outcomes shared across the module.
package core

import "context"

// EventType represents the kind of change being announced.
type EventType string

const (
	// EventPathChanged fires when the notes file path setting changes.
	EventPathChanged EventType = "PATH_CHANGED"
	// EventNoteSaved fires after the document is persisted. Day carries
	// the day key, or "" for a bulk sweep (single global refresh).
	EventNoteSaved EventType = "NOTE_SAVED"
	// EventStatesChanged fires when the taxonomy changes.
	EventStatesChanged EventType = "STATES_CHANGED"
	// EventFileChanged fires when the notes file is modified outside the
	// service (emitted by the fs watcher, not by service operations).
	EventFileChanged EventType = "FILE_CHANGED"
)

// Event is an inert notification payload.
type Event struct {
	Type      EventType
	Day       string
	Timestamp int64 // Unix timestamp
}

// Reason is a domain outcome code for classification. These are result
// values a caller branches on, not raised failures.
type Reason string

const (
	// ReasonNoDocument means no notes file path is configured.
	ReasonNoDocument Reason = "no_document"
	// ReasonNoCredential means no classifier is configured; the factory
	// only builds one when a credential is available.
	ReasonNoCredential Reason = "no_credential"
	// ReasonEmptyDay means the day is absent or has no content.
	ReasonEmptyDay Reason = "empty"
	// ReasonNoBullets means the day content yielded zero bullets.
	ReasonNoBullets Reason = "no_bullets"
	// ReasonClassifyFailed means the classifier failed or returned a
	// label list that does not align with the bullets.
	ReasonClassifyFailed Reason = "classify_failed"
)

// ClassifyResult is the outcome of classifying one day.
type ClassifyResult struct {
	OK      bool
	Skipped bool // every bullet already carried a marker; nothing done
	Reason  Reason
}

// StateInfo is the classifier's view of one taxonomy entry.
type StateInfo struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ClassifyRequest carries the ordered bullets and the taxonomy snapshot
// (capped upstream to bound request size).
type ClassifyRequest struct {
	Bullets []string
	States  []StateInfo
}

// Classifier assigns one category code per bullet. Labels are interpreted
// positionally; the orchestrator lowercases them and trusts them as-is.
// A nil label list or an error both count as one classification failure.
type Classifier interface {
	Classify(ctx context.Context, req ClassifyRequest) ([]string, error)
}
