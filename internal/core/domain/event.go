package domain

import "time"

// EventKind identifies a diagnostic event.
type EventKind string

const (
	// EventCatalogFetched is emitted once the catalog snapshot is available.
	EventCatalogFetched EventKind = "catalog_fetched"
	// EventSelection is emitted for every accepted answer.
	EventSelection EventKind = "selection"
	// EventValidationFailed is emitted when an answer is rejected and asked again.
	EventValidationFailed EventKind = "validation_failed"
	// EventRequestFinalized is emitted when the request has been built.
	EventRequestFinalized EventKind = "request_finalized"
	// EventArchiveDownloaded is emitted when the archive has been stored locally.
	EventArchiveDownloaded EventKind = "archive_downloaded"
	// EventArchiveExtracted is emitted when the project tree is in place.
	EventArchiveExtracted EventKind = "archive_extracted"
	// EventStageCompleted is emitted when a traced pipeline stage ends.
	EventStageCompleted EventKind = "stage_completed"
)

// Event is a structured diagnostic record produced by the core.
type Event struct {
	Kind    EventKind
	Message string
	Fields  map[string]any
	Time    time.Time
}

// NewEvent creates an event stamped with the current time.
func NewEvent(kind EventKind, message string, fields map[string]any) Event {
	return Event{
		Kind:    kind,
		Message: message,
		Fields:  fields,
		Time:    time.Now(),
	}
}
