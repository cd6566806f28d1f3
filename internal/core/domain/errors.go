package domain

import "go.trai.ch/zerr"

var (
	// ErrTransport is returned when the Initializr service cannot be reached.
	ErrTransport = zerr.New("failed to reach Initializr service")

	// ErrServiceStatus is returned when the metadata endpoint answers with a non-success status.
	ErrServiceStatus = zerr.New("Initializr service returned an unexpected status")

	// ErrDecode is returned when the metadata payload cannot be decoded into a catalog.
	ErrDecode = zerr.New("failed to decode Initializr metadata")

	// ErrValidation is returned when a free-text answer is rejected.
	ErrValidation = zerr.New("invalid input")

	// ErrEmptyInput is returned when a required answer is empty.
	ErrEmptyInput = zerr.New("empty input")

	// ErrContainsWhitespace is returned when an identifier answer contains whitespace.
	ErrContainsWhitespace = zerr.New("contains whitespace")

	// ErrUnresolvedAxis is returned when a request is built with an axis left empty.
	ErrUnresolvedAxis = zerr.New("project axis has no value")

	// ErrUnknownDependency is returned when a request names a dependency absent from the catalog.
	ErrUnknownDependency = zerr.New("unknown dependency")

	// ErrDuplicateDependency is returned when a request names the same dependency twice.
	ErrDuplicateDependency = zerr.New("duplicate dependency")

	// ErrNoOptions is returned when a choice is requested from an empty option list.
	ErrNoOptions = zerr.New("no options to choose from")

	// ErrGenerationStatus is returned when the generation endpoint answers with a non-success status.
	ErrGenerationStatus = zerr.New("project generation failed")

	// ErrDownloadFailed is returned when the generated archive cannot be stored locally.
	ErrDownloadFailed = zerr.New("failed to download project archive")

	// ErrExtraction is returned when the generated archive cannot be extracted.
	ErrExtraction = zerr.New("failed to extract project archive")

	// ErrUnsafeArchivePath is returned when an archive entry would be written outside the destination.
	ErrUnsafeArchivePath = zerr.New("archive entry escapes destination")

	// ErrPromptAborted is returned when the user abandons an interactive prompt.
	ErrPromptAborted = zerr.New("aborted")

	// ErrNotInteractive is returned when answers are required but the input stream is closed.
	ErrNotInteractive = zerr.New("no more input available")

	// ErrUnknownListItem is returned when the list command is asked for an unsupported item.
	ErrUnknownListItem = zerr.New("unknown list item")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidTimeout is returned when a configured timeout is not a positive duration.
	ErrInvalidTimeout = zerr.New("invalid timeout, expected a positive duration such as 30s")

	// ErrInvalidServiceURL is returned when the configured service URL is not an absolute http(s) URL.
	ErrInvalidServiceURL = zerr.New("invalid service url")

	// ErrLogFileOpenFailed is returned when the log file cannot be opened.
	ErrLogFileOpenFailed = zerr.New("failed to open log file")
)

// WrapCause files cause under sentinel: errors.Is matches both, and the message
// reads "<sentinel>: <cause>".
func WrapCause(cause, sentinel error) error {
	return zerr.Wrap(&causedError{sentinel: sentinel, cause: cause}, sentinel.Error())
}

type causedError struct {
	sentinel error
	cause    error
}

func (e *causedError) Error() string { return e.cause.Error() }

func (e *causedError) Unwrap() []error { return []error{e.sentinel, e.cause} }
