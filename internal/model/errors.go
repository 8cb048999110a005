package model

import (
	"errors"
	"fmt"
)

// MalformedDocumentError reports a language document that could not be
// decoded into a trail document.
type MalformedDocumentError struct {
	Lang Lang
	Err  error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("invalid %s JSON file: %v", e.Lang.Name(), e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// ValidationError reports input that blocks an operation, such as exporting
// without a trail id.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IndexOutOfRangeError reports a media list position outside the valid range.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range for media list of length %d", e.Index, e.Len)
}

// TrackParseError wraps a failure to parse a GPS track file.
type TrackParseError struct {
	Err error
}

func (e *TrackParseError) Error() string {
	return fmt.Sprintf("parsing GPX file: %v", e.Err)
}

func (e *TrackParseError) Unwrap() error { return e.Err }

// ErrEmptyTrack is returned when a track contains no points.
var ErrEmptyTrack = errors.New("no track points found in the GPX file")
