package relay

import (
	"errors"
	"fmt"
)

// Kind classifies relay failures so the HTTP boundary can choose a response.
type Kind string

const (
	KindIO      Kind = "io"      // system prompt missing or unreadable
	// KindProcess and KindParse are reserved for a transcriber that shells out
	// to the whisper CLI. No current transcriber produces them.
	KindProcess Kind = "process" // external transcription tool exited non-zero
	KindParse   Kind = "parse"   // transcription output was not valid JSON
	KindRemote  Kind = "remote"  // API, network or malformed response
	KindUpload  Kind = "upload"  // audio field missing or upload unreadable
	KindUnknown Kind = "unknown"
)

// Error is a failure tagged with its Kind and the operation that produced it.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// UploadError tags err as an upload failure.
func UploadError(op string, err error) *Error {
	return newError(KindUpload, op, err)
}

// KindOf reports the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnknown
}
