package unfurler

import (
	"fmt"
	"io"
)

// StatusError wraps a worker reply with a status the protocol does not define
type StatusError struct {
	Status int
	Body   string
}

// Error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("unfurl worker unexpected status %d body %s", e.Status, e.Body)
}

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
