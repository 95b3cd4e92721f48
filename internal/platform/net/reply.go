package net

import (
	"net/http"

	perr "github.com/FFlyyy/bot/internal/platform/errors"
)

// Wire is the JSON envelope every HTTP reply uses; Code and Error are set on failures only
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Data wraps a successful payload; a zero status means 200
func Data(status int, data any, reqID string) Wire {
	if status == 0 {
		status = http.StatusOK
	}
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID, Data: data}
}

// Error maps err to its status and a client safe envelope
func Error(err error, reqID string) (int, Wire) {
	status := perr.HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		RequestID:  reqID,
	}
}
