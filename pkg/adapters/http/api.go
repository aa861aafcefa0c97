// Package http exposes an engine over the JSON API described in
// api/openapi.yaml and provides the matching ports.Simulator client, so a run
// can drive an engine hosted in another process.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/plantctl/pkg/domain"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeBadRequest      = "bad_request"
	CodeNotFound        = "not_found"
	CodeUnknownVariable = "unknown_variable"
	CodeUnknownUnit     = "unknown_unit"
	CodeEngine          = "engine_error"
)

func clockResponse(d time.Duration) ClockResponse {
	return ClockResponse{ModelTimeNs: int64(d), ModelTime: d.String()}
}

// classify maps an engine error to a status code and error body.
func classify(err error) (int, ErrorResponse) {
	var unk *domain.UnknownVariableError
	switch {
	case errors.As(err, &unk):
		return http.StatusNotFound, ErrorResponse{
			Error:       err.Error(),
			Code:        CodeUnknownVariable,
			Application: ptr(unk.Application),
			Name:        ptr(unk.Name),
		}
	case errors.Is(err, domain.ErrUnknownUnit):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeUnknownUnit}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeEngine}
	}
}

// RemoteError is an error reported by the server that has no domain counterpart.
type RemoteError struct {
	Status int
	Code   string
	Msg    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("engine bridge: %d %s: %s", e.Status, e.Code, e.Msg)
}

// decodeError rebuilds the domain error carried by an error body.
func decodeError(status int, body ErrorResponse) error {
	switch body.Code {
	case CodeUnknownVariable:
		return &domain.UnknownVariableError{Application: deref(body.Application), Name: deref(body.Name)}
	case CodeUnknownUnit:
		return fmt.Errorf("%w: %s", domain.ErrUnknownUnit, body.Error)
	default:
		return &RemoteError{Status: status, Code: body.Code, Msg: body.Error}
	}
}

func ptr[T any](v T) *T {
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
