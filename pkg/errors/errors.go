// pix-broker/pkg/errors/errors.go
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes carried by E. Handlers map them onto HTTP statuses via
// HTTPStatus; everything not listed there surfaces as 500.
const (
	CodeValidation         = "VALIDATION"
	CodeLinkNotFound       = "LINK_NOT_FOUND"
	CodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	CodeUnsupportedGateway = "UNSUPPORTED_GATEWAY"
	CodeMissingCredentials = "MISSING_CREDENTIALS"
	CodeGatewayRequest     = "GATEWAY_REQUEST"
	CodeInternal           = "INTERNAL"
)

type E struct {
	Code    string
	Message string
	Err     error
}

func (e E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e E) Unwrap() error { return e.Err }

func New(code, msg string) error {
	return E{Code: code, Message: msg}
}

func Wrap(code, msg string, err error) error {
	return E{Code: code, Message: msg, Err: err}
}

// Message returns the client-facing message for err. Anything that is not an
// E gets a generic message so internals never leak into the envelope.
func Message(err error) string {
	var e E
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal error"
}

func HTTPStatus(err error) int {
	var e E
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeLinkNotFound, CodeAccountNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
