package nebulo

import (
	"encoding/json"
	"io"
	"net/http"
)

// genericMessage is the fallback shown when the server supplies no message.
const genericMessage = "request failed"

// Error is an API-level failure. Message prefers the server-supplied text so
// front-ends can surface it verbatim.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// errorEnvelope matches the server's error body. Some endpoints localize the
// field name, so both spellings are accepted.
type errorEnvelope struct {
	Message   string `json:"message"`
	MessagePT string `json:"mensagem"`
}

// decodeError turns a non-2xx response into *Error, preferring the
// server-supplied message and falling back to a generic one.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode, Message: genericMessage}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}

	switch {
	case envelope.Message != "":
		apiErr.Message = envelope.Message
	case envelope.MessagePT != "":
		apiErr.Message = envelope.MessagePT
	}
	return apiErr
}
