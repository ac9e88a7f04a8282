package internal

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
)

// maxBodySize caps how much of any response body is read.
const maxBodySize = 1 << 20

var errMissingID = errors.New("response has no id")

// idResponse is the set of success bodies; each is exactly {"id": string}.
type idResponse interface {
	SendEmailResponse | SendMimeResponse
}

// wireIDResponse tracks presence of the required id field.
type wireIDResponse struct {
	ID *string `json:"id"`
}

// wireErrorResponse mirrors ErrorResponse with presence tracking:
// name and message are required for the envelope to be accepted.
type wireErrorResponse struct {
	Name       *string `json:"name"`
	Message    *string `json:"message"`
	StatusCode *int    `json:"statusCode"`
}

// decodeResponse classifies resp by status and decodes the matching body.
// A success body must be a single JSON object with a non-empty id;
// anything else is a transport error.
func decodeResponse[T idResponse](resp *http.Response) (*T, error) {
	if !isSuccess(resp.StatusCode) {
		return nil, &APIError{ErrorResponse: decodeErrorResponse(resp.Body)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	var wire wireIDResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &TransportError{Op: "decode response", Err: err}
	}
	if wire.ID == nil || *wire.ID == "" {
		return nil, &TransportError{Op: "decode response", Err: errMissingID}
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &TransportError{Op: "decode response", Err: err}
	}
	return &out, nil
}

// decodeErrorResponse never fails: an undecodable body yields the fallback envelope.
func decodeErrorResponse(r io.Reader) ErrorResponse {
	body, err := io.ReadAll(io.LimitReader(r, maxBodySize))
	if err != nil {
		return fallbackErrorResponse()
	}

	var wire wireErrorResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return fallbackErrorResponse()
	}
	if wire.Name == nil || wire.Message == nil {
		return fallbackErrorResponse()
	}
	if wire.StatusCode != nil && (*wire.StatusCode < 0 || *wire.StatusCode > math.MaxUint16) {
		return fallbackErrorResponse()
	}
	return ErrorResponse{
		Name:       *wire.Name,
		Message:    *wire.Message,
		StatusCode: wire.StatusCode,
	}
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
