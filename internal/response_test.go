package internal

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestDecodeErrorResponse(t *testing.T) {
	t.Parallel()

	code := func(n int) *int { return &n }

	tests := []struct {
		name string
		body string
		want ErrorResponse
	}{
		{
			name: "full envelope",
			body: `{"name":"validation_error","message":"The to field is required.","statusCode":422}`,
			want: ErrorResponse{Name: "validation_error", Message: "The to field is required.", StatusCode: code(422)},
		},
		{
			name: "status code absent",
			body: `{"name":"rate_limit_exceeded","message":"Too many requests."}`,
			want: ErrorResponse{Name: "rate_limit_exceeded", Message: "Too many requests."},
		},
		{
			name: "extra fields ignored",
			body: `{"name":"not_found","message":"Email not found.","statusCode":404,"docs":"https://sendkit.com"}`,
			want: ErrorResponse{Name: "not_found", Message: "Email not found.", StatusCode: code(404)},
		},
		{
			name: "empty strings are still an envelope",
			body: `{"name":"","message":""}`,
			want: ErrorResponse{},
		},
		{name: "plain text", body: "Bad Gateway", want: fallbackErrorResponse()},
		{name: "empty body", body: "", want: fallbackErrorResponse()},
		{name: "json null", body: "null", want: fallbackErrorResponse()},
		{name: "missing name", body: `{"message":"x"}`, want: fallbackErrorResponse()},
		{name: "status code not a number", body: `{"name":"x","message":"y","statusCode":"422"}`, want: fallbackErrorResponse()},
		{name: "status code negative", body: `{"name":"x","message":"y","statusCode":-1}`, want: fallbackErrorResponse()},
		{name: "status code above uint16", body: `{"name":"x","message":"y","statusCode":70000}`, want: fallbackErrorResponse()},
		{
			name: "status code at uint16 bound",
			body: `{"name":"x","message":"y","statusCode":65535}`,
			want: ErrorResponse{Name: "x", Message: "y", StatusCode: code(65535)},
		},
		{name: "trailing bytes", body: `{"name":"x","message":"y"} junk`, want: fallbackErrorResponse()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, decodeErrorResponse(strings.NewReader(tt.body)))
		})
	}
}

func TestDecodeResponse(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		out, err := decodeResponse[SendEmailResponse](newResponse(http.StatusOK, `{"id":"X"}`))
		require.NoError(t, err)
		require.Equal(t, "X", out.ID)
	})

	t.Run("any 2xx is success", func(t *testing.T) {
		t.Parallel()

		out, err := decodeResponse[SendMimeResponse](newResponse(http.StatusAccepted, `{"id":"Y"}`))
		require.NoError(t, err)
		require.Equal(t, "Y", out.ID)
	})

	t.Run("redirect status is an api error", func(t *testing.T) {
		t.Parallel()

		_, err := decodeResponse[SendEmailResponse](newResponse(http.StatusNotModified, ""))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, FallbackErrorName, apiErr.Name)
	})

	t.Run("invalid success body", func(t *testing.T) {
		t.Parallel()

		bodies := map[string]string{
			"truncated":      `{"id":`,
			"empty object":   `{}`,
			"json null":      `null`,
			"null id":        `{"id":null}`,
			"empty id":       `{"id":""}`,
			"numeric id":     `{"id":42}`,
			"trailing bytes": `{"id":"X"} junk`,
			"two values":     `{"id":"X"}{"id":"Y"}`,
			"array":          `[{"id":"X"}]`,
			"plain text":     `not json`,
		}
		for name, body := range bodies {
			t.Run(name, func(t *testing.T) {
				t.Parallel()

				out, err := decodeResponse[SendEmailResponse](newResponse(http.StatusOK, body))
				require.Nil(t, out)
				var terr *TransportError
				require.ErrorAs(t, err, &terr)
				require.Equal(t, "decode response", terr.Op)
				require.ErrorIs(t, err, ErrTransport)
			})
		}
	})

	t.Run("missing id on mime response", func(t *testing.T) {
		t.Parallel()

		_, err := decodeResponse[SendMimeResponse](newResponse(http.StatusAccepted, `{}`))
		require.ErrorIs(t, err, errMissingID)
	})
}

func TestErrorResponse_String(t *testing.T) {
	t.Parallel()

	code := 422
	require.Equal(t, "validation_error (422): bad", ErrorResponse{Name: "validation_error", Message: "bad", StatusCode: &code}.String())
	require.Equal(t, "application_error (0): Unknown error", fallbackErrorResponse().String())
}
