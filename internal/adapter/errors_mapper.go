package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/futuristic/perceptronx/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into one of the package's
// sentinel errors. The `{detail}` error body is parsed first; when it is
// absent or unreadable the error falls back to "failed with code N".
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp)

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	default:
		return fmt.Errorf("%w: %s", ErrServer, detail)
	}
}

// errorDetail extracts the human-readable message from an error body.
func errorDetail(resp *resty.Response) string {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
		return body.Detail
	}

	return fmt.Sprintf("failed with code %d", resp.StatusCode())
}
