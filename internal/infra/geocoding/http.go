package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"estate/internal/domain/service"
	"estate/internal/errors"
)

const maxErrorBody = 512

// getJSON issues a GET and decodes a 2xx JSON body into out. Transport
// failures and other statuses are reported as service.ErrGeocoderUnavailable.
func getJSON(ctx context.Context, client *http.Client, rawURL, userAgent string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Join(service.ErrGeocoderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Join(service.ErrGeocoderUnavailable, errors.Errorf("status %d: %s", resp.StatusCode, body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(service.ErrGeocoderUnavailable, errors.Wrap(err, "decode response"))
	}

	return nil
}
