// utils/identity.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// IdentityService deletes accounts at the external identity provider's
// management API. When no base URL or credential is configured the service is
// disabled and deletions report a provider error instead of failing the
// request, matching the best-effort two-phase delete.
type IdentityService struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewIdentityService reads IDENTITY_API_URL and IDENTITY_API_TOKEN.
func NewIdentityService() *IdentityService {
	baseURL := os.Getenv("IDENTITY_API_URL")
	apiToken := os.Getenv("IDENTITY_API_TOKEN")
	if baseURL == "" || apiToken == "" {
		logrus.Warn("IDENTITY_API_URL/IDENTITY_API_TOKEN not set, identity provider deletions disabled")
	}
	return &IdentityService{
		baseURL:  baseURL,
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// DeleteAccount removes the account with the given provider id. The caller
// has already deleted the local record; a failure here is reported back, not
// rolled back.
func (is *IdentityService) DeleteAccount(ctx context.Context, externalID string) error {
	if is.baseURL == "" || is.apiToken == "" {
		return fmt.Errorf("identity provider not configured")
	}
	if externalID == "" {
		return fmt.Errorf("user has no identity provider id")
	}

	endpoint := fmt.Sprintf("%s/users/%s", is.baseURL, url.PathEscape(externalID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+is.apiToken)

	resp, err := is.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var providerErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &providerErr) == nil && providerErr.Message != "" {
			return fmt.Errorf("identity provider returned %d: %s", resp.StatusCode, providerErr.Message)
		}
		return fmt.Errorf("identity provider returned %d", resp.StatusCode)
	}
	return nil
}
