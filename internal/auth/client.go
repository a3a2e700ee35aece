package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const sessionCallTimeout = 10 * time.Second

// SessionIssuer exchanges credentials for a session with the external
// identity service. One attempt per call; callers map the returned error
// code to user-facing text.
type SessionIssuer interface {
	IssueSession(ctx context.Context, req SessionRequest) (*SessionResult, error)
}

// SessionRequest carries a single credential submission.
type SessionRequest struct {
	Email    string
	Password string
	TOTPCode string
}

// SessionResult is the issuer's verdict. Error is empty on success.
type SessionResult struct {
	Error  ErrorCode `json:"error,omitempty"`
	UserID string    `json:"userId,omitempty"`
}

// Succeeded reports whether a session was issued.
func (r *SessionResult) Succeeded() bool {
	return r.Error == ""
}

// sessionHTTPClient is the production SessionIssuer backed by the identity
// service's session endpoint.
type sessionHTTPClient struct {
	endpoint string
}

func NewSessionClient(endpoint string) SessionIssuer {
	return &sessionHTTPClient{endpoint: endpoint}
}

func (c *sessionHTTPClient) IssueSession(ctx context.Context, sr SessionRequest) (*SessionResult, error) {
	data := url.Values{}
	data.Set("email", sr.Email)
	data.Set("password", sr.Password)
	if sr.TOTPCode != "" {
		data.Set("totpCode", sr.TOTPCode)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{Timeout: sessionCallTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute session request: %w", err)
	}
	defer resp.Body.Close()

	// The issuer reports rejections in the body, not via status codes;
	// anything but 200/401 means the service itself is broken.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusUnauthorized {
		return nil, fmt.Errorf("session endpoint returned status %d", resp.StatusCode)
	}

	var result SessionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode session response: %w", err)
	}

	return &result, nil
}
