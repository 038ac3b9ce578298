package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPCredentialProvider is the one reference CredentialProvider the core
// ships with: a GET against an external credential-vending endpoint,
// mirroring the same manual *http.Client request-construction idiom as the
// FaceAnalyzer HTTP reference client. The DynamoDB-backed issuance logic
// behind that endpoint is out of scope per the capability boundary.
type HTTPCredentialProvider struct {
	endpoint string
	client   *http.Client
}

// NewHTTPCredentialProvider constructs a provider against endpoint.
func NewHTTPCredentialProvider(endpoint string) *HTTPCredentialProvider {
	return &HTTPCredentialProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

type credentialResponse struct {
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	SessionToken    string `json:"sessionToken"`
	ExpiresAt       string `json:"expiresAt"`
}

// FetchCredentials implements CredentialProvider.
func (p *HTTPCredentialProvider) FetchCredentials(ctx context.Context) (*Credentials, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch credentials: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("credential provider returned %d", resp.StatusCode)
	}

	var body credentialResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode credential response: %w", err)
	}

	expiresAt, err := time.Parse(time.RFC3339, body.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("parse expiresAt: %w", err)
	}

	return &Credentials{
		AccessKeyID:     body.AccessKeyID,
		SecretAccessKey: body.SecretAccessKey,
		SessionToken:    body.SessionToken,
		ExpiresAt:       expiresAt,
	}, nil
}
