// Package artifact implements the ArtifactSink capability: uploads local
// files to presigned S3 PUT URLs signed with AWS SigV4 query parameters.
// The presign is a small, auditable query-string construction, so the
// request is built by hand rather than through an SDK client.
package artifact

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

// Credentials is the lazily-refreshed credential set used to sign requests.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	ExpiresAt       time.Time
}

// CredentialProvider fetches a fresh credential set from the (external,
// out-of-scope) credential-provider HTTPS endpoint.
type CredentialProvider interface {
	FetchCredentials(ctx context.Context) (*Credentials, error)
}

// Sink implements the ArtifactSink capability: Upload(objectKey, localPath).
type Sink struct {
	bucket   string
	region   string
	provider CredentialProvider
	client   *http.Client

	mu    sync.Mutex
	creds *Credentials
}

// New constructs a Sink for the given bucket/region, backed by provider for
// credential refresh.
func New(bucket, region string, provider CredentialProvider) *Sink {
	return &Sink{
		bucket:   bucket,
		region:   region,
		provider: provider,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// credentials returns cached credentials, refreshing when fewer than 60s
// remain before expiry, per the credential-expiry error-handling rule.
func (s *Sink) credentials(ctx context.Context) (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds != nil && time.Until(s.creds.ExpiresAt) > 60*time.Second {
		return s.creds, nil
	}
	fresh, err := s.provider.FetchCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch credentials: %w", err)
	}
	s.creds = fresh
	return fresh, nil
}

// Upload implements ArtifactSink.upload(object_key, local_file_path). On a
// successful PUT (HTTP 200) the local file is deleted.
func (s *Sink) Upload(ctx context.Context, objectKey, localPath string) error {
	creds, err := s.credentials(ctx)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("read local file: %w", err)
	}

	signedURL, err := s.presign(objectKey, creds)
	if err != nil {
		return fmt.Errorf("presign url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload failed: status %d", resp.StatusCode)
	}

	if err := os.Remove(localPath); err != nil {
		return fmt.Errorf("upload ok but could not remove local file: %w", err)
	}
	return nil
}

// presign builds the SigV4 query-string presigned URL for a PUT of
// objectKey, with the exact parameter set named in the external interfaces
// section and payload-hash UNSIGNED-PAYLOAD.
func (s *Sink) presign(objectKey string, creds *Credentials) (string, error) {
	now := time.Now().UTC()
	amzDate := now.Format("20060102T150405Z")
	dateStamp := now.Format("20060102")
	scope := fmt.Sprintf("%s/%s/s3/aws4_request", dateStamp, s.region)
	credential := fmt.Sprintf("%s/%s", creds.AccessKeyID, scope)

	host := fmt.Sprintf("%s.s3.%s.amazonaws.com", s.bucket, s.region)
	canonicalURI := "/" + escapeKey(objectKey)

	query := url.Values{}
	query.Set("X-Amz-Algorithm", "AWS4-HMAC-SHA256")
	query.Set("X-Amz-Credential", credential)
	query.Set("X-Amz-Date", amzDate)
	query.Set("X-Amz-Expires", "300")
	if creds.SessionToken != "" {
		query.Set("X-Amz-Security-Token", creds.SessionToken)
	}
	query.Set("X-Amz-SignedHeaders", "host")

	canonicalQuery := query.Encode()
	canonicalHeaders := "host:" + host + "\n"
	canonicalRequest := fmt.Sprintf("PUT\n%s\n%s\n%s\nhost\nUNSIGNED-PAYLOAD",
		canonicalURI, canonicalQuery, canonicalHeaders)

	stringToSign := fmt.Sprintf("AWS4-HMAC-SHA256\n%s\n%s\n%s",
		amzDate, scope, hashHex(canonicalRequest))

	signingKey := signingKey(creds.SecretAccessKey, dateStamp, s.region, "s3")
	signature := hex.EncodeToString(hmacSHA256(signingKey, stringToSign))

	query.Set("X-Amz-Signature", signature)

	return fmt.Sprintf("https://%s%s?%s", host, canonicalURI, query.Encode()), nil
}

// escapeKey percent-encodes each path segment of an object key while keeping
// the "/" separators literal, as SigV4 canonicalization requires.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func hashHex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key []byte, data string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(data))
	return h.Sum(nil)
}

func signingKey(secret, dateStamp, region, service string) []byte {
	kDate := hmacSHA256([]byte("AWS4"+secret), dateStamp)
	kRegion := hmacSHA256(kDate, region)
	kService := hmacSHA256(kRegion, service)
	return hmacSHA256(kService, "aws4_request")
}

