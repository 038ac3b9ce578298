package artifact

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testCreds() *Credentials {
	return &Credentials{
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		SessionToken:    "token123",
		ExpiresAt:       time.Now().Add(time.Hour),
	}
}

func TestPresignIncludesRequiredQueryParams(t *testing.T) {
	s := New("mybucket", "us-east-1", nil)
	raw, err := s.presign("properties/p1/cam/2026-07-29/10:00:00.jpg", testCreds())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("presigned URL did not parse: %v", err)
	}
	q := u.Query()

	for _, name := range []string{
		"X-Amz-Algorithm", "X-Amz-Credential", "X-Amz-Date",
		"X-Amz-Expires", "X-Amz-SignedHeaders", "X-Amz-Signature", "X-Amz-Security-Token",
	} {
		if q.Get(name) == "" {
			t.Errorf("expected query parameter %s to be set", name)
		}
	}

	if got := q.Get("X-Amz-Algorithm"); got != "AWS4-HMAC-SHA256" {
		t.Errorf("X-Amz-Algorithm = %q, want AWS4-HMAC-SHA256", got)
	}
	if !strings.HasPrefix(u.Host, "mybucket.s3.us-east-1.amazonaws.com") {
		t.Errorf("unexpected host: %q", u.Host)
	}
}

func TestPresignOmitsSecurityTokenWhenAbsent(t *testing.T) {
	s := New("mybucket", "us-east-1", nil)
	creds := testCreds()
	creds.SessionToken = ""

	raw, err := s.presign("some/key.jpg", creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, _ := url.Parse(raw)
	if u.Query().Get("X-Amz-Security-Token") != "" {
		t.Error("expected no X-Amz-Security-Token when the credential set carries none")
	}
}

type fakeProvider struct {
	creds *Credentials
	calls int
	err   error
}

func (f *fakeProvider) FetchCredentials(ctx context.Context) (*Credentials, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.creds, nil
}

func TestCredentialsRefreshesWhenNearExpiry(t *testing.T) {
	provider := &fakeProvider{creds: &Credentials{
		AccessKeyID: "A", SecretAccessKey: "s", ExpiresAt: time.Now().Add(30 * time.Second),
	}}
	s := New("b", "us-east-1", provider)

	if _, err := s.credentials(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.credentials(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.calls != 2 {
		t.Fatalf("expected a refresh on every call when credentials are within 60s of expiry, got %d calls", provider.calls)
	}
}

func TestCredentialsCachedWhenFarFromExpiry(t *testing.T) {
	provider := &fakeProvider{creds: &Credentials{
		AccessKeyID: "A", SecretAccessKey: "s", ExpiresAt: time.Now().Add(time.Hour),
	}}
	s := New("b", "us-east-1", provider)

	if _, err := s.credentials(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.credentials(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("expected cached credentials to avoid a second fetch, got %d calls", provider.calls)
	}
}

// rewriteHostTransport redirects every request to a fixed test server while
// leaving path and query untouched, so Upload's hardcoded *.amazonaws.com
// host can be exercised against httptest without changing Sink's API.
type rewriteHostTransport struct {
	targetHost string
}

func (rt *rewriteHostTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = rt.targetHost
	req.Host = rt.targetHost
	return http.DefaultTransport.RoundTrip(req)
}

func TestUploadDeletesLocalFileOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	dir := t.TempDir()
	localPath := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(localPath, []byte("data"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := New("mybucket", "us-east-1", &fakeProvider{creds: testCreds()})
	s.client = &http.Client{Transport: &rewriteHostTransport{targetHost: srv.Listener.Addr().String()}}

	if err := s.Upload(context.Background(), "some/key.mp4", localPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(localPath); !os.IsNotExist(err) {
		t.Fatal("expected the local file to be removed after a successful upload")
	}
}

func TestUploadLeavesLocalFileOnFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	dir := t.TempDir()
	localPath := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(localPath, []byte("data"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := New("mybucket", "us-east-1", &fakeProvider{creds: testCreds()})
	s.client = &http.Client{Transport: &rewriteHostTransport{targetHost: srv.Listener.Addr().String()}}

	if err := s.Upload(context.Background(), "some/key.mp4", localPath); err == nil {
		t.Fatal("expected an error on a non-200 response")
	}
	if _, err := os.Stat(localPath); err != nil {
		t.Fatal("expected the local file to remain on a failed upload")
	}
}
