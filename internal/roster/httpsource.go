package roster

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"edgecam/internal/model"
)

// HTTPSource is the one reference Source the core ships with: a GET against
// an external roster-of-active-members endpoint, the same manual
// *http.Client idiom as the FaceAnalyzer and credential-provider reference
// clients. The DynamoDB reads for reservations/members/assets/hosts behind
// that endpoint are out of scope per the capability boundary.
type HTTPSource struct {
	endpoint string
	client   *http.Client
	fallback func() ([]*model.Member, error)
}

// NewHTTPSource constructs an HTTPSource. fallback is consulted (typically
// the local store's last-saved snapshot) when the HTTP call fails, so a
// restart or a transient network outage does not zero out the roster.
func NewHTTPSource(endpoint string, fallback func() ([]*model.Member, error)) *HTTPSource {
	return &HTTPSource{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		fallback: fallback,
	}
}

type wireMember struct {
	MemberNo        string    `json:"memberNo"`
	ReservationCode string    `json:"reservationCode"`
	ListingID       string    `json:"listingId"`
	FullName        string    `json:"fullName"`
	KeyNotified     bool      `json:"keyNotified"`
	FaceEmbedding   []float32 `json:"faceEmbedding"`
}

// Fetch implements the Source function signature.
func (s *HTTPSource) Fetch() ([]*model.Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return s.fallback()
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return s.fallback()
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return s.fallback()
	}

	var wire []wireMember
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return s.fallback()
	}

	members := make([]*model.Member, len(wire))
	for i, w := range wire {
		members[i] = &model.Member{
			MemberNo:        w.MemberNo,
			ReservationCode: w.ReservationCode,
			ListingID:       w.ListingID,
			FullName:        w.FullName,
			KeyNotified:     w.KeyNotified,
			FaceEmbedding:   w.FaceEmbedding,
		}
	}
	return members, nil
}
