package roster

import (
	"errors"
	"math"
	"testing"

	"edgecam/internal/model"
)

func embeddingOf(head float32) []float32 {
	e := make([]float32, embeddingLen)
	e[0] = head
	return e
}

func TestBuildRowCountAndNorms(t *testing.T) {
	members := []*model.Member{
		{MemberNo: "1", ReservationCode: "A", FaceEmbedding: embeddingOf(3)},
		{MemberNo: "2", ReservationCode: "B", FaceEmbedding: embeddingOf(4)},
	}
	m := Build(members)

	if m.Len() != len(members) {
		t.Fatalf("expected row count %d, got %d", len(members), m.Len())
	}
	for i, row := range m.Rows {
		want := float32(math.Sqrt(float64(row[0]) * float64(row[0])))
		if diff := m.Norms[i] - want; diff > 1e-4 || diff < -1e-4 {
			t.Errorf("row %d: norm %v does not match hand-computed %v", i, m.Norms[i], want)
		}
	}
}

func TestMatchExactThresholdIsAMatch(t *testing.T) {
	// A single-row matrix where the query embedding is identical to the
	// roster row: similarity is exactly 1.0.
	member := &model.Member{MemberNo: "1", ReservationCode: "A", FaceEmbedding: embeddingOf(1)}
	m := Build([]*model.Member{member})

	got, sim, isMatch := m.Match(embeddingOf(1), 1.0)
	if !isMatch {
		t.Fatal("similarity exactly equal to threshold must be considered a match")
	}
	if got != member {
		t.Error("expected the matching member to be returned")
	}
	if sim < 0.999 {
		t.Errorf("expected similarity ~1.0, got %v", sim)
	}
}

func TestMatchBelowThresholdReturnsBestEffort(t *testing.T) {
	member := &model.Member{MemberNo: "1", ReservationCode: "A", FaceEmbedding: embeddingOf(1)}
	m := Build([]*model.Member{member})

	query := embeddingOf(1)
	query[1] = 5 // skew the query away from the roster row

	got, _, isMatch := m.Match(query, 0.999999)
	if isMatch {
		t.Fatal("expected no match above an unreachable threshold")
	}
	if got != nil {
		t.Error("expected nil member on no-match")
	}
}

func TestMatchEmptyMatrixNeverMatches(t *testing.T) {
	m := Build(nil)
	_, _, isMatch := m.Match(embeddingOf(1), 0.1)
	if isMatch {
		t.Fatal("an empty roster must never match")
	}
}

func TestCacheRefreshFiltersMissingEmbeddings(t *testing.T) {
	members := []*model.Member{
		{MemberNo: "1", ReservationCode: "A", FaceEmbedding: embeddingOf(1)},
		{MemberNo: "2", ReservationCode: "B", FaceEmbedding: nil},
	}
	c := NewCache(func() ([]*model.Member, error) { return members, nil })

	rebuilt, err := c.Refresh()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rebuilt {
		t.Fatal("expected the first refresh to rebuild the matrix")
	}
	if c.Current().Len() != 1 {
		t.Fatalf("expected member without embedding to be filtered, got %d rows", c.Current().Len())
	}
}

func TestCacheRefreshIsNoOpWhenIdentitySetUnchanged(t *testing.T) {
	members := []*model.Member{
		{MemberNo: "1", ReservationCode: "A", FaceEmbedding: embeddingOf(1)},
	}
	c := NewCache(func() ([]*model.Member, error) { return members, nil })

	if _, err := c.Refresh(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := c.Current()

	rebuilt, err := c.Refresh()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rebuilt {
		t.Fatal("expected refresh to be a no-op when the identity set is unchanged")
	}
	if c.Current() != before {
		t.Fatal("expected the matrix pointer to be unchanged on a no-op refresh")
	}
}

func TestCacheRefreshPropagatesSourceError(t *testing.T) {
	wantErr := errors.New("source unavailable")
	c := NewCache(func() ([]*model.Member, error) { return nil, wantErr })

	_, err := c.Refresh()
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected source error to propagate, got %v", err)
	}
}
