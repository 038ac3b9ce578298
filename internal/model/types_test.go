package model

import "testing"

func TestHasLegacyLock(t *testing.T) {
	cases := []struct {
		name  string
		locks []Lock
		want  bool
	}{
		{"no locks", nil, false},
		{"all sensored", []Lock{{AssetID: "a", WithKeypad: true}}, false},
		{"one legacy", []Lock{{AssetID: "a", WithKeypad: true}, {AssetID: "b", WithKeypad: false}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := &Camera{Locks: c.locks}
			if got := cam.HasLegacyLock(); got != c.want {
				t.Errorf("HasLegacyLock() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestAllLocksSensored(t *testing.T) {
	cases := []struct {
		name  string
		locks []Lock
		want  bool
	}{
		{"no locks is vacuously all-sensored", nil, true},
		{"all sensored", []Lock{{AssetID: "a", WithKeypad: true}, {AssetID: "b", WithKeypad: true}}, true},
		{"one legacy breaks it", []Lock{{AssetID: "a", WithKeypad: true}, {AssetID: "b", WithKeypad: false}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := &Camera{Locks: c.locks}
			if got := cam.AllLocksSensored(); got != c.want {
				t.Errorf("AllLocksSensored() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIdentityKeyDistinguishesDifferentEmbeddingsSameMemberNo(t *testing.T) {
	m1 := &Member{MemberNo: "1", ReservationCode: "A", FaceEmbedding: []float32{1, 2, 3, 4}}
	m2 := &Member{MemberNo: "1", ReservationCode: "A", FaceEmbedding: []float32{1, 2, 3, 5}}

	if m1.IdentityKey() == m2.IdentityKey() {
		t.Fatal("expected distinct embeddings to produce distinct identity keys")
	}
}

func TestIdentityKeyStableForEqualEmbeddings(t *testing.T) {
	m1 := &Member{MemberNo: "1", ReservationCode: "A", FaceEmbedding: []float32{1, 2, 3, 4}}
	m2 := &Member{MemberNo: "1", ReservationCode: "A", FaceEmbedding: []float32{1, 2, 3, 4}}

	if m1.IdentityKey() != m2.IdentityKey() {
		t.Fatal("expected identical embeddings to produce identical identity keys")
	}
}

func TestIdentityKeyHandlesShortEmbeddings(t *testing.T) {
	m := &Member{MemberNo: "1", ReservationCode: "A", FaceEmbedding: []float32{1}}
	// Must not panic on an embedding shorter than the 4-value identity head.
	_ = m.IdentityKey()
}

func TestNewTriggerContextInitializesMaps(t *testing.T) {
	ctx := NewTriggerContext(true)
	if !ctx.StartedByONVIF {
		t.Error("expected StartedByONVIF to be true")
	}
	if ctx.SpecificLocks == nil || ctx.ActiveOccupancy == nil {
		t.Fatal("expected both maps to be initialized, not nil")
	}
	ctx.SpecificLocks["x"] = true
	if !ctx.SpecificLocks["x"] {
		t.Error("expected SpecificLocks map to be writable")
	}
}

func TestOccupancyTriggeredLocks(t *testing.T) {
	ctx := NewTriggerContext(false)
	ctx.SpecificLocks["L1"] = true
	ctx.SpecificLocks["L2"] = true

	got := ctx.OccupancyTriggeredLocks()
	if len(got) != 2 {
		t.Fatalf("expected 2 locks, got %d", len(got))
	}
}
