package match

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"

	"edgecam/internal/model"
)

type fakeOutput struct {
	records []model.OutputRecord
}

func (f *fakeOutput) Enqueue(record model.OutputRecord) bool {
	f.records = append(f.records, record)
	return true
}

func testJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to build test JPEG: %v", err)
	}
	return buf.Bytes()
}

func TestHandleDerivesObjectKeysAndEnqueuesRecord(t *testing.T) {
	out := &fakeOutput{}
	h := New(t.TempDir(), "identity1", "host1", "propA", "core1", out)

	member := &model.Member{MemberNo: "M1", ReservationCode: "R1", ListingID: "L1", FullName: "Jane Doe"}
	cam := &model.Camera{IP: "10.0.0.1", Name: "front-door"}

	evt := &model.MatchEvent{
		CameraIP: cam.IP,
		Camera:   cam,
		Image:    testJPEG(t),
		Faces:    []model.FaceMatch{{BBox: [4]int{1, 1, 4, 4}, Member: member, Similarity: 0.91}},
	}

	if err := h.Handle(evt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.records) != 1 {
		t.Fatalf("expected one enqueued record, got %d", len(out.records))
	}

	rec := out.records[0].MemberDetected
	if rec == nil {
		t.Fatal("expected a MemberDetected record")
	}
	if len(rec.Members) != 1 {
		t.Fatalf("expected 1 member payload, got %d", len(rec.Members))
	}

	payload := rec.Members[0]
	wantCheckIn := "private/identity1/host1/listings/L1/R1/checkIn/M1.jpg"
	if payload.CheckInImgKey != wantCheckIn {
		t.Errorf("CheckInImgKey = %q, want %q", payload.CheckInImgKey, wantCheckIn)
	}
	wantPropertyPrefix := "private/identity1/host1/properties/propA/core1/10.0.0.1/"
	if !strings.HasPrefix(payload.PropertyImgKey, wantPropertyPrefix) {
		t.Errorf("PropertyImgKey = %q, want prefix %q", payload.PropertyImgKey, wantPropertyPrefix)
	}
	wantSnapshotPrefix := "host1/properties/propA/core1/10.0.0.1/"
	if !strings.HasPrefix(rec.SnapshotKey, wantSnapshotPrefix) {
		t.Errorf("SnapshotKey = %q, want prefix %q", rec.SnapshotKey, wantSnapshotPrefix)
	}
}

func TestHandleSkipsUnmatchedFaces(t *testing.T) {
	out := &fakeOutput{}
	h := New(t.TempDir(), "identity1", "host1", "propA", "core1", out)
	cam := &model.Camera{IP: "10.0.0.2", Name: "lobby"}

	evt := &model.MatchEvent{
		CameraIP: cam.IP,
		Camera:   cam,
		Image:    testJPEG(t),
		Faces:    []model.FaceMatch{{BBox: [4]int{0, 0, 2, 2}, Member: nil, Similarity: 0}},
	}

	if err := h.Handle(evt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.records) != 0 {
		t.Fatal("expected no record to be enqueued when no face has a matched member")
	}
}

func TestHandleCapturedMembersOnlyKeepsBestSimilarity(t *testing.T) {
	out := &fakeOutput{}
	h := New(t.TempDir(), "identity1", "host1", "propA", "core1", out)
	member := &model.Member{MemberNo: "M1", ReservationCode: "R1", ListingID: "L1", FullName: "Jane Doe"}
	cam := &model.Camera{IP: "10.0.0.3", Name: "gate"}

	first := &model.MatchEvent{CameraIP: cam.IP, Camera: cam, Image: testJPEG(t),
		Faces: []model.FaceMatch{{Member: member, Similarity: 0.95}}}
	second := &model.MatchEvent{CameraIP: cam.IP, Camera: cam, Image: testJPEG(t),
		Faces: []model.FaceMatch{{Member: member, Similarity: 0.80}}}

	if err := h.Handle(first); err != nil {
		t.Fatal(err)
	}
	if err := h.Handle(second); err != nil {
		t.Fatal(err)
	}

	if len(out.records) != 1 {
		t.Fatalf("expected a lower-similarity repeat of the same member to be suppressed, got %d records", len(out.records))
	}
}

func TestHandleReRecordsOnImprovedSimilarity(t *testing.T) {
	out := &fakeOutput{}
	h := New(t.TempDir(), "identity1", "host1", "propA", "core1", out)
	member := &model.Member{MemberNo: "M1", ReservationCode: "R1", ListingID: "L1", FullName: "Jane Doe"}
	cam := &model.Camera{IP: "10.0.0.4", Name: "gate"}

	low := &model.MatchEvent{CameraIP: cam.IP, Camera: cam, Image: testJPEG(t),
		Faces: []model.FaceMatch{{Member: member, Similarity: 0.70}}}
	high := &model.MatchEvent{CameraIP: cam.IP, Camera: cam, Image: testJPEG(t),
		Faces: []model.FaceMatch{{Member: member, Similarity: 0.95}}}

	if err := h.Handle(low); err != nil {
		t.Fatal(err)
	}
	if err := h.Handle(high); err != nil {
		t.Fatal(err)
	}

	if len(out.records) != 2 {
		t.Fatalf("expected a strictly better similarity to produce a second record, got %d", len(out.records))
	}
}
