package stream

import (
	"bytes"
	"testing"
	"time"

	"edgecam/internal/model"
)

func testSession() *Session {
	cam := &model.Camera{IP: "10.0.0.1", UUID: "u1", Name: "front", Framerate: 10}
	cfg := Config{
		PreRecordingSec: 10,
		PreDetectingSec: 3,
		PTSCacheCap:     100,
		DetectingRate:   0.5,
		StartRetries:    1,
		StartBackoff:    time.Millisecond,
		VideoRoot:       "/tmp",
	}
	return New(cam, cfg, nil, nil)
}

func jpegFrame(payload string) []byte {
	var b bytes.Buffer
	b.Write([]byte{0xFF, 0xD8})
	b.WriteString(payload)
	b.Write([]byte{0xFF, 0xD9})
	return b.Bytes()
}

func TestExtractJPEGFindsOneCompleteFrame(t *testing.T) {
	frame := jpegFrame("abc")
	buf := append([]byte("garbage"), frame...)

	got, rest := extractJPEG(buf)
	if got == nil {
		t.Fatal("expected a complete frame to be extracted")
	}
	if !bytes.Equal(got, frame) {
		t.Errorf("extracted frame %x does not match input %x", got, frame)
	}
	if len(rest) != 0 {
		t.Errorf("expected no remainder, got %d bytes", len(rest))
	}
}

func TestExtractJPEGWaitsForFrameEnd(t *testing.T) {
	partial := []byte{0xFF, 0xD8, 'a', 'b'}
	got, rest := extractJPEG(partial)
	if got != nil {
		t.Fatal("expected no frame from a partial buffer")
	}
	if !bytes.Equal(rest, partial) {
		t.Error("expected the partial buffer to be kept for the next read")
	}
}

func TestExtractJPEGHandlesBackToBackFrames(t *testing.T) {
	first := jpegFrame("one")
	second := jpegFrame("two")
	buf := append(append([]byte(nil), first...), second...)

	got1, rest := extractJPEG(buf)
	if !bytes.Equal(got1, first) {
		t.Fatal("expected the first frame")
	}
	got2, rest := extractJPEG(rest)
	if !bytes.Equal(got2, second) {
		t.Fatal("expected the second frame")
	}
	if len(rest) != 0 {
		t.Errorf("expected an empty remainder, got %d bytes", len(rest))
	}
}

// A second start-recording request while a job is active is a no-op.
func TestStartRecordingIsIdempotent(t *testing.T) {
	s := testSession()
	now := time.Now()

	if !s.StartRecording(now) {
		t.Fatal("expected the first StartRecording to succeed")
	}
	if s.StartRecording(now.Add(time.Second)) {
		t.Fatal("expected a second StartRecording to be a no-op while a job is active")
	}
}

func TestStartRecordingSuppressesPreBufferEviction(t *testing.T) {
	s := testSession()
	base := time.Now()

	s.bufs.PreBuffer.Append([]byte("old"), base.Add(-time.Hour))
	s.StartRecording(base)
	s.bufs.PreBuffer.Append([]byte("new"), base)

	if got := s.bufs.PreBuffer.Len(); got != 2 {
		t.Fatalf("expected the pre-buffer to retain all samples while recording, got %d", got)
	}
}

func TestStopRecordingWithoutActiveJobIsNoOp(t *testing.T) {
	s := testSession()
	// Must not panic or spawn a save job.
	s.StopRecording(time.Now())
}

func TestStopFeedingWithoutSessionIsNoOp(t *testing.T) {
	s := testSession()
	s.StopFeeding()
	if s.IsFeeding() {
		t.Fatal("expected IsFeeding to stay false")
	}
}

func TestFfmpegFormatMapsH265ToHevc(t *testing.T) {
	cases := map[string]string{"h264": "h264", "h265": "hevc", "": "h264"}
	for in, want := range cases {
		if got := ffmpegFormat(in); got != want {
			t.Errorf("ffmpegFormat(%q) = %q, want %q", in, got, want)
		}
	}
}
