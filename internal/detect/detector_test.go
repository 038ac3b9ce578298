package detect

import (
	"context"
	"testing"
	"time"

	"edgecam/internal/model"
	"edgecam/internal/roster"
)

type fakeAnalyzer struct {
	faces   []Face
	err     error
	backend string
	calls   int
}

func (f *fakeAnalyzer) Detect(ctx context.Context, image []byte) ([]Face, error) {
	f.calls++
	return f.faces, f.err
}

func (f *fakeAnalyzer) Backend() string { return f.backend }

type fakeThreshold struct {
	threshold float32
	ageSec    float64
}

func (f *fakeThreshold) FaceThreshold(backend string) float32 { return f.threshold }
func (f *fakeThreshold) AgeDetectingSec() float64             { return f.ageSec }

func embeddingHead(v float32) []float32 {
	e := make([]float32, 512)
	e[0] = v
	return e
}

func newTestRoster(members ...*model.Member) *roster.Cache {
	return roster.NewCache(func() ([]*model.Member, error) { return members, nil })
}

func TestProcessFirstMatchWinsSuppressesSubsequentFrames(t *testing.T) {
	member := &model.Member{MemberNo: "1", ReservationCode: "A", FaceEmbedding: embeddingHead(1)}
	rc := newTestRoster(member)
	rc.Refresh()

	analyzer := &fakeAnalyzer{faces: []Face{{BBox: [4]int{0, 0, 1, 1}, Embedding: embeddingHead(1)}}, backend: "insightface"}
	th := &fakeThreshold{threshold: 0.5, ageSec: 10}

	var matched int
	d := New(analyzer, rc, th, 10, func(ev *model.MatchEvent) { matched++ })

	frame := &model.DecodedFrame{CameraIP: "10.0.0.1", Txn: "t1", FrameTime: time.Now(), Image: []byte("x")}
	d.process(frame)
	d.process(frame)
	d.process(frame)

	if matched != 1 {
		t.Fatalf("expected exactly one match to fire (first-match-wins), got %d", matched)
	}
	if analyzer.calls != 1 {
		t.Fatalf("expected the analyzer to be called once before identified suppresses further frames, got %d calls", analyzer.calls)
	}
}

func TestProcessDiscardsStaleFrames(t *testing.T) {
	rc := newTestRoster()
	rc.Refresh()
	analyzer := &fakeAnalyzer{backend: "insightface"}
	th := &fakeThreshold{threshold: 0.5, ageSec: 1}

	d := New(analyzer, rc, th, 10, nil)
	stale := &model.DecodedFrame{CameraIP: "10.0.0.2", Txn: "t1", FrameTime: time.Now().Add(-10 * time.Second), Image: []byte("x")}
	d.process(stale)

	if analyzer.calls != 0 {
		t.Fatal("expected a frame older than AgeDetectingSec to be discarded before calling the analyzer")
	}
}

func TestProcessAcceptsFrameAtBoundaryAge(t *testing.T) {
	rc := newTestRoster()
	rc.Refresh()
	analyzer := &fakeAnalyzer{backend: "insightface"}
	th := &fakeThreshold{threshold: 0.5, ageSec: 5}

	d := New(analyzer, rc, th, 10, nil)
	// Just under the cutoff: must still be processed.
	frame := &model.DecodedFrame{CameraIP: "10.0.0.3", Txn: "t1", FrameTime: time.Now().Add(-4 * time.Second), Image: []byte("x")}
	d.process(frame)

	if analyzer.calls != 1 {
		t.Fatal("expected a frame within the age threshold to reach the analyzer")
	}
}

func TestProcessSessionEndInvokesHandlerAndClearsState(t *testing.T) {
	rc := newTestRoster()
	rc.Refresh()
	analyzer := &fakeAnalyzer{backend: "insightface"}
	th := &fakeThreshold{threshold: 0.5, ageSec: 10}

	d := New(analyzer, rc, th, 10, nil)

	var gotIP, gotTxn string
	var gotFrames int
	d.SetSessionEndHandler(func(cameraIP, txn string, frames int) {
		gotIP, gotTxn, gotFrames = cameraIP, txn, frames
	})

	frame := &model.DecodedFrame{CameraIP: "10.0.0.4", Txn: "t1", FrameTime: time.Now(), Image: []byte("x")}
	d.process(frame)
	d.process(&model.DecodedFrame{CameraIP: "10.0.0.4", Txn: "t1", SessionEnd: true})

	if gotIP != "10.0.0.4" || gotTxn != "t1" {
		t.Fatalf("unexpected session end callback args: ip=%s txn=%s", gotIP, gotTxn)
	}
	if gotFrames != 1 {
		t.Fatalf("expected 1 processed frame reported, got %d", gotFrames)
	}
	if _, ok := d.sessions["10.0.0.4"]; ok {
		t.Fatal("expected session state to be cleared after SESSION_END")
	}
}

func TestProcessNewTxnResetsIdentifiedFlag(t *testing.T) {
	member := &model.Member{MemberNo: "1", ReservationCode: "A", FaceEmbedding: embeddingHead(1)}
	rc := newTestRoster(member)
	rc.Refresh()

	analyzer := &fakeAnalyzer{faces: []Face{{Embedding: embeddingHead(1)}}, backend: "insightface"}
	th := &fakeThreshold{threshold: 0.5, ageSec: 10}

	var matched int
	d := New(analyzer, rc, th, 10, func(ev *model.MatchEvent) { matched++ })

	d.process(&model.DecodedFrame{CameraIP: "10.0.0.5", Txn: "t1", FrameTime: time.Now(), Image: []byte("x")})
	d.process(&model.DecodedFrame{CameraIP: "10.0.0.5", Txn: "t2", FrameTime: time.Now(), Image: []byte("x")})

	if matched != 2 {
		t.Fatalf("expected a new txn to reset first-match-wins and produce a second match, got %d", matched)
	}
}

func TestEnqueueDropsOnFullQueue(t *testing.T) {
	rc := newTestRoster()
	rc.Refresh()
	d := New(&fakeAnalyzer{backend: "insightface"}, rc, &fakeThreshold{threshold: 0.5, ageSec: 10}, 1, nil)

	f1 := &model.DecodedFrame{CameraIP: "10.0.0.6", Txn: "t1", FrameTime: time.Now()}
	if !d.Enqueue(f1) {
		t.Fatal("expected the first enqueue on an empty queue to succeed")
	}
	f2 := &model.DecodedFrame{CameraIP: "10.0.0.6", Txn: "t1", FrameTime: time.Now()}
	if d.Enqueue(f2) {
		t.Fatal("expected enqueue to report false once the bounded queue is full")
	}
}

func TestRunStopDrainsQueueWithoutProcessing(t *testing.T) {
	rc := newTestRoster()
	rc.Refresh()
	analyzer := &fakeAnalyzer{backend: "insightface"}
	d := New(analyzer, rc, &fakeThreshold{threshold: 0.5, ageSec: 10}, 10, nil)

	done := make(chan struct{})
	go func() {
		d.Run(time.Millisecond)
		close(done)
	}()

	d.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected Run to return promptly after Stop")
	}
}
