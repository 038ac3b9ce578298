// Package detect implements the Detector component: the single shared
// worker that dequeues decoded frames from every camera, calls the
// FaceAnalyzer capability, and matches results against the current roster.
// One worker serves every camera so a single analyzer backend is never
// contended by parallel invocations.
package detect

import (
	"context"
	"log"
	"sync"
	"time"

	"edgecam/internal/metrics"
	"edgecam/internal/model"
	"edgecam/internal/roster"
)

// Face is one detected face returned by the FaceAnalyzer capability.
type Face struct {
	BBox      [4]int
	Embedding []float32
}

// FaceAnalyzer is the external detection+embedding capability the Detector
// consumes. The core does not implement a concrete embedding model; see
// the analyzer package for the one reference HTTP-backed implementation.
type FaceAnalyzer interface {
	Detect(ctx context.Context, image []byte) ([]Face, error)
	// Backend names the analyzer implementation, used to pick a
	// per-backend similarity threshold (FACE_THRESHOLD_INSIGHTFACE vs
	// FACE_THRESHOLD_HAILO).
	Backend() string
}

// Threshold resolves the current similarity cutoff for a backend name.
type Threshold interface {
	FaceThreshold(backend string) float32
	AgeDetectingSec() float64
}

// sessionState is the Detector's per-camera bookkeeping. It is mutated only
// from the Detector goroutine, so it carries no lock.
type sessionState struct {
	txn          string
	identified   bool
	detected     int
	firstFrameAt time.Time
}

// Detector is the C3 component.
type Detector struct {
	analyzer     FaceAnalyzer
	roster       *roster.Cache
	threshold    Threshold
	onMatch      func(*model.MatchEvent)
	onSessionEnd func(cameraIP string, txn string, frames int)

	in      chan *model.DecodedFrame
	stopCh  chan struct{}
	stopped sync.WaitGroup

	sessions map[string]*sessionState

	// continuousMatch disables first-match-wins, for test builds that
	// want every frame evaluated. Production leaves this false.
	continuousMatch bool
}

// New constructs a Detector. queueDepth bounds the shared frame queue
// (default 500); producers (StreamSessions) drop on full rather than block.
func New(analyzer FaceAnalyzer, rosterCache *roster.Cache, threshold Threshold, queueDepth int, onMatch func(*model.MatchEvent)) *Detector {
	if queueDepth <= 0 {
		queueDepth = 500
	}
	return &Detector{
		analyzer:  analyzer,
		roster:    rosterCache,
		threshold: threshold,
		onMatch:   onMatch,
		in:        make(chan *model.DecodedFrame, queueDepth),
		stopCh:    make(chan struct{}),
		sessions:  make(map[string]*sessionState),
	}
}

// SetSessionEndHandler registers a callback invoked after a SESSION_END
// pseudo-frame is processed, receiving the number of frames the Detector
// processed for that session.
func (d *Detector) SetSessionEndHandler(fn func(cameraIP string, txn string, frames int)) {
	d.onSessionEnd = fn
}

// SetContinuousMatch toggles the first-match-wins early return off, for
// test builds. Production never calls this.
func (d *Detector) SetContinuousMatch(v bool) {
	d.continuousMatch = v
}

// Enqueue offers a decoded frame to the Detector's queue. Returns false if
// the queue was full, in which case the caller (StreamSession) must log and
// drop rather than block.
func (d *Detector) Enqueue(frame *model.DecodedFrame) bool {
	select {
	case d.in <- frame:
		metrics.SetCamQueueDepth(frame.CameraIP, len(d.in))
		return true
	default:
		metrics.RecordFrameDropped(frame.CameraIP)
		return false
	}
}

// Run is the Detector's single goroutine. It polls the input queue with a
// short sleep when empty, until Stop is called.
func (d *Detector) Run(idle time.Duration) {
	d.stopped.Add(1)
	defer d.stopped.Done()

	for {
		select {
		case <-d.stopCh:
			d.drain()
			return
		case frame := <-d.in:
			d.process(frame)
		default:
			time.Sleep(idle)
		}
	}
}

// drain empties the input queue on shutdown without processing, per the
// "shutdown drains the input queue" failure semantics.
func (d *Detector) drain() {
	for {
		select {
		case <-d.in:
		default:
			return
		}
	}
}

// Stop signals Run to exit and waits for it to do so.
func (d *Detector) Stop() {
	close(d.stopCh)
	d.stopped.Wait()
}

func (d *Detector) process(frame *model.DecodedFrame) {
	if frame.SessionEnd {
		frames := 0
		if state, ok := d.sessions[frame.CameraIP]; ok && state.txn == frame.Txn {
			frames = state.detected
			delete(d.sessions, frame.CameraIP)
		}
		if d.onSessionEnd != nil {
			d.onSessionEnd(frame.CameraIP, frame.Txn, frames)
		}
		log.Printf("[Detector] %s txn=%s session end, %d frames processed", frame.CameraIP, frame.Txn, frames)
		return
	}

	state, ok := d.sessions[frame.CameraIP]
	if !ok || state.txn != frame.Txn {
		state = &sessionState{txn: frame.Txn}
		d.sessions[frame.CameraIP] = state
		metrics.RecordSessionStarted(frame.CameraIP)
	}

	metrics.RecordFrameDecoded(frame.CameraIP)

	if state.identified && !d.continuousMatch {
		return
	}

	if age := time.Since(frame.FrameTime).Seconds(); age > d.threshold.AgeDetectingSec() {
		return
	}

	state.detected++
	if state.detected == 1 {
		state.firstFrameAt = frame.FrameTime
	}

	faces, err := d.analyzer.Detect(context.Background(), frame.Image)
	if err != nil {
		log.Printf("[Detector] %s txn=%s analyzer error: %v", frame.CameraIP, frame.Txn, err)
		return
	}
	if len(faces) == 0 {
		return
	}

	matrix := d.roster.Current()
	threshold := d.threshold.FaceThreshold(d.analyzer.Backend())

	var matches []model.FaceMatch
	for _, f := range faces {
		member, sim, isMatch := matrix.Match(f.Embedding, threshold)
		if !isMatch {
			continue
		}
		matches = append(matches, model.FaceMatch{
			BBox:       f.BBox,
			Embedding:  f.Embedding,
			Member:     member,
			Similarity: sim,
		})
	}

	if len(matches) == 0 {
		return
	}

	state.identified = true
	metrics.RecordMatch(frame.CameraIP)
	if d.onMatch != nil {
		d.onMatch(&model.MatchEvent{
			CameraIP:     frame.CameraIP,
			Image:        frame.Image,
			Faces:        matches,
			FrameOrdinal: state.detected,
			SessionStart: state.firstFrameAt,
			Txn:          frame.Txn,
		})
	}
}
