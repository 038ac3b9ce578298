// Package trigger implements the TriggerCoordinator component: it merges
// ONVIF motion and occupancy signals into a per-camera session, applying the
// legacy-vs-sensor suppression rule, the timer-extension asymmetry between
// ONVIF and occupancy, and the early-stop-on-occupancy-false rule. All
// state is a per-camera mutex-guarded record; handlers do set/remove work
// in short critical sections and drive the StreamSession from inside them
// so merge decisions and session operations cannot interleave across
// sources.
package trigger

import (
	"sync"
	"time"

	"edgecam/internal/model"
)

// Session is the per-camera interface the coordinator drives: a StreamSession
// implements this to expose feed_detecting/extend_timer/stop_feeding plus the
// recording operations the coordinator drives alongside the feeding state.
type Session interface {
	FeedDetecting(durationSec float64) (txn string, started bool)
	ExtendTimer(durationSec float64)
	StopFeeding()
	IsFeeding() bool
	StartRecording(utc time.Time) bool
	StopRecording(utc time.Time)
}

type cameraState struct {
	mu      sync.Mutex
	camera  *model.Camera
	session Session
	ctx     *model.TriggerContext

	// startedByONVIF mirrors the context's immutable flag for the lifetime
	// of the feeding session, so a context recreated after a mid-session
	// Clear (match emitted, session still feeding) keeps the session's
	// original value.
	startedByONVIF bool

	// txn is the detecting_txn of the session this state belongs to, used to
	// guard the snapshot/clear pair against frames and SESSION_END markers
	// that drain from the Detector queue after a newer session has begun.
	txn string
}

// Coordinator is the C5 component.
type Coordinator struct {
	mu      sync.RWMutex
	cameras map[string]*cameraState

	detectDurationSec func() float64
	recordDurationSec func() float64
}

// New constructs a Coordinator. detectDurationSec resolves the current
// default detection-session duration (TIMER_DETECT), read fresh on every
// new-session start so a runtime change_var takes effect immediately.
// recordDurationSec resolves the post-trigger recording duration
// (TIMER_RECORD); may be nil if the deployment never records.
func New(detectDurationSec func() float64, recordDurationSec func() float64) *Coordinator {
	return &Coordinator{
		cameras:           make(map[string]*cameraState),
		detectDurationSec: detectDurationSec,
		recordDurationSec: recordDurationSec,
	}
}

// maybeStartRecording starts a recording job for the camera's current
// session if the camera is configured to record, and schedules the
// matching StopRecording after the recording duration. StartRecording is
// itself a no-op while a job is active, so a merge into a running session
// never starts a second one. Caller must hold st.mu.
func (c *Coordinator) maybeStartRecording(st *cameraState) {
	if !st.camera.IsRecording || c.recordDurationSec == nil {
		return
	}
	now := time.Now()
	if !st.session.StartRecording(now) {
		return
	}
	recordFor := time.Duration(c.recordDurationSec() * float64(time.Second))
	time.AfterFunc(recordFor, func() {
		st.session.StopRecording(time.Now())
	})
}

// Register attaches a camera and its StreamSession to the coordinator. Call
// again with a nil session to unregister (on camera removal).
func (c *Coordinator) Register(camera *model.Camera, session Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if session == nil {
		delete(c.cameras, camera.IP)
		return
	}
	c.cameras[camera.IP] = &cameraState{camera: camera, session: session}
}

func (c *Coordinator) state(cameraIP string) *cameraState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cameras[cameraIP]
}

// OnONVIFMotion handles an ONVIF motion notification for cameraIP.
func (c *Coordinator) OnONVIFMotion(cameraIP string) {
	st := c.state(cameraIP)
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.camera.AllLocksSensored() {
		// All locks carry a keypad: sensors alone are authoritative,
		// this ONVIF trigger is suppressed entirely.
		return
	}

	if !st.session.IsFeeding() {
		txn, started := st.session.FeedDetecting(c.detectDurationSec())
		if !started {
			return
		}
		st.startedByONVIF = true
		st.txn = txn
		st.ctx = model.NewTriggerContext(true)
		st.ctx.ONVIFTriggered = true
		c.maybeStartRecording(st)
		return
	}

	// Session already running: merge.
	if st.ctx == nil {
		st.ctx = model.NewTriggerContext(st.startedByONVIF)
	}
	st.ctx.ONVIFTriggered = true
	if st.startedByONVIF {
		st.session.ExtendTimer(c.detectDurationSec())
	}
}

// OnOccupancyTrue handles a trigger_detection{cam_ip, lock_asset_id} signal.
func (c *Coordinator) OnOccupancyTrue(cameraIP, lockAssetID string) {
	st := c.state(cameraIP)
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if !st.session.IsFeeding() {
		txn, started := st.session.FeedDetecting(c.detectDurationSec())
		if !started {
			return
		}
		st.startedByONVIF = false
		st.txn = txn
		st.ctx = model.NewTriggerContext(false)
		c.maybeStartRecording(st)
	}

	if st.ctx == nil {
		st.ctx = model.NewTriggerContext(st.startedByONVIF)
	}
	st.ctx.SpecificLocks[lockAssetID] = true
	st.ctx.ActiveOccupancy[lockAssetID] = true
	// Occupancy-true always extends the session timer.
	st.session.ExtendTimer(c.detectDurationSec())
}

// OnOccupancyFalse handles a stop_detection{cam_ip, lock_asset_id} signal.
func (c *Coordinator) OnOccupancyFalse(cameraIP, lockAssetID string) {
	st := c.state(cameraIP)
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.ctx == nil {
		return
	}
	delete(st.ctx.ActiveOccupancy, lockAssetID)

	if len(st.ctx.ActiveOccupancy) == 0 && !st.ctx.ONVIFTriggered && !st.camera.HasLegacyLock() {
		st.session.StopFeeding()
		st.ctx = nil
	}
}

// Camera returns the descriptor registered for cameraIP, or nil. The match
// path uses this to resolve the Detector's bare camera IP back into a full
// descriptor before handing the event to the MatchHandler.
func (c *Coordinator) Camera(cameraIP string) *model.Camera {
	st := c.state(cameraIP)
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.camera
}

// Snapshot returns a defensive copy of the current trigger context for
// cameraIP, for attaching to a MatchEvent, or nil if no session is active.
func (c *Coordinator) Snapshot(cameraIP string) *model.TriggerContext {
	st := c.state(cameraIP)
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.ctx == nil {
		return nil
	}
	cp := *st.ctx
	cp.SpecificLocks = copySet(st.ctx.SpecificLocks)
	cp.ActiveOccupancy = copySet(st.ctx.ActiveOccupancy)
	return &cp
}

// Clear drops the trigger context for cameraIP, called after a match event
// is attached or when the session timer fires without a match.
func (c *Coordinator) Clear(cameraIP string) {
	st := c.state(cameraIP)
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.ctx = nil
}

// SnapshotSession is Snapshot guarded by detecting_txn: it returns nil when
// txn no longer names the coordinator's current session for cameraIP, so
// frames still draining from an ended session never pick up a newer
// session's context.
func (c *Coordinator) SnapshotSession(cameraIP, txn string) *model.TriggerContext {
	st := c.state(cameraIP)
	if st == nil {
		return nil
	}
	st.mu.Lock()
	current := st.txn
	st.mu.Unlock()
	if current != txn {
		return nil
	}
	return c.Snapshot(cameraIP)
}

// ClearSession is Clear guarded by detecting_txn: a SESSION_END marker (or
// match) from an old session must not wipe the context of a session that
// started while the old one's frames were still queued.
func (c *Coordinator) ClearSession(cameraIP, txn string) {
	st := c.state(cameraIP)
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.txn != txn {
		return
	}
	st.ctx = nil
}

func copySet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
