package trigger

import (
	"fmt"
	"testing"
	"time"

	"edgecam/internal/model"
)

type fakeSession struct {
	feeding             bool
	txnCounter          int
	extendCalls         int
	stopCalls           int
	lastExtendTo        float64
	recording           bool
	startRecordingCalls int
	stopRecordingCalls  int
}

func (f *fakeSession) FeedDetecting(durationSec float64) (string, bool) {
	if f.feeding {
		return "", false
	}
	f.feeding = true
	f.txnCounter++
	return fmt.Sprintf("txn-%d", f.txnCounter), true
}

func (f *fakeSession) ExtendTimer(durationSec float64) {
	f.extendCalls++
	f.lastExtendTo = durationSec
}

func (f *fakeSession) StopFeeding() {
	f.stopCalls++
	f.feeding = false
}

func (f *fakeSession) IsFeeding() bool { return f.feeding }

func (f *fakeSession) StartRecording(utc time.Time) bool {
	if f.recording {
		return false
	}
	f.recording = true
	f.startRecordingCalls++
	return true
}

func (f *fakeSession) StopRecording(utc time.Time) {
	f.recording = false
	f.stopRecordingCalls++
}

func newCoordinatorWithCamera(cam *model.Camera) (*Coordinator, *fakeSession) {
	c := New(func() float64 { return 15 }, func() float64 { return 20 })
	sess := &fakeSession{}
	c.Register(cam, sess)
	return c, sess
}

// ONVIF motion on a camera with a legacy lock starts a session.
func TestOnvifMotionStartsSessionWithLegacyLock(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.1", Locks: []model.Lock{{AssetID: "L1", WithKeypad: false}}}
	c, sess := newCoordinatorWithCamera(cam)

	c.OnONVIFMotion(cam.IP)

	if !sess.feeding {
		t.Fatal("expected a session to start")
	}
	ctx := c.Snapshot(cam.IP)
	if ctx == nil || !ctx.StartedByONVIF || !ctx.ONVIFTriggered {
		t.Fatalf("expected started_by_onvif and onvif_triggered set, got %+v", ctx)
	}
}

// When every lock has a keypad sensor, ONVIF motion is suppressed entirely.
func TestOnvifMotionSuppressedWhenAllLocksSensored(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.2", Locks: []model.Lock{{AssetID: "L1", WithKeypad: true}}}
	c, sess := newCoordinatorWithCamera(cam)

	c.OnONVIFMotion(cam.IP)

	if sess.feeding {
		t.Fatal("expected no session to start when every lock is sensored")
	}
	if c.Snapshot(cam.IP) != nil {
		t.Fatal("expected no trigger context")
	}
}

// ONVIF motion on a non-onvif-started session
// must not extend the timer; a second occupancy-true must.
func TestTimerExtensionAsymmetry(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.3", Locks: []model.Lock{{AssetID: "L1", WithKeypad: false}}}
	c, sess := newCoordinatorWithCamera(cam)

	c.OnOccupancyTrue(cam.IP, "L1")
	if !sess.feeding {
		t.Fatal("expected occupancy trigger to start a session")
	}
	extendsAfterStart := sess.extendCalls

	c.OnONVIFMotion(cam.IP)
	if sess.extendCalls != extendsAfterStart {
		t.Fatalf("ONVIF motion on a non-onvif-started session must not extend the timer, got %d new extend calls", sess.extendCalls-extendsAfterStart)
	}

	c.OnOccupancyTrue(cam.IP, "L1")
	if sess.extendCalls != extendsAfterStart+1 {
		t.Fatal("expected occupancy-true to always extend the timer")
	}
}

// Occupancy-false with no ONVIF trigger and no
// legacy lock drops the session immediately.
func TestEarlyStopOnOccupancyFalse(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.4", Locks: []model.Lock{{AssetID: "L1", WithKeypad: true}}}
	c, sess := newCoordinatorWithCamera(cam)

	c.OnOccupancyTrue(cam.IP, "L1")
	c.OnOccupancyFalse(cam.IP, "L1")

	if sess.stopCalls != 1 {
		t.Fatalf("expected StopFeeding to be called once, got %d", sess.stopCalls)
	}
	if c.Snapshot(cam.IP) != nil {
		t.Fatal("expected trigger context to be cleared")
	}
}

// Occupancy-false does not stop the session early when an ONVIF trigger is
// also active.
func TestOccupancyFalseDoesNotStopWhenOnvifStillActive(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.5", Locks: []model.Lock{{AssetID: "L1", WithKeypad: false}}}
	c, sess := newCoordinatorWithCamera(cam)

	c.OnOccupancyTrue(cam.IP, "L1")
	c.OnONVIFMotion(cam.IP)
	c.OnOccupancyFalse(cam.IP, "L1")

	if sess.stopCalls != 0 {
		t.Fatal("expected session to continue: camera still has a legacy lock")
	}
}

func TestSnapshotIsDefensiveCopy(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.6", Locks: []model.Lock{{AssetID: "L1", WithKeypad: false}}}
	c, _ := newCoordinatorWithCamera(cam)
	c.OnOccupancyTrue(cam.IP, "L1")

	snap := c.Snapshot(cam.IP)
	snap.SpecificLocks["L2"] = true

	second := c.Snapshot(cam.IP)
	if _, ok := second.SpecificLocks["L2"]; ok {
		t.Fatal("Snapshot must return a defensive copy of the lock sets")
	}
}

func TestClearDropsContext(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.7", Locks: []model.Lock{{AssetID: "L1", WithKeypad: false}}}
	c, _ := newCoordinatorWithCamera(cam)
	c.OnOccupancyTrue(cam.IP, "L1")

	c.Clear(cam.IP)
	if c.Snapshot(cam.IP) != nil {
		t.Fatal("expected Clear to drop the trigger context")
	}
}

// A camera with zero lock assets is vacuously all-sensored: bare ONVIF
// motion must be suppressed the same as when every lock has a keypad.
func TestOnvifMotionSuppressedWhenNoLocksConfigured(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.10"}
	c, sess := newCoordinatorWithCamera(cam)

	c.OnONVIFMotion(cam.IP)

	if sess.feeding {
		t.Fatal("expected no session to start for a camera with no lock assets")
	}
	if c.Snapshot(cam.IP) != nil {
		t.Fatal("expected no trigger context")
	}
}

// A camera configured to record starts a recording job the moment a session
// starts, and does not start a second one on a later merge into the same
// session.
func TestSessionStartTriggersRecordingWhenCameraIsRecording(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.8", IsRecording: true, Locks: []model.Lock{{AssetID: "L1", WithKeypad: false}}}
	c, sess := newCoordinatorWithCamera(cam)

	c.OnONVIFMotion(cam.IP)
	if sess.startRecordingCalls != 1 {
		t.Fatalf("expected StartRecording to be called once on session start, got %d", sess.startRecordingCalls)
	}

	c.OnOccupancyTrue(cam.IP, "L1")
	if sess.startRecordingCalls != 1 {
		t.Fatalf("expected no second StartRecording call while the session continues, got %d", sess.startRecordingCalls)
	}
}

// A camera not configured to record never starts a recording job.
func TestSessionStartDoesNotRecordWhenCameraNotRecording(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.9", Locks: []model.Lock{{AssetID: "L1", WithKeypad: false}}}
	c, sess := newCoordinatorWithCamera(cam)

	c.OnONVIFMotion(cam.IP)
	if sess.startRecordingCalls != 0 {
		t.Fatalf("expected no StartRecording call for a non-recording camera, got %d", sess.startRecordingCalls)
	}
}

// A trigger arriving after the context was cleared mid-session (match
// emitted, session still feeding) recreates a context instead of panicking,
// preserving the session's original started_by_onvif value for the
// timer-extension rule.
func TestTriggerAfterMidSessionClearRecreatesContext(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.11", Locks: []model.Lock{{AssetID: "L1", WithKeypad: false}}}
	c, sess := newCoordinatorWithCamera(cam)

	c.OnOccupancyTrue(cam.IP, "L1")
	extendsAfterStart := sess.extendCalls
	c.Clear(cam.IP)

	c.OnONVIFMotion(cam.IP)
	ctx := c.Snapshot(cam.IP)
	if ctx == nil || !ctx.ONVIFTriggered {
		t.Fatalf("expected a recreated context with onvif_triggered set, got %+v", ctx)
	}
	if ctx.StartedByONVIF {
		t.Fatal("recreated context must keep the session's original started_by_onvif=false")
	}
	if sess.extendCalls != extendsAfterStart {
		t.Fatal("ONVIF motion must still not extend a session that occupancy started")
	}

	c.Clear(cam.IP)
	c.OnOccupancyTrue(cam.IP, "L1")
	ctx = c.Snapshot(cam.IP)
	if ctx == nil || !ctx.SpecificLocks["L1"] {
		t.Fatalf("expected a recreated context carrying the lock id, got %+v", ctx)
	}
}

// ClearSession and SnapshotSession ignore a detecting_txn that no longer
// names the current session, so stale SESSION_END markers cannot wipe a
// newer session's context.
func TestSessionScopedClearAndSnapshotIgnoreStaleTxn(t *testing.T) {
	cam := &model.Camera{IP: "10.0.0.12", Locks: []model.Lock{{AssetID: "L1", WithKeypad: true}}}
	c, sess := newCoordinatorWithCamera(cam)

	c.OnOccupancyTrue(cam.IP, "L1") // session txn-1
	sess.feeding = false            // timer fires out-of-band
	c.OnOccupancyTrue(cam.IP, "L1") // session txn-2

	if got := c.SnapshotSession(cam.IP, "txn-1"); got != nil {
		t.Fatal("expected nil snapshot for the ended session's txn")
	}
	c.ClearSession(cam.IP, "txn-1")
	if c.Snapshot(cam.IP) == nil {
		t.Fatal("stale ClearSession must not drop the current session's context")
	}

	if got := c.SnapshotSession(cam.IP, "txn-2"); got == nil {
		t.Fatal("expected a snapshot for the current session's txn")
	}
	c.ClearSession(cam.IP, "txn-2")
	if c.Snapshot(cam.IP) != nil {
		t.Fatal("expected ClearSession with the current txn to drop the context")
	}
}

func TestUnregisteredCameraIsANoOp(t *testing.T) {
	c := New(func() float64 { return 15 }, func() float64 { return 20 })
	// No Register call for this camera IP: every handler must be a no-op,
	// never a panic.
	c.OnONVIFMotion("unknown")
	c.OnOccupancyTrue("unknown", "L1")
	c.OnOccupancyFalse("unknown", "L1")
	if c.Snapshot("unknown") != nil {
		t.Fatal("expected nil snapshot for an unregistered camera")
	}
}
