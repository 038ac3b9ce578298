// Package outputworker implements the single output goroutine named in the
// concurrency model: it drains the bounded scanner_output_queue and
// dispatches each OutputRecord to the cloud message bus and, for records
// carrying a local file, the ArtifactSink. Its poll-with-small-sleep shape
// mirrors the Detector's own idle-sleep loop in internal/detect, generalized
// here to a single non-blocking enqueue/drain pair instead of a frame queue.
package outputworker

import (
	"context"
	"fmt"
	"log"
	"time"

	"edgecam/internal/artifact"
	"edgecam/internal/bus"
	"edgecam/internal/metrics"
	"edgecam/internal/model"
)

// Worker is the output worker: the only goroutine draining the
// scanner_output_queue and dispatching to Bus/ArtifactSink.
type Worker struct {
	publisher    bus.Publisher
	sink         *artifact.Sink
	thingName    string
	hostID       string
	propertyCode string

	queue  chan model.OutputRecord
	stopCh chan struct{}
}

// New constructs a Worker with the given bounded queue depth (the
// scanner_output_queue, 50 by default). hostID and propertyCode are the same identifiers the
// match handler uses to derive snapshot keys, reused here to derive the
// remote key for video clips.
func New(publisher bus.Publisher, sink *artifact.Sink, thingName, hostID, propertyCode string, queueDepth int) *Worker {
	if queueDepth <= 0 {
		queueDepth = 50
	}
	return &Worker{
		publisher:    publisher,
		sink:         sink,
		thingName:    thingName,
		hostID:       hostID,
		propertyCode: propertyCode,
		queue:        make(chan model.OutputRecord, queueDepth),
		stopCh:       make(chan struct{}),
	}
}

// Enqueue offers a record to the output queue. Implements match.Output and
// stream.ClipSink (via the OnClip adapter below). Returns false on a full
// queue, in which case the caller must log and drop rather than block.
func (w *Worker) Enqueue(record model.OutputRecord) bool {
	select {
	case w.queue <- record:
		metrics.SetOutputQueueDepth(len(w.queue))
		return true
	default:
		log.Printf("[OutputWorker] scanner_output_queue full, dropping record")
		return false
	}
}

// OnClip implements stream.ClipSink, adapting a bare VideoClipped record into
// the tagged OutputRecord union.
func (w *Worker) OnClip(record model.VideoClipped) {
	w.Enqueue(model.OutputRecord{VideoClipped: &record})
}

// Run polls the queue with a small sleep between items until ctx is
// cancelled, matching the "Output worker polls with a small sleep between
// items" scheduling rule.
func (w *Worker) Run(ctx context.Context, idle time.Duration) {
	if idle <= 0 {
		idle = 50 * time.Millisecond
	}
	for {
		select {
		case <-ctx.Done():
			return
		case record := <-w.queue:
			w.dispatch(ctx, record)
			metrics.SetOutputQueueDepth(len(w.queue))
		default:
			time.Sleep(idle)
		}
	}
}

// Stop closes the worker's stop channel, kept for symmetry with other
// workers' Stop methods. Run does not watch that channel; cancellation is
// via the context passed to Run. Stop must be called at most once.
func (w *Worker) Stop() {
	close(w.stopCh)
}

func (w *Worker) dispatch(ctx context.Context, record model.OutputRecord) {
	switch {
	case record.MemberDetected != nil:
		w.dispatchMemberDetected(ctx, record.MemberDetected)
	case record.VideoClipped != nil:
		w.dispatchVideoClipped(ctx, record.VideoClipped)
	}
}

func (w *Worker) dispatchMemberDetected(ctx context.Context, md *model.MemberDetected) {
	if err := w.sink.Upload(ctx, md.SnapshotKey, md.SnapshotPath); err != nil {
		log.Printf("[OutputWorker] snapshot upload failed for %s: %v", md.SnapshotPath, err)
	}

	topic := "gocheckin/" + w.thingName + "/member_detected"
	for _, m := range md.Members {
		payload := map[string]any{
			"reservationCode":        m.Member.ReservationCode,
			"memberNo":                m.Member.MemberNo,
			"fullName":                m.Member.FullName,
			"similarity":              m.Similarity,
			"recordTime":              m.RecordTime.UTC().Format("2006-01-02T15:04:05.000Z"),
			"checkInImgKey":           m.CheckInImgKey,
			"propertyImgKey":          m.PropertyImgKey,
			"keyNotified":             m.Member.KeyNotified,
			"onvifTriggered":          md.Trigger.ONVIFTriggered,
			"occupancyTriggeredLocks": md.Trigger.OccupancyTriggeredLocks(),
		}
		if err := w.publisher.Publish(topic, payload); err != nil {
			log.Printf("[OutputWorker] publish member_detected failed: %v", err)
		}
	}
}

// videoClipKey derives the remote object key for one clip, mirroring the
// snapshotKey layout in the match handler with a .mp4 extension and the
// clip's own end time instead of a snapshot time. The {coreName} slot is
// the scanner's thing name, same as the snapshot keys.
func (w *Worker) videoClipKey(vc *model.VideoClipped) string {
	dateDir := vc.RecordEnd.UTC().Format("2006-01-02")
	timeFile := vc.RecordEnd.UTC().Format("15:04:05")
	return fmt.Sprintf("%s/properties/%s/%s/%s/%s/%s.mp4", w.hostID, w.propertyCode, w.thingName, vc.Camera.IP, dateDir, timeFile)
}

func (w *Worker) dispatchVideoClipped(ctx context.Context, vc *model.VideoClipped) {
	if vc.RemoteKey == "" {
		vc.RemoteKey = w.videoClipKey(vc)
	}

	if err := w.sink.Upload(ctx, vc.RemoteKey, vc.LocalPath); err != nil {
		log.Printf("[OutputWorker] clip upload failed for %s: %v", vc.LocalPath, err)
	}

	topic := "gocheckin/" + w.thingName + "/video_clipped"
	payload := map[string]any{
		"cameraIp":    vc.Camera.IP,
		"remoteKey":   vc.RemoteKey,
		"recordStart": vc.RecordStart.UTC().Format("2006-01-02T15:04:05.000Z"),
		"recordEnd":   vc.RecordEnd.UTC().Format("2006-01-02T15:04:05.000Z"),
	}
	if err := w.publisher.Publish(topic, payload); err != nil {
		log.Printf("[OutputWorker] publish video_clipped failed: %v", err)
	}
}
