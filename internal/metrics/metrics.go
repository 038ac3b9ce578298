// Package metrics exposes the agent's Prometheus counters and gauges.
// Labels stay low-cardinality: the camera IP at most, never per-session
// identifiers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FramesDecodedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgecam_frames_decoded_total",
			Help: "Total frames emitted by a stream session's decode pipeline",
		},
		[]string{"camera"},
	)

	FramesDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgecam_frames_dropped_total",
			Help: "Total decoded frames dropped because the detector queue was full",
		},
		[]string{"camera"},
	)

	DetectionSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgecam_detection_sessions_total",
			Help: "Total detecting_txn sessions started",
		},
		[]string{"camera"},
	)

	MatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "edgecam_matches_total",
			Help: "Total frames with at least one face that cleared the matching threshold",
		},
		[]string{"camera"},
	)

	OutputQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "edgecam_output_queue_depth",
			Help: "Current depth of the output worker's enqueue channel",
		},
	)

	CamQueueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "edgecam_cam_queue_depth",
			Help: "Current depth of the detector's per-process frame queue",
		},
		[]string{"camera"},
	)
)

// RecordFrameDecoded increments the decoded-frame counter for one camera.
func RecordFrameDecoded(camera string) {
	FramesDecodedTotal.WithLabelValues(camera).Inc()
}

// RecordFrameDropped increments the dropped-frame counter for one camera.
func RecordFrameDropped(camera string) {
	FramesDroppedTotal.WithLabelValues(camera).Inc()
}

// RecordSessionStarted increments the detection-session counter for one camera.
func RecordSessionStarted(camera string) {
	DetectionSessionsTotal.WithLabelValues(camera).Inc()
}

// RecordMatch increments the match counter for one camera.
func RecordMatch(camera string) {
	MatchesTotal.WithLabelValues(camera).Inc()
}

// SetOutputQueueDepth records the current output queue depth.
func SetOutputQueueDepth(depth int) {
	OutputQueueDepth.Set(float64(depth))
}

// SetCamQueueDepth records the current per-camera detector queue depth.
func SetCamQueueDepth(camera string, depth int) {
	CamQueueDepth.WithLabelValues(camera).Set(float64(depth))
}
