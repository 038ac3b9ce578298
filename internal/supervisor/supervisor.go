// Package supervisor implements the CameraSupervisor component: it
// reconciles the desired camera set against the running StreamSessions,
// manages ONVIF subscription lifecycle, publishes heartbeats, and replaces
// sessions that stop unexpectedly. Sessions post nothing upward; the
// supervisor owns the camera map and polls session state, so no
// back-pointer ever sits inside a session's capture path.
package supervisor

import (
	"context"
	"log"
	"net"
	"strconv"
	"sync"
	"time"

	"edgecam/internal/bus"
	"edgecam/internal/detect"
	"edgecam/internal/model"
	"edgecam/internal/onvif"
	"edgecam/internal/stream"
	"edgecam/internal/trigger"
)

// CameraSource resolves the desired camera set from the external store; the
// core does not define that store, only this function signature.
type CameraSource func() ([]*model.Camera, error)

type managedCamera struct {
	camera     *model.Camera
	session    *stream.Session
	subscribed bool
}

// Supervisor is the C7 component.
type Supervisor struct {
	source      CameraSource
	det         *detect.Detector
	coordinator *trigger.Coordinator
	publisher   bus.Publisher
	clips       stream.ClipSink
	thingName   string
	hostID      string
	onvifExpiry time.Duration
	sessionCfg  stream.Config
	consumerURL string

	scannerAssetID   string
	scannerAssetName string

	mu      sync.Mutex
	cameras map[string]*managedCamera
}

// New constructs a Supervisor. clips receives finished recordings from every
// StreamSession it starts, typically the output worker. scannerAssetID and
// scannerAssetName identify this agent for the gocheckin/scanner_detected
// heartbeat.
func New(source CameraSource, det *detect.Detector, coordinator *trigger.Coordinator, publisher bus.Publisher, clips stream.ClipSink, thingName, hostID, consumerURL string, onvifExpiry time.Duration, sessionCfg stream.Config, scannerAssetID, scannerAssetName string) *Supervisor {
	return &Supervisor{
		source:           source,
		det:              det,
		coordinator:      coordinator,
		publisher:        publisher,
		clips:            clips,
		thingName:        thingName,
		hostID:           hostID,
		consumerURL:      consumerURL,
		onvifExpiry:      onvifExpiry,
		sessionCfg:       sessionCfg,
		scannerAssetID:   scannerAssetID,
		scannerAssetName: scannerAssetName,
		cameras:          make(map[string]*managedCamera),
	}
}

// Reconcile performs one reconciliation pass: additions, removals, and
// config updates against the desired camera set.
func (s *Supervisor) Reconcile() error {
	desired, err := s.source()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(desired))
	for _, cam := range desired {
		seen[cam.IP] = true
		if existing, ok := s.cameras[cam.IP]; ok {
			existing.camera = cam
			s.coordinator.Register(cam, existing.session)
			s.reconcileONVIF(existing)
			continue
		}
		s.startCamera(cam)
	}

	for ip, mc := range s.cameras {
		if !seen[ip] {
			s.stopCamera(mc)
			delete(s.cameras, ip)
		}
	}
	return nil
}

func (s *Supervisor) startCamera(cam *model.Camera) {
	session := stream.New(cam, s.sessionCfg, s.det, s.clips)
	if err := session.Start(); err != nil {
		log.Printf("[Supervisor] %s failed to start: %v", cam.IP, err)
	}
	mc := &managedCamera{camera: cam, session: session}
	s.cameras[cam.IP] = mc
	s.coordinator.Register(cam, session)
	s.reconcileONVIF(mc)
	go s.monitor(mc)
}

func (s *Supervisor) stopCamera(mc *managedCamera) {
	mc.session.Stop(false)
	s.coordinator.Register(mc.camera, nil)
	if mc.subscribed {
		s.unsubscribeONVIF(mc)
	}
}

// reconcileONVIF subscribes (or renews) cameras that are detecting or
// recording and have ONVIF enabled; otherwise unsubscribes any existing
// subscription.
func (s *Supervisor) reconcileONVIF(mc *managedCamera) {
	active := mc.camera.ONVIFEnabled && (mc.camera.IsDetecting || mc.camera.IsRecording)
	if !active {
		if mc.subscribed {
			s.unsubscribeONVIF(mc)
		}
		return
	}

	client := onvif.New(onvifBaseURL(mc.camera), mc.camera.Username, mc.camera.Password)
	termination := time.Now().Add(s.onvifExpiry)
	if mc.subscribed {
		if err := client.Renew(termination); err != nil {
			log.Printf("[Supervisor] %s onvif renew failed: %v", mc.camera.IP, err)
		}
		return
	}
	if _, err := client.Subscribe(s.consumerURL, termination); err != nil {
		log.Printf("[Supervisor] %s onvif subscribe failed: %v", mc.camera.IP, err)
		return
	}
	mc.subscribed = true
}

func (s *Supervisor) unsubscribeONVIF(mc *managedCamera) {
	client := onvif.New(onvifBaseURL(mc.camera), mc.camera.Username, mc.camera.Password)
	if err := client.Unsubscribe(); err != nil {
		log.Printf("[Supervisor] %s onvif unsubscribe failed: %v", mc.camera.IP, err)
	}
	mc.subscribed = false
}

func onvifBaseURL(cam *model.Camera) string {
	port := cam.ONVIFPort
	if port == 0 {
		port = 80
	}
	return "http://" + cam.IP + ":" + strconv.Itoa(port) + "/onvif/event_service"
}

// monitor watches one session and replaces it with a fresh one if it ever
// reaches Stopped outside of a supervisor-initiated removal — the
// self-healing loop. A stopped session is never restarted in place: its stop
// channel is already closed, so a new Session owns the next pipeline.
func (s *Supervisor) monitor(mc *managedCamera) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		current, ok := s.cameras[mc.camera.IP]
		stillManaged := ok && current == mc
		session := mc.session
		s.mu.Unlock()
		if !stillManaged {
			return
		}
		if session.State() == stream.StateStopped {
			log.Printf("[Supervisor] %s session stopped unexpectedly, starting a fresh one", mc.camera.IP)
			fresh := stream.New(mc.camera, s.sessionCfg, s.det, s.clips)
			if err := fresh.Start(); err != nil {
				log.Printf("[Supervisor] %s restart failed: %v", mc.camera.IP, err)
				continue
			}
			s.mu.Lock()
			mc.session = fresh
			s.mu.Unlock()
			s.coordinator.Register(mc.camera, fresh)
		}
	}
}

// PublishHeartbeats sends per-camera heartbeats plus the scanner-identity
// heartbeat on the configured cadence.
func (s *Supervisor) PublishHeartbeats() {
	type beat struct {
		uuid    string
		session *stream.Session
	}
	s.mu.Lock()
	beats := make([]beat, 0, len(s.cameras))
	for _, mc := range s.cameras {
		beats = append(beats, beat{uuid: mc.camera.UUID, session: mc.session})
	}
	s.mu.Unlock()

	now := time.Now().UTC()
	for _, b := range beats {
		topic := "gocheckin/" + s.thingName + "/camera_heartbeat"
		_ = s.publisher.Publish(topic, map[string]any{
			"uuid":         b.uuid,
			"hostId":       s.hostID,
			"lastUpdateOn": now.Format("2006-01-02T15:04:05.000Z"),
			"isPlaying":    b.session.IsPlaying(),
		})
	}

	_ = s.publisher.Publish("gocheckin/scanner_detected", map[string]any{
		"assetId":   s.scannerAssetID,
		"assetName": s.scannerAssetName,
		"localIp":   localIP(),
	})
}

// localIP resolves the host's outbound-facing IP by opening a connectionless
// UDP "dial" to a well-known address and reading the local endpoint back off
// it; no packet is actually sent. Falls back to "" if the host has no route.
func localIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return ""
	}
	defer conn.Close()
	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return ""
	}
	return addr.IP.String()
}

// Run starts the reconciliation and heartbeat periodic tasks. It blocks
// until ctx is cancelled.
func (s *Supervisor) Run(ctx context.Context, reconcilePeriod, heartbeatPeriod time.Duration) {
	reconcileTicker := time.NewTicker(reconcilePeriod)
	heartbeatTicker := time.NewTicker(heartbeatPeriod)
	defer reconcileTicker.Stop()
	defer heartbeatTicker.Stop()

	if err := s.Reconcile(); err != nil {
		log.Printf("[Supervisor] initial reconcile failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-reconcileTicker.C:
			if err := s.Reconcile(); err != nil {
				log.Printf("[Supervisor] reconcile failed: %v", err)
			}
		case <-heartbeatTicker.C:
			s.PublishHeartbeats()
		}
	}
}

// ForceReload triggers an immediate reconciliation, used by the
// gocheckin/reset_camera control topic.
func (s *Supervisor) ForceReload() {
	if err := s.Reconcile(); err != nil {
		log.Printf("[Supervisor] forced reload failed: %v", err)
	}
}
