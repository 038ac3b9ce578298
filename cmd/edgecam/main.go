package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	authService "edgecam/gen/auth"
	cameraService "edgecam/gen/camera"
	healthService "edgecam/gen/health"
	rosterService "edgecam/gen/roster"

	"edgecam/internal/analyzer"
	"edgecam/internal/artifact"
	"edgecam/internal/auth"
	"edgecam/internal/bus"
	"edgecam/internal/config"
	"edgecam/internal/control"
	"edgecam/internal/detect"
	"edgecam/internal/httpapi"
	"edgecam/internal/match"
	"edgecam/internal/model"
	"edgecam/internal/outputworker"
	"edgecam/internal/roster"
	"edgecam/internal/services"
	"edgecam/internal/store"
	"edgecam/internal/stream"
	"edgecam/internal/supervisor"
	"edgecam/internal/trigger"
)

func main() {
	logger := log.New(os.Stderr, "[edgecam] ", log.Ltime)

	cfg := config.Load()
	dynamic := config.NewDynamic(cfg)

	db, err := store.New(cfg.DBPath)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		logger.Fatalf("migrate database: %v", err)
	}
	logger.Printf("database ready at %s", cfg.DBPath)

	if overrides, err := db.LoadConfigOverrides(); err != nil {
		logger.Printf("load config overrides: %v", err)
	} else {
		for k, v := range overrides {
			dynamic.Set(k, v)
		}
		logger.Printf("loaded %d persisted config overrides", len(overrides))
	}

	natsConn, err := bus.Connect(cfg.NATSUrl, 3)
	if err != nil {
		logger.Fatalf("connect nats: %v", err)
	}
	defer natsConn.Close()
	logger.Printf("connected to nats at %s", cfg.NATSUrl)

	credentialProvider := artifact.NewHTTPCredentialProvider(cfg.CredentialProviderURL)
	sink := artifact.New(cfg.S3Bucket, cfg.S3Region, credentialProvider)

	outWorker := outputworker.New(natsConn, sink, cfg.ThingName, cfg.HostID, cfg.PropertyCode, cfg.ScannerOutputQueueMax)

	faceAnalyzer := analyzer.New(analyzer.Config{
		Endpoint: cfg.FaceAnalyzerEndpoint,
		Backend:  cfg.FaceAnalyzerBackend,
	})

	rosterSource := roster.NewHTTPSource(cfg.RosterSourceURL, db.LoadRoster)
	rosterCache := roster.NewCache(func() ([]*model.Member, error) {
		members, err := rosterSource.Fetch()
		if err != nil {
			return nil, err
		}
		if err := db.SaveRoster(members); err != nil {
			logger.Printf("persist roster snapshot failed: %v", err)
		}
		return members, nil
	})
	if _, err := rosterCache.Refresh(); err != nil {
		logger.Printf("initial roster refresh failed: %v", err)
	}

	matchHandler := match.New(cfg.VideoClippingLocation, cfg.IdentityID, cfg.HostID, cfg.PropertyCode, cfg.ThingName, outWorker)

	coordinator := trigger.New(
		func() float64 { return dynamic.TimerDetect().Seconds() },
		func() float64 { return dynamic.TimerRecord().Seconds() },
	)

	det := detect.New(faceAnalyzer, rosterCache, dynamic, cfg.CamQueueMax, func(evt *model.MatchEvent) {
		evt.Camera = coordinator.Camera(evt.CameraIP)
		if evt.Camera == nil {
			logger.Printf("match for unregistered camera %s dropped", evt.CameraIP)
			return
		}
		evt.Trigger = coordinator.SnapshotSession(evt.CameraIP, evt.Txn)
		coordinator.ClearSession(evt.CameraIP, evt.Txn)
		if err := matchHandler.Handle(evt); err != nil {
			logger.Printf("match handler error for %s: %v", evt.CameraIP, err)
		}
	})
	det.SetSessionEndHandler(func(cameraIP, txn string, frames int) {
		// A session that ended without a match still drops its context.
		coordinator.ClearSession(cameraIP, txn)
	})
	go det.Run(time.Duration(cfg.DetectingSleepSec * float64(time.Second)))

	sessionCfg := stream.Config{
		PreRecordingSec: cfg.PreRecordingSec,
		PreDetectingSec: cfg.PreDetectingSec,
		PTSCacheCap:     cfg.DecoderPTSCacheCap,
		DetectingRate:   cfg.DetectingRatePercent,
		StartRetries:    3,
		StartBackoff:    2 * time.Second,
		VideoRoot:       cfg.VideoClippingLocation,
	}

	sup := supervisor.New(db.ListCameras, det, coordinator, natsConn, outWorker, cfg.ThingName, cfg.HostID, cfg.ConsumerURL, onvifExpirySeconds(cfg.ONVIFExpiration), sessionCfg, cfg.ScannerAssetID, cfg.ScannerAssetName)

	authenticator := auth.NewAuthenticator()
	if authenticator.IsEnabled() {
		logger.Printf("authentication enabled (user: %s)", os.Getenv("AUTH_USERNAME"))
	} else {
		logger.Printf("authentication disabled (set AUTH_ENABLED=true to enable)")
	}

	recogniseHandler := httpapi.NewRecogniseHandler(faceAnalyzer, rosterCache)
	onvifHandler := httpapi.NewONVIFNotificationHandler(coordinator)

	var (
		healthSvc healthService.Service
		authSvc   authService.Service
		cameraSvc cameraService.Service
		rosterSvc rosterService.Service
	)
	{
		healthSvc = services.NewHealthService(natsConn.Conn(), rosterCache)
		authSvc = services.NewAuthService(authenticator)
		cameraSvc = services.NewCameraService(db, sup)
		rosterSvc = services.NewRosterService(rosterCache)
	}

	var (
		healthEndpoints *healthService.Endpoints
		authEndpoints   *authService.Endpoints
		cameraEndpoints *cameraService.Endpoints
		rosterEndpoints *rosterService.Endpoints
	)
	{
		healthEndpoints = healthService.NewEndpoints(healthSvc)
		authEndpoints = authService.NewEndpoints(authSvc)
		cameraEndpoints = cameraService.NewEndpoints(cameraSvc)
		rosterEndpoints = rosterService.NewEndpoints(rosterSvc)
	}

	errc := make(chan error)
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		errc <- fmt.Errorf("%s", <-c)
	}()

	var wg sync.WaitGroup
	ctx, cancel := context.WithCancel(context.Background())

	if err := control.Subscribe(natsConn, cfg.ThingName, coordinator, sup, dynamic, db); err != nil {
		logger.Fatalf("subscribe control topics: %v", err)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		outWorker.Run(ctx, 50*time.Millisecond)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		sup.Run(ctx, cfg.TimerCamRenew, 30*time.Second)
	}()

	// Periodic roster refresh from the external member store; forced
	// refreshes (enrollment, control plane) run in addition to this cadence.
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(cfg.TimerInitEnvVar)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := rosterCache.Refresh(); err != nil {
					logger.Printf("periodic roster refresh failed: %v", err)
				}
			}
		}
	}()

	addr := fmt.Sprintf("http://%s:%d", cfg.AdminHTTPHost, cfg.HTTPPort)
	u, err := url.Parse(addr)
	if err != nil {
		logger.Fatalf("invalid URL %#v: %s", addr, err)
	}
	if u.Port() == "" {
		u.Host = net.JoinHostPort(u.Host, strconv.Itoa(cfg.HTTPPort))
	}
	handleHTTPServer(ctx, u, healthEndpoints, authEndpoints, cameraEndpoints, rosterEndpoints, authenticator, recogniseHandler, onvifHandler, &wg, errc, logger, false)

	logger.Printf("exiting (%v)", <-errc)
	cancel()
	det.Stop()
	wg.Wait()
	logger.Println("exited")
}

// onvifExpirySeconds parses the ISO-8601-ish ONVIF_EXPIRATION duration
// (e.g. "PT1H") into a time.Duration, defaulting to one hour on any format
// this minimal parser doesn't recognize.
func onvifExpirySeconds(iso string) time.Duration {
	var hours, minutes, seconds int
	if n, _ := fmt.Sscanf(iso, "PT%dH%dM%dS", &hours, &minutes, &seconds); n == 3 {
		return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	}
	if n, err := fmt.Sscanf(iso, "PT%dH", &hours); n == 1 && err == nil {
		return time.Duration(hours) * time.Hour
	}
	if n, err := fmt.Sscanf(iso, "PT%dM", &minutes); n == 1 && err == nil {
		return time.Duration(minutes) * time.Minute
	}
	return time.Hour
}
