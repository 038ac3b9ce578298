// Package config loads the edge agent's environment-variable configuration
// and exposes a small runtime-override layer for the change_var control
// topic, so hot paths can read current values without restarting any
// worker goroutine.
package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds every value in the environment-variable table.
type Config struct {
	FaceThresholdInsightFace float32
	FaceThresholdHailo       float32

	AgeDetectingSec      float64
	PreDetectingSec      float64
	PreRecordingSec      float64
	TimerDetect          time.Duration
	TimerRecord          time.Duration
	TimerCamRenew        time.Duration
	TimerInitEnvVar      time.Duration
	ONVIFExpiration      string // ISO-8601 duration, e.g. "PT1H"
	DetectingRatePercent float64
	DetectingSleepSec    float64

	VideoClippingLocation string
	HostID                string
	IdentityID            string
	PropertyCode          string
	ThingName             string
	LogLevel              string

	ScannerAssetID   string
	ScannerAssetName string

	HTTPPort int

	CamQueueMax           int
	ScannerOutputQueueMax int
	DecoderPTSCacheCap    int

	NATSUrl string
	DBPath  string

	S3Bucket              string
	S3Region              string
	CredentialProviderURL string

	FaceAnalyzerEndpoint string
	FaceAnalyzerBackend  string

	RosterSourceURL string
	ConsumerURL     string

	AdminHTTPHost string
}

// Load reads the configuration from the process environment, applying
// defaults where the environment is silent.
func Load() *Config {
	return &Config{
		FaceThresholdInsightFace: envFloat32("FACE_THRESHOLD_INSIGHTFACE", 0.5),
		FaceThresholdHailo:       envFloat32("FACE_THRESHOLD_HAILO", 0.4),

		AgeDetectingSec:      envFloat64("AGE_DETECTING_SEC", 5.0),
		PreDetectingSec:      envFloat64("PRE_DETECTING_SEC", 3.0),
		PreRecordingSec:      envFloat64("PRE_RECORDING_SEC", 10.0),
		TimerDetect:          envDuration("TIMER_DETECT", 15*time.Second),
		TimerRecord:          envDuration("TIMER_RECORD", 20*time.Second),
		TimerCamRenew:        envDuration("TIMER_CAM_RENEW", 60*time.Second),
		TimerInitEnvVar:      envDuration("TIMER_INIT_ENV_VAR", 300*time.Second),
		ONVIFExpiration:      envString("ONVIF_EXPIRATION", "PT1H"),
		DetectingRatePercent: envFloat64("DETECTING_RATE_PERCENT", 0.5),
		DetectingSleepSec:    envFloat64("DETECTING_SLEEP_SEC", 0.05),

		VideoClippingLocation: envString("VIDEO_CLIPPING_LOCATION", "/var/lib/edgecam/clips"),
		HostID:                envString("HOST_ID", ""),
		IdentityID:            envString("IDENTITY_ID", ""),
		PropertyCode:          envString("PROPERTY_CODE", ""),
		ThingName:             envString("THING_NAME", "edgecam"),
		LogLevel:              envString("LOG_LEVEL", "info"),

		ScannerAssetID:   envString("SCANNER_ASSET_ID", envString("HOST_ID", "")),
		ScannerAssetName: envString("SCANNER_ASSET_NAME", envString("THING_NAME", "edgecam")),

		HTTPPort: envInt("HTTP_PORT", 7777),

		CamQueueMax:           envInt("CAM_QUEUE_MAX", 500),
		ScannerOutputQueueMax: envInt("SCANNER_OUTPUT_QUEUE_MAX", 50),
		DecoderPTSCacheCap:    envInt("DECODER_PTS_CACHE_CAP", 100),

		NATSUrl: envString("NATS_URL", "nats://127.0.0.1:4222"),
		DBPath:  envString("DATABASE_PATH", "/var/lib/edgecam/edgecam.db"),

		S3Bucket:              envString("S3_BUCKET", ""),
		S3Region:              envString("S3_REGION", "us-east-1"),
		CredentialProviderURL: envString("CREDENTIAL_PROVIDER_URL", "http://127.0.0.1:9000/credentials"),

		FaceAnalyzerEndpoint: envString("FACE_ANALYZER_ENDPOINT", "http://127.0.0.1:9001"),
		FaceAnalyzerBackend:  envString("FACE_ANALYZER_BACKEND", "INSIGHTFACE"),

		RosterSourceURL: envString("ROSTER_SOURCE_URL", "http://127.0.0.1:9002/roster"),
		ConsumerURL:     envString("ONVIF_CONSUMER_URL", "http://127.0.0.1:7777/onvif_notifications"),

		AdminHTTPHost: envString("ADMIN_HTTP_HOST", "localhost"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat64(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envFloat32(key string, def float32) float32 {
	return float32(envFloat64(key, float64(def)))
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(secs * float64(time.Second))
		}
	}
	return def
}

// Dynamic wraps a Config with a mutex-guarded override map so the
// gocheckin/{thingName}/change_var control topic can adjust values at
// runtime without restarting any worker goroutine. Hot paths read through
// the typed accessors below instead of touching Config fields directly.
type Dynamic struct {
	mu        sync.RWMutex
	base      *Config
	overrides map[string]string
}

// NewDynamic wraps base for runtime overrides.
func NewDynamic(base *Config) *Dynamic {
	return &Dynamic{base: base, overrides: make(map[string]string)}
}

// Set applies a runtime override. Unknown keys are accepted and simply
// ignored by the typed accessors; the change_var path never rejects an
// unrecognized name.
func (d *Dynamic) Set(key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.overrides[key] = value
}

func (d *Dynamic) lookup(key string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.overrides[key]
	return v, ok
}

// TimerDetect returns the current detection-session duration.
func (d *Dynamic) TimerDetect() time.Duration {
	if v, ok := d.lookup("TIMER_DETECT"); ok {
		if secs, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(secs * float64(time.Second))
		}
	}
	return d.base.TimerDetect
}

// TimerRecord returns the current post-trigger recording duration.
func (d *Dynamic) TimerRecord() time.Duration {
	if v, ok := d.lookup("TIMER_RECORD"); ok {
		if secs, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(secs * float64(time.Second))
		}
	}
	return d.base.TimerRecord
}

// AgeDetectingSec returns the current stale-frame discard age.
func (d *Dynamic) AgeDetectingSec() float64 {
	if v, ok := d.lookup("AGE_DETECTING_SEC"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return d.base.AgeDetectingSec
}

// FaceThreshold returns the current similarity cutoff for the named backend.
func (d *Dynamic) FaceThreshold(backend string) float32 {
	key := "FACE_THRESHOLD_" + backend
	if v, ok := d.lookup(key); ok {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return float32(f)
		}
	}
	if backend == "HAILO" {
		return d.base.FaceThresholdHailo
	}
	return d.base.FaceThresholdInsightFace
}

// Base returns the immutable base configuration.
func (d *Dynamic) Base() *Config {
	return d.base
}
