// Package control subscribes to the five inbound NATS control topics and
// routes each to the component that owns the behavior: the supervisor for
// reset_camera, the trigger coordinator for force_detect/trigger_detection/
// stop_detection, and the dynamic config layer for change_var. Subscription
// wiring follows bus.NATSBus.Subscribe's "handlers must not block" contract
// directly.
package control

import (
	"encoding/json"
	"log"

	"edgecam/internal/bus"
	"edgecam/internal/config"
	"edgecam/internal/supervisor"
	"edgecam/internal/trigger"
)

// Coordinator is the subset of trigger.Coordinator the control wiring needs.
type Coordinator interface {
	OnONVIFMotion(cameraIP string)
	OnOccupancyTrue(cameraIP, lockAssetID string)
	OnOccupancyFalse(cameraIP, lockAssetID string)
}

var _ Coordinator = (*trigger.Coordinator)(nil)

// Reloader is the subset of supervisor.Supervisor the control wiring needs.
type Reloader interface {
	ForceReload()
}

var _ Reloader = (*supervisor.Supervisor)(nil)

// OverrideStore persists change_var overrides so they survive a restart; the
// local store implements it. May be nil, in which case overrides apply for
// the life of the process only.
type OverrideStore interface {
	SaveConfigOverride(key, value string) error
}

type occupancyPayload struct {
	CameraIP    string `json:"cam_ip"`
	LockAssetID string `json:"lock_asset_id"`
}

type forceDetectPayload struct {
	CameraIP string `json:"cam_ip"`
}

type changeVarPayload struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Subscribe wires every inbound control topic to its handler. thingName
// scopes the per-agent topics (force_detect, change_var); reset_camera and
// trigger_detection/stop_detection are fleet-wide.
func Subscribe(b *bus.NATSBus, thingName string, coordinator Coordinator, reloader Reloader, dynamic *config.Dynamic, overrides OverrideStore) error {
	if _, err := b.Subscribe("gocheckin/reset_camera", func(data []byte) {
		go reloader.ForceReload()
	}); err != nil {
		return err
	}

	if _, err := b.Subscribe("gocheckin/"+thingName+"/force_detect", func(data []byte) {
		var p forceDetectPayload
		if err := json.Unmarshal(data, &p); err != nil {
			log.Printf("[control] force_detect: invalid payload: %v", err)
			return
		}
		coordinator.OnONVIFMotion(p.CameraIP)
	}); err != nil {
		return err
	}

	if _, err := b.Subscribe("gocheckin/"+thingName+"/change_var", func(data []byte) {
		var p changeVarPayload
		if err := json.Unmarshal(data, &p); err != nil {
			log.Printf("[control] change_var: invalid payload: %v", err)
			return
		}
		dynamic.Set(p.Key, p.Value)
		if overrides != nil {
			if err := overrides.SaveConfigOverride(p.Key, p.Value); err != nil {
				log.Printf("[control] change_var: persist override %s: %v", p.Key, err)
			}
		}
	}); err != nil {
		return err
	}

	if _, err := b.Subscribe("gocheckin/trigger_detection", func(data []byte) {
		var p occupancyPayload
		if err := json.Unmarshal(data, &p); err != nil {
			log.Printf("[control] trigger_detection: invalid payload: %v", err)
			return
		}
		// lock_asset_id is optional: absent means this is the
		// ONVIF-equivalent path (legacy-lock suppression applies),
		// present means an occupancy-true trigger for that lock.
		if p.LockAssetID == "" {
			coordinator.OnONVIFMotion(p.CameraIP)
			return
		}
		coordinator.OnOccupancyTrue(p.CameraIP, p.LockAssetID)
	}); err != nil {
		return err
	}

	if _, err := b.Subscribe("gocheckin/stop_detection", func(data []byte) {
		var p occupancyPayload
		if err := json.Unmarshal(data, &p); err != nil {
			log.Printf("[control] stop_detection: invalid payload: %v", err)
			return
		}
		coordinator.OnOccupancyFalse(p.CameraIP, p.LockAssetID)
	}); err != nil {
		return err
	}

	return nil
}
