package services

import (
	cameragen "edgecam/gen/camera"

	"context"

	"edgecam/internal/model"
	"edgecam/internal/store"
	"edgecam/internal/supervisor"
)

// CameraImplementation implements the camera service: CRUD against the
// warm-cached camera descriptors, with every mutation followed by a forced
// supervisor reconciliation pass so the change takes effect immediately
// instead of waiting for the next periodic reconcile.
type CameraImplementation struct {
	store *store.Store
	sup   *supervisor.Supervisor
}

// NewCameraService constructs the camera service.
func NewCameraService(st *store.Store, sup *supervisor.Supervisor) cameragen.Service {
	return &CameraImplementation{store: st, sup: sup}
}

func toCameraInfo(cam *model.Camera) *cameragen.CameraInfo {
	locks := make([]*cameragen.LockInfo, len(cam.Locks))
	for i, l := range cam.Locks {
		locks[i] = &cameragen.LockInfo{AssetID: l.AssetID, WithKeypad: l.WithKeypad}
	}
	return &cameragen.CameraInfo{
		IP:           cam.IP,
		UUID:         cam.UUID,
		Name:         cam.Name,
		Username:     &cam.Username,
		Codec:        cam.Codec,
		Framerate:    &cam.Framerate,
		IsDetecting:  &cam.IsDetecting,
		IsRecording:  &cam.IsRecording,
		OnvifEnabled: &cam.ONVIFEnabled,
		OnvifPort:    &cam.ONVIFPort,
		Locks:        locks,
	}
}

func fromLockInfo(in []*cameragen.LockInfo) []model.Lock {
	out := make([]model.Lock, len(in))
	for i, l := range in {
		out[i] = model.Lock{AssetID: l.AssetID, WithKeypad: l.WithKeypad}
	}
	return out
}

// List returns every camera descriptor in the warm cache.
func (c *CameraImplementation) List(ctx context.Context) ([]*cameragen.CameraInfo, error) {
	cams, err := c.store.ListCameras()
	if err != nil {
		return nil, &cameragen.InternalError{Message: err.Error()}
	}
	result := make([]*cameragen.CameraInfo, len(cams))
	for i, cam := range cams {
		result[i] = toCameraInfo(cam)
	}
	return result, nil
}

// Get returns one camera descriptor by IP.
func (c *CameraImplementation) Get(ctx context.Context, p *cameragen.GetPayload) (*cameragen.CameraInfo, error) {
	cams, err := c.store.ListCameras()
	if err != nil {
		return nil, &cameragen.InternalError{Message: err.Error()}
	}
	for _, cam := range cams {
		if cam.IP == p.IP {
			return toCameraInfo(cam), nil
		}
	}
	return nil, &cameragen.NotFoundError{Message: "camera not found", ID: p.IP}
}

// Create registers a new camera descriptor and forces a reconciliation pass.
func (c *CameraImplementation) Create(ctx context.Context, p *cameragen.CreatePayload) (*cameragen.CameraInfo, error) {
	cam := &model.Camera{
		IP:           p.IP,
		UUID:         p.UUID,
		Name:         p.Name,
		Username:     p.Username,
		Password:     p.Password,
		Codec:        p.Codec,
		Framerate:    p.Framerate,
		ONVIFEnabled: p.OnvifEnabled,
		ONVIFPort:    p.OnvifPort,
		Locks:        fromLockInfo(p.Locks),
	}
	if err := c.store.SaveCamera(cam); err != nil {
		return nil, &cameragen.BadRequestError{Message: "failed to save camera", Details: strPtr(err.Error())}
	}
	c.sup.ForceReload()
	return toCameraInfo(cam), nil
}

// Update updates an existing camera descriptor and forces a reconciliation pass.
func (c *CameraImplementation) Update(ctx context.Context, p *cameragen.UpdatePayload) (*cameragen.CameraInfo, error) {
	cams, err := c.store.ListCameras()
	if err != nil {
		return nil, &cameragen.InternalError{Message: err.Error()}
	}
	var existing *model.Camera
	for _, cam := range cams {
		if cam.IP == p.IP {
			existing = cam
			break
		}
	}
	if existing == nil {
		return nil, &cameragen.NotFoundError{Message: "camera not found", ID: p.IP}
	}

	if p.Name != nil {
		existing.Name = *p.Name
	}
	if p.Username != nil {
		existing.Username = *p.Username
	}
	if p.Password != nil {
		existing.Password = *p.Password
	}
	if p.IsDetecting != nil {
		existing.IsDetecting = *p.IsDetecting
	}
	if p.IsRecording != nil {
		existing.IsRecording = *p.IsRecording
	}
	if p.OnvifEnabled != nil {
		existing.ONVIFEnabled = *p.OnvifEnabled
	}
	if p.OnvifPort != nil {
		existing.ONVIFPort = *p.OnvifPort
	}
	if p.Locks != nil {
		existing.Locks = fromLockInfo(p.Locks)
	}

	if err := c.store.SaveCamera(existing); err != nil {
		return nil, &cameragen.BadRequestError{Message: "failed to save camera", Details: strPtr(err.Error())}
	}
	c.sup.ForceReload()
	return toCameraInfo(existing), nil
}

// Delete removes a camera descriptor and forces a reconciliation pass.
func (c *CameraImplementation) Delete(ctx context.Context, p *cameragen.DeletePayload) error {
	if err := c.store.DeleteCamera(p.IP); err != nil {
		return &cameragen.NotFoundError{Message: "camera not found", ID: p.IP}
	}
	c.sup.ForceReload()
	return nil
}

// Reload forces an immediate reconciliation pass, mirroring the
// gocheckin/reset_camera control topic.
func (c *CameraImplementation) Reload(ctx context.Context) error {
	c.sup.ForceReload()
	return nil
}

func strPtr(s string) *string { return &s }
