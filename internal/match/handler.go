// Package match implements the MatchHandler component: it takes one
// MatchEvent, renders a composite snapshot with bounding boxes and labels
// on a copy of the raw frame, derives the remote object keys, and enqueues
// an output record.
package match

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"edgecam/internal/model"
)

// Output receives finished records; the output worker (bus + artifact sink)
// implements this.
type Output interface {
	Enqueue(record model.OutputRecord) bool
}

// Handler is the C4 component. It is stateless except for a
// captured-members cache that remembers the best similarity seen per member,
// keyed by reservationCode-memberNo.
type Handler struct {
	root         string
	identityID   string
	hostID       string
	propertyCode string
	coreName     string
	output       Output

	mu       sync.Mutex
	captured map[string]float32
}

// New constructs a MatchHandler writing snapshots under root, deriving
// remote object keys using the identity/host/property identifiers taken
// from configuration at startup. coreName is the scanner's thing name: a
// constant agent identity, the {coreName} slot of every derived key.
func New(root, identityID, hostID, propertyCode, coreName string, output Output) *Handler {
	return &Handler{
		root:         root,
		identityID:   identityID,
		hostID:       hostID,
		propertyCode: propertyCode,
		coreName:     coreName,
		output:       output,
		captured:     make(map[string]float32),
	}
}

// Handle processes one MatchEvent end to end.
func (h *Handler) Handle(evt *model.MatchEvent) error {
	now := time.Now().UTC()
	dateDir := now.Format("2006-01-02")
	timeFile := now.Format("15:04:05")

	camDir := evt.Camera.IP
	dir := filepath.Join(h.root, camDir, dateDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	snapshotPath := filepath.Join(dir, timeFile+".jpg")

	composite, err := renderComposite(evt.Image, evt.Faces)
	if err != nil {
		return fmt.Errorf("render composite: %w", err)
	}
	f, err := os.Create(snapshotPath)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	if err := jpeg.Encode(f, composite, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	f.Close()

	snapshotKey := fmt.Sprintf("%s/properties/%s/%s/%s/%s/%s.jpg", h.hostID, h.propertyCode, h.coreName, evt.Camera.IP, dateDir, timeFile)

	members := make([]model.MemberPayload, 0, len(evt.Faces))
	h.mu.Lock()
	for _, fm := range evt.Faces {
		if fm.Member == nil {
			continue
		}
		key := fm.Member.ReservationCode + "-" + fm.Member.MemberNo
		if best, ok := h.captured[key]; ok && best >= fm.Similarity {
			continue
		}
		h.captured[key] = fm.Similarity

		checkInKey := fmt.Sprintf("private/%s/%s/listings/%s/%s/checkIn/%s.jpg",
			h.identityID, h.hostID, fm.Member.ListingID, fm.Member.ReservationCode, fm.Member.MemberNo)
		propertyKey := fmt.Sprintf("private/%s/%s/properties/%s/%s/%s/%s/%s.jpg",
			h.identityID, h.hostID, h.propertyCode, h.coreName, evt.Camera.IP, dateDir, timeFile)

		members = append(members, model.MemberPayload{
			Member:         fm.Member,
			Similarity:     fm.Similarity,
			RecordTime:     now,
			CheckInImgKey:  checkInKey,
			PropertyImgKey: propertyKey,
		})
	}
	h.mu.Unlock()

	if len(members) == 0 {
		return nil
	}

	var trig model.TriggerContext
	if evt.Trigger != nil {
		trig = *evt.Trigger
	}

	record := model.OutputRecord{
		MemberDetected: &model.MemberDetected{
			Members:      members,
			Camera:       evt.Camera,
			Trigger:      trig,
			SnapshotPath: snapshotPath,
			SnapshotKey:  snapshotKey,
		},
	}
	h.output.Enqueue(record)
	return nil
}

// renderComposite decodes the raw frame (already JPEG-encoded by the
// decode pipeline) and draws every matching bounding box plus a similarity
// label on a copy, leaving the source image untouched.
func renderComposite(raw []byte, faces []model.FaceMatch) (image.Image, error) {
	src, err := jpegDecode(raw)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)

	for _, fm := range faces {
		if fm.Member == nil {
			continue
		}
		drawBox(dst, fm.BBox, color.RGBA{R: 0, G: 220, B: 60, A: 255})
		label := fmt.Sprintf("%s %.2f", fm.Member.FullName, fm.Similarity)
		drawLabel(dst, fm.BBox[0], fm.BBox[1]-4, label)
	}
	return dst, nil
}

func jpegDecode(raw []byte) (image.Image, error) {
	return jpeg.Decode(bytes.NewReader(raw))
}

func drawBox(dst *image.RGBA, bbox [4]int, c color.RGBA) {
	x0, y0, x1, y1 := bbox[0], bbox[1], bbox[2], bbox[3]
	const thickness = 2
	for t := 0; t < thickness; t++ {
		hLine(dst, x0, x1, y0+t, c)
		hLine(dst, x0, x1, y1-t, c)
		vLine(dst, y0, y1, x0+t, c)
		vLine(dst, y0, y1, x1-t, c)
	}
}

func hLine(dst *image.RGBA, x0, x1, y int, c color.RGBA) {
	if y < dst.Bounds().Min.Y || y >= dst.Bounds().Max.Y {
		return
	}
	for x := x0; x <= x1; x++ {
		if x < dst.Bounds().Min.X || x >= dst.Bounds().Max.X {
			continue
		}
		dst.SetRGBA(x, y, c)
	}
}

func vLine(dst *image.RGBA, y0, y1, x int, c color.RGBA) {
	if x < dst.Bounds().Min.X || x >= dst.Bounds().Max.X {
		return
	}
	for y := y0; y <= y1; y++ {
		if y < dst.Bounds().Min.Y || y >= dst.Bounds().Max.Y {
			continue
		}
		dst.SetRGBA(x, y, c)
	}
}

func drawLabel(dst *image.RGBA, x, y int, label string) {
	if y < 0 {
		y = 0
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{R: 0, G: 220, B: 60, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}
