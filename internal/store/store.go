// Package store implements the local persistence layer: a warm cache of
// camera descriptors, a snapshot of the last-known-good roster, and the
// persisted runtime config overrides, backed by a local SQLite file. None
// of these tables is a system of record — the external store remains
// authoritative; this cache only bridges process restarts.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"edgecam/internal/model"
)

// Store wraps the local SQLite handle.
type Store struct {
	db *sql.DB
}

// New opens (creating if absent) the SQLite database at dbPath.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable wal mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate applies schema migrations, tolerating "duplicate column" errors
// from ALTER TABLE statements re-run against an already-migrated database.
func (s *Store) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS cameras (
			ip TEXT PRIMARY KEY,
			uuid TEXT NOT NULL,
			name TEXT NOT NULL,
			username TEXT,
			password TEXT,
			codec TEXT DEFAULT 'h264',
			framerate INTEGER DEFAULT 10,
			is_detecting INTEGER DEFAULT 0,
			is_recording INTEGER DEFAULT 0,
			onvif_enabled INTEGER DEFAULT 0,
			onvif_port INTEGER DEFAULT 80,
			locks TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS roster_members (
			member_no TEXT NOT NULL,
			reservation_code TEXT NOT NULL,
			listing_id TEXT,
			full_name TEXT,
			key_notified INTEGER DEFAULT 0,
			embedding TEXT NOT NULL,
			PRIMARY KEY (member_no, reservation_code)
		)`,
		`ALTER TABLE roster_members ADD COLUMN listing_id TEXT`,
		`CREATE TABLE IF NOT EXISTS app_config (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cameras_updated ON cameras(updated_at DESC)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			if strings.Contains(err.Error(), "duplicate column") {
				continue
			}
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveCamera upserts one camera descriptor into the warm cache.
func (s *Store) SaveCamera(cam *model.Camera) error {
	locksJSON, err := json.Marshal(cam.Locks)
	if err != nil {
		return fmt.Errorf("marshal locks: %w", err)
	}

	query := `INSERT INTO cameras
		(ip, uuid, name, username, password, codec, framerate, is_detecting, is_recording, onvif_enabled, onvif_port, locks, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(ip) DO UPDATE SET
			uuid = excluded.uuid,
			name = excluded.name,
			username = excluded.username,
			password = excluded.password,
			codec = excluded.codec,
			framerate = excluded.framerate,
			is_detecting = excluded.is_detecting,
			is_recording = excluded.is_recording,
			onvif_enabled = excluded.onvif_enabled,
			onvif_port = excluded.onvif_port,
			locks = excluded.locks,
			updated_at = excluded.updated_at`

	_, err = s.db.Exec(query, cam.IP, cam.UUID, cam.Name, cam.Username, cam.Password, cam.Codec,
		cam.Framerate, boolToInt(cam.IsDetecting), boolToInt(cam.IsRecording),
		boolToInt(cam.ONVIFEnabled), cam.ONVIFPort, string(locksJSON), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save camera: %w", err)
	}
	return nil
}

// ListCameras returns the full warm-cached camera set, used both as a
// CameraSource fallback and to seed the supervisor before the owning system
// of record answers.
func (s *Store) ListCameras() ([]*model.Camera, error) {
	query := `SELECT ip, uuid, name, username, password, codec, framerate,
		is_detecting, is_recording, onvif_enabled, onvif_port, locks FROM cameras`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list cameras: %w", err)
	}
	defer rows.Close()

	var cameras []*model.Camera
	for rows.Next() {
		cam := &model.Camera{}
		var isDetecting, isRecording, onvifEnabled int
		var locksJSON string
		if err := rows.Scan(&cam.IP, &cam.UUID, &cam.Name, &cam.Username, &cam.Password, &cam.Codec,
			&cam.Framerate, &isDetecting, &isRecording, &onvifEnabled, &cam.ONVIFPort, &locksJSON); err != nil {
			return nil, fmt.Errorf("scan camera: %w", err)
		}
		cam.IsDetecting = isDetecting == 1
		cam.IsRecording = isRecording == 1
		cam.ONVIFEnabled = onvifEnabled == 1
		if locksJSON != "" {
			if err := json.Unmarshal([]byte(locksJSON), &cam.Locks); err != nil {
				return nil, fmt.Errorf("unmarshal locks: %w", err)
			}
		}
		cameras = append(cameras, cam)
	}
	return cameras, nil
}

// DeleteCamera removes a camera descriptor from the warm cache.
func (s *Store) DeleteCamera(ip string) error {
	_, err := s.db.Exec("DELETE FROM cameras WHERE ip = ?", ip)
	if err != nil {
		return fmt.Errorf("delete camera: %w", err)
	}
	return nil
}

// SaveRoster overwrites the roster snapshot with the given member set,
// used so a restart can rebuild a usable Matrix before the roster source
// answers again.
func (s *Store) SaveRoster(members []*model.Member) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin roster tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM roster_members"); err != nil {
		return fmt.Errorf("clear roster: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO roster_members
		(member_no, reservation_code, listing_id, full_name, key_notified, embedding)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare roster insert: %w", err)
	}
	defer stmt.Close()

	for _, m := range members {
		embeddingJSON, err := json.Marshal(m.FaceEmbedding)
		if err != nil {
			return fmt.Errorf("marshal embedding: %w", err)
		}
		if _, err := stmt.Exec(m.MemberNo, m.ReservationCode, m.ListingID, m.FullName,
			boolToInt(m.KeyNotified), string(embeddingJSON)); err != nil {
			return fmt.Errorf("insert roster member: %w", err)
		}
	}
	return tx.Commit()
}

// LoadRoster returns the last-saved roster snapshot.
func (s *Store) LoadRoster() ([]*model.Member, error) {
	rows, err := s.db.Query(`SELECT member_no, reservation_code, listing_id, full_name, key_notified, embedding FROM roster_members`)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	defer rows.Close()

	var members []*model.Member
	for rows.Next() {
		m := &model.Member{}
		var keyNotified int
		var embeddingJSON string
		if err := rows.Scan(&m.MemberNo, &m.ReservationCode, &m.ListingID, &m.FullName, &keyNotified, &embeddingJSON); err != nil {
			return nil, fmt.Errorf("scan roster member: %w", err)
		}
		m.KeyNotified = keyNotified == 1
		if err := json.Unmarshal([]byte(embeddingJSON), &m.FaceEmbedding); err != nil {
			return nil, fmt.Errorf("unmarshal embedding: %w", err)
		}
		members = append(members, m)
	}
	return members, nil
}

// SaveConfigOverride persists one change_var override so it survives a
// restart.
func (s *Store) SaveConfigOverride(key, value string) error {
	query := `INSERT INTO app_config (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	_, err := s.db.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("save config override: %w", err)
	}
	return nil
}

// LoadConfigOverrides returns every persisted change_var override.
func (s *Store) LoadConfigOverrides() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM app_config")
	if err != nil {
		return nil, fmt.Errorf("load config overrides: %w", err)
	}
	defer rows.Close()

	overrides := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config override: %w", err)
		}
		overrides[key] = value
	}
	return overrides, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
