package snapshothandler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	dbmodels "office-workflow-backend/models/db"
)

// Snapshot is the full portable state of the service, used for
// backup and restore.
type Snapshot struct {
	Users         []dbmodels.User           `json:"users"`
	Requests      []dbmodels.Request        `json:"requests"`
	Tasks         []dbmodels.Task           `json:"tasks"`
	Histories     []dbmodels.RequestHistory `json:"histories"`
	Notifications []dbmodels.Notification   `json:"notifications"`
	Settings      []dbmodels.Setting        `json:"settings"`
}

// Storage persists a snapshot somewhere durable.
type Storage interface {
	Load() (*Snapshot, error)
	Save(snapshot Snapshot) error
}

type fileStorage struct {
	path string
}

func NewFileStorage(path string) Storage {
	return fileStorage{path: path}
}

// Load returns nil without error when no snapshot exists yet.
func (s fileStorage) Load() (*Snapshot, error) {
	body, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read snapshot file %v", s.path)
	}
	var snapshot Snapshot
	if err = json.Unmarshal(body, &snapshot); err != nil {
		return nil, errors.Wrapf(err, "failed to decode snapshot file %v", s.path)
	}
	return &snapshot, nil
}

func (s fileStorage) Save(snapshot Snapshot) error {
	body, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create snapshot dir for %v", s.path)
	}
	// Write-then-rename so a crash mid-write never truncates the
	// previous snapshot.
	tmp := s.path + ".tmp"
	if err = os.WriteFile(tmp, body, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write snapshot file %v", tmp)
	}
	if err = os.Rename(tmp, s.path); err != nil {
		return errors.Wrapf(err, "failed to replace snapshot file %v", s.path)
	}
	return nil
}

type memoryStorage struct {
	mu   sync.Mutex
	body []byte
}

func NewMemoryStorage() Storage {
	return &memoryStorage{}
}

func (s *memoryStorage) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.body == nil {
		return nil, nil
	}
	var snapshot Snapshot
	if err := json.Unmarshal(s.body, &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to decode snapshot")
	}
	return &snapshot, nil
}

func (s *memoryStorage) Save(snapshot Snapshot) error {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrap(err, "failed to encode snapshot")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.body = body
	return nil
}
