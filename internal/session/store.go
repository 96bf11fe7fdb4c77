package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Store is the keyed session blob store. Deletion by identifier is
// best-effort: entries absent from the backend are not errors.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, sid string) (*Session, error)
	DeleteFromIdentifiers(ctx context.Context, identifiers []string) int
}

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSID      = errors.New("invalid session id")
)

// FileStore keeps one file per session under <root>/<sid[:2]>/<sid>, the
// same sharding the session files use on disk.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{root: root}, nil
}

// path shards by the first two SID characters. Callers check ValidSID
// before building a path, so the SID never carries path separators.
func (f *FileStore) path(sid string) string {
	return filepath.Join(f.root, sid[:2], sid)
}

func (f *FileStore) Save(_ context.Context, s *Session) error {
	if !ValidSID(s.SID) {
		return ErrInvalidSID
	}

	bytes, err := json.Marshal(s)
	if err != nil {
		return err
	}

	path := f.path(s.SID)
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(path, bytes, 0o600)
}

func (f *FileStore) Get(_ context.Context, sid string) (*Session, error) {
	if !ValidSID(sid) {
		return nil, ErrSessionNotFound
	}

	bytes, err := os.ReadFile(f.path(sid))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	s := &Session{}
	if err = json.Unmarshal(bytes, s); err != nil {
		return nil, err
	}

	return s, nil
}

// DeleteFromIdentifiers removes every session file whose name starts with
// one of the given identifiers and returns the number of files actually
// unlinked. I/O failures are logged and skipped.
func (f *FileStore) DeleteFromIdentifiers(_ context.Context, identifiers []string) int {
	deleted := 0
	for _, identifier := range identifiers {
		if !ValidSID(identifier) {
			continue
		}

		shard := filepath.Join(f.root, identifier[:2])
		entries, err := os.ReadDir(shard)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				zap.L().Warn(
					"failed to read session shard",
					zap.String("shard", shard),
					zap.Error(err),
				)
			}
			continue
		}

		for _, entry := range entries {
			if !strings.HasPrefix(entry.Name(), identifier) {
				continue
			}

			path := filepath.Join(shard, entry.Name())
			if err = os.Remove(path); err != nil {
				zap.L().Error(
					"failed to delete session file",
					zap.String("path", path),
					zap.Error(err),
				)
				continue
			}
			deleted++
		}
	}

	zap.L().Info("Deleted session files", zap.Int("count", deleted))
	return deleted
}
