package trips

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

// KV is a string key-value store with the semantics of browser local storage:
// values are opaque strings and a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

var (
	_ KV = (*MemoryKV)(nil)
	_ KV = (*FileKV)(nil)
)

type MemoryKV struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{items: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

// FileKV keeps every key in one JSON object on disk. Each Set rewrites the
// file through a temporary file and rename, so readers never see a torn write.
type FileKV struct {
	mu     sync.RWMutex
	path   string
	items  map[string]string
	logger *zap.Logger
}

func NewFileKV(path string, logger *zap.Logger) (*FileKV, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	kv := &FileKV{path: path, items: make(map[string]string), logger: logger}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		logger.Info("Trip store file not found, starting empty", zap.String("path", path))
		return kv, nil
	case err != nil:
		return nil, errors.Wrapf(models.ErrStorage, "read %s: %v", path, err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &kv.items); err != nil {
			return nil, errors.Wrapf(models.ErrStorage, "decode %s: %v", path, err)
		}
	}
	logger.Info("Trip store file loaded", zap.String("path", path), zap.Int("keys", len(kv.items)))
	return kv, nil
}

func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.items[key]
	return v, ok, nil
}

func (f *FileKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	previous, existed := f.items[key]
	f.items[key] = value
	if err := f.flush(); err != nil {
		if existed {
			f.items[key] = previous
		} else {
			delete(f.items, key)
		}
		return err
	}
	return nil
}

func (f *FileKV) flush() error {
	raw, err := json.MarshalIndent(f.items, "", "  ")
	if err != nil {
		return errors.Wrapf(models.ErrStorage, "encode store: %v", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(models.ErrStorage, "create %s: %v", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".trips-*.json")
	if err != nil {
		return errors.Wrapf(models.ErrStorage, "create temp file: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return errors.Wrapf(models.ErrStorage, "write temp file: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(models.ErrStorage, "close temp file: %v", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return errors.Wrapf(models.ErrStorage, "replace %s: %v", f.path, err)
	}
	return nil
}
