package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/2beens/workouttracker/pkg"

	log "github.com/sirupsen/logrus"
)

var _ Store = (*DiskStore)(nil)

// DiskStore keeps every key in its own <key>.json file under the root dir.
// Writes go to a temp file first and are renamed over the target, so a
// crash never leaves a half written document behind.
type DiskStore struct {
	rootPath string
	mutex    sync.Mutex
}

func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("disk store root path not set")
	}

	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("create disk store root [%s]: %w", rootPath, err)
	}
	exists, err := pkg.PathExists(rootPath, true)
	if err != nil {
		return nil, fmt.Errorf("check disk store root [%s]: %w", rootPath, err)
	}
	if !exists {
		return nil, fmt.Errorf("disk store root [%s] not created", rootPath)
	}

	log.Debugf("disk store root: %s", rootPath)

	return &DiskStore{
		rootPath: rootPath,
	}, nil
}

func (s *DiskStore) RootPath() string {
	return s.rootPath
}

func (s *DiskStore) Get(_ context.Context, key string) ([]byte, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, err
	}

	value, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read [%s]: %w", key, err)
	}
	return value, nil
}

func (s *DiskStore) Set(_ context.Context, key string, value []byte) (err error) {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tmpFile, err := os.CreateTemp(s.rootPath, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for [%s]: %w", key, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if _, err = tmpFile.Write(value); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write [%s]: %w", key, err)
	}
	if err = tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("sync [%s]: %w", key, err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("close [%s]: %w", key, err)
	}
	if err = os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("rename [%s]: %w", key, err)
	}

	return nil
}

func (s *DiskStore) Close() error {
	return nil
}

func (s *DiskStore) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key: [%s]", key)
	}
	return filepath.Join(s.rootPath, key+".json"), nil
}
