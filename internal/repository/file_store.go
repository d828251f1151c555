package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/CriisxD/rockerpizzaweb/internal/domain"
	"github.com/CriisxD/rockerpizzaweb/internal/port"
)

// fileStore keeps the serialized cart as a single JSON document under a
// fixed path, the browser-localStorage analog. A missing file means no
// cart has been saved yet.
type fileStore struct {
	path string
}

func NewFile(path string) (port.CartStore, error) {
	if path == "" {
		return nil, fmt.Errorf("path is empty")
	}

	return &fileStore{path: path}, nil
}

func (s *fileStore) Load(_ context.Context) ([]domain.CartLine, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return lines, nil
}

// Save writes through a temp file and renames it into place, so a crash
// mid-write leaves the previous cart intact.
func (s *fileStore) Save(_ context.Context, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}

	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("tmp.Write: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("tmp.Close: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}
