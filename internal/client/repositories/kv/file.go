package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/interviewdesk/internal/filex"
)

// FileRepository keeps all keys in a single JSON object file. Values are
// stored as strings, so the file stays readable when values are JSON text.
// A missing or empty file reads as an empty store.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.loadLocked()
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	v, ok := data[key]
	if !ok {
		return nil, nil
	}
	return []byte(v), nil
}

func (r *FileRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.loadLocked()
	if err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	data[key] = string(value)
	if err := r.saveLocked(data); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *FileRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.loadLocked()
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	if err := r.saveLocked(data); err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *FileRepository) Close() error { return nil }

func (r *FileRepository) loadLocked() (map[string]string, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	data := map[string]string{}
	if len(b) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return data, nil
}

func (r *FileRepository) saveLocked(data map[string]string) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	return filex.WriteFileAtomic(r.path, b, 0o600)
}
