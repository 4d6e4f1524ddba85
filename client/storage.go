package client

import (
	"encoding/json"
	"os"
)

// Storage is the persistence the cart and theme sit on: a flat string
// key/value store with synchronous writes, the shape of the browser's
// localStorage.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStorage keeps the whole store as one JSON object in a file and writes
// it back on every mutation.
type FileStorage struct {
	path   string
	values map[string]string
}

func OpenFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.values); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *FileStorage) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *FileStorage) Set(key, value string) error {
	s.values[key] = value
	return s.flush()
}

func (s *FileStorage) Delete(key string) error {
	delete(s.values, key)
	return s.flush()
}

func (s *FileStorage) flush() error {
	data, err := json.Marshal(s.values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// MemoryStorage backs throwaway carts that should not touch disk.
type MemoryStorage struct {
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	delete(s.values, key)
	return nil
}
