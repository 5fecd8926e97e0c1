package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// StorageError wraps a persistence failure. Handlers map it to a 500 with a
// generic message; the detail stays in the server log.
type StorageError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for collection %q: %v", e.Op, e.Collection, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store persists each collection as one JSON file under its directory.
// Access is single-writer per collection: WithLock serializes every
// load-mutate-save cycle in-process, and Save replaces the file through a
// temp-file rename so readers never observe a partial write.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StorageError{Op: "init", Collection: dir, Err: err}
	}
	return &Store{
		dir:   dir,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (s *Store) lock(collection string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	return l
}

// WithLock runs fn while holding the collection's writer lock.
func (s *Store) WithLock(collection string, fn func() error) error {
	l := s.lock(collection)
	l.Lock()
	defer l.Unlock()
	return fn()
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load reads the collection document into v. A missing, unreadable or
// malformed file is treated as an empty collection: the error is logged and
// v is left at its zero value. Availability over correctness, the next
// successful save rewrites the file.
func (s *Store) Load(collection string, v any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ [STORE] Read failed for %q, treating as empty: %v", collection, err)
		}
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("⚠️ [STORE] Malformed JSON in %q, treating as empty: %v", collection, err)
		return nil
	}

	return nil
}

// Save serializes v and atomically replaces the collection file.
func (s *Store) Save(collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &StorageError{Op: "marshal", Collection: collection, Err: err}
	}

	path := s.path(collection)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &StorageError{Op: "write", Collection: collection, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &StorageError{Op: "rename", Collection: collection, Err: err}
	}

	return nil
}
