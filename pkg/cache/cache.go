// Package cache keeps rendered GET responses keyed by request URI until a
// write invalidates them with RevalidatePath.
package cache

import (
	"bytes"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type entry struct {
	header http.Header
	body   []byte
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	// generation is bumped by every RevalidatePath. A response is stored only
	// if no revalidation happened while it was being produced.
	generation uint64
}

func New() *Store {
	return &Store{
		entries: make(map[string]entry),
	}
}

// RevalidatePath drops every cached response whose path starts with prefix.
func (s *Store) RevalidatePath(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	dropped := 0
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			delete(s.entries, key)
			dropped++
		}
	}
	zap.L().Debug("revalidated path", zap.String("prefix", prefix), zap.Int("dropped", dropped))
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Middleware serves GET requests from the store and records successful
// responses into it. Other methods pass through untouched.
func (s *Store) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()
		s.mu.RLock()
		cached, ok := s.entries[key]
		generation := s.generation
		s.mu.RUnlock()
		if ok {
			for k, v := range cached.header {
				w.Header()[k] = v
			}
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(cached.body)
			return
		}

		rec := &recorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status != http.StatusOK {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.generation != generation {
			zap.L().Debug("response outdated by revalidation, not cached", zap.String("key", key))
			return
		}
		s.entries[key] = entry{header: w.Header().Clone(), body: rec.body.Bytes()}
	})
}

type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
