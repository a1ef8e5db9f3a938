package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type descarga struct {
	ruta   string
	nombre string
	expira time.Time
}

// descargaStore descargas pendientes con token de un solo uso
type descargaStore struct {
	mu    sync.Mutex
	items map[string]descarga
}

func newDescargaStore() *descargaStore {
	return &descargaStore{
		items: make(map[string]descarga),
	}
}

func (s *descargaStore) put(ruta, nombre string, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgarExpiradosLocked(time.Now())

	token = uuid.NewString()
	s.items[token] = descarga{
		ruta:   ruta,
		nombre: nombre,
		expira: time.Now().Add(ttl),
	}
	return token
}

func (s *descargaStore) get(token string) (descarga, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgarExpiradosLocked(time.Now())

	v, ok := s.items[token]
	if !ok {
		return descarga{}, false
	}
	if time.Now().After(v.expira) {
		delete(s.items, token)
		return descarga{}, false
	}
	return v, true
}

func (s *descargaStore) delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
}

func (s *descargaStore) purgarExpiradosLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expira) {
			delete(s.items, k)
		}
	}
}
