package analytics

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/boutique-analytics/internal/domain/entity"
	"github.com/jhoicas/boutique-analytics/internal/domain/repository"
	"github.com/jhoicas/boutique-analytics/pkg/logger"
)

const snapshotKey = "sales"

// Snapshot copia inmutable de la vista de ventas tal como se leyó del almacén.
// Nadie debe modificar Records después de publicarlo.
type Snapshot struct {
	Records  []entity.SaleRecord
	LoadedAt time.Time
}

// SnapshotStore memoiza la última lectura de SalesRepository hasta que se invalida
// explícitamente. No hay refresco en segundo plano.
//
// Las lecturas concurrentes que encuentran el caché inválido comparten una sola
// consulta al almacén (singleflight). Cada Invalidate abre una generación nueva:
// una carga iniciada antes de la invalidación no publica su resultado.
type SnapshotStore struct {
	repo repository.SalesRepository
	log  *logger.Logger
	now  func() time.Time

	mu      sync.RWMutex
	current *Snapshot
	stale   bool   // invalidado: la próxima lectura vuelve al almacén
	gen     uint64 // se incrementa en cada Invalidate

	group singleflight.Group
}

// NewSnapshotStore construye el caché vacío.
func NewSnapshotStore(repo repository.SalesRepository, log *logger.Logger) *SnapshotStore {
	return &SnapshotStore{repo: repo, log: log, now: time.Now}
}

// Get devuelve el snapshot vigente o lo carga del almacén.
//
// Si la carga falla y existe un snapshot anterior, devuelve ese snapshot Y el
// error: el llamador decide si mostrar los datos anteriores. Sin snapshot
// anterior devuelve (nil, err).
//
// La carga compartida no hereda la cancelación del primer llamador: si ese
// cliente se desconecta, los demás siguen esperando la misma lectura.
func (s *SnapshotStore) Get(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	current, stale, gen := s.current, s.stale, s.gen
	s.mu.RUnlock()
	if current != nil && !stale {
		return current, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	key := snapshotKey + ":" + strconv.FormatUint(gen, 10)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		if snap := s.fresh(gen); snap != nil {
			return snap, nil
		}
		return s.load(loadCtx, gen)
	})
	if err != nil {
		s.mu.RLock()
		previous := s.current
		s.mu.RUnlock()
		return previous, err
	}
	return v.(*Snapshot), nil
}

// Invalidate descarta la validez del snapshot; se conserva como respaldo
// por si la siguiente lectura falla.
func (s *SnapshotStore) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.gen++
	s.mu.Unlock()
	s.log.Info().Msg("snapshot de ventas invalidado")
}

// Refresh invalida y recarga en la misma llamada.
func (s *SnapshotStore) Refresh(ctx context.Context) (*Snapshot, error) {
	s.Invalidate()
	return s.Get(ctx)
}

// fresh devuelve el snapshot publicado si sigue vigente para gen.
func (s *SnapshotStore) fresh(gen uint64) *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current != nil && !s.stale && s.gen == gen {
		return s.current
	}
	return nil
}

func (s *SnapshotStore) load(ctx context.Context, gen uint64) (*Snapshot, error) {
	start := s.now()
	records, err := s.repo.FetchSales(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("lectura de ventas fallida")
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	snap := &Snapshot{Records: records, LoadedAt: s.now()}
	s.mu.Lock()
	published := s.gen == gen
	if published {
		s.current = snap
		s.stale = false
	}
	s.mu.Unlock()

	if !published {
		s.log.Debug().Uint64("gen", gen).Msg("carga anterior a una invalidación descartada")
		return snap, nil
	}
	s.log.Info().
		Int("records", len(records)).
		Dur("elapsed", snap.LoadedAt.Sub(start)).
		Msg("snapshot de ventas cargado")
	return snap, nil
}
