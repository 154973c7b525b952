package mammals

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	ErrNoDatabase = errors.New("mammals: database not configured")
)

// Animal es cualquier registro capaz de responder si es mamífero.
// El error reporta que el registro no pudo clasificarse.
type Animal interface {
	IsMammal() (bool, error)
}

// Database es el colaborador externo que entrega la secuencia de animales.
// El Set no interpreta sus errores, solo los propaga.
type Database[A Animal] interface {
	Animals(ctx context.Context) ([]A, error)
}

// Set mantiene, en el orden de la fuente, los animales que eran mamíferos
// en el último Refresh exitoso.
type Set[A Animal] struct {
	mu          sync.RWMutex
	mammals     []A
	refreshedAt time.Time

	db  Database[A] // no es dueño; puede ser nil si nunca se refresca
	now func() time.Time
}

func NewSet[A Animal](db Database[A]) *Set[A] {
	return &Set[A]{
		mammals: make([]A, 0),
		db:      db,
		now:     time.Now,
	}
}

// Refresh consulta la base una sola vez y reemplaza el contenido con los
// mamíferos devueltos. Si la base o algún predicado fallan, el error se
// devuelve tal cual y el contenido anterior queda intacto.
func (s *Set[A]) Refresh(ctx context.Context) error {
	if s.db == nil {
		return ErrNoDatabase
	}

	items, err := s.db.Animals(ctx)
	if err != nil {
		return err
	}

	out := make([]A, 0, len(items))
	for _, a := range items {
		ok, err := a.IsMammal()
		if err != nil {
			return err
		}
		if ok {
			out = append(out, a)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// asignación completa; dos Refresh concurrentes: gana el último
	s.mammals = out
	s.refreshedAt = s.now()
	return nil
}

// Mammals devuelve una copia del contenido actual.
func (s *Set[A]) Mammals() []A {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]A, len(s.mammals))
	copy(out, s.mammals)
	return out
}

func (s *Set[A]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mammals)
}

// RefreshedAt es cero hasta el primer Refresh exitoso.
func (s *Set[A]) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}
