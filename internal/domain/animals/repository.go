package animals

import "context"

// Repository guarda el catálogo. List devuelve en orden de alta (created_at, id).
type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
}
