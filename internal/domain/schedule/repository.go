package schedule

import (
	"context"
	"time"
)

// Repository guarda sessões efêmeras; nada aqui é persistido de forma durável.
type Repository interface {
	Create(ctx context.Context, s *State) error

	Get(ctx context.Context, id string) (*State, error)

	// Update roda fn com acesso exclusivo à sessão e grava o resultado.
	// Se fn devolver erro nada é gravado.
	Update(ctx context.Context, id string, fn func(s *State) error) (*State, error)

	Delete(ctx context.Context, id string) error

	// Sweep remove sessões sem atividade desde before e devolve seus ids.
	Sweep(ctx context.Context, before time.Time) ([]string, error)
}
