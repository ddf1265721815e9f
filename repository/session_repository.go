package repository

import (
	"context"
	"errors"

	"emi-calculator/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository holds the inputs of live form sessions. Results are not
// stored; they are recomputed from the inputs on load.
type SessionRepository interface {
	Save(ctx context.Context, id string, inputs domain.LoanInputs) error
	Get(ctx context.Context, id string) (domain.LoanInputs, error)
	Delete(ctx context.Context, id string) error
}
