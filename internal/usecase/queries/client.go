package queries

import (
	"context"

	"github.com/google/uuid"
)

type ClientQueries interface {
	List(ctx context.Context) ([]*ClientView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	// GetByDocument looks a client up by bare document digits.
	GetByDocument(ctx context.Context, documentDigits string) (*ClientView, error)
}

type ClientViewRepo interface {
	FindAll(ctx context.Context) ([]*ClientView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	FindByDocument(ctx context.Context, documentDigits string) (*ClientView, error)
}

type clientQueriesImpl struct {
	repo ClientViewRepo
}

func NewClientQueries(repo ClientViewRepo) ClientQueries {
	return &clientQueriesImpl{repo: repo}
}

func (q *clientQueriesImpl) List(ctx context.Context) ([]*ClientView, error) {
	return q.repo.FindAll(ctx)
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ClientView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *clientQueriesImpl) GetByDocument(ctx context.Context, documentDigits string) (*ClientView, error) {
	return q.repo.FindByDocument(ctx, documentDigits)
}
