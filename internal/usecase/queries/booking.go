package queries

import (
	"context"

	"github.com/google/uuid"
)

type BookingFilter struct {
	RoomID   *uuid.UUID
	ClientID *uuid.UUID
	Status   *string
}

type BookingQueries interface {
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingViewRepo interface {
	FindAll(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter) ([]*BookingView, error) {
	return q.repo.FindAll(ctx, filter)
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}
