package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/infrastructure/store"
)

type FeedbackRepository interface {
	FindAll(ctx context.Context, s *store.Store) ([]entity.Feedback, error)
	Append(ctx context.Context, s *store.Store, feedback *entity.Feedback) error
}
