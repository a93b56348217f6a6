package repository

import (
	"context"

	"clinic-front-desk/internal/domain/entity"
	domainRepo "clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"
)

type feedbackRepository struct{}

func NewFeedbackRepository() domainRepo.FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) FindAll(ctx context.Context, s *store.Store) ([]entity.Feedback, error) {
	var feedbacks []entity.Feedback
	if err := s.Load(ctx, store.KeyFeedbacks, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}

func (r *feedbackRepository) Append(ctx context.Context, s *store.Store, feedback *entity.Feedback) error {
	feedbacks, err := r.FindAll(ctx, s)
	if err != nil {
		return err
	}
	feedbacks = append(feedbacks, *feedback)
	return s.Save(ctx, store.KeyFeedbacks, feedbacks)
}
