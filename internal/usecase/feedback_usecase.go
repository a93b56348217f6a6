package usecase

import (
	"context"
	"time"

	"clinic-front-desk/internal/converter"
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
	"clinic-front-desk/internal/domain/repository"
	"clinic-front-desk/internal/infrastructure/store"
	"clinic-front-desk/internal/service"

	"github.com/sirupsen/logrus"
)

type FeedbackUsecase interface {
	AddFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	GetAllFeedbacks(ctx context.Context) (*dto.FeedbackListResponse, error)
}

type feedbackUsecase struct {
	store           *store.Store
	log             *logrus.Logger
	feedbackRepo    repository.FeedbackRepository
	appointmentRepo repository.AppointmentRepository
	sequence        *service.SequenceService
	events          service.EventService
}

func NewFeedbackUsecase(
	s *store.Store,
	log *logrus.Logger,
	feedbackRepo repository.FeedbackRepository,
	appointmentRepo repository.AppointmentRepository,
	sequence *service.SequenceService,
	events service.EventService,
) FeedbackUsecase {
	return &feedbackUsecase{
		store:           s,
		log:             log,
		feedbackRepo:    feedbackRepo,
		appointmentRepo: appointmentRepo,
		sequence:        sequence,
		events:          events,
	}
}

// AddFeedback stores a satisfaction record. The NPS label is derived from the
// rating once, at creation, and is immutable afterwards.
func (u *feedbackUsecase) AddFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, u.store, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	var feedback *entity.Feedback

	err = u.store.Atomic(func() error {
		id, err := u.sequence.NextID(ctx, service.PrefixFeedback)
		if err != nil {
			return err
		}

		feedback = &entity.Feedback{
			ID:            id,
			AppointmentID: req.AppointmentID,
			PatientID:     req.PatientID,
			Rating:        req.Rating,
			Comment:       req.Comment,
			Label:         entity.ClassifyRating(req.Rating),
			CreatedAt:     time.Now().UTC(),
		}
		return u.feedbackRepo.Append(ctx, u.store, feedback)
	})
	if err != nil {
		u.log.Warnf("Failed to add feedback: %+v", err)
		return nil, err
	}

	u.events.Record(ctx, entity.EventActionFeedbackCreate, "feedback", feedback.ID, map[string]interface{}{
		"rating": req.Rating,
		"label":  string(feedback.Label),
	})

	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) GetAllFeedbacks(ctx context.Context) (*dto.FeedbackListResponse, error) {
	feedbacks, err := u.feedbackRepo.FindAll(ctx, u.store)
	if err != nil {
		u.log.Warnf("Failed to find all feedbacks: %+v", err)
		return nil, err
	}

	return &dto.FeedbackListResponse{
		Feedbacks: converter.FeedbacksToResponses(feedbacks),
		Total:     len(feedbacks),
	}, nil
}
