package converter

import (
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
)

// FeedbackToResponse converts a Feedback entity to FeedbackResponse DTO
func FeedbackToResponse(feedback *entity.Feedback) *dto.FeedbackResponse {
	if feedback == nil {
		return nil
	}

	return &dto.FeedbackResponse{
		ID:            feedback.ID,
		AppointmentID: feedback.AppointmentID,
		PatientID:     feedback.PatientID,
		Rating:        feedback.Rating,
		Comment:       feedback.Comment,
		Label:         string(feedback.Label),
		CreatedAt:     feedback.CreatedAt,
	}
}

// FeedbacksToResponses converts a slice of Feedback entities to DTOs
func FeedbacksToResponses(feedbacks []entity.Feedback) []dto.FeedbackResponse {
	responses := make([]dto.FeedbackResponse, len(feedbacks))
	for i := range feedbacks {
		responses[i] = *FeedbackToResponse(&feedbacks[i])
	}
	return responses
}
