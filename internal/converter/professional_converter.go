package converter

import (
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/internal/domain/entity"
)

// ProfessionalToResponse converts a Professional entity to ProfessionalResponse DTO
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:          professional.ID,
		Name:        professional.Name,
		Specialty:   professional.Specialty,
		WorkDays:    professional.WorkDays,
		Start:       professional.Start,
		End:         professional.End,
		SlotMinutes: professional.SlotMinutes,
	}
}

// ProfessionalsToResponses converts a slice of Professional entities to DTOs
func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = *ProfessionalToResponse(&professionals[i])
	}
	return responses
}
