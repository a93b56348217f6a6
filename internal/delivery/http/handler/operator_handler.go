package handler

import (
	"net/http"

	"clinic-front-desk/config"
	"clinic-front-desk/internal/delivery/dto"
	"clinic-front-desk/pkg/response"
)

// OperatorHandler serves the shell's identity endpoint. There is no
// authentication behind it; it only echoes the configured display identity.
type OperatorHandler struct {
	operator config.OperatorConfig
}

func NewOperatorHandler(operator config.OperatorConfig) *OperatorHandler {
	return &OperatorHandler{operator: operator}
}

func (h *OperatorHandler) Me(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Operator retrieved successfully", &dto.OperatorResponse{
		Name:   h.operator.Name,
		Avatar: h.operator.Avatar,
	})
}
