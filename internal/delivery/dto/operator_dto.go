package dto

// OperatorResponse is the display identity shown by the front-desk shell.
type OperatorResponse struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}
