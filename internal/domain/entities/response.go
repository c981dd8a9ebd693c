package entities

// ActionResponse acknowledges a state-changing request
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
