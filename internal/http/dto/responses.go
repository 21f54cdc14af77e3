package dto

type AuthResponse struct {
	Token string `json:"token"`
	Brand any    `json:"brand"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type AssignResponse struct {
	AlreadyAssigned bool `json:"already_assigned"`
}

type OutreachResponse struct {
	Negotiation   any    `json:"negotiation"`
	AgentDispatch string `json:"agent_dispatch"` // "ok" or "failed"
}
