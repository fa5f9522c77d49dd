package dto

// MutationResponse confirms a ledger write and names the affected record
type MutationResponse struct {
	Message string `json:"message" example:"Section created"`
	ID      string `json:"id,omitempty" example:"4b1f..."`
}

// HealthResponse reports liveness and the active persistence provider
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Storage string `json:"storage" example:"file"`
}
