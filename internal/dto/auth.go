package dto

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the issued JWT.
type LoginResponse struct {
	Token string `json:"token"`
}

// EvidenceUploadResponse returns the opaque storage handle for an uploaded artifact.
type EvidenceUploadResponse struct {
	EvidencePath string `json:"evidencePath"`
}
