package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"registrar"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// TokenResponse contains the issued access token
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"` // seconds
}

// ProfileResponse is the authenticated account's own view
type ProfileResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"registrar"`
	Email    string `json:"email" example:"registrar@collegehub.local"`
	Role     string `json:"role" example:"REGISTRAR"`
}
