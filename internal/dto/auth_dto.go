package dto

// Data Transfer Objects for the sign-up and token-exchange endpoints

// SignupRequest: payload for account creation
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email" binding:"required,email,max=255"`
}

// SignupResponse echoes the accepted identity; the confirmation code
// travels out-of-band by email.
type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenRequest: payload for exchanging a confirmation code for an access token
type TokenRequest struct {
	Username         string `json:"username" binding:"required,max=200"`
	ConfirmationCode string `json:"confirmation_code" binding:"required,max=150"`
}

// TokenResponse carries the signed access token. No refresh token is issued.
type TokenResponse struct {
	Access string `json:"access"`
}
