package dto

// LoginRequest carries the administrator credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginUserData is the authenticated user section of a login response.
type LoginUserData struct {
	Nama string `json:"nama" example:"Admin Sekolah"`
}

// LoginResponse is returned on a successful credential check.
type LoginResponse struct {
	Message     string        `json:"message" example:"Login successful"`
	Data        LoginUserData `json:"data"`
	AccessToken string        `json:"access_token"`
	ExpiresIn   int           `json:"expires_in" example:"3600"`
}
