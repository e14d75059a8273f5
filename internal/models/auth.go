package models

// AuthResult is the envelope returned by the login/register actions. Business
// rejections (bad password, duplicate email) are carried in Reason with
// Success=false; they are never errors.
type AuthResult struct {
	Success bool        `json:"success"`
	User    *UserRecord `json:"user,omitempty"`
	Reason  string      `json:"reason,omitempty"`

	// Token is the access token minted by the server on success. Absent when
	// authentication was resolved from the local cache.
	Token string `json:"token,omitempty"`

	// RefreshToken lets the holder mint a new access token via the refresh
	// action. Only the server fills it.
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Registration is the payload of the register action.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Mobile   string `json:"mobile,omitempty"`
	Role     Role   `json:"role" validate:"required,oneof=customer seller admin"`
}
