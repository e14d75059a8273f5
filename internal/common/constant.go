package common

const (
	// AuthHeaderName is the HTTP header carrying either a bearer access token
	// or, as a legacy fallback, the raw account email.
	AuthHeaderName = "Authorization"

	// BearerPrefix marks a token-based Authorization header value.
	BearerPrefix = "Bearer "

	// DuplicateEmailReason is the business-rule rejection text returned by
	// register when the email is already taken. The client compares against
	// this exact string, so it is shared between both layers.
	DuplicateEmailReason = "An account with this email already exists."
)
