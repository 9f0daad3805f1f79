package model

// Credentials is the login form payload.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Registration is the payload assembled by the three-step signup wizard.
type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Session is what the auth service returns on a successful login.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserInfo is the identity attached to an authenticated request.
type UserInfo struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
