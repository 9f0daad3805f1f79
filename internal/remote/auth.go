package remote

import (
	"context"
	"net/http"

	"insurance-backoffice/internal/model"

	"go.uber.org/zap"
)

// AuthService is the authentication service's operation set.
type AuthService interface {
	Login(ctx context.Context, username, password string) (model.Session, error)
	Register(ctx context.Context, username, email, password string) (string, error)
}

// AuthClient talks to the remote auth service.
type AuthClient struct {
	client
}

// NewAuthClient builds a client rooted at base.
func NewAuthClient(base string, httpClient *http.Client, log *zap.Logger) *AuthClient {
	return &AuthClient{client: newClient("auth-service", base, httpClient, log)}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Message string `json:"message"`
}

// Login exchanges credentials for a signed session token.
func (c *AuthClient) Login(ctx context.Context, username, password string) (model.Session, error) {
	var out model.Session
	err := c.do(ctx, "login", http.MethodPost, "/api/auth/signin", loginRequest{Username: username, Password: password}, &out)
	return out, err
}

// Register creates an account and returns the service's confirmation message.
func (c *AuthClient) Register(ctx context.Context, username, email, password string) (string, error) {
	var out registerResponse
	err := c.do(ctx, "register", http.MethodPost, "/api/auth/signup", registerRequest{Username: username, Email: email, Password: password}, &out)
	return out.Message, err
}
