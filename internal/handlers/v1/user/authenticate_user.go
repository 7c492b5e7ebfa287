package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// AuthenticateUserBody is the request body for authenticating a user.
type AuthenticateUserBody struct {
	Email    string `json:"email" required:"true" minLength:"1" doc:"Email address"`
	Password string `json:"password" required:"true" minLength:"1" doc:"Raw password"`
}

// AuthenticateUserInput is the Huma input for authenticating a user.
type AuthenticateUserInput struct {
	Body AuthenticateUserBody
}

// AuthenticateUserResponseBody is the response body for authentication.
type AuthenticateUserResponseBody struct {
	Token string `json:"token" doc:"Signed bearer token"`
	User  User   `json:"user" doc:"Authenticated user"`
}

// AuthenticateUserOutput is the Huma output for authentication. The token is
// also set as an HttpOnly cookie for browser clients.
type AuthenticateUserOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      AuthenticateUserResponseBody
}

// userAuthenticator is the interface for authenticating users.
type userAuthenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, *service.User, error)
}

// AuthenticateUserHandler handles POST /user/auth.
type AuthenticateUserHandler struct {
	UserService userAuthenticator
	TokenTTL    time.Duration
}

// NewAuthenticateUserHandler creates a new AuthenticateUserHandler.
func NewAuthenticateUserHandler(svc userAuthenticator, tokenTTL time.Duration) *AuthenticateUserHandler {
	return &AuthenticateUserHandler{UserService: svc, TokenTTL: tokenTTL}
}

// Register registers the authenticate endpoint with the Huma API.
func (h *AuthenticateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "authenticate-user",
		Method:      http.MethodPost,
		Path:        "/user/auth",
		Summary:     "Authenticate user",
		Description: "Verifies credentials and returns a signed token, also set as a cookie.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *AuthenticateUserHandler) handle(ctx context.Context, input *AuthenticateUserInput) (*AuthenticateUserOutput, error) {
	token, authenticated, err := h.UserService.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, service.ErrMissingCredentials) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, huma.NewError(http.StatusUnauthorized, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to authenticate user", err)
	}

	return &AuthenticateUserOutput{
		SetCookie: http.Cookie{
			Name:     "token",
			Value:    token,
			Path:     "/",
			MaxAge:   int(h.TokenTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		Body: AuthenticateUserResponseBody{
			Token: token,
			User:  userFromService(*authenticated),
		},
	}, nil
}
