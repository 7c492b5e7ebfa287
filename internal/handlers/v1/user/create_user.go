package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cortex-bank-server/internal/logging"
	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// CreateUserBody is the request body for registering a user.
type CreateUserBody struct {
	Username string `json:"username" required:"true" minLength:"1" doc:"Display name"`
	Email    string `json:"email" required:"true" minLength:"1" doc:"Email address"`
	Password string `json:"password" required:"true" minLength:"1" doc:"Raw password, validated against the strength policy"`
}

// CreateUserInput is the Huma input for registering a user.
type CreateUserInput struct {
	Body CreateUserBody
}

// CreateUserResponseBody is the response body for registering a user.
type CreateUserResponseBody struct {
	User    User   `json:"user" doc:"Created user"`
	Account string `json:"accountId" doc:"UUID of the auto-created Debit account"`
	Card    string `json:"cardId" doc:"UUID of the auto-issued starter card"`
}

// CreateUserOutput is the Huma output for registering a user.
type CreateUserOutput struct {
	Status int
	Body   CreateUserResponseBody
}

// userRegistrar is the interface for registering users.
type userRegistrar interface {
	Register(ctx context.Context, input service.RegisterInput) (*service.RegisteredUser, error)
}

// CreateUserHandler handles POST /user.
type CreateUserHandler struct {
	UserService userRegistrar
}

// NewCreateUserHandler creates a new CreateUserHandler.
func NewCreateUserHandler(svc userRegistrar) *CreateUserHandler {
	return &CreateUserHandler{UserService: svc}
}

// Register registers the create user endpoint with the Huma API.
func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-user",
		Method:      http.MethodPost,
		Path:        "/user",
		Summary:     "Register user",
		Description: "Registers a user and materializes one Debit account and one starter card alongside it.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *CreateUserHandler) handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("registerUserMs")
	}
	registered, err := h.UserService.Register(ctx, service.RegisterInput{
		Username: input.Body.Username,
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrMissingUserFields) || errors.Is(err, service.ErrWeakPassword) {
			return nil, huma.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create user", err)
	}

	if logData != nil {
		logData.AddData("userID", registered.User.ID.String())
	}

	return &CreateUserOutput{
		Status: http.StatusCreated,
		Body: CreateUserResponseBody{
			User:    userFromService(registered.User),
			Account: registered.Account.ID.String(),
			Card:    registered.Card.ID.String(),
		},
	}, nil
}
