package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/cortex-bank-server/internal/logging"
	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// ListUsersInput is the Huma input for listing users.
type ListUsersInput struct{}

// ListUsersResponseBody is the response body for listing users.
type ListUsersResponseBody struct {
	Users []User `json:"users" doc:"All registered users"`
}

// ListUsersOutput is the Huma output for listing users.
type ListUsersOutput struct {
	Body ListUsersResponseBody
}

// userLister is the interface for listing users.
type userLister interface {
	List(ctx context.Context) ([]service.User, error)
}

// ListUsersHandler handles GET /user.
type ListUsersHandler struct {
	UserService userLister
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(svc userLister) *ListUsersHandler {
	return &ListUsersHandler{UserService: svc}
}

// Register registers the list users endpoint with the Huma API.
func (h *ListUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/user",
		Summary:     "List users",
		Description: "Returns all registered users, without credentials.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, _ *ListUsersInput) (*ListUsersOutput, error) {
	logData := logging.GetLogData(ctx)

	users, err := h.UserService.List(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list users", err)
	}

	if logData != nil {
		logData.AddData("userCount", len(users))
	}

	resp := ListUsersResponseBody{Users: make([]User, len(users))}
	for i, u := range users {
		resp.Users[i] = userFromService(u)
	}

	return &ListUsersOutput{Body: resp}, nil
}
