package user

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/cortex-bank-server/internal/service"
)

// mockUserAuthenticator is a mock for userAuthenticator.
type mockUserAuthenticator struct {
	mock.Mock
}

func (m *mockUserAuthenticator) Authenticate(ctx context.Context, email, password string) (string, *service.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*service.User), args.Error(2)
}

func newAuthAPI(t *testing.T, svc userAuthenticator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAuthenticateUserHandler(svc, 12*time.Hour).Register(api)
	return api
}

func TestHTTP_AuthenticateUser_Success(t *testing.T) {
	authenticated := &service.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "joana",
		Email:    "joana@example.com",
	}

	mockSvc := new(mockUserAuthenticator)
	mockSvc.On("Authenticate", mock.Anything, "joana@example.com", "abc123!@").
		Return("signed-token", authenticated, nil)

	resp := newAuthAPI(t, mockSvc).Post("/user/auth", AuthenticateUserBody{
		Email:    "joana@example.com",
		Password: "abc123!@",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AuthenticateUserResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "signed-token", body.Token)
	assert.Equal(t, "joana", body.User.Username)

	cookie := resp.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(cookie, "token=signed-token"))
	assert.Contains(t, cookie, "HttpOnly")
	mockSvc.AssertExpectations(t)
}

func TestHTTP_AuthenticateUser_InvalidCredentials(t *testing.T) {
	mockSvc := new(mockUserAuthenticator)
	mockSvc.On("Authenticate", mock.Anything, "joana@example.com", "wrong").
		Return("", nil, service.ErrInvalidCredentials)

	resp := newAuthAPI(t, mockSvc).Post("/user/auth", AuthenticateUserBody{
		Email:    "joana@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_AuthenticateUser_MissingFields(t *testing.T) {
	mockSvc := new(mockUserAuthenticator)

	// Huma schema validation rejects the request before the handler runs.
	resp := newAuthAPI(t, mockSvc).Post("/user/auth", AuthenticateUserBody{
		Email: "joana@example.com",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "Authenticate")
}
