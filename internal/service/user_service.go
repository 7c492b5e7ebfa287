package service

import (
	"context"

	"github.com/carson-networks/cortex-bank-server/internal/auth"
	"github.com/carson-networks/cortex-bank-server/internal/operator/actions"
	"github.com/carson-networks/cortex-bank-server/internal/storage"
)

// Starter attributes for the card auto-issued with every new account.
const (
	starterCardType      = "GOLD"
	starterCardNumber    = int64(13748712374891010)
	starterCardDueDate   = "2027-01-07"
	starterCardFunctions = "Debit"
	starterCardCVC       = "505"
)

// actionProcessor is the interface for running composite write actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// UserService handles registration, authentication, and user lookups.
type UserService struct {
	storage  *storage.Storage
	issuer   *auth.Issuer
	operator actionProcessor
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, issuer *auth.Issuer, op actionProcessor) *UserService {
	return &UserService{storage: store, issuer: issuer, operator: op}
}

// RegisterInput carries caller-supplied fields for registering a user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// RegisteredUser is the result of a successful registration: the user plus
// the Debit account and starter card materialized alongside it.
type RegisteredUser struct {
	User    User
	Account Account
	Card    Card
}

// Register validates the input, then creates the user, one Debit account, and
// one starter card as a single logical operation. Validation fails closed
// before any storage call. The composite itself has no atomicity guarantee:
// if the account or card insert fails, the earlier documents stay behind.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*RegisteredUser, error) {
	user := User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	}

	if !user.IsValid() {
		if user.Username == "" || user.Email == "" || user.Password == "" {
			return nil, ErrMissingUserFields
		}
		return nil, ErrWeakPassword
	}

	passwordHash, err := auth.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}

	action := &actions.RegisterUser{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: passwordHash,

		AccountType: string(AccountTypeDebit),

		CardType:      starterCardType,
		CardNumber:    starterCardNumber,
		CardDueDate:   starterCardDueDate,
		CardFunctions: starterCardFunctions,
		CardCVC:       starterCardCVC,
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	return &RegisteredUser{
		User:    userFromStorage(action.CreatedUser),
		Account: accountFromStorage(action.CreatedAccount),
		Card:    cardFromStorage(action.CreatedCard),
	}, nil
}

// Authenticate verifies credentials and returns a signed token with the
// authenticated user. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (string, *User, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingCredentials
	}

	doc, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if doc == nil || !auth.CheckPassword(doc.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(doc.ID, doc.Username, doc.Email)
	if err != nil {
		return "", nil, err
	}

	user := userFromStorage(doc)
	return token, &user, nil
}

// List returns all users, without credentials.
func (s *UserService) List(ctx context.Context) ([]User, error) {
	docs, err := s.storage.Users.List(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]User, len(docs))
	for i, doc := range docs {
		users[i] = userFromStorage(doc)
	}
	return users, nil
}
