// Package users implements the user directory and the authentication
// workflows built on top of it: registration, login, profile lookup and the
// user listing.
package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/servtech/authd/internal/common"
	"github.com/servtech/authd/internal/server/password"
	"github.com/servtech/authd/internal/server/token"
)

var usernameCharset = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// AuthResult is the outcome of a successful registration or login: the
// sanitized account and a freshly issued bearer token.
type AuthResult struct {
	User  Account
	Token string
}

// Service composes the directory, the password hasher and the token service
// into the authentication workflows. It holds no per-request state.
type Service struct {
	repo     Repository
	hasher   *password.Hasher
	tokens   *token.Service
	validate *validator.Validate
}

func NewService(repo Repository, hasher *password.Hasher, tokens *token.Service) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Letters, digits and underscore only. Registered as a custom rule so it
	// can sit next to the builtin length checks in one tag.
	_ = v.RegisterValidation("username_charset", func(fl validator.FieldLevel) bool {
		return usernameCharset.MatchString(fl.Field().String())
	})

	return &Service{repo: repo, hasher: hasher, tokens: tokens, validate: v}
}

// registerInput carries the validation policy for new registrations.
type registerInput struct {
	Username string `validate:"required,min=5,max=20,username_charset"`
	Password string `validate:"required,min=6"`
}

// Register creates an account and issues its first token. Validation runs
// before any directory access, so a rejected registration leaves no trace.
func (s *Service) Register(ctx context.Context, username, password string, role Role) (*AuthResult, error) {
	if err := s.validate.Struct(registerInput{Username: username, Password: password}); err != nil {
		return nil, validationError(err)
	}

	if role == "" {
		role = RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: role must be one of: user, admin", common.ErrValidation)
	}

	exists, err := s.repo.Exists(ctx, username)
	if err != nil {
		return nil, common.ErrInternal
	}
	if exists {
		return nil, common.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrInternal
	}

	// The repository re-checks uniqueness atomically, so a concurrent
	// registration racing past the Exists call above still loses here.
	user, err := s.repo.Create(ctx, &User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			return nil, err
		}
		return nil, common.ErrInternal
	}

	return s.authResult(user)
}

// Login verifies credentials and issues a token. An unknown username and a
// wrong password deliberately produce the same error so the response never
// reveals which usernames exist.
func (s *Service) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.authResult(user)
}

// Profile returns the sanitized account for an authenticated caller's id.
// The directory is volatile while tokens are stateless, so a valid token can
// outlive its account across a restart; that case yields common.ErrNotFound.
func (s *Service) Profile(ctx context.Context, id int64) (Account, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return Account{}, err
		}
		return Account{}, common.ErrInternal
	}
	return user.Account(), nil
}

// ListUsers returns all accounts with password hashes stripped.
func (s *Service) ListUsers(ctx context.Context) ([]Account, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, common.ErrInternal
	}

	accounts := make([]Account, 0, len(list))
	for _, u := range list {
		accounts = append(accounts, u.Account())
	}
	return accounts, nil
}

func (s *Service) authResult(user *User) (*AuthResult, error) {
	tok, err := s.tokens.Issue(token.Identity{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		return nil, common.ErrInternal
	}
	return &AuthResult{User: user.Account(), Token: tok}, nil
}

// validationError converts validator output into the shared sentinel with a
// readable field message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: invalid input", common.ErrValidation)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Username":
		switch fe.Tag() {
		case "required":
			return "username is required"
		case "min", "max":
			return "username must be between 5 and 20 characters"
		default:
			return "username may only contain letters, digits and underscores"
		}
	case "Password":
		if fe.Tag() == "required" {
			return "password is required"
		}
		return "password must be at least 6 characters"
	}
	return fe.Field() + " is invalid"
}

