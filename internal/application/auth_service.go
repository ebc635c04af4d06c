// internal/application/auth_service.go
package application

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/macgtech/storefront/internal/domain"
	"github.com/macgtech/storefront/internal/ports"
	"github.com/macgtech/storefront/pkg/auth"
)

// FreshLoginWindow is how recent a ledger login must be for checkout to
// proceed. Session tokens expire on the same clock.
const FreshLoginWindow = 4 * time.Hour

// AuthService resolves identity against the ledger and issues session
// tokens. The ledger keeps the password hash and the last-logged-in
// timestamp; this service never stores either.
type AuthService struct {
	ledger ports.LedgerPort
	tokens *auth.TokenIssuer
	now    func() time.Time
}

func NewAuthService(ledger ports.LedgerPort, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{ledger: ledger, tokens: tokens, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, user *domain.User, oldEmail string) error {
	if user.Email == "" || user.Name == "" {
		return errors.New("email and name are required")
	}
	if err := s.ledger.CreateUser(ctx, user); err != nil {
		return err
	}
	// Carry the guest cart over when the visitor registered under a
	// placeholder email.
	if oldEmail != "" && oldEmail != user.Email {
		if err := s.ledger.UpdateCartEmail(ctx, oldEmail, user.Email); err != nil {
			return err
		}
	}
	return s.ledger.SendPasswordSetupEmail(ctx, user.Email)
}

// Login validates credentials at the ledger, confirms the login landed
// (the ledger stamps Last Logged In), and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := s.ledger.ValidateLogin(ctx, email, password); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	user, err := s.ledger.ConfirmRecentLogin(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// RequireFreshLogin gates checkout: the user must exist and have logged in
// within the freshness window.
func (s *AuthService) RequireFreshLogin(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.ledger.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.LastLoggedIn.IsZero() || s.now().Sub(user.LastLoggedIn) >= FreshLoginWindow {
		return nil, domain.ErrStaleLogin
	}
	return user, nil
}

func (s *AuthService) Profile(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.ledger.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, user *domain.User) error {
	if user.Email == "" {
		return errors.New("missing user email")
	}
	return s.ledger.UpdateUser(ctx, user)
}

// SetupPassword hashes the chosen password and stores it at the ledger
// against the emailed setup token. Raw passwords never reach the ledger.
func (s *AuthService) SetupPassword(ctx context.Context, token, password string) error {
	if token == "" || len(password) < 8 {
		return errors.New("token and a password of at least 8 characters are required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}
	return s.ledger.SetupPassword(ctx, token, string(hashed))
}

func (s *AuthService) SendPasswordLink(ctx context.Context, email string) error {
	return s.ledger.SendPasswordSetupEmail(ctx, email)
}
