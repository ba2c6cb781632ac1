// internal/core/services/auth.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/ports"
)

// AuthService creates accounts and issues session tokens. Password hashes
// use bcrypt; tokens are HS256 JWTs carrying the user's role.
type AuthService struct {
	users      ports.UserRepository
	stores     ports.StoreRepository
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
	logger     *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users ports.UserRepository, stores ports.StoreRepository, secret []byte, tokenTTL time.Duration, bcryptCost int, logger *slog.Logger) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		stores:     stores,
		secret:     secret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("service", "auth")),
	}
}

// SignupInput carries the fields for account creation. The customer fields
// are required for ADMIN signups, which create the owning customer record
// alongside the first user.
type SignupInput struct {
	Email        string
	Password     string
	Role         string
	CustomerName string
	StoreName    string
	Location     string
	Phone1       string
	Phone2       string
}

// SignUp creates a new account. ADMIN signups also create the customer the
// account belongs to, in one transaction.
func (s *AuthService) SignUp(ctx context.Context, in SignupInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("validation failed: email and password are required")
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	taken, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	switch role {
	case domain.RoleAdmin:
		if in.CustomerName == "" || in.StoreName == "" || in.Location == "" || in.Phone1 == "" {
			return nil, fmt.Errorf("validation failed: customerName, storeName, location and phone1 are required for ADMIN")
		}
		customer := &domain.Customer{
			CustomerName: in.CustomerName,
			StoreName:    in.StoreName,
			Location:     in.Location,
			Phone1:       in.Phone1,
			Phone2:       in.Phone2,
		}
		if err := s.users.SaveWithCustomer(ctx, customer, user); err != nil {
			return nil, fmt.Errorf("failed to create admin account: %w", err)
		}
	case domain.RoleStaff:
		if in.StoreName == "" {
			return nil, fmt.Errorf("validation failed: storeName is required for STAFF")
		}
		store, err := s.stores.FindByName(ctx, in.StoreName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up store: %w", err)
		}
		if store == nil {
			return nil, domain.ErrStoreNotFound
		}
		user.CustomerID = &store.CustomerID
		if err := s.users.Save(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
	default:
		if err := s.users.Save(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "account created",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)))

	return user, nil
}

// SignIn verifies the credentials and returns the user with a signed token.
// Both an unknown email and a wrong password yield ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "user signed in",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)))

	return user, token, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   jwt.NewNumericDate(now),
		"exp":   jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
