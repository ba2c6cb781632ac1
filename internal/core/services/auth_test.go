// internal/core/services/auth_test.go
package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/adesina-labs/pharmhub-be/internal/core/domain"
	"github.com/adesina-labs/pharmhub-be/internal/core/services"
	"github.com/adesina-labs/pharmhub-be/test/helpers"
	"github.com/adesina-labs/pharmhub-be/test/mocks"
)

const testSecret = "test-secret"

func newAuthService(users *mocks.MockUserRepository, stores *mocks.MockStoreRepository) *services.AuthService {
	return services.NewAuthService(users, stores, []byte(testSecret), time.Hour, bcrypt.MinCost, helpers.TestLogger())
}

func TestAuthService_SignUp(t *testing.T) {
	tests := []struct {
		name          string
		input         services.SignupInput
		setupMocks    func(*mocks.MockUserRepository, *mocks.MockStoreRepository)
		expectedError error
		errorContains string
	}{
		{
			name: "superadmin_signup_creates_bare_user",
			input: services.SignupInput{
				Email:    "root@pharmhub.test",
				Password: "s3cret",
				Role:     "SUPERADMIN",
			},
			setupMocks: func(m *mocks.MockUserRepository, _ *mocks.MockStoreRepository) {
				m.EXPECT().
					EmailExists(gomock.Any(), "root@pharmhub.test").
					Return(false, nil)
				m.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) error {
						user.ID = 1
						return nil
					})
			},
		},
		{
			name: "staff_signup_links_store_customer",
			input: services.SignupInput{
				Email:     "staff@pharmhub.test",
				Password:  "s3cret",
				Role:      "STAFF",
				StoreName: "Main Branch",
			},
			setupMocks: func(m *mocks.MockUserRepository, st *mocks.MockStoreRepository) {
				m.EXPECT().
					EmailExists(gomock.Any(), "staff@pharmhub.test").
					Return(false, nil)
				st.EXPECT().
					FindByName(gomock.Any(), "Main Branch").
					Return(&domain.Store{ID: 2, StoreName: "Main Branch", CustomerID: 3}, nil)
				m.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *domain.User) error {
						require.NotNil(t, user.CustomerID)
						assert.Equal(t, int64(3), *user.CustomerID)
						user.ID = 7
						return nil
					})
			},
		},
		{
			name: "staff_signup_unknown_store",
			input: services.SignupInput{
				Email:     "staff@pharmhub.test",
				Password:  "s3cret",
				Role:      "STAFF",
				StoreName: "Ghost Branch",
			},
			setupMocks: func(m *mocks.MockUserRepository, st *mocks.MockStoreRepository) {
				m.EXPECT().
					EmailExists(gomock.Any(), "staff@pharmhub.test").
					Return(false, nil)
				st.EXPECT().
					FindByName(gomock.Any(), "Ghost Branch").
					Return(nil, nil)
			},
			expectedError: domain.ErrStoreNotFound,
		},
		{
			name: "admin_signup_creates_customer_and_user",
			input: services.SignupInput{
				Email:        "owner@pharmhub.test",
				Password:     "s3cret",
				Role:         "ADMIN",
				CustomerName: "Adesina Pharma",
				StoreName:    "Main Branch",
				Location:     "Lagos",
				Phone1:       "08010000000",
			},
			setupMocks: func(m *mocks.MockUserRepository, _ *mocks.MockStoreRepository) {
				m.EXPECT().
					EmailExists(gomock.Any(), "owner@pharmhub.test").
					Return(false, nil)
				m.EXPECT().
					SaveWithCustomer(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, customer *domain.Customer, user *domain.User) error {
						assert.Equal(t, "Adesina Pharma", customer.CustomerName)
						customer.ID = 3
						user.ID = 1
						return nil
					})
			},
		},
		{
			name: "admin_signup_requires_customer_fields",
			input: services.SignupInput{
				Email:    "owner@pharmhub.test",
				Password: "s3cret",
				Role:     "ADMIN",
			},
			setupMocks: func(m *mocks.MockUserRepository, _ *mocks.MockStoreRepository) {
				m.EXPECT().
					EmailExists(gomock.Any(), "owner@pharmhub.test").
					Return(false, nil)
			},
			errorContains: "required for ADMIN",
		},
		{
			name: "duplicate_email_rejected",
			input: services.SignupInput{
				Email:    "taken@pharmhub.test",
				Password: "s3cret",
				Role:     "STAFF",
			},
			setupMocks: func(m *mocks.MockUserRepository, _ *mocks.MockStoreRepository) {
				m.EXPECT().
					EmailExists(gomock.Any(), "taken@pharmhub.test").
					Return(true, nil)
			},
			expectedError: domain.ErrEmailTaken,
		},
		{
			name: "unknown_role_rejected",
			input: services.SignupInput{
				Email:    "who@pharmhub.test",
				Password: "s3cret",
				Role:     "OVERLORD",
			},
			setupMocks:    func(m *mocks.MockUserRepository, _ *mocks.MockStoreRepository) {},
			errorContains: "unknown role",
		},
		{
			name: "missing_credentials_rejected",
			input: services.SignupInput{
				Role: "STAFF",
			},
			setupMocks:    func(m *mocks.MockUserRepository, _ *mocks.MockStoreRepository) {},
			errorContains: "email and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mocks.NewMockUserRepository(ctrl)
			stores := mocks.NewMockStoreRepository(ctrl)
			tt.setupMocks(users, stores)

			svc := newAuthService(users, stores)
			user, err := svc.SignUp(context.Background(), tt.input)

			switch {
			case tt.expectedError != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
			case tt.errorContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			default:
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.NotEqual(t, tt.input.Password, user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(user.PasswordHash), []byte(tt.input.Password)))
			}
		})
	}
}

func TestAuthService_SignIn(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	storedUser := &domain.User{
		ID:           7,
		Email:        "staff@pharmhub.test",
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:     "valid_credentials_issue_token",
			email:    "staff@pharmhub.test",
			password: "s3cret",
			setupMocks: func(m *mocks.MockUserRepository) {
				m.EXPECT().
					FindByEmail(gomock.Any(), "staff@pharmhub.test").
					Return(storedUser, nil)
			},
		},
		{
			name:     "unknown_email",
			email:    "ghost@pharmhub.test",
			password: "s3cret",
			setupMocks: func(m *mocks.MockUserRepository) {
				m.EXPECT().
					FindByEmail(gomock.Any(), "ghost@pharmhub.test").
					Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong_password",
			email:    "staff@pharmhub.test",
			password: "nope",
			setupMocks: func(m *mocks.MockUserRepository) {
				m.EXPECT().
					FindByEmail(gomock.Any(), "staff@pharmhub.test").
					Return(storedUser, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			users := mocks.NewMockUserRepository(ctrl)
			tt.setupMocks(users)

			svc := newAuthService(users, mocks.NewMockStoreRepository(ctrl))
			user, token, err := svc.SignIn(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			require.NotEmpty(t, token)

			parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
				return []byte(testSecret), nil
			})
			require.NoError(t, err)
			claims, ok := parsed.Claims.(jwt.MapClaims)
			require.True(t, ok)
			assert.Equal(t, "7", claims["sub"])
			assert.Equal(t, "STAFF", claims["role"])
		})
	}
}
