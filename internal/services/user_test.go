package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/calzatec/calzatec-backend/internal/errors"
	"github.com/calzatec/calzatec-backend/internal/models"
	"github.com/calzatec/calzatec-backend/internal/repositories/mocks"
	service "github.com/calzatec/calzatec-backend/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

var testJWTKey = []byte("test-signing-key")

func TestRegister(t *testing.T) {
	mockRepo := new(mocks.UserRepository)
	userService := service.NewUserService(mockRepo, testJWTKey)
	ctx := context.Background()

	req := &models.RegisterRequest{
		Name:     "Ana Torres",
		Email:    "ana@calzatec.mx",
		Password: "secret-password",
	}

	t.Run("Success - Default Role Is Cliente", func(t *testing.T) {
		// Arrange
		mockRepo.On("GetUserByEmail", mock.Anything, req.Email).Return(nil, errors.New("sql: no rows in result set")).Once()
		mockRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == req.Email &&
				u.Role == models.RoleCliente &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) == nil
		})).Return(nil).Once()

		// Act
		user, err := userService.Register(ctx, req)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, models.RoleCliente, user.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Duplicate Email", func(t *testing.T) {
		// Arrange
		mockRepo.On("GetUserByEmail", mock.Anything, req.Email).
			Return(&models.User{ID: uuid.New(), Email: req.Email}, nil).Once()

		// Act
		user, err := userService.Register(ctx, req)

		// Assert
		assert.Nil(t, user)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	mockRepo := new(mocks.UserRepository)
	userService := service.NewUserService(mockRepo, testJWTKey)
	ctx := context.Background()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret-password"), bcrypt.MinCost)
	storedUser := &models.User{
		ID:       uuid.New(),
		Email:    "ana@calzatec.mx",
		Password: string(hashed),
		Role:     models.RoleVendedor,
	}

	t.Run("Success - Token Carries Role Claim", func(t *testing.T) {
		// Arrange
		mockRepo.On("GetUserByEmail", mock.Anything, storedUser.Email).Return(storedUser, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: storedUser.Email, Password: "secret-password"})

		// Assert
		assert.NoError(t, err)
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)
		assert.Positive(t, resp.ExpiresIn)

		claims := &models.Claims{}
		_, parseErr := jwt.ParseWithClaims(resp.Token, claims, func(_ *jwt.Token) (any, error) {
			return testJWTKey, nil
		})
		assert.NoError(t, parseErr)
		assert.Equal(t, storedUser.ID, claims.UserID)
		assert.Equal(t, models.RoleVendedor, claims.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Wrong Password Gets Generic Message", func(t *testing.T) {
		// Arrange
		mockRepo.On("GetUserByEmail", mock.Anything, storedUser.Email).Return(storedUser, nil).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: storedUser.Email, Password: "wrong"})

		// Assert
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)
		assert.Empty(t, resp.Token)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Email Gets Same Message", func(t *testing.T) {
		// Arrange
		mockRepo.On("GetUserByEmail", mock.Anything, "nadie@calzatec.mx").
			Return(nil, errors.New("sql: no rows in result set")).Once()

		// Act
		resp, err := userService.Login(ctx, &models.LoginRequest{Email: "nadie@calzatec.mx", Password: "whatever"})

		// Assert
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.Message)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetUserByID(t *testing.T) {
	mockRepo := new(mocks.UserRepository)
	userService := service.NewUserService(mockRepo, testJWTKey)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Failure - Not Found Mapped", func(t *testing.T) {
		// Arrange
		mockRepo.On("GetUserByID", mock.Anything, userID).
			Return(nil, errors.New("sql: no rows in result set")).Once()

		// Act
		user, err := userService.GetUserByID(ctx, userID)

		// Assert
		assert.Nil(t, user)

		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}
