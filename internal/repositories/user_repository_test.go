package repository_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/calzatec/calzatec-backend/internal/models"
	repository "github.com/calzatec/calzatec-backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewUserRepo(db)
	ctx := t.Context()
	now := time.Now()

	t.Run("CreateUser", func(t *testing.T) {
		// Arrange
		user := &models.User{
			Name:     "Ana Torres",
			Email:    "ana@calzatec.mx",
			Password: "$2a$10$hashedhashedhashedhashed",
			Role:     models.RoleCliente,
		}
		newID := uuid.New()

		expectedSQL := regexp.QuoteMeta(`INSERT INTO usuarios (nombre, email, password, rol) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`)
		mock.ExpectQuery(expectedSQL).
			WithArgs(user.Name, user.Email, user.Password, user.Role).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID, now, now))

		// Act
		err := repo.CreateUser(ctx, user)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, newID, user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByEmail", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		expectedSQL := regexp.QuoteMeta(`SELECT id, nombre, email, password, rol, created_at, updated_at FROM usuarios WHERE email = $1`)
		mock.ExpectQuery(expectedSQL).
			WithArgs("ana@calzatec.mx").
			WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "email", "password", "rol", "created_at", "updated_at"}).
				AddRow(userID, "Ana Torres", "ana@calzatec.mx", "hash", "vendedor", now, now))

		// Act
		user, err := repo.GetUserByEmail(ctx, "ana@calzatec.mx")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, models.RoleVendedor, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByEmail - Not Found", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`SELECT id, nombre, email`).
			WithArgs("nadie@calzatec.mx").
			WillReturnError(errors.New("sql: no rows in result set"))

		// Act
		user, err := repo.GetUserByEmail(ctx, "nadie@calzatec.mx")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetUserByID", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		expectedSQL := regexp.QuoteMeta(`SELECT id, nombre, email, password, rol, created_at, updated_at FROM usuarios WHERE id = $1`)
		mock.ExpectQuery(expectedSQL).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows([]string{"id", "nombre", "email", "password", "rol", "created_at", "updated_at"}).
				AddRow(userID, "Ana Torres", "ana@calzatec.mx", "hash", "admin", now, now))

		// Act
		user, err := repo.GetUserByID(ctx, userID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
