package services_test

import (
	"errors"
	"testing"

	"github.com/candemir/vitalis-backend/internal/config"
	"github.com/candemir/vitalis-backend/internal/dto"
	"github.com/candemir/vitalis-backend/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func expectUserRow(mock sqlmock.Sqlmock, userID uuid.UUID, password string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name", "email", "password", "fitness_level"}).
			AddRow(userID.String(), "Ada", "ada@example.com", string(hash), "beginner"),
	)
}

// Validation rejects bad input before any database work, so these run
// against a service with no connection.
func TestRegister_Validation(t *testing.T) {
	svc := services.NewAuthService(nil, &config.Config{JWTSecret: "test-secret"})

	cases := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"missing email", dto.RegisterRequest{Name: "Ada", Password: "longenough"}},
		{"short password", dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "short"}},
		{"missing name", dto.RegisterRequest{Email: "ada@example.com", Password: "longenough"}},
		{"bad fitness level", dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "longenough", FitnessLevel: "olympian"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(&tc.req)
			assert.Error(t, err)
		})
	}
}

func TestDeleteAccount_CascadeDeletesEverything(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	expectUserRow(mock, userID, "correct-password")
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "refresh_tokens"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "goal_progress"`).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(`UPDATE "goals" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "workouts" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`UPDATE "meditation_sessions" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := services.NewAuthService(db, &config.Config{JWTSecret: "test-secret"})
	require.NoError(t, svc.DeleteAccount(userID, "correct-password"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed child delete must roll the whole transaction back instead of
// committing a user delete with orphaned owned rows.
func TestDeleteAccount_ChildDeleteFailureAbortsTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	expectUserRow(mock, userID, "correct-password")
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "refresh_tokens"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	svc := services.NewAuthService(db, &config.Config{JWTSecret: "test-secret"})
	err := svc.DeleteAccount(userID, "correct-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh tokens")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAccount_WrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	expectUserRow(mock, userID, "correct-password")

	svc := services.NewAuthService(db, &config.Config{JWTSecret: "test-secret"})
	err := svc.DeleteAccount(userID, "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}
