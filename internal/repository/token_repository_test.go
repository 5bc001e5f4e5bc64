package repository

import (
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/timetrackhq/timesheet-api/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gdb, mock
}

func TestTokenRepository_Create(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewTokenRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `access_tokens`")).
		WithArgs("api", "deadbeef", 42, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.Create(&models.AccessToken{
		Name:      "api",
		TokenHash: "deadbeef",
		UserID:    42,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_DeleteAllForUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewTokenRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `access_tokens` WHERE user_id = ?")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteAllForUser(42))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepository_DeleteAllForUser_Idempotent(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewTokenRepository(gdb)

	// Deleting for a user with no tokens is not an error.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `access_tokens` WHERE user_id = ?")).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteAllForUser(42))
	require.NoError(t, mock.ExpectationsWereMet())
}
