package repository_test

import (
	"context"
	"testing"
	"time"

	"focustrack/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPasswordResetRepository_Create_ReplacesOldToken(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	resetRepo := repository.NewPasswordResetRepository(gormDB)

	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "password_reset_tokens"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "password_reset_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	// Act
	err := resetRepo.Create(context.Background(), userID, uuid.NewString(), time.Now().Add(time.Hour))

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_Consume_Success(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	resetRepo := repository.NewPasswordResetRepository(gormDB)

	userID := uuid.New()
	token := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "password_reset_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "expires_at"}).
			AddRow(uuid.NewString(), userID.String(), token, time.Now().Add(time.Hour)))
	mock.ExpectExec(`DELETE FROM "password_reset_tokens"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	resolvedID, err := resetRepo.Consume(context.Background(), token)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, userID, resolvedID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_Consume_Expired(t *testing.T) {
	// An expired token must be rejected, not consumed
	gormDB, mock := setupMockDB(t)
	resetRepo := repository.NewPasswordResetRepository(gormDB)

	token := uuid.NewString()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "password_reset_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token", "expires_at"}).
			AddRow(uuid.NewString(), uuid.NewString(), token, time.Now().Add(-time.Minute)))
	mock.ExpectRollback()

	// Act
	_, err := resetRepo.Consume(context.Background(), token)

	// Assert
	assert.ErrorIs(t, err, repository.ErrResetTokenNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPasswordResetRepository_Consume_UnknownToken(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	resetRepo := repository.NewPasswordResetRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "password_reset_tokens"`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	// Act
	_, err := resetRepo.Consume(context.Background(), uuid.NewString())

	// Assert
	assert.ErrorIs(t, err, repository.ErrResetTokenNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
