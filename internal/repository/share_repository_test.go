package repository_test

import (
	"context"
	"testing"

	"focustrack/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestShareRepository_Create_Success(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	shareRepo := repository.NewShareRepository(gormDB)

	goalID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "goals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(goalID.String()))
	mock.ExpectQuery(`SELECT .* FROM "shared_goals"`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectQuery(`INSERT INTO "shared_goals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	// Act
	err := shareRepo.Create(context.Background(), goalID, uuid.New(), uuid.New())

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareRepository_Create_AlreadyShared(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	shareRepo := repository.NewShareRepository(gormDB)

	goalID := uuid.New()
	contactID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "goals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(goalID.String()))
	mock.ExpectQuery(`SELECT .* FROM "shared_goals"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "goal_id", "owner_id", "contact_id"}).
			AddRow(uuid.NewString(), goalID.String(), uuid.NewString(), contactID.String()))
	mock.ExpectRollback()

	// Act
	err := shareRepo.Create(context.Background(), goalID, uuid.New(), contactID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrAlreadyShared)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareRepository_Create_GoalDeleted(t *testing.T) {
	// A share racing the goal's deletion must report the goal as missing
	// rather than hit the foreign key
	gormDB, mock := setupMockDB(t)
	shareRepo := repository.NewShareRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id" FROM "goals"`).
		WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	// Act
	err := shareRepo.Create(context.Background(), uuid.New(), uuid.New(), uuid.New())

	// Assert
	assert.ErrorIs(t, err, repository.ErrGoalNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareRepository_Delete_NotShared(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	shareRepo := repository.NewShareRepository(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "shared_goals"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := shareRepo.Delete(context.Background(), uuid.New(), uuid.New())

	// Assert
	assert.ErrorIs(t, err, repository.ErrShareNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
