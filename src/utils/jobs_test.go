package utils

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

// Expired messages must be deleted outright, not marked with deleted_at and
// left in the table.
func TestCleanupExpiredMessagesDeletesRows(t *testing.T) {
	mock := setupMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "messages"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	CleanupExpiredMessages()

	assert.NoError(t, mock.ExpectationsWereMet())
}
