package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationListUnreadForUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	unread := false
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM notifications WHERE user_id = $1 AND is_read = $2 ORDER BY created_at DESC")).
		WithArgs("5", false).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "is_read"}).
			AddRow(3, 5, "Payment received", false))

	notes, err := repo.List(context.Background(), NotificationFilter{UserID: "5", IsRead: &unread})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.False(t, notes[0].IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationMarkAllRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// zero affected rows is still success
	assert.NoError(t, repo.MarkAllRead(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationMarkRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE notifications SET is_read = $1 WHERE id = $2 RETURNING *")).
		WithArgs(true, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_read"}).AddRow(3, true))

	n, err := repo.MarkRead(context.Background(), 3, true)
	require.NoError(t, err)
	assert.True(t, n.IsRead)
}
