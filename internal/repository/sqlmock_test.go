package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"community-portal-backend/internal/database/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(`UPDATE "notifications" SET "read_at"=\$1,"updated_at"=\$2 WHERE user_id = \$3 AND read_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	updated, err := repo.MarkAllRead(context.Background(), uuid.New(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_CountUnread(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE user_id = \$1 AND read_at IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountUnread(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_DeleteRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectExec(`DELETE FROM "notifications" WHERE user_id = \$1 AND read_at IS NOT NULL`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := repo.DeleteRead(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNewsRepository_IncrementViews(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNewsRepository(db)

	mock.ExpectExec(`UPDATE "news" SET "views_count"=views_count \+ \$1 WHERE id = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementViews(context.Background(), uuid.New()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsRepository_ListRestrictedToNoOrganizations(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNewsRepository(db)

	items, total, err := repo.List(context.Background(), NewsFilter{RestrictToOrganizations: true, Now: time.Now(), Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, `%50\%%`, containsPattern("50%"))
	assert.Equal(t, `%first\_aid%`, containsPattern("first_aid"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
	assert.Equal(t, "%clean-up%", containsPattern("clean-up"))
}

func TestNewsRepository_ListSearchEscapesWildcards(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNewsRepository(db)

	pattern := `%50\%%`
	mock.ExpectQuery(`SELECT count\(\*\) FROM "news" .*LOWER\(news.title\) LIKE \$3 ESCAPE '\\'`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), pattern, pattern, pattern).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "news"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	items, total, err := repo.List(context.Background(), NewsFilter{Search: "50%", Now: time.Now(), Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentRepository_GetStatsByMimeType(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttachmentRepository(db)

	mock.ExpectQuery(`SELECT mime_type, COUNT\(\*\) AS count, COALESCE\(SUM\(size\), 0\) AS size`).
		WillReturnRows(sqlmock.NewRows([]string{"mime_type", "count", "size", "downloads"}).
			AddRow("application/pdf", 2, 2048, 5).
			AddRow("image/png", 1, 512, 9))

	stats, err := repo.GetStatsByMimeType(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, AttachmentMimeStats{MimeType: "application/pdf", Count: 2, Size: 2048, Downloads: 5}, stats[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachmentRepository_DeleteLockedGuardAborts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttachmentRepository(db)

	attachmentID, postID, threadID := uuid.New(), uuid.New(), uuid.New()
	guardErr := errors.New("not the author")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "forum_attachments" WHERE id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "mime_type"}).AddRow(attachmentID.String(), postID.String(), "image/png"))
	mock.ExpectQuery(`SELECT \* FROM "forum_posts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "thread_id"}).AddRow(postID.String(), threadID.String()))
	mock.ExpectQuery(`SELECT \* FROM "forum_threads" WHERE "forum_threads"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(threadID.String()))
	mock.ExpectRollback()

	_, err := repo.DeleteLocked(context.Background(), attachmentID, func(a *models.ForumAttachment) error {
		assert.Equal(t, postID, a.Post.ID)
		return guardErr
	})
	assert.ErrorIs(t, err, guardErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func invitationRows(id uuid.UUID, status models.InvitationStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "organization_id", "email", "role", "token", "status", "expires_at"}).
		AddRow(id.String(), uuid.New().String(), "ana@example.org", "member", "tok", string(status), time.Now().Add(time.Hour))
}

func TestInvitationRepository_Accept(t *testing.T) {
	id := uuid.New()

	t.Run("pending invitation", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewInvitationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "organization_invitations" WHERE id = \$1 .*FOR UPDATE`).
			WillReturnRows(invitationRows(id, models.InvitationStatusPending))
		mock.ExpectExec(`UPDATE "organization_invitations" SET .* WHERE id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "organization_members" .* ON CONFLICT \("organization_id","user_id"\) DO NOTHING`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
		mock.ExpectCommit()

		require.NoError(t, repo.Accept(context.Background(), id, uuid.New(), time.Now()))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already accepted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewInvitationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "organization_invitations" WHERE id = \$1 .*FOR UPDATE`).
			WillReturnRows(invitationRows(id, models.InvitationStatusAccepted))
		mock.ExpectRollback()

		err := repo.Accept(context.Background(), id, uuid.New(), time.Now())
		assert.ErrorIs(t, err, ErrInvitationStateChanged)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost compare and swap", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewInvitationRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "organization_invitations" WHERE id = \$1 .*FOR UPDATE`).
			WillReturnRows(invitationRows(id, models.InvitationStatusPending))
		mock.ExpectExec(`UPDATE "organization_invitations" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Accept(context.Background(), id, uuid.New(), time.Now())
		assert.ErrorIs(t, err, ErrInvitationStateChanged)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestModerationRepository_FindActiveBanGlobalOnly(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewModerationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "forum_bans" WHERE .*revoked_at IS NULL.*forum_id IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindActiveBan(context.Background(), uuid.New(), nil, time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
