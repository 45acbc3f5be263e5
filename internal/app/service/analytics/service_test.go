package analytics

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestClassifyTxError(t *testing.T) {
	require.NoError(t, classifyTxError(nil))

	// a lost creation race must stay retryable
	dup := fmt.Errorf("failed to create analytics record: %w", gorm.ErrDuplicatedKey)
	got := classifyTxError(dup)
	require.ErrorIs(t, got, gorm.ErrDuplicatedKey)
	var perm *backoff.PermanentError
	require.False(t, errors.As(got, &perm))

	// anything else must not burn the retry budget
	broken := errors.New("connection reset by peer")
	got = classifyTxError(broken)
	require.True(t, errors.As(got, &perm))
	require.ErrorIs(t, got, broken)
}

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return &Service{log: zap.NewNop().Sugar(), db: gdb, loc: time.UTC, now: time.Now}, mock
}

func TestReset(t *testing.T) {
	deleteSQL := regexp.QuoteMeta(`DELETE FROM "user_analytics" WHERE user_id = $1`)

	t.Run("existing record deleted", func(t *testing.T) {
		svc, mock := newMockService(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteSQL).WithArgs("user-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, svc.Reset(context.Background(), "user-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent record reports not found", func(t *testing.T) {
		svc, mock := newMockService(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteSQL).WithArgs("ghost").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		require.ErrorIs(t, svc.Reset(context.Background(), "ghost"), ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
