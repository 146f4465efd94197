package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"userapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMigrator struct {
	tables map[string]bool
	asked  []any
}

func (s *stubMigrator) HasTable(dst any) bool {
	s.asked = append(s.asked, dst)
	if tabler, ok := dst.(interface{ TableName() string }); ok {
		return s.tables[tabler.TableName()]
	}

	return false
}

func TestCheckUsersTable(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		m := &stubMigrator{tables: map[string]bool{"users": true}}

		require.NoError(t, checkUsersTable(m))
		require.Len(t, m.asked, 1)
		assert.IsType(t, &model.UserModel{}, m.asked[0])
	})

	t.Run("missing", func(t *testing.T) {
		m := &stubMigrator{tables: map[string]bool{"accounts": true}}

		err := checkUsersTable(m)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSchemaMissing))
	})
}

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, attrs, ok := poolWaitReport(prev, prev)
		assert.False(t, ok)
		assert.Nil(t, attrs)
	})

	t.Run("short waits stay at debug", func(t *testing.T) {
		cur := sql.DBStats{MaxOpenConnections: 4, InUse: 4, WaitCount: 12, WaitDuration: time.Second + 20*time.Millisecond}

		level, attrs, ok := poolWaitReport(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Contains(t, attrs, slog.Int64("waitCountDelta", 2))
		assert.Contains(t, attrs, slog.Duration("avgWait", 10*time.Millisecond))
		assert.Contains(t, attrs, slog.Int("inUseConns", 4))
	})

	t.Run("long waits warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + dbPoolWarnDurationThreshold}

		level, attrs, ok := poolWaitReport(prev, cur)
		require.True(t, ok)
		assert.Equal(t, slog.LevelWarn, level)
		assert.Contains(t, attrs, slog.Duration("waitDurationDelta", dbPoolWarnDurationThreshold))
	})
}
