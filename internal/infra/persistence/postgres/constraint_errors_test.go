package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm translated", err: errors.Wrap(gorm.ErrDuplicatedKey, "create user"), want: true},
		{name: "pgx unique violation", err: errors.WithStack(&pgconn.PgError{Code: "23505"}), want: true},
		{name: "pgx other violation", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "text only", err: errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email"`), want: true},
		{name: "unrelated", err: errors.New("connection reset by peer"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}
