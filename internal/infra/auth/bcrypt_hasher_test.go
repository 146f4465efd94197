package auth

import (
	"context"
	"net/http"
	"strings"
	"testing"

	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/infra/workerpool"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	return NewBcryptHasherWithCost(bcrypt.MinCost, workerpool.New(2)).(*bcryptHasher)
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret1", hash)

	ok, err := hasher.Verify(ctx, "secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_FreshSaltPerCall(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	first, err := hasher.Hash(ctx, "secret1")
	require.NoError(t, err)
	second, err := hasher.Hash(ctx, "secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, h := range []string{first, second} {
		ok, err := hasher.Verify(ctx, "secret1", h)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestBcryptHasher_Mismatch(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	hash, err := hasher.Hash(ctx, "secret1")
	require.NoError(t, err)

	for _, candidate := range []string{"secret2", "", "Secret1", "secret1 "} {
		ok, err := hasher.Verify(ctx, candidate, hash)
		assert.NoError(t, err, "candidate %q", candidate)
		assert.False(t, ok, "candidate %q", candidate)
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := newTestHasher()

	for _, hash := range []string{"", "invalid_hash", "$2a$99$abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyz12"} {
		ok, err := hasher.Verify(context.Background(), "secret1", hash)
		assert.False(t, ok)
		require.Error(t, err, "hash %q", hash)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
		assert.True(t, domainerrors.IsKind(err, domainerrors.KindInternal))
	}
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := newTestHasher()
	ctx := context.Background()

	_, err := hasher.Hash(ctx, strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)

	// 25 three-byte runes: short in characters, too long in bytes.
	for _, password := range []string{strings.Repeat("a", 80), strings.Repeat("密", 25)} {
		_, err = hasher.Hash(ctx, password)
		require.Error(t, err)

		appErr := domainerrors.AsAppError(err)
		assert.Equal(t, domainerrors.KindValidation, appErr.Kind())
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
		assert.Equal(t, map[string]any{"password": "must be at most 72 bytes"}, appErr.Details())
	}
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost, nil)

	hash, err := hasher.Hash(context.Background(), "StrongPass123!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestBcryptHasher_CostClamped(t *testing.T) {
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasherWithCost(1, nil).(*bcryptHasher).cost)
	assert.Equal(t, bcrypt.MaxCost, NewBcryptHasherWithCost(99, nil).(*bcryptHasher).cost)
	assert.Equal(t, DefaultBcryptCost, NewBcryptHasher(nil, nil).(*bcryptHasher).cost)
}

func TestBcryptHasher_CancelledContext(t *testing.T) {
	pool := workerpool.New(1)
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost, pool)

	block := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = pool.Do(context.Background(), func() error {
			close(started)
			<-block

			return nil
		})
	}()
	<-started
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := hasher.Hash(ctx, "secret1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}
