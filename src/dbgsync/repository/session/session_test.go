package session

import (
	"context"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"go.uber.org/goleak"
)

func TestSessionRepository(t *testing.T) {
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	t.Run("should Set and Get successfully", func(t *testing.T) {
		id := uuid.Must(uuid.NewV4())
		s := &entity.Session{
			ID:   id,
			Name: "kernel-1",
			KernelHash: &entity.HashParams{
				Seed:          7,
				TmpFilePrefix: "/tmp/kernel/",
				TmpFileSuffix: ".py",
			},
		}

		repository := New(testScope)

		err := repository.Set(context.Background(), s)
		require.NoError(t, err)
		val, err := repository.Get(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, s, val)
		assert.NotSame(t, s, val)
	})

	t.Run("should fail to get something that was not Set", func(t *testing.T) {
		repository := New(testScope)

		id := uuid.Must(uuid.NewV4())
		_, err := repository.Get(context.Background(), id)
		require.Error(t, err)
		var nf *errors.SessionNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, id, nf.ID)
	})

	t.Run("should reject nil sessions", func(t *testing.T) {
		repository := New(testScope)
		assert.Error(t, repository.Set(context.Background(), nil))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	repository := New(testScope)

	session1 := &entity.Session{
		ID: uuid.Must(uuid.NewV4()),
	}
	session2 := &entity.Session{
		ID: uuid.Must(uuid.NewV4()),
	}

	require.NoError(t, repository.Set(ctx, session1))
	require.NoError(t, repository.Set(ctx, session2))

	// Deleting twice is not an error.
	assert.NoError(t, repository.Delete(ctx, session2.ID))
	assert.NoError(t, repository.Delete(ctx, session2.ID))
	_, err := repository.Get(ctx, session2.ID)
	assert.Error(t, err)

	result, err := repository.Get(ctx, session1.ID)
	assert.NoError(t, err)
	assert.Equal(t, session1, result)

	gauges := testScope.Snapshot().Gauges()
	assert.Equal(t, float64(1), gauges["testing.active_sessions+"].Value())
}

func TestSessionCount(t *testing.T) {
	ctx := context.Background()
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))
	repository := New(testScope)

	session1 := &entity.Session{
		ID: uuid.Must(uuid.NewV4()),
	}
	session2 := &entity.Session{
		ID: uuid.Must(uuid.NewV4()),
	}

	count, err := repository.SessionCount(ctx)
	assert.Equal(t, 0, count)
	assert.NoError(t, err)

	require.NoError(t, repository.Set(ctx, session1))
	require.NoError(t, repository.Set(ctx, session2))

	count, err = repository.SessionCount(ctx)
	assert.Equal(t, 2, count)
	assert.NoError(t, err)

	require.NoError(t, repository.Delete(ctx, session2.ID))
	count, _ = repository.SessionCount(ctx)
	assert.Equal(t, 1, count)

	require.NoError(t, repository.Delete(ctx, session1.ID))
	count, _ = repository.SessionCount(ctx)
	assert.Equal(t, 0, count)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
