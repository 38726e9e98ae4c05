package dbgsync

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/controller/workspace/workspacemock"
	"github.com/uber/dbg-sync/src/dbgsync/factory"
	"github.com/uber/dbg-sync/src/dbgsync/internal/jsonrpcfx/jsonrpcfxmock"
	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"go.lsp.dev/jsonrpc2"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("registers connection manager", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jsonRPCMock := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)
		jsonRPCMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(nil)

		h, err := New(workspacemock.NewMockController(ctrl), jsonRPCMock, tally.NoopScope)
		require.NoError(t, err)
		assert.IsType(t, &jsonRPCConnectionManager{}, h)
	})

	t.Run("duplicate registration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		jsonRPCMock := jsonrpcfxmock.NewMockJSONRPCModule(ctrl)
		jsonRPCMock.EXPECT().RegisterConnectionManager(gomock.Any()).Return(errors.New("duplicate"))

		_, err := New(workspacemock.NewMockController(ctrl), jsonRPCMock, tally.NoopScope)
		assert.Error(t, err)
	})
}

func TestNewConnection(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	c := workspacemock.NewMockController(ctrl)
	testScope := tally.NewTestScope("testing", make(map[string]string, 0))

	mgr := jsonRPCConnectionManager{
		stats: testScope,
		ctrl:  c,
	}

	var conn jsonrpc2.Conn

	t.Run("create success", func(t *testing.T) {
		id := factory.UUID()
		c.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(id, nil)
		router, err := mgr.NewConnection(ctx, &conn)
		require.NoError(t, err)
		assert.IsType(t, &jsonRPCRouter{}, router)
		assert.Equal(t, id, router.UUID())
	})

	t.Run("create failure", func(t *testing.T) {
		c.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("error"))
		_, err := mgr.NewConnection(ctx, &conn)
		assert.Error(t, err)
	})
}

func TestRemoveConnection(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	c := workspacemock.NewMockController(ctrl)
	id := factory.UUID()
	c.EXPECT().InitSession(gomock.Any(), gomock.Any()).Return(id, nil)
	c.EXPECT().EndSession(gomock.Any(), id).DoAndReturn(func(ctx context.Context, id uuid.UUID) error {
		resultID, err := mapper.ContextToSessionUUID(ctx)
		assert.NoError(t, err)
		assert.Equal(t, id, resultID)
		return nil
	})

	mgr := jsonRPCConnectionManager{
		stats: tally.NoopScope,
		ctrl:  c,
	}

	var conn jsonrpc2.Conn
	router, err := mgr.NewConnection(ctx, &conn)
	require.NoError(t, err)

	mgr.RemoveConnection(ctx, router.UUID())
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newMockReplier() jsonrpc2.Replier {
	return func(ctx context.Context, result interface{}, err error) error {
		return err
	}
}
