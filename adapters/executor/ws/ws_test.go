package ws

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kompox/patternapi/adapters/executor/local"
	"github.com/kompox/patternapi/domain/contract"
	"github.com/kompox/patternapi/domain/envelope"
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/internal/logging"
)

func startServer(t *testing.T) (*Client, *httptest.Server) {
	t.Helper()
	mux := local.NewMux()
	local.Handle(mux, contract.GetUser, func(_ context.Context, req *model.NameRequest) (*model.User, error) {
		return &model.User{ObjectMeta: metav1.ObjectMeta{Name: req.Name}}, nil
	})
	local.Handle(mux, contract.ClusterRestart, func(ctx context.Context, _ *contract.Empty) (*contract.Void, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	logger, err := logging.NewWithWriter("json", slog.LevelDebug, io.Discard)
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(mux, logger))
	t.Cleanup(srv.Close)

	c, err := Dial(context.Background(), Options{
		URL:      "ws" + strings.TrimPrefix(srv.URL, "http"),
		Username: "alice",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, srv
}

func TestRoundTrip(t *testing.T) {
	c, _ := startServer(t)
	d := model.NewDatagram("get/user", []byte(`{"name":"alice"}`))
	reply, err := c.Execute(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, d.ID, reply.ID)
	assert.Equal(t, "alice", d.Username)

	raw, err := envelope.Parse(reply.Payload)
	require.NoError(t, err)
	resp, err := envelope.Decode[model.User](raw)
	require.NoError(t, err)
	u, err := resp.Result()
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Name)
}

func TestUnknownPatternOverWire(t *testing.T) {
	c, _ := startServer(t)
	reply, err := c.Execute(context.Background(), model.NewDatagram("not/a/real/pattern", nil))
	require.NoError(t, err)
	raw, err := envelope.Parse(reply.Payload)
	require.NoError(t, err)
	assert.Equal(t, envelope.StatusError, raw.Status)
	assert.Equal(t, local.MessagePatternNotFound, raw.Message)
}

func TestConcurrentCalls(t *testing.T) {
	c, _ := startServer(t)
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("user-%d", i)
			reply, err := c.Execute(context.Background(), model.NewDatagram("get/user", []byte(`{"name":"`+name+`"}`)))
			if err != nil {
				errs <- err
				return
			}
			raw, err := envelope.Parse(reply.Payload)
			if err != nil {
				errs <- err
				return
			}
			resp, err := envelope.Decode[model.User](raw)
			if err != nil {
				errs <- err
				return
			}
			if resp.Data == nil || resp.Data.Name != name {
				errs <- fmt.Errorf("reply for %s carried %+v", name, resp.Data)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestContextDeadline(t *testing.T) {
	c, _ := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Execute(ctx, model.NewDatagram("cluster/restart", nil))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClosed(t *testing.T) {
	c, _ := startServer(t)
	require.NoError(t, c.Close())
	_, err := c.Execute(context.Background(), model.NewDatagram("get/user", []byte(`{"name":"alice"}`)))
	assert.ErrorIs(t, err, model.ErrExecutorClosed)
}

func TestDialFailure(t *testing.T) {
	_, err := Dial(context.Background(), Options{URL: "ws://127.0.0.1:1/none"})
	assert.Error(t, err)
}
