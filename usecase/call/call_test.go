package call

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/kompox/patternapi/adapters/executor/local"
	"github.com/kompox/patternapi/adapters/store/inmem"
	"github.com/kompox/patternapi/domain"
	"github.com/kompox/patternapi/domain/contract"
	"github.com/kompox/patternapi/domain/envelope"
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

type countingExecutor struct {
	model.Executor
	calls int
}

func (c *countingExecutor) Execute(ctx context.Context, d *model.Datagram) (*model.Datagram, error) {
	c.calls++
	return c.Executor.Execute(ctx, d)
}

type brokenExecutor struct{}

func (brokenExecutor) Execute(context.Context, *model.Datagram) (*model.Datagram, error) {
	return nil, model.ErrExecutorClosed
}

func newUseCase(t *testing.T) (*UseCase, *countingExecutor, *inmem.CallRecordRepository) {
	t.Helper()
	mux := local.NewMux()
	local.Handle(mux, contract.GetUser, func(_ context.Context, req *model.NameRequest) (*model.User, error) {
		if req.Name != "alice" {
			return nil, errors.New("user not found")
		}
		return &model.User{ObjectMeta: metav1.ObjectMeta{Name: req.Name}, Spec: model.UserSpec{Email: "alice@example.com"}}, nil
	})
	local.Handle(mux, contract.ClusterHelmRepoList, func(context.Context, *contract.Empty) (*[]*model.HelmEntryWithoutPassword, error) {
		return &[]*model.HelmEntryWithoutPassword{{Name: "bitnami"}}, nil
	})
	local.Handle(mux, contract.InstallKepler, func(context.Context, *contract.Empty) (*string, error) {
		return ptr.To("kepler installed"), nil
	})
	local.Handle(mux, contract.ClusterRestart, func(context.Context, *contract.Empty) (*contract.Void, error) {
		return nil, nil
	})
	local.Handle(mux, contract.GetWorkspace, func(context.Context, *model.NameRequest) (*model.WorkspaceInfo, error) {
		return nil, nil
	})
	exec := &countingExecutor{Executor: mux}
	repo := inmem.NewCallRecordRepository()
	return &UseCase{Repos: &Repos{Call: repo}, Executor: exec, Username: "tester"}, exec, repo
}

func TestDoGetUser(t *testing.T) {
	u, _, repo := newUseCase(t)
	resp, err := Do(context.Background(), u, contract.GetUser, &model.NameRequest{Name: "alice"})
	require.NoError(t, err)
	require.True(t, resp.OK())
	require.NotNil(t, resp.Data)
	assert.Equal(t, "alice", resp.Data.Name)
	assert.Equal(t, "alice@example.com", resp.Data.Spec.Email)

	recs, err := repo.List(context.Background(), domain.CallFilter{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "get/user", recs[0].Pattern)
	assert.Equal(t, "success", recs[0].Status)
	assert.Equal(t, "tester", recs[0].Username)
}

func TestDoRemoteError(t *testing.T) {
	u, _, repo := newUseCase(t)
	resp, err := Do(context.Background(), u, contract.GetUser, &model.NameRequest{Name: "bob"})
	require.NoError(t, err)
	assert.Nil(t, resp.Data)
	_, err = resp.Result()
	assert.ErrorIs(t, err, envelope.ErrRemoteFailure)

	recs, _ := repo.List(context.Background(), domain.CallFilter{})
	require.Len(t, recs, 1)
	assert.Equal(t, "error", recs[0].Status)
	assert.Equal(t, "user not found", recs[0].Message)
}

func TestDoRejectsBeforeDispatch(t *testing.T) {
	u, exec, repo := newUseCase(t)
	_, err := Do(context.Background(), u, contract.GetUser, &model.NameRequest{})
	assert.ErrorIs(t, err, model.ErrInvalidRequest)
	assert.Zero(t, exec.calls)
	n, _ := repo.Count(context.Background(), domain.CallFilter{})
	assert.Zero(t, n)
}

func TestResult(t *testing.T) {
	u, _, _ := newUseCase(t)
	ctx := context.Background()

	repos, err := Result(ctx, u, contract.ClusterHelmRepoList, nil)
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "bitnami", repos[0].Name)

	msg, err := Result(ctx, u, contract.InstallKepler, nil)
	require.NoError(t, err)
	assert.Equal(t, "kepler installed", msg)

	_, err = Result(ctx, u, contract.ClusterRestart, nil)
	assert.NoError(t, err)

	_, err = Result(ctx, u, contract.GetWorkspace, &model.NameRequest{Name: "ws"})
	assert.ErrorIs(t, err, envelope.ErrNoContent)
}

func TestInvoke(t *testing.T) {
	u, _, _ := newUseCase(t)
	out, err := u.Invoke(context.Background(), &InvokeInput{Pattern: "get/user", Payload: []byte(`{"name":"alice"}`)})
	require.NoError(t, err)
	assert.Equal(t, pattern.GetUser, out.Pattern)
	assert.Equal(t, envelope.StatusSuccess, out.Envelope.Status)
	user, ok := out.Result.(*model.User)
	require.True(t, ok)
	assert.Equal(t, "alice", user.Name)
	assert.NotEmpty(t, out.Call.ID)

	out, err = u.Invoke(context.Background(), &InvokeInput{Pattern: "INSTALL_KEPLER"})
	require.NoError(t, err)
	assert.Equal(t, ptr.To("kepler installed"), out.Result)

	out, err = u.Invoke(context.Background(), &InvokeInput{Pattern: "cluster/helm-repo-list"})
	require.NoError(t, err)
	assert.IsType(t, &[]*model.HelmEntryWithoutPassword{}, out.Result)
}

func TestInvokeFailsFast(t *testing.T) {
	u, exec, _ := newUseCase(t)
	_, err := u.Invoke(context.Background(), &InvokeInput{Pattern: "not/a/real/pattern"})
	assert.ErrorIs(t, err, pattern.ErrUnknownPattern)

	_, err = u.Invoke(context.Background(), &InvokeInput{Pattern: "get/user", Payload: []byte(`{"nick":"x"}`)})
	assert.ErrorIs(t, err, model.ErrInvalidRequest)

	_, err = u.Invoke(context.Background(), nil)
	assert.ErrorIs(t, err, model.ErrInvalidRequest)
	assert.Zero(t, exec.calls)
}

func TestTransportFailureIsJournaled(t *testing.T) {
	repo := inmem.NewCallRecordRepository()
	u := &UseCase{Repos: &Repos{Call: repo}, Executor: brokenExecutor{}}
	_, err := Do(context.Background(), u, contract.GetUser, &model.NameRequest{Name: "alice"})
	assert.ErrorIs(t, err, model.ErrExecutorClosed)

	recs, _ := repo.List(context.Background(), domain.CallFilter{})
	require.Len(t, recs, 1)
	assert.Equal(t, StatusFailed, recs[0].Status)

	_, err = Do(context.Background(), &UseCase{}, contract.GetUser, &model.NameRequest{Name: "alice"})
	assert.ErrorIs(t, err, model.ErrExecutorClosed)
}
