package contract

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/kompox/patternapi/domain/envelope"
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
	"github.com/kompox/patternapi/internal/codec"
)

func TestRegistryExhaustive(t *testing.T) {
	require.NoError(t, Validate())
	assert.Len(t, registry, pattern.Len())
	for _, p := range pattern.All() {
		d, ok := Lookup(p)
		require.True(t, ok, p.String())
		assert.Equal(t, p, d.Pattern())
	}
}

func TestDescriptorsStableAndUnique(t *testing.T) {
	ds := Descriptors()
	require.Len(t, ds, pattern.Len())
	seen := map[pattern.Pattern]bool{}
	for i, d := range ds {
		assert.False(t, seen[d.Pattern()], d.Pattern().String())
		seen[d.Pattern()] = true
		assert.Equal(t, pattern.All()[i], d.Pattern())

		again, _ := Lookup(d.Pattern())
		assert.Same(t, d, again)
	}
}

func TestLookupNonMember(t *testing.T) {
	_, ok := Lookup(pattern.Pattern(0))
	assert.False(t, ok)
}

func TestDefineTwicePanics(t *testing.T) {
	assert.Panics(t, func() { define[Empty, Void](pattern.GetUser) })
	assert.Panics(t, func() { define[Empty, Void](pattern.Pattern(0)) })
}

func TestFor(t *testing.T) {
	c, err := For[model.NameRequest, model.User](pattern.GetUser)
	require.NoError(t, err)
	assert.Equal(t, GetUser, c)
	assert.Same(t, GetUser.Descriptor(), c.Descriptor())

	_, err = For[model.NameRequest, string](pattern.GetUser)
	assert.ErrorIs(t, err, ErrContractMismatch)
	var me *MismatchError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, reflect.TypeFor[model.User](), me.WantResponse)
	assert.Equal(t, reflect.TypeFor[string](), me.GotResponse)

	_, err = For[Empty, Void](pattern.Pattern(0))
	assert.ErrorIs(t, err, pattern.ErrUnknownPattern)
}

func TestGetUserEnvelopeRoundTrip(t *testing.T) {
	req, err := GetUser.DecodeRequest([]byte(`{"name":"alice"}`))
	require.NoError(t, err)
	assert.Equal(t, "alice", req.Name)

	user := &model.User{
		TypeMeta:   metav1.TypeMeta{Kind: "User", APIVersion: "mogenius.com/v1alpha1"},
		ObjectMeta: metav1.ObjectMeta{Name: req.Name, Namespace: "mogenius"},
		Spec:       model.UserSpec{FirstName: "Alice", Email: "alice@example.com"},
	}
	b, err := codec.Marshal(envelope.Success(user))
	require.NoError(t, err)

	raw, err := envelope.Parse(b)
	require.NoError(t, err)
	require.NotNil(t, raw.Data)
	got, err := envelope.Decode[model.User](raw)
	require.NoError(t, err)
	out, err := got.Result()
	require.NoError(t, err)
	assert.Equal(t, *user, out)

	b, err = codec.Marshal(envelope.NewResponse[model.User](nil, errors.New("user not found")))
	require.NoError(t, err)
	raw, err = envelope.Parse(b)
	require.NoError(t, err)
	assert.Nil(t, raw.Data)
	assert.Equal(t, envelope.StatusError, raw.Status)
}

func TestHelmRepoListAcceptsEmptyRequest(t *testing.T) {
	d := ClusterHelmRepoList.Descriptor()
	assert.True(t, d.EmptyRequest())
	for _, payload := range []string{"", "null", "{}"} {
		_, err := d.DecodeRequest([]byte(payload))
		assert.NoError(t, err, payload)
	}
	_, err := d.DecodeRequest([]byte(`{"unexpected":true}`))
	assert.ErrorIs(t, err, model.ErrInvalidRequest)
}

func TestDecodeRequestRejects(t *testing.T) {
	tests := []struct {
		name    string
		d       *Descriptor
		payload string
	}{
		{"unknown field", GetUser.Descriptor(), `{"name":"alice","age":3}`},
		{"missing required", GetUser.Descriptor(), `{}`},
		{"bad namespace", NamespacePodIds.Descriptor(), `{"namespace":"Not_A_Label"}`},
		{"wrong type", GetUser.Descriptor(), `{"name":42}`},
		{"trailing garbage", GetUser.Descriptor(), `{"name":"alice"} x`},
		{"trailing value", GetUser.Descriptor(), `{"name":"alice"}{}`},
		{"bad resource name", ClusterReadDeployment.Descriptor(), `{"namespace":"team-a","name":"Web_Server"}`},
		{"bad slice element", UpdateNetworkPoliciesTemplate.Descriptor(), `[{"name":"http","protocol":"TCP","port":80,"type":"ingress"},{"name":"x","protocol":"ICMP","port":1,"type":"ingress"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.d.DecodeRequest([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidRequest)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.d.Pattern(), ve.Pattern)
		})
	}
}

func TestDecodeRequestAccepts(t *testing.T) {
	v, err := NamespacePodIds.Descriptor().DecodeRequest([]byte(`{"namespace":"team-a"}`))
	require.NoError(t, err)
	assert.Equal(t, &model.NamespaceRequest{Namespace: "team-a"}, v)

	nn, err := ClusterReadDeployment.DecodeRequest([]byte(`{"namespace":"team-a","name":"web.v2"}`))
	require.NoError(t, err)
	assert.Equal(t, "web.v2", nn.Name)

	tpl, err := UpdateNetworkPoliciesTemplate.DecodeRequest([]byte(`[{"name":"http","protocol":"TCP","port":80,"type":"ingress"}]`))
	require.NoError(t, err)
	require.Len(t, *tpl, 1)
	assert.Equal(t, uint16(80), (*tpl)[0].Port)
}

func TestContractValidate(t *testing.T) {
	assert.ErrorIs(t, GetUser.Validate(nil), model.ErrInvalidRequest)
	assert.NoError(t, GetUser.Validate(&model.NameRequest{Name: "alice"}))
	assert.NoError(t, ClusterHelmRepoList.Validate(nil))
}

func TestFlags(t *testing.T) {
	assert.True(t, ServiceExecShConnectionRequest.Descriptor().Stream())
	assert.True(t, ServiceExecShConnectionRequest.Descriptor().Void())
	assert.True(t, LiveStreamNodesCpu.Descriptor().Stream())
	assert.False(t, GetUser.Descriptor().Stream())

	d := ServiceLogStream.Descriptor()
	assert.True(t, d.Deprecated())
	assert.NotEmpty(t, d.DeprecatedMessage())
	assert.False(t, GetUser.Descriptor().Deprecated())
}

func TestSchemasForEveryContract(t *testing.T) {
	for _, d := range Descriptors() {
		cfg, err := d.Config()
		require.NoError(t, err, d.Pattern().String())
		assert.Equal(t, d.EmptyRequest(), cfg.RequestSchema == nil, d.Pattern().String())
		assert.Equal(t, d.Void(), cfg.ResponseSchema == nil, d.Pattern().String())
	}

	req, resp, err := GetUser.Descriptor().Schemas()
	require.NoError(t, err)
	layout, err := req.TypeInfo.StructLayout(req)
	require.NoError(t, err)
	assert.Contains(t, layout.Properties, "name")
	layout, err = resp.TypeInfo.StructLayout(resp)
	require.NoError(t, err)
	assert.Contains(t, layout.Properties, "metadata")
	assert.Contains(t, layout.Properties, "kind")
}

func TestDecodeResponse(t *testing.T) {
	v, err := ClusterHelmRepoList.Descriptor().DecodeResponse([]byte(`[{"name":"bitnami","url":"https://charts.bitnami.com/bitnami"},null]`))
	require.NoError(t, err)
	list := *(v.(*[]*model.HelmEntryWithoutPassword))
	require.Len(t, list, 2)
	assert.Equal(t, "bitnami", list[0].Name)
	assert.Nil(t, list[1])

	_, err = GetUser.Descriptor().DecodeResponse([]byte(`[1]`))
	assert.ErrorIs(t, err, model.ErrInvalidResponse)
}
