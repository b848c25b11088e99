package remoteconfig

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const liveTemplate = `{
	"parameters": {
		"banner_text": {"defaultValue": {"value": "Karibu!"}, "valueType": "STRING"},
		"christmas_enabled": {"defaultValue": {"value": "true"}, "valueType": "BOOLEAN"}
	},
	"conditions": [{"name": "ios", "expression": "device.os == 'ios'"}],
	"version": {"versionNumber": "12"}
}`

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		httpClient: srv.Client(),
		projectID:  "demo-project",
		baseURL:    srv.URL,
	}
}

func TestGetTemplate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/projects/demo-project/remoteConfig", r.URL.Path)
		w.Header().Set("ETag", "etag-1")
		w.Write([]byte(liveTemplate))
	}))
	defer srv.Close()

	tpl, err := newTestClient(srv).GetTemplate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "etag-1", tpl.ETag)

	v, ok := tpl.ParameterValue("banner_text")
	require.True(t, ok)
	assert.Equal(t, "Karibu!", v)

	v, ok = tpl.ParameterValue("christmas_enabled")
	require.True(t, ok)
	assert.Equal(t, "true", v)

	_, ok = tpl.ParameterValue("missing")
	assert.False(t, ok)
}

func TestPublishPreservesUnrelatedContent(t *testing.T) {
	var published map[string]json.RawMessage
	var ifMatch string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("ETag", "etag-1")
			w.Write([]byte(liveTemplate))
		case http.MethodPut:
			ifMatch = r.Header.Get("If-Match")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&published))
			w.Header().Set("ETag", "etag-2")
			w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	client := newTestClient(srv)
	tpl, err := client.GetTemplate(context.Background())
	require.NoError(t, err)

	tpl.SetParameter("use_tawk", "true", TypeBoolean)
	require.NoError(t, client.PublishTemplate(context.Background(), tpl))

	assert.Equal(t, "etag-1", ifMatch)
	assert.Equal(t, "etag-2", tpl.ETag)

	// Conditions ride along untouched; version metadata is stripped.
	assert.Contains(t, published, "conditions")
	assert.NotContains(t, published, "version")

	var params map[string]Parameter
	require.NoError(t, json.Unmarshal(published["parameters"], &params))
	assert.Equal(t, "true", params["use_tawk"].DefaultValue.Value)
	assert.Equal(t, "Karibu!", params["banner_text"].DefaultValue.Value)
}

func TestValidateTemplateUsesDryRun(t *testing.T) {
	var validateOnly string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		validateOnly = r.URL.Query().Get("validate_only")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tpl := NewTemplate()
	tpl.SetParameter("banner_text", "hello", TypeString)
	require.NoError(t, newTestClient(srv).ValidateTemplate(context.Background(), tpl))
	assert.Equal(t, "true", validateOnly)
}

func TestEmptyTemplatePublishesWithForcedETag(t *testing.T) {
	var ifMatch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ifMatch = r.Header.Get("If-Match")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	require.NoError(t, newTestClient(srv).PublishTemplate(context.Background(), NewTemplate()))
	assert.Equal(t, "*", ifMatch)
}

func TestAPIErrorSurfacesUpstreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": {"message": "VALIDATION_ERROR: banner_text is invalid"}}`))
	}))
	defer srv.Close()

	err := newTestClient(srv).PublishTemplate(context.Background(), NewTemplate())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VALIDATION_ERROR: banner_text is invalid")
}
