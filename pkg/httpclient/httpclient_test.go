package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultClient_Get_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer mockServer.Close()

	client := NewDefaultClient(nil)

	body, err := client.Get(context.Background(), mockServer.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestDefaultClient_Get_AppendsQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer mockServer.Close()

	client := NewDefaultClient(nil)

	// The base URL already carries a q parameter; the transport must add,
	// not replace.
	_, err := client.Get(context.Background(), mockServer.URL+"?q=old", map[string]string{
		"q":   "new",
		"key": "test-key",
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"old", "new"}, gotQuery["q"])
	assert.Equal(t, []string{"test-key"}, gotQuery["key"])
}

func TestDefaultClient_Post_SendsBody(t *testing.T) {
	var gotMethod string
	var gotBody []byte
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"created":true}`))
	}))
	defer mockServer.Close()

	client := NewDefaultClient(nil)

	body, err := client.Post(context.Background(), mockServer.URL, []byte(`{"name":"Chicago"}`))

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, `{"name":"Chicago"}`, string(gotBody))
	assert.Equal(t, `{"created":true}`, string(body))
}

func TestDefaultClient_Get_ClassifiedStatusWithEnvelope(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	}))
	defer mockServer.Close()

	client := NewDefaultClient(nil)

	_, err := client.Get(context.Background(), mockServer.URL, nil)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, 1006, httpErr.Code)
	assert.Equal(t, "No matching location found.", httpErr.Message)
}

func TestDefaultClient_Get_ClassifiedStatusWithUndecodableBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json at all`))
	}))
	defer mockServer.Close()

	client := NewDefaultClient(nil)

	_, err := client.Get(context.Background(), mockServer.URL, nil)

	// The decode failure is tolerated: the status error survives, the
	// message is simply absent.
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, 0, httpErr.Code)
	assert.Empty(t, httpErr.Message)
}

func TestDefaultClient_Get_UnknownStatus(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer mockServer.Close()

	client := NewDefaultClient(nil)

	_, err := client.Get(context.Background(), mockServer.URL, nil)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTeapot, httpErr.StatusCode)
}

func TestDefaultClient_Get_InvalidResponse(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	mockServer.Close() // nothing listening anymore

	client := NewDefaultClient(nil)

	_, err := client.Get(context.Background(), mockServer.URL, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidResponse))

	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr), "a transport failure must stay distinct from status errors")
}
