package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"cli_clientes/internal/clientes"
	"cli_clientes/internal/config"
	"cli_clientes/internal/session"
)

func newTestClient(t *testing.T, backend *httptest.Server) (*Client, *session.FileStore) {
	t.Helper()
	tokens := session.NewFileStore(filepath.Join(t.TempDir(), "authToken"))
	cfg := config.Config{
		BaseURL:           backend.URL,
		Timeout:           5 * time.Second,
		DeleteClientePath: "/clientes/test/%d",
	}
	client := New(cfg, tokens, zaptest.NewLogger(t))
	t.Cleanup(func() { _ = client.Close() })
	return client, tokens
}

func TestClient_AttachesBearerTokenWhenStored(t *testing.T) {
	var gotAuth string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 1, "username": "ana"}`))
	}))
	defer backend.Close()

	client, tokens := newTestClient(t, backend)
	require.NoError(t, tokens.Save("fake-token"))

	_, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer fake-token", gotAuth)
}

func TestClient_OmitsAuthorizationWithoutToken(t *testing.T) {
	var hasAuth bool
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	_, err := client.ListClientes(context.Background())
	require.NoError(t, err)
	assert.False(t, hasAuth, "no token stored, so no Authorization header may be sent")
}

func TestClient_SendsJSONHeadersAndRequestID(t *testing.T) {
	var contentType, accept, requestID string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		accept = r.Header.Get("Accept")
		requestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "t", "user": {"id": 1, "username": "ana"}}`))
	}))
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	_, _, err := client.Login(context.Background(), clientes.LoginData{Username: "ana", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "application/json", accept)
	assert.NotEmpty(t, requestID)
}

func TestClient_Unauthorized_ClearsStoredToken(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Unauthorized"}`))
	}))
	defer backend.Close()

	client, tokens := newTestClient(t, backend)
	require.NoError(t, tokens.Save("expired-token"))

	_, err := client.Profile(context.Background())

	require.Error(t, err, "the 401 must still propagate to the caller")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Empty(t, tokens.Token(), "a 401 response evicts the stored token")
}

func TestClient_ErrorMessageFromBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Email já cadastrado"}`))
	}))
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	_, err := client.CreateCliente(context.Background(), clientes.CreateClienteData{
		NomeCompleto: "Ana Beatriz", Email: "ana.b@example.com", DataNascimento: "1992-05-01",
	})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "Email já cadastrado", statusErr.Message)
}

func TestClient_ListClientes_NormalizesNestedShape(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"clientes": [
			{"info": {"nomeCompleto": "Ana Beatriz", "detalhes": {"email": "ana.b@example.com", "nascimento": "1992-05-01"}}}
		]}}`))
	}))
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	lista, err := client.ListClientes(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, 1, lista[0].ID)
	assert.Equal(t, "Ana Beatriz", lista[0].NomeCompleto)
}

func TestClient_VendasPorDia_SortedAscending(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"data": "2024-02-03", "total": 90},
			{"data": "2024-01-01", "total": 150},
			{"data": "2024-01-15", "total": 30}
		]`))
	}))
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	porDia, err := client.VendasPorDia(context.Background())
	require.NoError(t, err)
	require.Len(t, porDia, 3)
	assert.Equal(t, "2024-01-01", porDia[0].Data)
	assert.Equal(t, "2024-01-15", porDia[1].Data)
	assert.Equal(t, "2024-02-03", porDia[2].Data)
}

func TestClient_DeleteCliente_UsesConfiguredPath(t *testing.T) {
	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	client, _ := newTestClient(t, backend)

	require.NoError(t, client.DeleteCliente(context.Background(), 7))
	assert.Equal(t, "/clientes/test/7", gotPath)
}
