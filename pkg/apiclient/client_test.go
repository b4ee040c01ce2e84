package apiclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCreds is an in-memory CredentialSource for tests.
type fakeCreds struct {
	mu     sync.Mutex
	token  string
	clears int
}

func (f *fakeCreds) Token() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, f.token != ""
}

func (f *fakeCreds) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.token == "" {
		return
	}
	f.token = ""
	f.clears++
}

func (f *fakeCreds) clearCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clears
}

func TestNew(t *testing.T) {
	client := New("http://localhost:5000/api/")
	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:5000/api", client.baseURL)
}

func TestNoSessionSendsNoAuthHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present, "unauthenticated request must carry no Authorization header")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL).WithCredentials(&fakeCreds{})
	require.NoError(t, client.get("/test", nil))
}

func TestAttachesBearerFromCredentialSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL).WithCredentials(&fakeCreds{token: "t1"})
	require.NoError(t, client.get("/test", nil))
}

func TestTokenOverrideBypassesCredentialSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer override", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL).WithCredentials(&fakeCreds{token: "stored"}).WithToken("override")
	require.NoError(t, client.get("/test", nil))
}

func TestUnauthenticatedClearsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer server.Close()

	creds := &fakeCreds{token: "stale"}
	ended := 0
	client := New(server.URL).WithCredentials(creds).OnSessionEnd(func() { ended++ })

	err := client.get("/products", nil)
	require.Error(t, err)
	assert.True(t, IsUnauthenticated(err))
	assert.Equal(t, 1, creds.clearCount())
	assert.Equal(t, 1, ended)

	_, ok := creds.Token()
	assert.False(t, ok, "stale credential must not survive a 401")
}

func TestUnauthenticatedWithoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	creds := &fakeCreds{}
	client := New(server.URL).WithCredentials(creds)

	err := client.get("/products", nil)
	require.Error(t, err)
	assert.True(t, IsUnauthenticated(err))
	// Already-empty store stays untouched.
	assert.Equal(t, 0, creds.clearCount())
}

func TestConcurrentUnauthenticatedClearsOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token expired"})
	}))
	defer server.Close()

	creds := &fakeCreds{token: "expired"}
	var ended int
	var endedMu sync.Mutex
	client := New(server.URL).WithCredentials(creds).OnSessionEnd(func() {
		endedMu.Lock()
		ended++
		endedMu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := client.get("/products", nil)
			assert.True(t, IsUnauthenticated(err))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ended, "session-end hook must fire exactly once")
	assert.LessOrEqual(t, creds.clearCount(), 1)
}

func TestForbiddenKeepsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "admin role required"})
	}))
	defer server.Close()

	creds := &fakeCreds{token: "t1"}
	client := New(server.URL).WithCredentials(creds)

	err := client.get("/users", nil)
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
	assert.Equal(t, "admin role required", err.Error())

	// Identity is valid but lacks permission: session survives.
	assert.Equal(t, 0, creds.clearCount())
	tok, ok := creds.Token()
	require.True(t, ok)
	assert.Equal(t, "t1", tok)
}

func TestClientErrorSurfacesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "SKU already exists"})
	}))
	defer server.Close()

	creds := &fakeCreds{token: "t1"}
	client := New(server.URL).WithCredentials(creds)

	err := client.post("/products", map[string]string{"sku": "dup"}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ClassClient, apiErr.Class)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "SKU already exists", apiErr.Message)
	assert.Equal(t, 0, creds.clearCount())
}

func TestServerErrorIsRetryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	creds := &fakeCreds{token: "t1"}
	client := New(server.URL).WithCredentials(creds)

	err := client.get("/products", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ClassServer, apiErr.Class)
	assert.True(t, apiErr.IsRetryable())
	assert.Equal(t, 0, creds.clearCount())
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	creds := &fakeCreds{token: "t1"}
	client := New(server.URL).WithCredentials(creds)

	err := client.get("/products", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ClassTransport, apiErr.Class)
	assert.True(t, apiErr.IsRetryable())
	assert.Equal(t, 0, creds.clearCount())
}

func TestClassifyMessageFallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"bad input"}`, "bad input"},
		{"message field", `{"message":"bad input"}`, "bad input"},
		{"raw body", `bad gateway`, "bad gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := classify(http.StatusBadRequest, []byte(tt.body))
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestClassOfForeignError(t *testing.T) {
	assert.Equal(t, Class(0), ClassOf(assert.AnError))
	assert.False(t, IsUnauthenticated(assert.AnError))
	assert.False(t, IsForbidden(nil))
}
