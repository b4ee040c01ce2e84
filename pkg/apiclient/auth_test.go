package apiclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		_, present := r.Header["Authorization"]
		assert.False(t, present, "login is sent unauthenticated")

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@x.com", req.Email)
		assert.Equal(t, "p", req.Password)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"token":"t1","user":{"id":"1","name":"A","email":"a@x.com","role":"admin"}}`))
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Login("a@x.com", "p")

	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, AuthUser{ID: "1", Name: "A", Email: "a@x.com", Role: "admin"}, resp.User)
}

func TestLoginInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid email or password"}`))
	}))
	defer server.Close()

	client := New(server.URL)
	resp, err := client.Login("a@x.com", "wrong")

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, IsUnauthenticated(err))
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestRegister(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/register", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))

		var req RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "B", req.Name)
		assert.Equal(t, "viewer", req.Role)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"user":{"_id":"2","name":"B","email":"b@x.com","role":"viewer"}}`))
	}))
	defer server.Close()

	client := New(server.URL).WithToken("admin-token")
	user, err := client.Register(&RegisterRequest{
		Name:     "B",
		Email:    "b@x.com",
		Password: "secret",
		Role:     "viewer",
	})

	require.NoError(t, err)
	assert.Equal(t, "2", user.ID)
	assert.Equal(t, "viewer", user.Role)
}

func TestProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/profile", r.URL.Path)
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"_id":"1","name":"A","email":"a@x.com","role":"admin"}`))
	}))
	defer server.Close()

	client := New(server.URL).WithToken("t1")
	user, err := client.Profile()

	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "admin", user.Role)
}

func TestAuthUserAcceptsBothIDFields(t *testing.T) {
	var u AuthUser
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"64ab","name":"A","role":"viewer"}`), &u))
	assert.Equal(t, "64ab", u.ID)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","name":"A","role":"admin"}`), &u))
	assert.Equal(t, "1", u.ID)
}
