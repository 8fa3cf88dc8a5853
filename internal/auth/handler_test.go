package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*Handler, *mockUserService) {
	users := &mockUserService{}
	return NewHandler(newTestAuthService(users)), users
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, req)
	return w.Result()
}

func decodeBody(t *testing.T, res *http.Response) map[string]string {
	t.Helper()
	defer res.Body.Close()
	var body map[string]string
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}

func TestHandleSignup_Success(t *testing.T) {
	handler, _ := newTestHandler()

	res := doJSON(t, handler.HandleSignup, http.MethodPost, "/api/auth/signup",
		`{"name":"Test User","email":"test@test.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	assert.NotEmpty(t, body["token"])
}

func TestHandleSignup_DuplicateEmail(t *testing.T) {
	handler, _ := newTestHandler()

	res := doJSON(t, handler.HandleSignup, http.MethodPost, "/api/auth/signup",
		`{"name":"Test User","email":"test@test.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = doJSON(t, handler.HandleSignup, http.MethodPost, "/api/auth/signup",
		`{"name":"Another User","email":"test@test.com","password":"password456"}`)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, "User already exists", body["msg"])
}

func TestHandleSignup_MissingFields(t *testing.T) {
	handler, _ := newTestHandler()

	res := doJSON(t, handler.HandleSignup, http.MethodPost, "/api/auth/signup",
		`{"name":"Test User"}`)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	body := decodeBody(t, res)
	assert.Equal(t, "Please enter all fields", body["msg"])
}

func TestHandleLogin_Success(t *testing.T) {
	handler, _ := newTestHandler()

	res := doJSON(t, handler.HandleSignup, http.MethodPost, "/api/auth/signup",
		`{"name":"Test User","email":"test@test.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = doJSON(t, handler.HandleLogin, http.MethodPost, "/api/auth/login",
		`{"email":"test@test.com","password":"password123"}`)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	assert.NotEmpty(t, body["token"])
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	handler, _ := newTestHandler()

	res := doJSON(t, handler.HandleSignup, http.MethodPost, "/api/auth/signup",
		`{"name":"Test User","email":"test@test.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	for _, body := range []string{
		`{"email":"nonexistent@test.com","password":"password123"}`,
		`{"email":"test@test.com","password":"wrongpassword"}`,
	} {
		res := doJSON(t, handler.HandleLogin, http.MethodPost, "/api/auth/login", body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "Invalid credentials", decodeBody(t, res)["msg"])
	}
}

func TestHandleLogin_MissingCredentials(t *testing.T) {
	handler, _ := newTestHandler()

	res := doJSON(t, handler.HandleLogin, http.MethodPost, "/api/auth/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
