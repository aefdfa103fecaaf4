package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedran77/missive/internal/domain"
)

func TestAuthHandler_Signup(t *testing.T) {
	h := newHarness(t)

	t.Run("creates user without exposing the hash", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/api/v1/auth/signup", "", signupBody("alice"))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")

		var body struct {
			Token string            `json:"token"`
			User  domain.PublicUser `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "alice", body.User.Username)
		assert.Equal(t, "alice@example.com", body.User.Email)
	})

	t.Run("duplicate username", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/api/v1/auth/signup", "", signupBody("alice"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DUPLICATE_CREDENTIAL", decodeError(t, rec).Error.Code)
	})

	t.Run("duplicate email differing in case", func(t *testing.T) {
		body := signupBody("alice2")
		body["email"] = "ALICE@example.com"

		rec := h.do(http.MethodPost, "/api/v1/auth/signup", "", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "DUPLICATE_CREDENTIAL", decodeError(t, rec).Error.Code)
	})

	t.Run("field validation", func(t *testing.T) {
		body := signupBody("bob")
		body["first_name"] = "B0b"
		body["email"] = "bob@localhost"
		body["confirm_password"] = "different1!A"

		rec := h.do(http.MethodPost, "/api/v1/auth/signup", "", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errBody := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", errBody.Error.Code)
		assert.Contains(t, errBody.Error.Fields, "first_name")
		assert.Contains(t, errBody.Error.Fields, "email")
		assert.Contains(t, errBody.Error.Fields, "confirm_password")
		assert.NotContains(t, errBody.Error.Fields, "username")
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/api/v1/auth/signup", "", "{")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_JSON", decodeError(t, rec).Error.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	h := newHarness(t)
	h.signup("carol")

	cases := []struct {
		name     string
		username string
		password string
		status   int
		code     string
	}{
		{"valid credentials", "carol", "testPassword1!", http.StatusOK, ""},
		{"wrong password", "carol", "wrongPassword1!", http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"unknown user", "nobody", "testPassword1!", http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"missing password", "carol", "", http.StatusBadRequest, "VALIDATION_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := h.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
				"username": tc.username,
				"password": tc.password,
			})

			require.Equal(t, tc.status, rec.Code)
			if tc.code != "" {
				assert.Equal(t, tc.code, decodeError(t, rec).Error.Code)
				return
			}
			assert.Contains(t, rec.Body.String(), `"token"`)
			assert.NotContains(t, rec.Body.String(), "password")
		})
	}
}

func TestAuthHandler_Verify(t *testing.T) {
	h := newHarness(t)
	token, id := h.signup("dave")

	t.Run("resolves the token owner", func(t *testing.T) {
		rec := h.do(http.MethodGet, "/api/v1/auth/verify", token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			User domain.PublicUser `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, id, body.User.ID)
		assert.Equal(t, "dave", body.User.Username)
	})

	t.Run("rejects a bogus token", func(t *testing.T) {
		rec := h.do(http.MethodGet, "/api/v1/auth/verify", "test", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		rec := h.do(http.MethodGet, "/api/v1/auth/verify", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_LoginWithPaddedUsername(t *testing.T) {
	h := newHarness(t)

	body := signupBody("dave")
	body["username"] = "dave "
	rec := h.do(http.MethodPost, "/api/v1/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"dave"`)

	for _, username := range []string{"dave ", "dave", "  dave"} {
		rec = h.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"username": username,
			"password": "testPassword1!",
		})
		assert.Equal(t, http.StatusOK, rec.Code, "login as %q", username)
	}
}
