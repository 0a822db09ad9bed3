//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hospedagem-api/internal/handler/dto/request"
	"hospedagem-api/internal/handler/dto/response"
	"hospedagem-api/tests/common/authtest"
	"hospedagem-api/tests/common/dbtest"
	"hospedagem-api/tests/common/httptest"
	"hospedagem-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
	usersURL   = "/api/users"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "ana.recepcao", "funcionario")
	dbtest.CreateTestUser(s.T(), s.DB, "joao.gerente", "gerente")
	dbtest.CreateTestUser(s.T(), s.DB, "clara.admin", "admin")
	dbtest.CreateTestUser(s.T(), s.DB, "desativado", "funcionario")

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE login = 'desativado'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		login          string
		password       string
		expectedStatus int
	}{
		{"valid credentials", "ana.recepcao", "password123", http.StatusOK},
		{"unknown user", "ninguem", "password123", http.StatusUnauthorized},
		{"wrong password", "ana.recepcao", "senha-errada", http.StatusUnauthorized},
		{"inactive account", "desativado", "password123", http.StatusForbidden},
		{"empty login", "", "password123", http.StatusBadRequest},
		{"empty password", "ana.recepcao", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Login: tt.login, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes response.LoginResponse
				err := httptest.DecodeResponseBody(t, w.Body, &loginRes)
				require.NoError(t, err)
				require.NotEmpty(t, loginRes.AccessToken)
				require.Equal(t, tt.login, loginRes.User.Login)

				accessCookie := httptest.ExtractCookie(w, "access_token")
				require.NotNil(t, accessCookie)
				require.True(t, accessCookie.HttpOnly)

				var lastLogin any
				err = s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE login = $1", tt.login).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not stamped")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("valid refresh cookie issues a new pair", func() {
		t := s.T()

		reqBody := request.LoginRequest{Login: "ana.recepcao", Password: "password123"}
		loginRec := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusOK, loginRec.Code)
		cookies := httptest.ExtractCookies(loginRec)

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var refreshRes response.RefreshResponse
		err := httptest.DecodeResponseBody(t, w.Body, &refreshRes)
		require.NoError(t, err)
		require.NotEmpty(t, refreshRes.AccessToken)
	})

	s.Run("missing refresh cookie is refused", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage refresh cookie is refused", func() {
		t := s.T()

		cookies := []*http.Cookie{{Name: "refresh_token", Value: "nao-e-um-token"}}
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMeAndLogout() {
	s.Run("me returns the logged-in profile", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "joao.gerente", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me struct {
			Login string `json:"login"`
			Role  string `json:"role"`
		}
		err := httptest.DecodeResponseBody(t, w.Body, &me)
		require.NoError(t, err)
		require.Equal(t, "joao.gerente", me.Login)
		require.Equal(t, "gerente", me.Role)
	})

	s.Run("logout clears the token cookies", func() {
		t := s.T()

		loginRec := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Login: "ana.recepcao", Password: "password123"}, "")
		require.Equal(t, http.StatusOK, loginRec.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(loginRec))
	})

	s.Run("me without a token is refused", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestUserRegistrationRoles() {
	newUser := request.CreateUserRequest{
		Name:     "Novo Funcionário",
		Login:    "novo.funcionario",
		Password: "password123",
		Role:     "funcionario",
	}

	s.Run("admin can register users", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "clara.admin", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, newUser, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("gerente cannot register users", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "joao.gerente", "password123")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, newUser, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("duplicate login is refused", func() {
		t := s.T()

		token := authtest.LoginUser(t, s.Router, "clara.admin", "password123")
		dup := newUser
		dup.Login = "ana.recepcao"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usersURL, dup, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
