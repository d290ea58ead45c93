package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	gatewayhttp "plazausers/internal/gateway/app/http"
	"plazausers/internal/gateway/app/dto"
	"plazausers/internal/gateway/config"
	"plazausers/internal/gateway/resilience"
	"plazausers/pkg/identity"
	"plazausers/pkg/token"
)

const testSecret = "gateway-test-secret"

type mockUsersService struct {
	mock.Mock
}

func (m *mockUsersService) CreateOwner(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *mockUsersService) CreateEmployee(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *mockUsersService) CreateCustomer(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *mockUsersService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *mockUsersService) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *mockUsersService) IsEmployeeOfRestaurant(ctx context.Context, userID, restaurantID int64) (bool, error) {
	args := m.Called(ctx, userID, restaurantID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUsersService) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type testGateway struct {
	app    *fiber.App
	users  *mockUsersService
	tokens *token.Service
}

func newTestGateway(t *testing.T, downstream ...config.DownstreamRoute) *testGateway {
	t.Helper()

	tokens, err := token.NewService(testSecret, time.Hour)
	require.NoError(t, err)

	routes := &config.RoutesConfig{
		Public: []string{
			"POST /api/v1/auth/login",
			"POST /api/v1/users/customer",
			"GET /api/v1/users/:id",
			"GET /health",
		},
	}
	public, err := routes.ParsePublic()
	require.NoError(t, err)

	users := new(mockUsersService)
	app := gatewayhttp.NewApp(&config.HTTPConfig{ReadTimeout: time.Second, WriteTimeout: time.Second})
	gatewayhttp.SetupRouter(app, gatewayhttp.RouterDeps{
		Users:         users,
		Authenticator: tokens,
		Public:        public,
		Downstream:    downstream,
		ProxyTimeout:  time.Second,
	})

	return &testGateway{app: app, users: users, tokens: tokens}
}

func (g *testGateway) issue(t *testing.T, id identity.Identity) string {
	t.Helper()
	tok, _, err := g.tokens.Issue(context.Background(), id)
	require.NoError(t, err)
	return tok
}

func (g *testGateway) do(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := g.app.Test(req, fiber.TestConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, body
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func message(t *testing.T, body []byte) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Message
}

var admin = identity.Identity{UserID: 1, Email: "admin@plaza.com", Role: identity.RoleAdmin}

func TestLogin(t *testing.T) {
	g := newTestGateway(t)

	t.Run("success", func(t *testing.T) {
		g.users.On("Login", mock.Anything, &dto.LoginRequest{Email: "admin@plaza.com", Password: "secret"}).
			Return(&dto.LoginResponse{Token: "jwt", UserID: 1, Role: "ADMIN", ExpiresIn: 86400000}, nil).Once()

		resp, body := g.do(t, jsonRequest(http.MethodPost, "/api/v1/auth/login",
			`{"email":"admin@plaza.com","password":"secret"}`))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"token":"jwt","userId":1,"role":"ADMIN","expiresIn":86400000}`, string(body))
		assert.NotEmpty(t, resp.Header.Get(identity.HeaderRequestID))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		g.users.On("Login", mock.Anything, &dto.LoginRequest{Email: "admin@plaza.com", Password: "wrong"}).
			Return(nil, status.Error(codes.Unauthenticated, "Invalid credentials")).Once()

		resp, body := g.do(t, jsonRequest(http.MethodPost, "/api/v1/auth/login",
			`{"email":"admin@plaza.com","password":"wrong"}`))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid credentials", message(t, body))
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, body := g.do(t, jsonRequest(http.MethodPost, "/api/v1/auth/login", `{`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid request body", message(t, body))
	})
}

func TestCreateOwner(t *testing.T) {
	g := newTestGateway(t)
	body := `{"firstName":"Ana","lastName":"Silva","document":"123","phone":"+5511","birthDate":"1990-01-01","email":"ana@plaza.com","password":"p"}`

	t.Run("error - no token", func(t *testing.T) {
		resp, respBody := g.do(t, jsonRequest(http.MethodPost, "/api/v1/users/owner", body))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Authentication required", message(t, respBody))
		g.users.AssertNotCalled(t, "CreateOwner", mock.Anything, mock.Anything)
	})

	t.Run("error - invalid token", func(t *testing.T) {
		req := jsonRequest(http.MethodPost, "/api/v1/users/owner", body)
		req.Header.Set("Authorization", "Bearer not-a-token")

		resp, respBody := g.do(t, req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Invalid or expired token", message(t, respBody))
	})

	t.Run("admin token is forwarded", func(t *testing.T) {
		tok := g.issue(t, admin)

		g.users.On("CreateOwner", mock.MatchedBy(func(ctx context.Context) bool {
			forwarded, ok := identity.TokenFromContext(ctx)
			id, hasID := identity.FromContext(ctx)
			return ok && forwarded == tok && hasID && id.Role == identity.RoleAdmin
		}), mock.Anything).
			Return(&dto.UserResponse{ID: 2, Email: "ana@plaza.com", Role: "OWNER", Active: true}, nil).Once()

		req := jsonRequest(http.MethodPost, "/api/v1/users/owner", body)
		req.Header.Set("Authorization", "Bearer "+tok)

		resp, respBody := g.do(t, req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.JSONEq(t, `{"id":2,"firstName":"","lastName":"","email":"ana@plaza.com","phone":"","role":"OWNER","active":true}`, string(respBody))
	})

	t.Run("error - insufficient permissions", func(t *testing.T) {
		tok := g.issue(t, identity.Identity{UserID: 9, Email: "c@plaza.com", Role: identity.RoleCustomer})

		g.users.On("CreateOwner", mock.Anything, mock.Anything).
			Return(nil, status.Error(codes.PermissionDenied, "Insufficient permissions")).Once()

		req := jsonRequest(http.MethodPost, "/api/v1/users/owner", body)
		req.Header.Set("Authorization", "Bearer "+tok)

		resp, respBody := g.do(t, req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Insufficient permissions", message(t, respBody))
	})
}

func TestCreateCustomerErrors(t *testing.T) {
	g := newTestGateway(t)

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"conflict", status.Error(codes.AlreadyExists, "Email already registered"), http.StatusConflict, "Email already registered"},
		{"invalid input", status.Error(codes.InvalidArgument, "User must be an adult"), http.StatusBadRequest, "User must be an adult"},
		{"internal", status.Error(codes.Internal, "pq: connection reset"), http.StatusInternalServerError, "Internal server error"},
		{"unavailable", status.Error(codes.Unavailable, "connection refused"), http.StatusServiceUnavailable, "Service temporarily unavailable"},
		{"circuit open", resilience.ErrCircuitOpen, http.StatusServiceUnavailable, "Service temporarily unavailable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g.users.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			resp, body := g.do(t, jsonRequest(http.MethodPost, "/api/v1/users/customer", `{"email":"c@plaza.com"}`))

			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.message, message(t, body))
		})
	}
}

func TestGetUser(t *testing.T) {
	g := newTestGateway(t)

	t.Run("public", func(t *testing.T) {
		g.users.On("GetUser", mock.Anything, int64(1)).
			Return(&dto.UserResponse{ID: 1, Email: "admin@plaza.com", Role: "ADMIN", Active: true}, nil).Once()

		resp, body := g.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/users/1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), `"email":"admin@plaza.com"`)
		assert.NotContains(t, string(body), "password")
	})

	t.Run("not found", func(t *testing.T) {
		g.users.On("GetUser", mock.Anything, int64(404)).
			Return(nil, status.Error(codes.NotFound, "User not found")).Once()

		resp, body := g.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/users/404", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "User not found", message(t, body))
	})

	t.Run("bad id", func(t *testing.T) {
		resp, body := g.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/users/abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid user id", message(t, body))
	})
}

func TestIsEmployeeOfRestaurant(t *testing.T) {
	g := newTestGateway(t)
	path := "/api/v1/users/5/restaurant/7/is-employee"

	t.Run("requires token", func(t *testing.T) {
		resp, _ := g.do(t, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("with token", func(t *testing.T) {
		g.users.On("IsEmployeeOfRestaurant", mock.Anything, int64(5), int64(7)).Return(true, nil).Once()

		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+g.issue(t, admin))

		resp, body := g.do(t, req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"isEmployee":true}`, string(body))
	})
}

func TestHealth(t *testing.T) {
	g := newTestGateway(t)

	g.users.On("Health", mock.Anything).Return(nil).Once()
	resp, body := g.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"UP","usersService":"UP"}`, string(body))

	g.users.On("Health", mock.Anything).Return(status.Error(codes.Unavailable, "down")).Once()
	resp, body = g.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.JSONEq(t, `{"status":"UP","usersService":"DOWN"}`, string(body))
}

func TestProxyInjectsIdentityHeaders(t *testing.T) {
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"path":      r.URL.Path,
			"query":     r.URL.RawQuery,
			"userId":    r.Header.Get(identity.HeaderUserID),
			"email":     r.Header.Get(identity.HeaderUserEmail),
			"role":      r.Header.Get(identity.HeaderUserRole),
			"requestId": r.Header.Get(identity.HeaderRequestID),
		})
	}))
	t.Cleanup(downstream.Close)

	g := newTestGateway(t, config.DownstreamRoute{Prefix: "/api/v1/restaurants", Target: downstream.URL})

	t.Run("spoofed headers are dropped without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/3", nil)
		req.Header.Set(identity.HeaderUserID, "1")
		req.Header.Set(identity.HeaderUserRole, "ADMIN")

		resp, body := g.do(t, req)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Authentication required", message(t, body))
	})

	t.Run("headers come from the token", func(t *testing.T) {
		owner := identity.Identity{UserID: 2, Email: "owner@plaza.com", Role: identity.RoleOwner}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/3?page=2", nil)
		req.Header.Set("Authorization", "Bearer "+g.issue(t, owner))
		req.Header.Set(identity.HeaderUserRole, "ADMIN")
		req.Header.Set(identity.HeaderRequestID, "req-7")

		resp, body := g.do(t, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var echoed map[string]string
		require.NoError(t, json.Unmarshal(body, &echoed))
		assert.Equal(t, "/api/v1/restaurants/3", echoed["path"])
		assert.Equal(t, "page=2", echoed["query"])
		assert.Equal(t, "2", echoed["userId"])
		assert.Equal(t, "owner@plaza.com", echoed["email"])
		assert.Equal(t, "OWNER", echoed["role"])
		assert.Equal(t, "req-7", echoed["requestId"])
		assert.Equal(t, "req-7", resp.Header.Get(identity.HeaderRequestID))
	})
}

func TestRouteNotFound(t *testing.T) {
	g := newTestGateway(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	req.Header.Set("Authorization", "Bearer "+g.issue(t, admin))

	resp, body := g.do(t, req)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Route not found", message(t, body))
}
