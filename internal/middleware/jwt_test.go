package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/craviont/craviont-site-api/internal/middleware"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/ops", middleware.JWTProtected(testSecret), middleware.RequireRole(middleware.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(middleware.LocalOperatorID).(string))
	})
	return app
}

func TestJWTProtectedAcceptsAdminToken(t *testing.T) {
	app := newProtectedApp()
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":  "ops@craviont.com",
		"role": "Admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/ops", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTProtectedRejectsInvalidTokens(t *testing.T) {
	app := newProtectedApp()

	cases := map[string]struct {
		header string
		status int
	}{
		"missing header": {header: "", status: fiber.StatusUnauthorized},
		"not bearer":     {header: "Basic abc", status: fiber.StatusUnauthorized},
		"wrong secret": {
			header: "Bearer " + signToken(t, "other", jwt.MapClaims{"sub": "x", "role": "admin"}),
			status: fiber.StatusUnauthorized,
		},
		"expired": {
			header: "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "x", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}),
			status: fiber.StatusUnauthorized,
		},
		"non admin": {
			header: "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "x", "roles": []string{"editor"}}),
			status: fiber.StatusForbidden,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ops", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestJWTProtectedRequiresSecret(t *testing.T) {
	app := fiber.New()
	app.Get("/ops", middleware.JWTProtected(""), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ops", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
