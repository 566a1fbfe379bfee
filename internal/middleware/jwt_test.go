package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinebook/movie-show-booking/internal/auth"
	"github.com/cinebook/movie-show-booking/internal/utils"
)

const testSecret = "test-secret"

func callProtected(t *testing.T, header string, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, auth.Actor) {
	t.Helper()
	e := echo.New()

	var seen auth.Actor
	h := func(c echo.Context) error {
		seen, _ = auth.ActorFrom(c.Request().Context())
		return c.NoContent(http.StatusOK)
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/shows", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec, seen
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "pvr-ops", auth.RoleTheatreOwner, 7, 5)
	require.NoError(t, err)

	rec, actor := callProtected(t, "Bearer "+tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pvr-ops", actor.Subject)
	assert.Equal(t, auth.RoleTheatreOwner, actor.Role)
	assert.Equal(t, uint64(7), actor.PartnerID)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := callProtected(t, "", JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", "x", auth.RoleAdmin, 0, 5)
	require.NoError(t, err)

	rec, _ := callProtected(t, "Bearer "+tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "x", auth.RoleAdmin, 0, -5)
	require.NoError(t, err)

	rec, _ := callProtected(t, "Bearer "+tok.Token, JWTAuth(testSecret))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	adminTok, err := utils.NewAccessToken(testSecret, "root", auth.RoleAdmin, 0, 5)
	require.NoError(t, err)
	customerTok, err := utils.NewAccessToken(testSecret, "guest", "CUSTOMER", 0, 5)
	require.NoError(t, err)

	mw := []echo.MiddlewareFunc{JWTAuth(testSecret), RequireRole(auth.RoleTheatreOwner, auth.RoleAdmin)}

	rec, _ := callProtected(t, "Bearer "+adminTok.Token, mw...)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = callProtected(t, "Bearer "+customerTok.Token, mw...)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
