package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"portfolioapi/internal/auth"
)

const (
	testIssuer     = "https://idp.example.com/"
	testAudience   = "https://api.example.com"
	testKid        = "test-key-1"
	testPermission = "admin:full"
)

type testIdentityProvider struct {
	key    *rsa.PrivateKey
	server *httptest.Server
}

// newTestIdentityProvider stands in for the external OIDC provider: it owns a
// signing key and serves the matching JWKS document.
func newTestIdentityProvider(t *testing.T) *testIdentityProvider {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	jwks := auth.JWKS{Keys: []auth.JSONWebKey{{
		Kid: testKid,
		Kty: "RSA",
		Alg: "RS256",
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString([]byte{0x01, 0x00, 0x01}),
	}}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jwks)
	}))
	t.Cleanup(server.Close)

	return &testIdentityProvider{key: key, server: server}
}

func (p *testIdentityProvider) issueToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["iss"]; !ok {
		claims["iss"] = testIssuer
	}
	if _, ok := claims["aud"]; !ok {
		claims["aud"] = testAudience
	}
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKid
	signed, err := token.SignedString(p.key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newProtectedRouter(idp *testIdentityProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	verifier := auth.NewVerifier(auth.NewProvider(idp.server.URL), testIssuer, testAudience)

	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(RequireAuth(verifier), RequireAdmin(testPermission))
	admin.GET("/skills", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func doAuthed(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/skills", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_NoToken(t *testing.T) {
	router := newProtectedRouter(newTestIdentityProvider(t))

	if rec := doAuthed(router, ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	router := newProtectedRouter(newTestIdentityProvider(t))

	if rec := doAuthed(router, "not-a-jwt"); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	idp := newTestIdentityProvider(t)
	router := newProtectedRouter(idp)

	token := idp.issueToken(t, jwt.MapClaims{
		"exp":         time.Now().Add(-time.Hour).Unix(),
		"permissions": []string{testPermission},
	})
	if rec := doAuthed(router, token); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAuth_WrongAudience(t *testing.T) {
	idp := newTestIdentityProvider(t)
	router := newProtectedRouter(idp)

	token := idp.issueToken(t, jwt.MapClaims{
		"aud":         "https://other.example.com",
		"permissions": []string{testPermission},
	})
	if rec := doAuthed(router, token); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestRequireAdmin_MissingPermission(t *testing.T) {
	idp := newTestIdentityProvider(t)
	router := newProtectedRouter(idp)

	token := idp.issueToken(t, jwt.MapClaims{
		"permissions": []string{"read:public"},
		"scope":       "openid profile",
	})
	if rec := doAuthed(router, token); rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAdmin_PermissionListEntry(t *testing.T) {
	idp := newTestIdentityProvider(t)
	router := newProtectedRouter(idp)

	token := idp.issueToken(t, jwt.MapClaims{
		"permissions": []string{testPermission},
	})
	if rec := doAuthed(router, token); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin_ScopeToken(t *testing.T) {
	idp := newTestIdentityProvider(t)
	router := newProtectedRouter(idp)

	token := idp.issueToken(t, jwt.MapClaims{
		"scope": "openid " + testPermission + " profile",
	})
	if rec := doAuthed(router, token); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
