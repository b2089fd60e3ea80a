package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"devconnect/internal/config"
	"devconnect/internal/core/user"
	"devconnect/internal/identity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.Logger = zap.NewNop()
	os.Exit(m.Run())
}

// setupHealthyDB installs a sqlmock-backed handle whose pings succeed.
func setupHealthyDB(t *testing.T) {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	config.DB = gdb
	t.Cleanup(func() {
		config.DB = nil
		_ = db.Close()
	})
}

type stubVerifier struct {
	claims *identity.Claims
	err    error
}

func (s *stubVerifier) Verify(ctx context.Context, token string) (*identity.Claims, error) {
	return s.claims, s.err
}

type stubResolver struct {
	u         *user.User
	err       error
	gotClaims *identity.Claims
}

func (s *stubResolver) ResolveIdentity(ctx context.Context, claims *identity.Claims) (*user.User, error) {
	s.gotClaims = claims
	return s.u, s.err
}

type boundIdentity struct {
	called  bool
	subject string
	userID  uint
	claims  bool
}

func protectedRouter(verifier identity.Verifier, resolver IdentityResolver) (*gin.Engine, *boundIdentity) {
	r := gin.New()
	bound := &boundIdentity{}
	r.GET("/protected", AuthBinding(verifier, resolver), func(c *gin.Context) {
		bound.called = true
		bound.subject = c.GetString(ContextSubjectID)
		if v, ok := c.Get(ContextUserID); ok {
			bound.userID, _ = v.(uint)
		}
		_, bound.claims = c.Get(ContextClaims)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, bound
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthBinding(t *testing.T) {
	validClaims := &identity.Claims{Subject: "subject-1", Email: "dev@example.com"}
	localUser := &user.User{ID: 42, SubjectID: "subject-1", Email: "dev@example.com"}

	t.Run("unavailable database answers 503 before anything else", func(t *testing.T) {
		config.DB = nil
		verifier := &stubVerifier{claims: validClaims}
		resolver := &stubResolver{u: localUser}
		r, bound := protectedRouter(verifier, resolver)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "database unavailable", errorBody(t, w))
		assert.False(t, bound.called)
		assert.Nil(t, resolver.gotClaims)
	})

	tests := []struct {
		name       string
		authHeader string
		verifier   identity.Verifier
		resolver   *stubResolver
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing authorization header",
			authHeader: "",
			verifier:   &stubVerifier{claims: validClaims},
			resolver:   &stubResolver{u: localUser},
			wantStatus: http.StatusUnauthorized,
			wantError:  "missing bearer token",
		},
		{
			name:       "non-bearer authorization header",
			authHeader: "Basic Zm9vOmJhcg==",
			verifier:   &stubVerifier{claims: validClaims},
			resolver:   &stubResolver{u: localUser},
			wantStatus: http.StatusUnauthorized,
			wantError:  "missing bearer token",
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer   ",
			verifier:   &stubVerifier{claims: validClaims},
			resolver:   &stubResolver{u: localUser},
			wantStatus: http.StatusUnauthorized,
			wantError:  "missing bearer token",
		},
		{
			name:       "verifier not configured",
			authHeader: "Bearer token",
			verifier:   nil,
			resolver:   &stubResolver{u: localUser},
			wantStatus: http.StatusInternalServerError,
			wantError:  "identity verifier not configured",
		},
		{
			name:       "expired token",
			authHeader: "Bearer token",
			verifier:   &stubVerifier{err: identity.ErrTokenExpired},
			resolver:   &stubResolver{u: localUser},
			wantStatus: http.StatusUnauthorized,
			wantError:  "token expired",
		},
		{
			name:       "rejected token",
			authHeader: "Bearer token",
			verifier:   &stubVerifier{err: identity.ErrTokenInvalid},
			resolver:   &stubResolver{u: localUser},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid token",
		},
		{
			name:       "verified token without email claim",
			authHeader: "Bearer token",
			verifier:   &stubVerifier{claims: &identity.Claims{Subject: "subject-1"}},
			resolver:   &stubResolver{u: localUser},
			wantStatus: http.StatusForbidden,
			wantError:  "email claim missing",
		},
		{
			name:       "identity resolution failure",
			authHeader: "Bearer token",
			verifier:   &stubVerifier{claims: validClaims},
			resolver:   &stubResolver{err: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
			wantError:  "authentication failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHealthyDB(t)
			r, bound := protectedRouter(tt.verifier, tt.resolver)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, errorBody(t, w))
			assert.False(t, bound.called)
		})
	}

	t.Run("valid token binds the identity context", func(t *testing.T) {
		setupHealthyDB(t)
		verifier := &stubVerifier{claims: validClaims}
		resolver := &stubResolver{u: localUser}
		r, bound := protectedRouter(verifier, resolver)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, bound.called)
		assert.Equal(t, "subject-1", bound.subject)
		assert.Equal(t, uint(42), bound.userID)
		assert.True(t, bound.claims)
		assert.Equal(t, validClaims, resolver.gotClaims)
	})
}
