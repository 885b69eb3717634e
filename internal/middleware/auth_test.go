package middleware

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fxledger/internal/auth"
	"fxledger/internal/database"
	"fxledger/internal/store"
)

func setupAuthMiddlewareDB(t *testing.T) (*sql.DB, *store.SessionStore, *store.UserStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, store.NewSessionStore(db), store.NewUserStore(db)
}

func TestRequireAuthNoHeader(t *testing.T) {
	_, ss, us := setupAuthMiddlewareDB(t)

	handler := RequireAuth(ss, us)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/records", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestRequireAuthUnknownToken(t *testing.T) {
	_, ss, us := setupAuthMiddlewareDB(t)

	handler := RequireAuth(ss, us)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/records", nil)
	req.Header.Set(sessionHeader, "bogus-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireAuthValidSession(t *testing.T) {
	_, ss, us := setupAuthMiddlewareDB(t)

	u, err := us.Create("alice", "pw1")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	sess, err := ss.Create(u.ID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	var gotAC auth.AuthContext
	handler := RequireAuth(ss, us)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ac, ok := auth.FromContext(r.Context())
		if !ok {
			t.Fatal("expected AuthContext in request context")
		}
		gotAC = ac
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/records", nil)
	req.Header.Set(sessionHeader, sess.Token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if gotAC.User == nil || gotAC.User.ID != u.ID {
		t.Errorf("context user = %+v, want id %q", gotAC.User, u.ID)
	}
	if gotAC.SessionToken != sess.Token {
		t.Errorf("context token = %q, want %q", gotAC.SessionToken, sess.Token)
	}
}

// The same token that authorized a request must be rejected once expired.
func TestRequireAuthExpiredSession(t *testing.T) {
	db, ss, us := setupAuthMiddlewareDB(t)

	u, _ := us.Create("alice", "pw1")
	sess, _ := ss.Create(u.ID)

	if _, err := db.Exec(
		`UPDATE sessions SET expires_at = ? WHERE token = ?`,
		time.Now().UTC().Add(-time.Minute), sess.Token,
	); err != nil {
		t.Fatalf("expire session: %v", err)
	}

	handler := RequireAuth(ss, us)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("should not reach handler")
	}))

	req := httptest.NewRequest("GET", "/records", nil)
	req.Header.Set(sessionHeader, sess.Token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
