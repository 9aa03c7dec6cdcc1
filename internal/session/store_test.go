package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"

	"github.com/czarbitoon/smch-mobile-app-sub000/internal/client"
	"github.com/czarbitoon/smch-mobile-app-sub000/internal/router"
)

func freshConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	viper.SetConfigFile(filepath.Join(t.TempDir(), "smch-cli.yaml"))
}

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func TestStoreRoundTrip(t *testing.T) {
	freshConfig(t)
	st := NewStore()

	if st.Get().Authenticated() {
		t.Fatalf("fresh store must be unauthenticated")
	}

	err := st.Set(Partial{
		Token:  str("opaque-token-1"),
		Role:   str("staff"),
		UserID: num(42),
		Name:   str("Ada"),
		Email:  str("ada@smch.local"),
	})
	if err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got := st.Get()
	if !got.Authenticated() || got.Role != "staff" || got.UserID != 42 || got.Name != "Ada" {
		t.Fatalf("round trip lost fields: %+v", got)
	}

	// Partial update leaves other fields alone.
	if err := st.Set(Partial{Name: str("Ada L.")}); err != nil {
		t.Fatalf("partial set failed: %v", err)
	}
	got = st.Get()
	if got.Name != "Ada L." || got.Token != "opaque-token-1" || got.Role != "staff" {
		t.Fatalf("partial update clobbered fields: %+v", got)
	}
}

func TestClearRemovesTokenAndRole(t *testing.T) {
	freshConfig(t)
	st := NewStore()

	if err := st.Set(Partial{Token: str("tok"), Role: str("admin")}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := st.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	got := st.Get()
	if got.Authenticated() || got.Role != "" {
		t.Fatalf("clear left auth state behind: %+v", got)
	}
	if router.Resolve(got.Role) != router.UnauthenticatedRedirect {
		t.Fatalf("cleared session must route to login")
	}
}

func TestExpiredJWTTreatedAsAbsent(t *testing.T) {
	freshConfig(t)
	st := NewStore()

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}

	if err := st.Set(Partial{Token: &expired, Role: str("user")}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if st.Get().Authenticated() {
		t.Fatalf("expired JWT must read as unauthenticated")
	}

	// A live JWT still counts.
	live, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	if err := st.Set(Partial{Token: &live}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !st.Get().Authenticated() {
		t.Fatalf("unexpired JWT must read as authenticated")
	}

	// Opaque tokens have no local expiry; the server decides via 401.
	if err := st.Set(Partial{Token: str("12|sanctum-style-opaque")}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if !st.Get().Authenticated() {
		t.Fatalf("opaque token must read as authenticated")
	}
}

func TestInvalidateOn401(t *testing.T) {
	freshConfig(t)
	st := NewStore()
	if err := st.Set(Partial{Token: str("stale"), Role: str("staff")}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	api := client.New(srv.URL, "stale")
	_, err := api.ListDevices(context.Background(), client.DeviceFilter{})
	if err == nil {
		t.Fatalf("expected an error from the 401 server")
	}

	if !Invalidate(st, err) {
		t.Fatalf("401 must invalidate the session")
	}
	got := st.Get()
	if got.Token != "" {
		t.Fatalf("token must be cleared after 401")
	}
	if router.Resolve(got.Role) != router.UnauthenticatedRedirect {
		t.Fatalf("navigation target after 401 must be the login screen")
	}

	// Other failures leave the session alone.
	if Invalidate(st, context.DeadlineExceeded) {
		t.Fatalf("non-auth errors must not invalidate")
	}
}
