package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"todo/internal/config"
	"todo/internal/service"
)

// fakeAPI serves the handful of Google Tasks endpoints the client uses.
type fakeAPI struct {
	mu       sync.Mutex
	lists    []map[string]string
	inserted []map[string]any
	status   int
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": f.status, "message": "denied"},
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/users/@me/lists/@default"):
		json.NewEncoder(w).Encode(map[string]string{"id": "real-default", "title": "My Tasks"})
	case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/users/@me/lists"):
		json.NewEncoder(w).Encode(map[string]any{"items": f.lists})
	case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/tasks"):
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		body["_list"] = strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/tasks/v1/lists/"), "/tasks")
		f.inserted = append(f.inserted, body)
		json.NewEncoder(w).Encode(map[string]string{"id": "new"})
	default:
		http.NotFound(w, r)
	}
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c, err := NewWithHTTPClient(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return c
}

func TestClient_DefaultList(t *testing.T) {
	c := newTestClient(t, &fakeAPI{})

	list, err := c.DefaultList(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.ID != DefaultListID || list.Title != "My Tasks" || !list.IsDefault {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestClient_ResolveList(t *testing.T) {
	api := &fakeAPI{lists: []map[string]string{
		{"id": "l1", "title": "Chores"},
		{"id": "l2", "title": "Work"},
		{"id": "l3", "title": " work"},
	}}
	c := newTestClient(t, api)
	ctx := context.Background()

	list, err := c.ResolveList(ctx, "  chores ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.ID != "l1" {
		t.Errorf("expected l1, got %+v", list)
	}

	if _, err := c.ResolveList(ctx, "missing"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := c.ResolveList(ctx, "Work"); !errors.Is(err, service.ErrAmbiguous) {
		t.Errorf("expected ErrAmbiguous, got %v", err)
	}
}

func TestClient_CreateTask(t *testing.T) {
	api := &fakeAPI{}
	c := newTestClient(t, api)
	ctx := context.Background()

	if err := c.CreateTask(ctx, "l1", service.Task{Title: "open one"}); err != nil {
		t.Fatalf("create open: %v", err)
	}
	if err := c.CreateTask(ctx, "l1", service.Task{Title: "closed one", Completed: true}); err != nil {
		t.Fatalf("create completed: %v", err)
	}

	if len(api.inserted) != 2 {
		t.Fatalf("expected 2 inserts, got %d", len(api.inserted))
	}
	if api.inserted[0]["title"] != "open one" || api.inserted[0]["status"] != statusNeedsAction {
		t.Errorf("unexpected first insert: %v", api.inserted[0])
	}
	if api.inserted[1]["status"] != statusCompleted {
		t.Errorf("expected completed status, got %v", api.inserted[1])
	}
	if api.inserted[0]["_list"] != "l1" {
		t.Errorf("expected list l1, got %v", api.inserted[0]["_list"])
	}
}

func TestClient_AuthError(t *testing.T) {
	c := newTestClient(t, &fakeAPI{status: http.StatusUnauthorized})

	_, err := c.DefaultList(context.Background())
	if !errors.Is(err, service.ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}
}

func TestClient_Timeout(t *testing.T) {
	c := newTestClient(t, &fakeAPI{})

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := c.DefaultList(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded to survive wrapping, got %v", err)
	}
}

func TestWrapError(t *testing.T) {
	other := errors.New("boom")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded},
		{"unauthorized", &googleapi.Error{Code: http.StatusUnauthorized}, service.ErrAuth},
		{"forbidden", &googleapi.Error{Code: http.StatusForbidden}, service.ErrAuth},
		{"not found", &googleapi.Error{Code: http.StatusNotFound}, service.ErrNotFound},
		{"other", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapError(tt.in); !errors.Is(got, tt.want) {
				t.Errorf("wrapError(%v) = %v, want errors.Is %v", tt.in, got, tt.want)
			}
		})
	}
	if wrapError(nil) != nil {
		t.Error("expected nil for nil")
	}
	if got := wrapError(context.DeadlineExceeded); !strings.Contains(got.Error(), "request timed out") {
		t.Errorf("unexpected message %q", got)
	}
}

func TestNew_MissingCredentials(t *testing.T) {
	cfg := config.New(t.TempDir())

	_, err := New(context.Background(), cfg)
	if !errors.Is(err, service.ErrAuth) {
		t.Errorf("expected ErrAuth, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.TokenFile)
	token := &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}

	if err := SaveToken(path, token); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
	}

	got, err := LoadToken(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.AccessToken != "access" || got.RefreshToken != "refresh" {
		t.Errorf("unexpected token: %+v", got)
	}
}

func TestTokenValid_NoRefreshToken(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New(dir)
	oauthClient := `{"installed":{"client_id":"test","client_secret":"test","redirect_uris":["http://localhost"]}}`
	if err := os.WriteFile(cfg.OAuthClientPath(), []byte(oauthClient), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(cfg.TokenPath(), []byte(`{"access_token":"expired","token_type":"Bearer"}`), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if TokenValid(context.Background(), cfg) {
		t.Error("token without refresh token should be invalid")
	}
}
