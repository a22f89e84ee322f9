package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"

	"aradamart/internal/catalog"
	"aradamart/internal/config"
	"aradamart/internal/http/handlers"
	"aradamart/internal/store"
	"aradamart/web"
)

const testSecret = "test-secret"

type logEntry struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	UserID string         `json:"user_id"`
	Err    string         `json:"err"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

// captureLogs swaps the standard logger output for the duration of fn and
// returns the JSON entries written.
func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findAction(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}

// upstreamProducts is what the fake product service serves.
const upstreamProducts = `{"products":[
 {"id":1,"title":"iPhone 9","price":549,"category":"smartphones","thumbnail":"t1"},
 {"id":2,"title":"iPhone X","price":899,"category":"smartphones","thumbnail":"t2"},
 {"id":3,"title":"Samsung Universe 9","price":1249,"category":"smartphones","thumbnail":"t3"},
 {"id":4,"title":"MacBook Pro","price":1749,"category":"laptops","thumbnail":"t4"},
 {"id":5,"title":"Essence Mascara","price":9.99,"category":"beauty","thumbnail":"t5"}
],"total":5,"skip":0,"limit":30}`

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, upstreamProducts)
	})
	mux.HandleFunc("GET /products/categories", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"slug":"beauty","name":"Beauty"},{"slug":"laptops","name":"Laptops"},{"slug":"smartphones","name":"Smartphones"}]`)
	})
	mux.HandleFunc("GET /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "77" {
			http.Error(w, `{"message":"Product not found"}`, http.StatusNotFound)
			return
		}
		io.WriteString(w, `{"id":77,"title":"Rare Lamp","price":15,"category":"home-decoration"}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newApp() *fiber.App {
	engine := html.NewFileSystem(http.FS(web.TemplatesFS()), ".html")
	app := fiber.New(fiber.Config{Views: engine, ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())
	return app
}

type testEnv struct {
	app    *fiber.App
	deps   *handlers.Deps
	stores handlers.Stores
}

func newEnv(t *testing.T, upstreamURL string) *testEnv {
	t.Helper()
	seed, err := store.SeedAccounts()
	require.NoError(t, err)
	st := handlers.Stores{
		Inventory: store.NewInventory(store.SeedInventory()...),
		Accounts:  store.NewAccounts(seed...),
		Favorites: store.NewFavorites(),
		Activity:  store.NewActivityLog(100),
	}
	cfg := config.Config{JWTSecret: testSecret, Catalog: config.CatalogConfig{BaseURL: upstreamURL, Timeout: 2 * time.Second, PageSize: 2}}
	deps := handlers.NewDeps(cfg, catalog.NewClient(upstreamURL, 2*time.Second), st, nil)

	app := newApp()
	deps.Routes(app)
	return &testEnv{app: app, deps: deps, stores: st}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	resp := e.do(t, "POST", "/api/v1/auth/login", map[string]string{"email": email, "password": password}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
