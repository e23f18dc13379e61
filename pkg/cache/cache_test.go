package cache

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_Middleware(t *testing.T) {
	store := New()
	calls := 0
	handler := store.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("query") == "broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"totalPages":2}`))
	}))

	serve := func(method, url string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(method, url, nil))
		return w
	}

	first := serve(http.MethodGet, "/api/dashboard/invoices/pages?query=lee")
	second := serve(http.MethodGet, "/api/dashboard/invoices/pages?query=lee")
	assert.Equal(t, 1, calls)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))

	serve(http.MethodGet, "/api/dashboard/invoices/pages?query=amy")
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, store.Len())

	serve(http.MethodGet, "/api/dashboard/invoices/pages?query=broken")
	serve(http.MethodGet, "/api/dashboard/invoices/pages?query=broken")
	assert.Equal(t, 4, calls, "errors are not cached")

	serve(http.MethodPost, "/api/dashboard/invoices/pages?query=lee")
	assert.Equal(t, 5, calls, "non-GET requests bypass the cache")
}

func TestStore_RevalidatePath(t *testing.T) {
	store := New()
	handler := store.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	for _, url := range []string{"/api/dashboard/invoices?page=1", "/api/dashboard/invoices?page=2", "/api/dashboard/customers"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, url, nil))
	}
	assert.Equal(t, 3, store.Len())

	store.RevalidatePath("/api/dashboard/invoices")
	assert.Equal(t, 1, store.Len())

	store.RevalidatePath("/api/dashboard")
	assert.Equal(t, 0, store.Len())
}

func TestStore_RevalidateDuringRead(t *testing.T) {
	store := New()
	var version atomic.Int64
	version.Store(1)

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	handler := store.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := version.Load()
		started <- struct{}{}
		<-release
		_, _ = w.Write([]byte(strconv.FormatInt(v, 10)))
	}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/dashboard/cards", nil))
	}()

	<-started
	version.Store(2)
	store.RevalidatePath("/api/dashboard")
	close(release)
	<-done

	assert.Equal(t, 0, store.Len(), "a response read before the write is not cached")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/cards", nil))
	assert.Equal(t, "2", w.Body.String())
	assert.Empty(t, w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/cards", nil))
	assert.Equal(t, "2", w.Body.String())
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
}
