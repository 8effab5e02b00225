package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(l *Limiter, keyFn KeyFunc) (*gin.Engine, *int) {
	calls := 0
	r := gin.New()
	r.POST("/submit", Middleware(l, keyFn), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, &calls
}

func post(r http.Handler, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMiddleware_AllowsThenRejectsSameClient(t *testing.T) {
	l := New(NewMemoryStore(), "submit", 1, 30*time.Second)
	r, calls := newEngine(l, nil)

	w1 := post(r, "10.0.0.1:1234", nil)
	assert.Equal(t, http.StatusOK, w1.Code)

	w2 := post(r, "10.0.0.1:5678", nil)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	assert.Equal(t, "30", w2.Header().Get("Retry-After"))
	assert.Contains(t, w2.Body.String(), "Too many requests")

	assert.Equal(t, 1, *calls)
}

func TestMiddleware_DifferentClientsPass(t *testing.T) {
	l := New(NewMemoryStore(), "submit", 1, time.Minute)
	r, _ := newEngine(l, nil)

	assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1", nil).Code)
	assert.Equal(t, http.StatusOK, post(r, "10.0.0.2:1", nil).Code)
}

func TestClientIPKey_PrefersHeader(t *testing.T) {
	l := New(NewMemoryStore(), "submit", 1, time.Minute)
	r, _ := newEngine(l, ClientIPKey("X-Client"))

	assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1", map[string]string{"X-Client": "a"}).Code)
	assert.Equal(t, http.StatusOK, post(r, "10.0.0.1:1", map[string]string{"X-Client": "b"}).Code)
	assert.Equal(t, http.StatusTooManyRequests, post(r, "10.0.0.9:1", map[string]string{"X-Client": " a "}).Code)
}

func TestClientIPKey_FallsBackToRemoteAddr(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "10.0.0.9:5555"

	assert.Equal(t, "10.0.0.9", ClientIPKey("")(c))
}

func TestClientIPKey_UnknownWhenNoAddress(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = ""

	assert.Equal(t, UnknownKey, ClientIPKey("")(c))
}
