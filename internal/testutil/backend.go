package testutil

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/wardrobe/internal/model"
)

// Session cookie values issued by the fake backend.
const (
	SessionCookie = "sessionid"
	CSRFCookie    = "csrftoken"
	SessionValue  = "fake-session"
	CSRFValue     = "fake-csrf"
)

// RecordedRequest captures what the fake backend received.
type RecordedRequest struct {
	Header http.Header
	Method string
	Path   string
	Body   []byte
}

// Backend is an in-memory wardrobe backend served over httptest.
type Backend struct {
	Server *httptest.Server

	users   map[string]string
	profile *model.UserProfile
	items   []model.WardrobeItem
	results []model.RecommendationResult
	outfits []model.Outfit
	// failures maps "METHOD path" to a status the next calls answer with.
	failures map[string]int
	requests []RecordedRequest
	nextID   int64

	// session is the sessionid value currently accepted; rotateTo replaces it
	// on the next authenticated response.
	session    string
	rotateTo   string
	sessionTTL time.Duration

	mu sync.Mutex
}

// NewBackend starts a fake backend that knows one user and closes it when the test ends.
func NewBackend(t *testing.T, username, password string) *Backend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := &Backend{
		users:    map[string]string{username: password},
		profile:  &model.UserProfile{Username: username},
		failures:   make(map[string]int),
		nextID:     100,
		session:    SessionValue,
		sessionTTL: time.Hour,
	}

	b.Server = httptest.NewServer(b.router())
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the backend base URL.
func (b *Backend) URL() string {
	return b.Server.URL
}

// SetProfile replaces the signed-in user's profile.
func (b *Backend) SetProfile(p *model.UserProfile) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profile = p
}

// SetItems replaces the wardrobe.
func (b *Backend) SetItems(items []model.WardrobeItem) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append([]model.WardrobeItem(nil), items...)
}

// Items returns the current wardrobe.
func (b *Backend) Items() []model.WardrobeItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.WardrobeItem(nil), b.items...)
}

// SetResults sets what POST /api/recommendations returns.
func (b *Backend) SetResults(results []model.RecommendationResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.results = results
}

// SetOutfits sets what GET /api/recommendations returns.
func (b *Backend) SetOutfits(outfits []model.Outfit) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.outfits = outfits
}

// SetSessionTTL sets the lifetime of session cookies issued from now on.
func (b *Backend) SetSessionTTL(ttl time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessionTTL = ttl
}

// RotateSession makes the next authenticated response issue value as the session cookie.
// The old value stops working once it has been replaced.
func (b *Backend) RotateSession(value string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rotateTo = value
}

// Session returns the sessionid value the backend currently accepts.
func (b *Backend) Session() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session
}

// Fail makes every call to method+path answer with status until Recover is called.
func (b *Backend) Fail(method, path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = status
}

// Recover clears all injected failures.
func (b *Backend) Recover() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = make(map[string]int)
}

// Requests returns every request received so far.
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]RecordedRequest(nil), b.requests...)
}

// LastRequest returns the most recent request to method+path, or nil.
func (b *Backend) LastRequest(method, path string) *RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.requests) - 1; i >= 0; i-- {
		if b.requests[i].Method == method && b.requests[i].Path == path {
			r := b.requests[i]
			return &r
		}
	}
	return nil
}

// CountRequests returns how many times method+path was called.
func (b *Backend) CountRequests(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (b *Backend) router() *gin.Engine {
	r := gin.New()
	r.Use(b.record(), b.inject())

	r.POST("/api/auth/login", b.login)
	r.POST("/api/auth/logout", b.logout)

	authed := r.Group("/api", b.requireSession())
	authed.GET("/user", b.currentUser)
	authed.POST("/user/update", b.requireCSRF(), b.updateUser)
	authed.GET("/wardrobe", b.listWardrobe)
	authed.POST("/wardrobe/upload", b.requireCSRF(), b.upload)
	authed.DELETE("/wardrobe/:id", b.requireCSRF(), b.deleteItem)
	authed.POST("/recommendations", b.requireCSRF(), b.generate)
	authed.GET("/recommendations", b.listOutfits)

	return r
}

func (b *Backend) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		b.mu.Lock()
		b.requests = append(b.requests, RecordedRequest{
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Header: c.Request.Header.Clone(),
			Body:   body,
		})
		b.mu.Unlock()
		c.Next()
	}
}

func (b *Backend) inject() gin.HandlerFunc {
	return func(c *gin.Context) {
		b.mu.Lock()
		status, ok := b.failures[c.Request.Method+" "+c.Request.URL.Path]
		b.mu.Unlock()
		if !ok {
			c.Next()
			return
		}
		fail(c, status, "", fmt.Sprintf("injected failure %d", status))
	}
}

func (b *Backend) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		b.mu.Lock()
		current := b.session
		b.mu.Unlock()

		if v, err := c.Cookie(SessionCookie); err != nil || v != current {
			fail(c, http.StatusUnauthorized, "AUTH_REQUIRED", "Please log in first")
			return
		}

		b.mu.Lock()
		if b.rotateTo != "" {
			b.session, b.rotateTo = b.rotateTo, ""
			c.SetCookie(SessionCookie, b.session, int(b.sessionTTL.Seconds()), "/", "", false, true)
		}
		b.mu.Unlock()
		c.Next()
	}
}

func (b *Backend) requireCSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-CSRFToken") != CSRFValue {
			fail(c, http.StatusForbidden, "CSRF_FAILED", "CSRF token missing or incorrect")
			return
		}
		c.Next()
	}
}

func fail(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "code": code, "message": message})
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (b *Backend) login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid body")
		return
	}

	b.mu.Lock()
	password, known := b.users[req.Username]
	profile := *b.profile
	session, ttl := b.session, int(b.sessionTTL.Seconds())
	b.mu.Unlock()

	if !known || password != req.Password {
		fail(c, http.StatusOK, "INVALID_CREDENTIALS", "Wrong username or password")
		return
	}

	c.SetCookie(SessionCookie, session, ttl, "/", "", false, true)
	c.SetCookie(CSRFCookie, CSRFValue, ttl, "/", "", false, false)
	ok(c, gin.H{"user": profile})
}

func (b *Backend) logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	ok(c, nil)
}

func (b *Backend) currentUser(c *gin.Context) {
	b.mu.Lock()
	profile := *b.profile
	b.mu.Unlock()
	ok(c, gin.H{"user": profile})
}

func (b *Backend) updateUser(c *gin.Context) {
	var update model.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid body")
		return
	}

	b.mu.Lock()
	updated := update.Apply(*b.profile)
	b.profile = &updated
	b.mu.Unlock()

	ok(c, gin.H{"user": updated})
}

func (b *Backend) listWardrobe(c *gin.Context) {
	ok(c, gin.H{"items": b.Items()})
}

func (b *Backend) upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "NO_IMAGE", "image is required")
		return
	}

	b.mu.Lock()
	item := model.WardrobeItem{
		ID:            b.nextID,
		Name:          c.PostForm("name"),
		Category:      "tshirt",
		CategoryGroup: "tops",
		MainColorHex:  "#FFFFFF",
		Palette:       []model.Swatch{{Hex: "#FFFFFF", Ratio: 0.8}, {Hex: "#000000", Ratio: 0.2}},
		ImageURL:      "/media/" + file.Filename,
	}
	b.nextID++
	b.items = append(b.items, item)
	b.mu.Unlock()

	ok(c, gin.H{
		"item": item,
		"classification": model.ItemClassification{
			Category:   "tshirt",
			Confidence: 0.934,
			Method:     model.ClassificationMethodDeepLearning,
		},
	})
}

func (b *Backend) deleteItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "BAD_REQUEST", "invalid id")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, item := range b.items {
		if item.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
	}
	fail(c, http.StatusNotFound, "NOT_FOUND", "item not found")
}

func (b *Backend) generate(c *gin.Context) {
	b.mu.Lock()
	results := b.results
	b.mu.Unlock()
	ok(c, gin.H{"results": results})
}

func (b *Backend) listOutfits(c *gin.Context) {
	b.mu.Lock()
	outfits := b.outfits
	b.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"success": true, "recommendations": outfits})
}
