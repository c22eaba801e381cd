package webview

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/wardrobe/internal/api"
	"github.com/Veraticus/wardrobe/internal/certs"
	"github.com/Veraticus/wardrobe/internal/model"
	"github.com/Veraticus/wardrobe/internal/page"
	"github.com/Veraticus/wardrobe/internal/service"
	"github.com/Veraticus/wardrobe/internal/style"
	"github.com/Veraticus/wardrobe/internal/testutil"
	"github.com/Veraticus/wardrobe/internal/viewmodel"
)

var quietLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestRouter(t *testing.T, signedIn bool) (*testutil.Backend, *page.Controller, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := testutil.NewBackend(t, "mia", "secret")
	backend.SetProfile(testutil.Profile("mia"))
	items := testutil.NewItemBuilder().WithCapsule().Build()
	backend.SetItems(items)
	backend.SetResults(testutil.Results(items[:3], 1.4, 0.9, -0.2))
	backend.SetOutfits(testutil.Outfits(items, "Work", "Weekend"))

	client, err := api.New(backend.URL(), api.WithRetryOptions(service.RetryOptions{MaxAttempts: 1}))
	require.NoError(t, err)
	ctrl := page.NewController(client, quietLogger)
	if signedIn {
		_, err = ctrl.Login(context.Background(), "mia", "secret")
		require.NoError(t, err)
	}
	return backend, ctrl, NewRouter(ctrl, quietLogger)
}

func serve(t *testing.T, r http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	_, _, r := newTestRouter(t, false)

	resp := serve(t, r, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"ok":true}`, resp.Body.String())
	assert.NotEmpty(t, resp.Header().Get("X-Request-Id"))
}

func TestRequestIDIsKept(t *testing.T) {
	_, _, r := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, "abc-123", resp.Header().Get("X-Request-Id"))
}

func TestDashboard(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		signedIn  bool
		wantCode  int
		wantItems int
	}{
		{name: "signed out", target: "/view/dashboard", wantCode: http.StatusOK},
		{name: "all groups", target: "/view/dashboard", signedIn: true, wantCode: http.StatusOK, wantItems: 5},
		{name: "tops only", target: "/view/dashboard?group=tops", signedIn: true, wantCode: http.StatusOK, wantItems: 2},
		{name: "unknown group", target: "/view/dashboard?group=hats", signedIn: true, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, r := newTestRouter(t, tt.signedIn)

			resp := serve(t, r, http.MethodGet, tt.target)
			require.Equal(t, tt.wantCode, resp.Code)
			if tt.wantCode != http.StatusOK {
				body := decode[ErrorResponse](t, resp)
				assert.Equal(t, "invalid_group", body.Error.Code)
				assert.NotEmpty(t, body.Error.RequestID)
				return
			}

			d := decode[viewmodel.Dashboard](t, resp)
			assert.Equal(t, tt.signedIn, d.SignedIn)
			assert.Len(t, d.Wardrobe.Items, tt.wantItems)
			if !tt.signedIn {
				assert.Equal(t, viewmodel.SignedOutProfile, d.Profile.Placeholder)
			}
		})
	}
}

func TestTips(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		_, _, r := newTestRouter(t, false)
		body := decode[struct {
			Tips     []style.Tip `json:"tips"`
			SignedIn bool        `json:"signed_in"`
		}](t, serve(t, r, http.MethodGet, "/view/tips"))

		assert.False(t, body.SignedIn)
		require.Len(t, body.Tips, 1)
		assert.Equal(t, style.TipKindLogin, body.Tips[0].Kind)
	})

	t.Run("signed in", func(t *testing.T) {
		_, _, r := newTestRouter(t, true)
		body := decode[struct {
			Tips []style.Tip `json:"tips"`
		}](t, serve(t, r, http.MethodGet, "/view/tips"))

		require.Len(t, body.Tips, 3)
		assert.Equal(t, style.TipKindSeason, body.Tips[0].Kind)
		assert.Equal(t, style.TipKindShape, body.Tips[1].Kind)
		assert.Equal(t, style.TipKindFabric, body.Tips[2].Kind)
	})
}

type recommendationsBody struct {
	Recommendations style.Recommendations `json:"recommendations"`
	Outfits         style.Outfits         `json:"outfits"`
}

func TestGenerateRecommendations(t *testing.T) {
	t.Run("requires login", func(t *testing.T) {
		_, _, r := newTestRouter(t, false)

		resp := serve(t, r, http.MethodPost, "/actions/recommendations")
		require.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Equal(t, "login_required", decode[ErrorResponse](t, resp).Error.Code)
	})

	t.Run("before generation shows placeholder", func(t *testing.T) {
		_, _, r := newTestRouter(t, true)

		body := decode[recommendationsBody](t, serve(t, r, http.MethodGet, "/view/recommendations"))
		assert.Empty(t, body.Recommendations.Cards)
		assert.Equal(t, style.NoRecommendations, body.Recommendations.Placeholder)
		assert.Len(t, body.Outfits.Cards, 2)
	})

	t.Run("clamped percentages", func(t *testing.T) {
		_, _, r := newTestRouter(t, true)

		resp := serve(t, r, http.MethodPost, "/actions/recommendations")
		require.Equal(t, http.StatusOK, resp.Code)

		body := decode[recommendationsBody](t, resp)
		require.Len(t, body.Recommendations.Cards, 3)
		assert.Equal(t, "1.40", body.Recommendations.Cards[0].TotalLabel)
		assert.Equal(t, 90, body.Recommendations.Cards[0].Scores[0].Percent)
		assert.Equal(t, "White tee", body.Recommendations.Cards[0].ItemName)
	})

	t.Run("backend failure", func(t *testing.T) {
		backend, _, r := newTestRouter(t, true)
		backend.Fail(http.MethodPost, "/api/recommendations", http.StatusInternalServerError)

		resp := serve(t, r, http.MethodPost, "/actions/recommendations")
		require.Equal(t, http.StatusBadGateway, resp.Code)
		assert.Equal(t, "generation_failed", decode[ErrorResponse](t, resp).Error.Code)
	})
}

func TestRefresh(t *testing.T) {
	t.Run("reloads wardrobe", func(t *testing.T) {
		backend, _, r := newTestRouter(t, true)
		backend.SetItems(backend.Items()[:1])

		resp := serve(t, r, http.MethodPost, "/actions/refresh")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Len(t, decode[viewmodel.Dashboard](t, resp).Wardrobe.Items, 1)
	})

	t.Run("profile failure", func(t *testing.T) {
		backend, ctrl, r := newTestRouter(t, true)
		backend.Fail(http.MethodGet, "/api/user", http.StatusInternalServerError)

		resp := serve(t, r, http.MethodPost, "/actions/refresh")
		require.Equal(t, http.StatusBadGateway, resp.Code)
		assert.Equal(t, "refresh_failed", decode[ErrorResponse](t, resp).Error.Code)
		assert.False(t, ctrl.Snapshot().SignedIn())
	})

	t.Run("filters by group", func(t *testing.T) {
		_, _, r := newTestRouter(t, true)

		resp := serve(t, r, http.MethodPost, "/actions/refresh?group=bottoms")
		require.Equal(t, http.StatusOK, resp.Code)
		body := decode[viewmodel.Dashboard](t, resp)
		require.NotEmpty(t, body.Wardrobe.Items)
		for _, item := range body.Wardrobe.Items {
			assert.Equal(t, "bottoms", item.Group)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		backend, _, r := newTestRouter(t, true)
		before := backend.CountRequests(http.MethodGet, "/api/user")

		resp := serve(t, r, http.MethodPost, "/actions/refresh?group=hats")
		require.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "invalid_group", decode[ErrorResponse](t, resp).Error.Code)
		assert.Equal(t, before, backend.CountRequests(http.MethodGet, "/api/user"))
	})
}

type panicController struct{}

func (panicController) Refresh(context.Context) error { return errors.New("unused") }

func (panicController) GenerateRecommendations(context.Context) ([]model.RecommendationResult, error) {
	return nil, errors.New("unused")
}

func (panicController) Dashboard(string) viewmodel.Dashboard { panic("boom") }

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(panicController{}, quietLogger)

	resp := serve(t, r, http.MethodGet, "/view/tips")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "internal", decode[ErrorResponse](t, resp).Error.Code)
}

func TestServerRunStopsOnCancel(t *testing.T) {
	_, ctrl, _ := newTestRouter(t, false)
	srv := NewServer("127.0.0.1:0", ctrl, quietLogger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}

func TestServerRunWithTLS(t *testing.T) {
	_, ctrl, _ := newTestRouter(t, false)
	cfg, err := certs.NewManager(t.TempDir()).TLSConfig()
	require.NoError(t, err)
	srv := NewServer("127.0.0.1:0", ctrl, quietLogger, WithTLS(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	assert.NoError(t, <-done)
}
