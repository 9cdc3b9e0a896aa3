package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/reviewqr/internal/auth/domain"
	businessdomain "github.com/smallbiznis/reviewqr/internal/business/domain"
	businessservice "github.com/smallbiznis/reviewqr/internal/business/service"
	"github.com/smallbiznis/reviewqr/internal/config"
	postercache "github.com/smallbiznis/reviewqr/internal/poster/cache"
	posterdomain "github.com/smallbiznis/reviewqr/internal/poster/domain"
	posterservice "github.com/smallbiznis/reviewqr/internal/poster/service"
	postertemplate "github.com/smallbiznis/reviewqr/internal/poster/template"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type countingRenderer struct {
	pdfCalls int
	pngCalls int
	lastHTML string
}

func (r *countingRenderer) RenderPDF(_ context.Context, html string, _ posterdomain.PaperSize) ([]byte, error) {
	r.pdfCalls++
	r.lastHTML = html
	return []byte("%PDF-fake"), nil
}

func (r *countingRenderer) RenderPNG(_ context.Context, html string, _ posterdomain.PaperSize, _ float64) ([]byte, error) {
	r.pngCalls++
	r.lastHTML = html
	return []byte("\x89PNG-fake"), nil
}

type testEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	renderer *countingRenderer

	ownerID   snowflake.ID
	otherID   snowflake.ID
	business  businessdomain.Response
	theirBusn businessdomain.Response
}

const (
	ownerSession = "owner-session"
	otherSession = "other-session"
)

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return setupTestEnvWithConfig(t, config.Config{})
}

func setupTestEnvWithConfig(t *testing.T, cfg config.Config) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.Session{}, &businessdomain.Business{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	env := &testEnv{
		db:       db,
		renderer: &countingRenderer{},
		ownerID:  node.Generate(),
		otherID:  node.Generate(),
	}

	expires := time.Now().UTC().Add(time.Hour)
	sessions := []authdomain.Session{
		{ID: ownerSession, UserID: env.ownerID, ExpiresAt: expires},
		{ID: otherSession, UserID: env.otherID, ExpiresAt: expires},
	}
	if err := db.Create(&sessions).Error; err != nil {
		t.Fatalf("seed sessions: %v", err)
	}

	businessSvc := businessservice.NewService(businessservice.ServiceParam{
		DB: db, Log: zap.NewNop(), GenID: node,
	})

	mine, err := businessSvc.Create(context.Background(), env.ownerID, businessdomain.CreateRequest{
		Name:      "Coffee Spot",
		ReviewURL: "https://g.page/r/abc/review",
	})
	if err != nil {
		t.Fatalf("seed business: %v", err)
	}
	env.business = *mine

	theirs, err := businessSvc.Create(context.Background(), env.otherID, businessdomain.CreateRequest{
		Name:      "Book Nook",
		ReviewURL: "https://g.page/r/def/review",
	})
	if err != nil {
		t.Fatalf("seed foreign business: %v", err)
	}
	env.theirBusn = *theirs

	posterSvc := posterservice.NewService(posterservice.ServiceParam{
		Registry: postertemplate.NewRegistry(),
		Renderer: env.renderer,
		Cache:    postercache.New(t.TempDir()),
		Log:      zap.NewNop(),
	})

	srv := NewServer(Params{
		Cfg:         cfg,
		Log:         zap.NewNop(),
		DB:          db,
		BusinessSvc: businessSvc,
		PosterSvc:   posterSvc,
	})

	env.router = gin.New()
	srv.RegisterRoutes(env.router)
	return env
}

func (e *testEnv) request(t *testing.T, method, path, session string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session})
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v (%s)", err, rec.Body.String())
	}
	return envelope.Error.Code
}

func TestAPIRequiresSession(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/businesses", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no cookie: status %d", rec.Code)
	}

	rec = env.request(t, http.MethodGet, "/api/businesses", "bogus-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unknown session: status %d", rec.Code)
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	env := setupTestEnv(t)

	expired := authdomain.Session{ID: "expired", UserID: env.ownerID, ExpiresAt: time.Now().UTC().Add(-time.Minute)}
	if err := env.db.Create(&expired).Error; err != nil {
		t.Fatalf("seed expired session: %v", err)
	}

	rec := env.request(t, http.MethodGet, "/api/businesses", "expired", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expired session: status %d", rec.Code)
	}
}

func TestDownloadPDFEndToEnd(t *testing.T) {
	env := setupTestEnv(t)
	path := fmt.Sprintf("/api/businesses/%s/posters/download.pdf?templateId=minimal-professional", env.business.ID)

	rec := env.request(t, http.MethodGet, path, ownerSession, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}
	want := `attachment; filename="coffee-spot-minimal-professional-LETTER.pdf"`
	if cd := rec.Header().Get("Content-Disposition"); cd != want {
		t.Fatalf("content disposition = %q, want %q", cd, want)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Fatalf("body is not the rendered pdf")
	}

	// Second request for the same tuple is served from the cache.
	rec = env.request(t, http.MethodGet, path, ownerSession, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("cached status %d", rec.Code)
	}
	if env.renderer.pdfCalls != 1 {
		t.Fatalf("renderer called %d times, want 1", env.renderer.pdfCalls)
	}
}

func TestDownloadPNGHonorsSizeParam(t *testing.T) {
	env := setupTestEnv(t)
	path := fmt.Sprintf("/api/businesses/%s/posters/download.png?templateId=bold-corners&size=A4", env.business.ID)

	rec := env.request(t, http.MethodGet, path, ownerSession, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "-A4.png") {
		t.Fatalf("content disposition = %q", cd)
	}
}

func TestDownloadDarkVariant(t *testing.T) {
	env := setupTestEnv(t)
	base := fmt.Sprintf("/api/businesses/%s/posters/download.png?templateId=minimal-professional", env.business.ID)

	rec := env.request(t, http.MethodGet, base+"&variant=dark", ownerSession, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("dark download: status %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(env.renderer.lastHTML, "#0f172a") {
		t.Fatalf("dark download must render the dark palette")
	}

	rec = env.request(t, http.MethodGet, base, ownerSession, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("light download: status %d", rec.Code)
	}
	if strings.Contains(env.renderer.lastHTML, "#0f172a") {
		t.Fatalf("default download must render the light palette")
	}
	if env.renderer.pngCalls != 2 {
		t.Fatalf("renderer called %d times, want 2", env.renderer.pngCalls)
	}
}

func TestForeignBusinessIsForbiddenBeforeRendering(t *testing.T) {
	env := setupTestEnv(t)
	path := fmt.Sprintf("/api/businesses/%s/posters/download.pdf?templateId=minimal-professional", env.theirBusn.ID)

	rec := env.request(t, http.MethodGet, path, ownerSession, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status %d, want 403", rec.Code)
	}
	if code := errorCode(t, rec); code != "forbidden" {
		t.Fatalf("error code = %q", code)
	}
	if env.renderer.pdfCalls != 0 || env.renderer.pngCalls != 0 {
		t.Fatalf("renderer must not run for a foreign business")
	}
}

func TestUnknownBusinessIs404(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.request(t, http.MethodGet, "/api/businesses/123456789/posters/templates", ownerSession, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id: status %d", rec.Code)
	}

	rec = env.request(t, http.MethodGet, "/api/businesses/not-a-number/posters/templates", ownerSession, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("malformed id: status %d", rec.Code)
	}
}

func TestUnknownTemplateIs400(t *testing.T) {
	env := setupTestEnv(t)
	path := fmt.Sprintf("/api/businesses/%s/posters/download.pdf?templateId=nope", env.business.ID)

	rec := env.request(t, http.MethodGet, path, ownerSession, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
	if code := errorCode(t, rec); code != "template_not_found" {
		t.Fatalf("error code = %q", code)
	}
}

func TestMissingTemplateIDIs400(t *testing.T) {
	env := setupTestEnv(t)
	path := fmt.Sprintf("/api/businesses/%s/posters/preview", env.business.ID)

	rec := env.request(t, http.MethodGet, path, ownerSession, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestPreviewReturnsPNG(t *testing.T) {
	env := setupTestEnv(t)
	path := fmt.Sprintf("/api/businesses/%s/posters/preview?templateId=minimal-professional&variant=dark", env.business.ID)

	rec := env.request(t, http.MethodGet, path, ownerSession, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type = %q", ct)
	}
	if env.renderer.pngCalls != 1 {
		t.Fatalf("renderer called %d times, want 1", env.renderer.pngCalls)
	}
}

func TestConfiguredRenderRateLimit(t *testing.T) {
	env := setupTestEnvWithConfig(t, config.Config{RenderRateLimit: 1})
	path := fmt.Sprintf("/api/businesses/%s/posters/preview?templateId=minimal-professional", env.business.ID)

	rec := env.request(t, http.MethodGet, path, ownerSession, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("first render: status %d", rec.Code)
	}
	rec = env.request(t, http.MethodGet, path, ownerSession, "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("over-limit render: status %d, want 429", rec.Code)
	}
	if code := errorCode(t, rec); code != "rate_limited" {
		t.Fatalf("error code = %q", code)
	}
}

func TestListPosterTemplates(t *testing.T) {
	env := setupTestEnv(t)
	path := fmt.Sprintf("/api/businesses/%s/posters/templates", env.business.ID)

	rec := env.request(t, http.MethodGet, path, ownerSession, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	var envelope struct {
		Data []posterdomain.TemplateMetadata `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 10 {
		t.Fatalf("got %d templates, want 10", len(envelope.Data))
	}
}

func TestBusinessCRUD(t *testing.T) {
	env := setupTestEnv(t)

	rec := env.request(t, http.MethodPost, "/api/businesses", ownerSession,
		`{"name":"Taco Truck","review_url":"https://g.page/r/xyz/review"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: status %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Data businessdomain.Response `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	if created.Data.Slug != "taco-truck" {
		t.Fatalf("slug = %q", created.Data.Slug)
	}

	rec = env.request(t, http.MethodPatch, "/api/businesses/"+created.Data.ID, ownerSession,
		`{"cta_line":"Rate your lunch!"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.request(t, http.MethodPatch, "/api/businesses/"+created.Data.ID, otherSession,
		`{"cta_line":"hijacked"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("foreign update: status %d", rec.Code)
	}

	rec = env.request(t, http.MethodGet, "/api/businesses", ownerSession, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d", rec.Code)
	}
	var listed struct {
		Data []businessdomain.Response `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed.Data) != 2 {
		t.Fatalf("got %d businesses, want 2", len(listed.Data))
	}

	rec = env.request(t, http.MethodPost, "/api/businesses", ownerSession,
		`{"name":"","review_url":"https://example.com"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid create: status %d", rec.Code)
	}
}
