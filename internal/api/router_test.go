package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/priorityparcel/portal-api/internal/core/domain"
	"github.com/priorityparcel/portal-api/internal/core/service"
	"github.com/priorityparcel/portal-api/internal/infrastructure/db/memory"
	"github.com/priorityparcel/portal-api/internal/infrastructure/queue"
	"github.com/priorityparcel/portal-api/pkg/logger"
)

const testSecret = "test-secret"

var (
	routerOnce  sync.Once
	testRouter  *echo.Echo
	zendingRepo *memory.ZendingRepository
)

// router builds the full application once; the prometheus middleware
// registers collectors globally and cannot be constructed twice.
func router(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		logger.Init(logger.Options{Level: "error"})
		log := zerolog.Nop()
		ctx := context.Background()

		userRepo := memory.NewUserRepository()
		contactRepo := memory.NewContactRepository()
		offerteRepo := memory.NewOfferteRepository()
		zendingRepo = memory.NewZendingRepository()
		if err := memory.Seed(ctx, userRepo, zendingRepo, log); err != nil {
			t.Fatalf("seed: %v", err)
		}

		updateService := service.NewUpdateService(zendingRepo, memory.NewDedupChecker(), log)
		dispatcher := queue.NewDispatcher(2, updateService, log)
		dispatcher.Start(ctx)

		testRouter = NewRouter(RouterDeps{
			AuthService:    service.NewAuthService(userRepo, testSecret, time.Hour, log),
			ContactService: service.NewContactService(contactRepo, log),
			OfferteService: service.NewOfferteService(offerteRepo, log),
			ZendingService: service.NewZendingService(zendingRepo, nil, log),
			UpdateQueue:    dispatcher,
			JWTSecret:      testSecret,
		})
	})
	return testRouter
}

func doJSON(t *testing.T, e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/api/login", "",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	if rec.Code != http.StatusOK {
		t.Fatalf("login as %s failed: %d %s", email, rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("no token in login response: %v %s", err, rec.Body.String())
	}
	return resp.Token
}

func TestRouter_LoginAndCurrentUser(t *testing.T) {
	e := router(t)

	token := login(t, e, "huso@example.nl", "welkom123")

	rec := doJSON(t, e, http.MethodGet, "/api/auth/user", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var user domain.User
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if user.Username != "huso" || user.Role != domain.RoleKlant {
		t.Fatalf("unexpected user: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}
}

func TestRouter_LoginWrongPassword(t *testing.T) {
	e := router(t)

	rec := doJSON(t, e, http.MethodPost, "/api/login", "",
		`{"email":"huso@example.nl","password":"verkeerd123"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ContactValidationError(t *testing.T) {
	e := router(t)

	rec := doJSON(t, e, http.MethodPost, "/api/contact", "",
		`{"name":"J","email":"nee","message":"kort"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Validation error" || len(resp.Errors) == 0 {
		t.Fatalf("unexpected validation response: %s", rec.Body.String())
	}
}

func TestRouter_OfferteSubmitComputesPrijsIndicatie(t *testing.T) {
	e := router(t)

	rec := doJSON(t, e, http.MethodPost, "/api/prijsofferte", "", `{
		"transportType": "nationaal",
		"gewicht": "0-5",
		"afmetingen": "klein",
		"spoed": "standaard",
		"naam": "Jan Jansen",
		"email": "jan@example.nl",
		"telefoon": "+31 6 12345678",
		"ophaladres": "Straat 1, Amsterdam",
		"afleveradres": "Laan 2, Rotterdam"
	}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["prijsIndicatie"] != "€7,95 - €12,95" {
		t.Fatalf("unexpected prijsIndicatie: %v", resp["prijsIndicatie"])
	}
}

func TestRouter_AdminEndpointsRequireAdminRole(t *testing.T) {
	e := router(t)

	klantToken := login(t, e, "huso@example.nl", "welkom123")
	rec := doJSON(t, e, http.MethodGet, "/api/contact", klantToken, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for klant, got %d", rec.Code)
	}

	adminToken := login(t, e, "admin@priorityparcel.nl", "admin123")
	rec = doJSON(t, e, http.MethodGet, "/api/contact", adminToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_ZendingenRequireAuth(t *testing.T) {
	e := router(t)

	rec := doJSON(t, e, http.MethodGet, "/api/zendingen", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRouter_ZendingenListForKlant(t *testing.T) {
	e := router(t)

	token := login(t, e, "huso@example.nl", "welkom123")
	rec := doJSON(t, e, http.MethodGet, "/api/zendingen", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var zendingen []domain.Zending
	if err := json.Unmarshal(rec.Body.Bytes(), &zendingen); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(zendingen) != 3 {
		t.Fatalf("expected 3 seeded zendingen, got %d", len(zendingen))
	}
	// verzendDatum descending.
	for i := 1; i < len(zendingen); i++ {
		if zendingen[i].VerzendDatum.After(zendingen[i-1].VerzendDatum) {
			t.Fatalf("expected verzendDatum descending")
		}
	}
}

func TestRouter_ZendingNotFound(t *testing.T) {
	e := router(t)

	token := login(t, e, "admin@priorityparcel.nl", "admin123")
	rec := doJSON(t, e, http.MethodGet, "/api/zendingen/99999", token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_TrackIsPublic(t *testing.T) {
	e := router(t)

	rec := doJSON(t, e, http.MethodGet, "/api/track/PNL12345678", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "PNL12345678") {
		t.Fatalf("expected tracking code in response: %s", body)
	}
	if strings.Contains(body, "afleveradres") || strings.Contains(body, "prijs") {
		t.Fatalf("tracking view leaks private fields: %s", body)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/track/PNL00000000", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown code, got %d", rec.Code)
	}
}

func TestRouter_DashboardStats(t *testing.T) {
	e := router(t)

	token := login(t, e, "huso@example.nl", "welkom123")
	rec := doJSON(t, e, http.MethodGet, "/api/dashboard/stats", token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["klanttevredenheid"] != "4.8 / 5" {
		t.Fatalf("unexpected klanttevredenheid: %v", resp["klanttevredenheid"])
	}
	if _, ok := resp["totaalZendingen"]; !ok {
		t.Fatalf("missing totaalZendingen: %s", rec.Body.String())
	}
}

func TestRouter_UpdatePipeline(t *testing.T) {
	e := router(t)

	klantToken := login(t, e, "huso@example.nl", "welkom123")
	rec := doJSON(t, e, http.MethodPost, "/api/zendingen/updates", klantToken,
		`{"trackingCode":"PNL23456789","status":"opgehaald","locatie":"Den Haag"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for klant, got %d", rec.Code)
	}

	adminToken := login(t, e, "admin@priorityparcel.nl", "admin123")
	rec = doJSON(t, e, http.MethodPost, "/api/zendingen/updates", adminToken,
		`{"trackingCode":"PNL23456789","status":"opgehaald","locatie":"Den Haag"}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	// The update is applied asynchronously by the worker pool.
	deadline := time.Now().Add(2 * time.Second)
	for {
		z, err := zendingRepo.FindByTrackingCode(context.Background(), "PNL23456789")
		if err != nil {
			t.Fatalf("find zending: %v", err)
		}
		if z.Status == domain.StatusOpgehaald {
			if z.LaatsteUpdate.Locatie != "Den Haag" {
				t.Fatalf("expected laatste update locatie, got %+v", z.LaatsteUpdate)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("update not processed in time, status still %s", z.Status)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	e := router(t)

	rec := doJSON(t, e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/health/ready", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
