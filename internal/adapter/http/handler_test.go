package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"adpace/internal/core/domain"
	"adpace/internal/core/port"
	"adpace/internal/telemetry"
)

// stubUseCase overrides only the methods a test needs. Reaching any
// other method panics through the embedded nil interface, which makes
// unexpected routing visible immediately.
type stubUseCase struct {
	port.BudgetUseCase

	forecastID  int64
	forecast    *domain.ForecastResult
	forecastErr error

	simulateIn domain.SimulationInput
	simulate   *domain.SimulationOutput

	swept int
}

func (s *stubUseCase) Forecast(_ context.Context, id int64) (*domain.ForecastResult, error) {
	s.forecastID = id
	return s.forecast, s.forecastErr
}

func (s *stubUseCase) Simulate(_ context.Context, _ int64, in domain.SimulationInput) (*domain.SimulationOutput, error) {
	s.simulateIn = in
	return s.simulate, nil
}

func (s *stubUseCase) SweepAlerts(context.Context) (int, error) {
	return s.swept, nil
}

func newTestHandler(svc port.BudgetUseCase) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, nil, nil, logger)
}

func serve(h *Handler, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, r)
	return rec
}

// TestForecastRoute resolves the campaign id from the path and returns
// the forecast as JSON.
func TestForecastRoute(t *testing.T) {
	stub := &stubUseCase{forecast: &domain.ForecastResult{ProjectedSpend: 32000, IsOverrun: true}}
	h := newTestHandler(stub)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/7/forecast", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.forecastID != 7 {
		t.Fatalf("expected campaign id 7, got %d", stub.forecastID)
	}

	var res domain.ForecastResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.ProjectedSpend != 32000 || !res.IsOverrun {
		t.Fatalf("unexpected forecast %+v", res)
	}
}

// TestForecastRouteUnknownCampaign maps the not-found sentinel to 404.
func TestForecastRouteUnknownCampaign(t *testing.T) {
	stub := &stubUseCase{forecastErr: port.ErrCampaignNotFound}
	h := newTestHandler(stub)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns/99/forecast", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

// TestCreateCampaignRejectsBadPayload answers 400 before touching the
// usecase when the body or the dates do not parse.
func TestCreateCampaignRejectsBadPayload(t *testing.T) {
	h := newTestHandler(&stubUseCase{})

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for broken JSON, got %d", rec.Code)
	}

	body := `{"name":"Launch","start_date":"not a day","end_date":"2025-10-31"}`
	rec = serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns", strings.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a bad date, got %d", rec.Code)
	}
}

// TestSimulateRouteParsesInput converts the request body into a
// simulation input with parsed window ids and days.
func TestSimulateRouteParsesInput(t *testing.T) {
	stub := &stubUseCase{simulate: &domain.SimulationOutput{Recommendation: "ok"}}
	h := newTestHandler(stub)

	wid := uuid.New()
	body := `{"total_budget":20000,"remove_pause_windows":["` + wid.String() + `"],` +
		`"add_pause_windows":[{"start_date":"2025-10-20","end_date":"2025-10-24"}]}`
	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/3/simulate", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	in := stub.simulateIn
	if in.TotalBudget == nil || *in.TotalBudget != 20000 {
		t.Fatalf("expected total budget override 20000, got %v", in.TotalBudget)
	}
	if len(in.RemovePauseWindows) != 1 || in.RemovePauseWindows[0] != wid {
		t.Fatalf("unexpected removals %v", in.RemovePauseWindows)
	}
	if len(in.AddPauseWindows) != 1 {
		t.Fatalf("expected 1 added window, got %d", len(in.AddPauseWindows))
	}
	want := time.Date(2025, time.October, 20, 0, 0, 0, 0, time.UTC)
	if !in.AddPauseWindows[0].StartDate.Equal(want) {
		t.Fatalf("unexpected window start %v", in.AddPauseWindows[0].StartDate)
	}
}

// TestSimulateRouteRejectsBadWindowID answers 400 for an unparseable
// window id instead of silently ignoring it.
func TestSimulateRouteRejectsBadWindowID(t *testing.T) {
	h := newTestHandler(&stubUseCase{})

	body := `{"remove_pause_windows":["nope"]}`
	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/3/simulate", strings.NewReader(body)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// TestSweepAlertsRoute reports the number of stored alerts.
func TestSweepAlertsRoute(t *testing.T) {
	h := newTestHandler(&stubUseCase{swept: 3})

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/alerts/sweep", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var res map[string]int
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res["inserted"] != 3 {
		t.Fatalf("expected 3 inserted, got %d", res["inserted"])
	}
}

// TestImportRouteWithoutImporter answers 503 when no sheet directory is
// configured.
func TestImportRouteWithoutImporter(t *testing.T) {
	h := newTestHandler(&stubUseCase{})

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/v1/import", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

// TestMetricsRoute exposes the Prometheus registry when metrics are
// wired in.
func TestMetricsRoute(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(&stubUseCase{}, nil, telemetry.New(nil), logger)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "adpace_alert_sweeps_total") {
		t.Fatalf("expected sweep counter in exposition, got:\n%s", rec.Body.String())
	}
}
