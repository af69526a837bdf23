package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/vedaai/veda/internal/config"
	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/services/calories"
	"github.com/vedaai/veda/internal/services/metrics"
	"github.com/vedaai/veda/internal/services/premium"
	"github.com/vedaai/veda/internal/testutil"
	"github.com/vedaai/veda/internal/util"
)

type stubHealth struct{ err error }

func (s stubHealth) HealthCheck(context.Context) error { return s.err }

func setupServer(t *testing.T) (http.Handler, *testutil.TestDB) {
	t.Helper()

	db := testutil.NewTestDB(t)
	db.RunMigrations(t, filepath.Join("..", "database", "migrations"))
	t.Cleanup(func() { db.Close(t) })

	clock := util.NewFixedClock(time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC))
	srv := New(Deps{
		Metrics:  metrics.NewService(db.DB, clock),
		Premium:  premium.NewService(db.DB, clock),
		Calories: calories.NewService(db.DB, clock, 2000),
		Health:   stubHealth{},
		Profile:  config.Default().Profile,
		Version:  "test",
	})
	return srv.Handler([]string{"http://localhost:3000"}), db
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	h, _ := setupServer(t)

	rec := do(t, h, "GET", "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decode[map[string]string](t, rec)
	if body["status"] != "ok" || body["version"] != "test" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestHealth_Unavailable(t *testing.T) {
	srv := New(Deps{Health: stubHealth{err: errors.New("database closed")}})

	rec := do(t, srv.Routes(), "GET", "/health", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestMetrics(t *testing.T) {
	h, db := setupServer(t)

	rec := do(t, h, "POST", "/api/health/metrics",
		`{"weight_kg":70,"height_cm":170,"age":25,"gender":"male","activity_level":"moderate","goal":"maintain"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decode[MetricsResponse](t, rec)
	if resp.BMR != 1643 {
		t.Errorf("expected BMR 1643, got %d", resp.BMR)
	}
	if resp.Category.Name != models.BMINormal {
		t.Errorf("expected Normal, got %s", resp.Category.Name)
	}
	if resp.IdealWeightKg.Min != 53 || resp.IdealWeightKg.Max != 72 {
		t.Errorf("unexpected ideal weight %+v", resp.IdealWeightKg)
	}
	if resp.ID == "" || resp.CreatedAt == nil || len(resp.Tips) == 0 {
		t.Errorf("expected saved report with tips, got %+v", resp)
	}
	db.AssertRowCount(t, "assessments", 1)

	get := do(t, h, "GET", "/api/history/assessments/"+resp.ID, "")
	if get.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", get.Code)
	}
	if replay := decode[MetricsResponse](t, get); replay.TDEE != resp.TDEE || replay.BMI != resp.BMI {
		t.Errorf("replay %+v differs from %+v", replay, resp)
	}
}

func TestMetrics_ProfileDefaults(t *testing.T) {
	h, _ := setupServer(t)

	rec := do(t, h, "POST", "/api/health/metrics", `{"weight_kg":70,"height_cm":170,"age":25}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	list := decode[Page[AssessmentJSON]](t, do(t, h, "GET", "/api/history/assessments", ""))
	if len(list.Items) != 1 {
		t.Fatalf("expected one assessment, got %d", len(list.Items))
	}
	a := list.Items[0]
	if a.Gender != models.GenderMale || a.ActivityLevel != models.ActivityModerate || a.Goal != models.GoalMaintain {
		t.Errorf("expected profile defaults, got %+v", a)
	}
}

func TestMetrics_BadRequests(t *testing.T) {
	h, db := setupServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"malformed", `{"weight_kg":`},
		{"unknown field", `{"weight_kg":70,"height_cm":170,"age":25,"shoe_size":9}`},
		{"zero weight", `{"weight_kg":0,"height_cm":170,"age":25}`},
		{"invalid gender", `{"weight_kg":70,"height_cm":170,"age":25,"gender":"robot"}`},
		{"two objects", `{"weight_kg":70,"height_cm":170,"age":25}{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, "POST", "/api/health/metrics", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			body := decode[ErrorBody](t, rec)
			if body.Error != "Bad Request" || body.Message == "" {
				t.Errorf("unexpected error body %+v", body)
			}
		})
	}

	db.AssertRowCount(t, "assessments", 0)
}

func TestPremium(t *testing.T) {
	h, db := setupServer(t)

	rec := do(t, h, "POST", "/api/insurance/premium",
		`{"age":35,"coverage":500000,"members":2,"pre_existing":false,"zone":"Zone1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	resp := decode[PremiumResponse](t, rec)
	if resp.AnnualPremium != 10725 || resp.MonthlyPremium != 894 || resp.Savings != 858 {
		t.Errorf("unexpected premium %+v", resp)
	}
	if resp.Tier.Name != "Comprehensive" || resp.Breakdown.AgeBand != "26-35" {
		t.Errorf("unexpected tier or breakdown %+v %+v", resp.Tier, resp.Breakdown)
	}
	db.AssertRowCount(t, "quotes", 1)

	get := do(t, h, "GET", "/api/history/quotes/"+resp.ID, "")
	if q := decode[QuoteJSON](t, get); q.AnnualPremium != 10725 || q.TierName != "Comprehensive" {
		t.Errorf("unexpected saved quote %+v", q)
	}
}

func TestPremium_DefaultZoneAndInvalid(t *testing.T) {
	h, _ := setupServer(t)

	rec := do(t, h, "POST", "/api/insurance/premium", `{"age":35,"coverage":500000,"members":2}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if resp := decode[PremiumResponse](t, rec); resp.Zone != models.Zone1 || resp.AnnualPremium != 10725 {
		t.Errorf("expected metro pricing by default, got %+v", resp)
	}

	rec = do(t, h, "POST", "/api/insurance/premium", `{"age":35,"coverage":123,"members":2}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unsupported coverage, got %d", rec.Code)
	}
}

func TestTermsAndTiers(t *testing.T) {
	h, _ := setupServer(t)

	terms := decode[[]TermJSON](t, do(t, h, "GET", "/api/insurance/terms", ""))
	if len(terms) != len(premium.Terms) {
		t.Errorf("expected %d terms, got %d", len(premium.Terms), len(terms))
	}

	tiers := decode[[]TierJSON](t, do(t, h, "GET", "/api/insurance/tiers", ""))
	if len(tiers) != 3 || tiers[0].Name != "Essential" {
		t.Errorf("unexpected tiers %+v", tiers)
	}
}

func TestFoods(t *testing.T) {
	h, _ := setupServer(t)

	all := decode[[]FoodJSON](t, do(t, h, "GET", "/api/foods", ""))
	if len(all) != len(calories.Catalog) {
		t.Errorf("expected full catalog, got %d", len(all))
	}

	found := decode[[]FoodJSON](t, do(t, h, "GET", "/api/foods?q=ROTI", ""))
	if len(found) != 1 || found[0].Name != "Roti" {
		t.Errorf("unexpected search result %+v", found)
	}

	quick := decode[[]FoodJSON](t, do(t, h, "GET", "/api/foods/quick", ""))
	if len(quick) != len(calories.QuickAddIDs) {
		t.Errorf("expected %d quick foods, got %d", len(calories.QuickAddIDs), len(quick))
	}
}

func TestCalories(t *testing.T) {
	h, db := setupServer(t)

	rec := do(t, h, "POST", "/api/calories", `{"food_id":1,"quantity":2,"meal":"lunch"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	entry := decode[EntryJSON](t, rec)
	if entry.Calories != 144 || entry.Date != "2026-10-17" {
		t.Errorf("unexpected entry %+v", entry)
	}

	do(t, h, "POST", "/api/calories", `{"food_id":9,"meal":"breakfast"}`)

	summary := decode[DailySummaryResponse](t, do(t, h, "GET", "/api/calories", ""))
	if summary.Date != "2026-10-17" || summary.Goal != 2000 {
		t.Errorf("unexpected summary header %+v", summary)
	}
	if summary.Totals.Calories != 224 || summary.Remaining != 1776 {
		t.Errorf("unexpected totals %+v remaining %v", summary.Totals, summary.Remaining)
	}
	if summary.Meals[models.MealLunch] != 144 || summary.Meals[models.MealDinner] != 0 {
		t.Errorf("unexpected meal totals %v", summary.Meals)
	}
	if len(summary.Entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(summary.Entries))
	}

	week := decode[[]DayTotalJSON](t, do(t, h, "GET", "/api/calories/week", ""))
	if len(week) != 7 || week[6].Date != "2026-10-17" || week[6].Calories != 224 {
		t.Errorf("unexpected week %+v", week)
	}

	if rec := do(t, h, "DELETE", "/api/calories/"+entry.ID, ""); rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if rec := do(t, h, "DELETE", "/api/calories/"+entry.ID, ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}
	db.AssertRowCount(t, "food_log_entries", 1)

	cleared := decode[map[string]int64](t, do(t, h, "DELETE", "/api/calories?date=2026-10-17", ""))
	if cleared["deleted"] != 1 {
		t.Errorf("expected 1 deleted, got %v", cleared)
	}
}

func TestCalories_BadRequests(t *testing.T) {
	h, _ := setupServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"unknown food", "POST", "/api/calories", `{"food_id":999,"meal":"lunch"}`},
		{"bad meal", "POST", "/api/calories", `{"food_id":1,"meal":"brunch"}`},
		{"negative quantity", "POST", "/api/calories", `{"food_id":1,"quantity":-1,"meal":"lunch"}`},
		{"bad date", "GET", "/api/calories?date=17-10-2026", ""},
		{"bad week date", "GET", "/api/calories/week?date=tomorrow", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, h, tt.method, tt.path, tt.body); rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHistory_Pagination(t *testing.T) {
	h, db := setupServer(t)

	for i := 0; i < 3; i++ {
		q := testutil.FixtureQuote(func(q *models.Quote) {
			q.CreatedAt = time.Date(2026, 10, 10+i, 9, 0, 0, 0, time.UTC)
		})
		db.ExecSQL(t, `INSERT INTO quotes
			(id, age_years, coverage, members, has_pre_existing, zone, tier_name,
			 annual_premium, monthly_premium, savings, created_at)
			VALUES (?, ?, ?, ?, 0, ?, ?, ?, ?, ?, ?)`,
			q.ID, q.AgeYears, int(q.Coverage), q.Members, string(q.Zone), q.TierName,
			q.AnnualPremium, q.MonthlyPremium, q.Savings, q.CreatedAt.Format(time.RFC3339))
	}

	page := decode[Page[QuoteJSON]](t, do(t, h, "GET", "/api/history/quotes?page=2&page_size=2", ""))
	if page.Total != 3 || page.TotalPages != 2 || page.Page != 2 || len(page.Items) != 1 {
		t.Errorf("unexpected page %+v", page)
	}

	cleared := decode[map[string]int64](t, do(t, h, "DELETE", "/api/history/quotes", ""))
	if cleared["deleted"] != 3 {
		t.Errorf("expected 3 deleted, got %v", cleared)
	}
}

func TestHistory_NotFound(t *testing.T) {
	h, _ := setupServer(t)

	for _, path := range []string{"/api/history/assessments/missing", "/api/history/quotes/missing"} {
		if rec := do(t, h, "GET", path, ""); rec.Code != http.StatusNotFound {
			t.Errorf("GET %s: expected 404, got %d", path, rec.Code)
		}
		if rec := do(t, h, "DELETE", path, ""); rec.Code != http.StatusNotFound {
			t.Errorf("DELETE %s: expected 404, got %d", path, rec.Code)
		}
	}
}

func TestRouting(t *testing.T) {
	h, _ := setupServer(t)

	if rec := do(t, h, "GET", "/api/nope", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if rec := do(t, h, "PUT", "/api/calories", "{}"); rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	h, _ := setupServer(t)

	req := httptest.NewRequest("GET", "/api/foods/quick", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected allowed origin echoed, got %q", got)
	}

	req = httptest.NewRequest("GET", "/api/foods/quick", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS header for foreign origin, got %q", got)
	}
}

func TestWithRecovery(t *testing.T) {
	h := WithRecovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
