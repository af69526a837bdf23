package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/services/calories"
	"github.com/vedaai/veda/internal/services/metrics"
	"github.com/vedaai/veda/internal/services/premium"
)

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	var req MetricsRequest
	if err := ParseJSONBody(w, r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	in := metrics.AssessInput{
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		AgeYears:      req.Age,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
		Goal:          req.Goal,
	}
	if in.Gender == "" {
		in.Gender = s.profile.Gender.OrDefault()
	}
	if in.ActivityLevel == "" {
		in.ActivityLevel = s.profile.ActivityLevel.OrDefault()
	}
	if in.Goal == "" {
		in.Goal = s.profile.Goal
		if !in.Goal.Valid() {
			in.Goal = models.GoalMaintain
		}
	}

	report, err := s.metrics.Assess(r.Context(), in)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	resp := newMetricsResponse(report.Result)
	resp.ID = report.Assessment.ID
	resp.CreatedAt = &report.Assessment.CreatedAt
	JSONResponse(w, http.StatusCreated, resp)
}

func (s *Server) handlePremium(w http.ResponseWriter, r *http.Request) {
	var req PremiumRequest
	if err := ParseJSONBody(w, r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	in := premium.PremiumInput{
		Age:            req.Age,
		Coverage:       req.Coverage,
		Members:        req.Members,
		HasPreExisting: req.PreExisting,
		Zone:           req.Zone,
	}

	report, err := s.premium.Quote(r.Context(), in)
	if err != nil {
		serviceError(w, r, err)
		return
	}

	resp := newPremiumResponse(in, report.Result)
	resp.ID = report.Quote.ID
	resp.CreatedAt = &report.Quote.CreatedAt
	JSONResponse(w, http.StatusCreated, resp)
}

func (s *Server) handleTerms(w http.ResponseWriter, r *http.Request) {
	terms := make([]TermJSON, len(premium.Terms))
	for i, t := range premium.Terms {
		terms[i] = TermJSON{Term: t.Term, Description: t.Description}
	}
	JSONResponse(w, http.StatusOK, terms)
}

func (s *Server) handleTiers(w http.ResponseWriter, r *http.Request) {
	tiers := make([]TierJSON, len(premium.Tiers))
	for i, t := range premium.Tiers {
		tiers[i] = newTierJSON(t)
	}
	JSONResponse(w, http.StatusOK, tiers)
}

func (s *Server) handleFoods(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, newFoodsJSON(calories.SearchFoods(r.URL.Query().Get("q"))))
}

func (s *Server) handleQuickFoods(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, newFoodsJSON(calories.QuickAddFoods()))
}

// dateParam returns the date query parameter, or today.
func (s *Server) dateParam(r *http.Request) string {
	if d := r.URL.Query().Get("date"); d != "" {
		return d
	}
	return s.calories.Today()
}

func (s *Server) handleDailySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.calories.DailySummary(r.Context(), s.dateParam(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, newDailySummaryResponse(summary))
}

func (s *Server) handleAddEntry(w http.ResponseWriter, r *http.Request) {
	var req AddEntryRequest
	if err := ParseJSONBody(w, r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := s.calories.AddEntry(r.Context(), calories.AddEntryInput{
		FoodID:   req.FoodID,
		Quantity: req.Quantity,
		Meal:     req.Meal,
		Date:     req.Date,
	})
	if err != nil {
		serviceError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusCreated, newEntryJSON(entry))
}

func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.calories.RemoveEntry(r.Context(), mux.Vars(r)["id"]); err != nil {
		serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearDay(w http.ResponseWriter, r *http.Request) {
	n, err := s.calories.ClearDay(r.Context(), s.dateParam(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, map[string]int64{"deleted": n})
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	days, err := s.calories.WeeklyTotals(r.Context(), s.dateParam(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}
	out := make([]DayTotalJSON, len(days))
	for i, d := range days {
		out[i] = DayTotalJSON{Date: d.Date, Calories: d.Calories}
	}
	JSONResponse(w, http.StatusOK, out)
}

// pagination reads page and page_size, ignoring values that are not positive
// integers. Sizes above the maximum are clamped.
func pagination(r *http.Request) models.Pagination {
	p := models.DefaultPagination()
	q := r.URL.Query()
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		p.Page = n
	}
	if n, err := strconv.Atoi(q.Get("page_size")); err == nil && n > 0 {
		p.PageSize = n
	}
	return p.Normalize()
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	list, err := s.metrics.ListAssessments(r.Context(), pagination(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}

	items := make([]AssessmentJSON, len(list.Assessments))
	for i, a := range list.Assessments {
		items[i] = newAssessmentJSON(a)
	}
	JSONResponse(w, http.StatusOK, Page[AssessmentJSON]{
		Items:      items,
		Total:      list.Total,
		Page:       list.Page,
		PageSize:   list.PageSize,
		TotalPages: list.TotalPages,
	})
}

// handleGetAssessment recomputes the full report for a saved assessment.
func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	a, err := s.metrics.GetAssessment(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, r, err)
		return
	}

	resp := newMetricsResponse(metrics.Replay(a))
	resp.ID = a.ID
	resp.CreatedAt = &a.CreatedAt
	JSONResponse(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteAssessment(w http.ResponseWriter, r *http.Request) {
	if err := s.metrics.DeleteAssessment(r.Context(), mux.Vars(r)["id"]); err != nil {
		serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearAssessments(w http.ResponseWriter, r *http.Request) {
	n, err := s.metrics.ClearAssessments(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, map[string]int64{"deleted": n})
}

func (s *Server) handleListQuotes(w http.ResponseWriter, r *http.Request) {
	list, err := s.premium.ListQuotes(r.Context(), pagination(r))
	if err != nil {
		serviceError(w, r, err)
		return
	}

	items := make([]QuoteJSON, len(list.Quotes))
	for i, q := range list.Quotes {
		items[i] = newQuoteJSON(q)
	}
	JSONResponse(w, http.StatusOK, Page[QuoteJSON]{
		Items:      items,
		Total:      list.Total,
		Page:       list.Page,
		PageSize:   list.PageSize,
		TotalPages: list.TotalPages,
	})
}

func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	q, err := s.premium.GetQuote(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		serviceError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, newQuoteJSON(q))
}

func (s *Server) handleDeleteQuote(w http.ResponseWriter, r *http.Request) {
	if err := s.premium.DeleteQuote(r.Context(), mux.Vars(r)["id"]); err != nil {
		serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearQuotes(w http.ResponseWriter, r *http.Request) {
	n, err := s.premium.ClearQuotes(r.Context())
	if err != nil {
		serviceError(w, r, err)
		return
	}
	JSONResponse(w, http.StatusOK, map[string]int64{"deleted": n})
}
