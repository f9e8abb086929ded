package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/SeaBoo73/definitiveversion-sub001/internal/handler/dto"
	hmocks "github.com/SeaBoo73/definitiveversion-sub001/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const (
	resourceID = "7f8c2ad2-1c3b-4a3d-9a5e-0f6d9c1b2a3c"
	holdID     = "3e0a9b1c-5d4f-4e6a-8b7c-9d0e1f2a3b4c"
	holderID   = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
	ownerID    = "b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e"
	ruleID     = "c3d4e5f6-a7b8-4c9d-0e1f-2a3b4c5d6e7f"
)

type handlerMocks struct {
	resources *hmocks.MockResourceSvc
	calendar  *hmocks.MockCalendarSvc
	pricing   *hmocks.MockPricingSvc
	locks     *hmocks.MockLockSvc
	finalizer *hmocks.MockFinalizeSvc
	rules     *hmocks.MockRuleSvc
}

func setupRouter(t *testing.T) (handlerMocks, http.Handler) {
	t.Helper()

	m := handlerMocks{
		resources: hmocks.NewMockResourceSvc(t),
		calendar:  hmocks.NewMockCalendarSvc(t),
		pricing:   hmocks.NewMockPricingSvc(t),
		locks:     hmocks.NewMockLockSvc(t),
		finalizer: hmocks.NewMockFinalizeSvc(t),
		rules:     hmocks.NewMockRuleSvc(t),
	}

	h := NewHandler(m.resources, m.calendar, m.pricing, m.locks, m.finalizer, m.rules)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/resources", h.CreateResource)
		api.GET("/resources/:id", h.GetResource)
		api.GET("/resources/:id/availability", h.GetAvailability)
		api.PUT("/resources/:id/availability/:date", h.SetAvailability)
		api.GET("/resources/:id/quote", h.GetQuote)
		api.POST("/resources/:id/holds", h.CreateHold)
		api.GET("/holds/:id", h.GetHold)
		api.POST("/holds/:id/finalize", h.FinalizeHold)
		api.POST("/holds/:id/release", h.ReleaseHold)
		api.PUT("/resources/:id/rules", h.UpsertRule)
		api.GET("/resources/:id/rules", h.ListRules)
		api.DELETE("/rules/:id", h.DeleteRule)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Resources ---

func TestHandler_CreateResource_Success(t *testing.T) {
	m, r := setupRouter(t)

	resource := &domain.Resource{
		ID:              resourceID,
		OwnerID:         ownerID,
		Name:            "Sunseeker 42",
		DailyPriceCents: 20000,
		Currency:        "EUR",
		MaxAdvanceDays:  365,
		CreatedAt:       time.Now(),
	}
	m.resources.EXPECT().Create(mock.Anything, mock.Anything).Return(resource, nil)

	w := doJSON(t, r, http.MethodPost, "/api/resources", dto.CreateResourceRequest{
		OwnerID:         ownerID,
		Name:            "Sunseeker 42",
		DailyPriceCents: 20000,
		MaxAdvanceDays:  365,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ResourceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sunseeker 42", resp.Name)
}

func TestHandler_CreateResource_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/resources", map[string]any{"name": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetResource_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.resources.EXPECT().GetByID(mock.Anything, resourceID).Return(nil, domain.ErrResourceNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/resources/"+resourceID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetResource_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/resources/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Calendar ---

func TestHandler_GetAvailability_Success(t *testing.T) {
	m, r := setupRouter(t)

	days := []*domain.AvailabilityDay{
		{
			ResourceID:      resourceID,
			Day:             time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			Available:       true,
			BasePriceCents:  20000,
			Season:          domain.SeasonHigh,
			PriceMultiplier: 1.5,
		},
	}
	m.calendar.EXPECT().GetAvailability(mock.Anything, resourceID, mock.Anything).Return(days, nil)

	w := doJSON(t, r, http.MethodGet, "/api/resources/"+resourceID+"/availability?from=2026-07-10&to=2026-07-11", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AvailabilityDayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2026-07-10", resp[0].Day)
	assert.Equal(t, 1.5, resp[0].PriceMultiplier)
}

func TestHandler_GetAvailability_BadDates(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/resources/"+resourceID+"/availability?from=soon&to=later", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SetAvailability_BookedDayConflict(t *testing.T) {
	m, r := setupRouter(t)

	m.calendar.EXPECT().SetAvailability(mock.Anything, resourceID, mock.Anything, mock.Anything).Return(nil, domain.ErrBlocked)

	w := doJSON(t, r, http.MethodPut, "/api/resources/"+resourceID+"/availability/2026-07-11", map[string]any{
		"available": false,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Pricing ---

func TestHandler_GetQuote_Success(t *testing.T) {
	m, r := setupRouter(t)

	breakdown := &domain.PriceBreakdown{
		ResourceID:          resourceID,
		SeasonAdjustedCents: 90000,
		DiscountPercentage:  10,
		SavingsCents:        9000,
		FinalPriceCents:     81000,
	}
	m.pricing.EXPECT().Quote(mock.Anything, resourceID, mock.Anything, 1.5).Return(breakdown, nil)

	w := doJSON(t, r, http.MethodGet, "/api/resources/"+resourceID+"/quote?from=2026-07-10&to=2026-07-13&demand=1.5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.PriceBreakdown
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(81000), resp.FinalPriceCents)
}

func TestHandler_GetQuote_InvalidDemand(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/resources/"+resourceID+"/quote?from=2026-07-10&to=2026-07-13&demand=surge", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Holds ---

func TestHandler_CreateHold_Success(t *testing.T) {
	m, r := setupRouter(t)

	hold := &domain.ReservationHold{
		ID:         holdID,
		ResourceID: resourceID,
		Range: domain.NewDateRange(
			time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
		),
		HolderID:         holderID,
		Status:           domain.HoldStatusActive,
		QuotedPriceCents: 81000,
		ExpiresAt:        time.Now().Add(15 * time.Minute),
		CreatedAt:        time.Now(),
	}
	m.locks.EXPECT().CreateHold(mock.Anything, mock.Anything).Return(hold, nil)

	w := doJSON(t, r, http.MethodPost, "/api/resources/"+resourceID+"/holds", dto.CreateHoldRequest{
		StartDate: "2026-07-10",
		EndDate:   "2026-07-13",
		HolderID:  holderID,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.HoldResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, holdID, resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, int64(81000), resp.QuotedPriceCents)
}

func TestHandler_CreateHold_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	m.locks.EXPECT().CreateHold(mock.Anything, mock.Anything).Return(nil, domain.ErrConflict)

	w := doJSON(t, r, http.MethodPost, "/api/resources/"+resourceID+"/holds", dto.CreateHoldRequest{
		StartDate: "2026-07-10",
		EndDate:   "2026-07-13",
		HolderID:  holderID,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateHold_MissingHolder(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/resources/"+resourceID+"/holds", map[string]any{
		"start_date": "2026-07-10",
		"end_date":   "2026-07-13",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReleaseHold_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.locks.EXPECT().ReleaseHold(mock.Anything, holdID, holderID).Return(nil)

	w := doJSON(t, r, http.MethodPost, "/api/holds/"+holdID+"/release", dto.ReleaseHoldRequest{HolderID: holderID})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ReleaseHold_WrongOwner(t *testing.T) {
	m, r := setupRouter(t)

	m.locks.EXPECT().ReleaseHold(mock.Anything, holdID, holderID).Return(domain.ErrNotHoldOwner)

	w := doJSON(t, r, http.MethodPost, "/api/holds/"+holdID+"/release", dto.ReleaseHoldRequest{HolderID: holderID})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Finalize ---

func TestHandler_FinalizeHold_Success(t *testing.T) {
	m, r := setupRouter(t)

	booking := &domain.Booking{
		ID:         "booking-1",
		ResourceID: resourceID,
		Range: domain.NewDateRange(
			time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
		),
		HolderID:        holderID,
		FinalPriceCents: 81000,
		Status:          domain.BookingStatusConfirmed,
		CreatedAt:       time.Now(),
	}
	m.finalizer.EXPECT().Finalize(mock.Anything, holdID, domain.PaymentConfirmation{
		Reference:   "pay_123",
		HoldID:      holdID,
		AmountCents: 81000,
	}).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/holds/"+holdID+"/finalize", dto.FinalizeRequest{
		PaymentReference: "pay_123",
		AmountCents:      81000,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, int64(81000), resp.FinalPriceCents)
}

func TestHandler_FinalizeHold_Expired(t *testing.T) {
	m, r := setupRouter(t)

	m.finalizer.EXPECT().Finalize(mock.Anything, holdID, mock.Anything).Return(nil, domain.ErrExpired)

	w := doJSON(t, r, http.MethodPost, "/api/holds/"+holdID+"/finalize", dto.FinalizeRequest{
		PaymentReference: "pay_123",
		AmountCents:      81000,
	})

	assert.Equal(t, http.StatusGone, w.Code)
}

func TestHandler_FinalizeHold_AlreadyConsumed(t *testing.T) {
	m, r := setupRouter(t)

	m.finalizer.EXPECT().Finalize(mock.Anything, holdID, mock.Anything).Return(nil, domain.ErrConflict)

	w := doJSON(t, r, http.MethodPost, "/api/holds/"+holdID+"/finalize", dto.FinalizeRequest{
		PaymentReference: "pay_123",
		AmountCents:      81000,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_FinalizeHold_PaymentMismatch(t *testing.T) {
	m, r := setupRouter(t)

	m.finalizer.EXPECT().Finalize(mock.Anything, holdID, mock.Anything).Return(nil, domain.ErrPaymentMismatch)

	w := doJSON(t, r, http.MethodPost, "/api/holds/"+holdID+"/finalize", dto.FinalizeRequest{
		PaymentReference: "pay_123",
		AmountCents:      1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Rules ---

func TestHandler_UpsertRule_Success(t *testing.T) {
	m, r := setupRouter(t)

	saved := &domain.BookingRule{
		ID:                 ruleID,
		ResourceID:         resourceID,
		Name:               "Weekly deal",
		RuleType:           domain.RuleMultiDay,
		DiscountPercentage: 10,
		Active:             true,
	}
	m.rules.EXPECT().UpsertRule(mock.Anything, mock.Anything).Return(saved, nil)

	w := doJSON(t, r, http.MethodPut, "/api/resources/"+resourceID+"/rules", dto.UpsertRuleRequest{
		Name:               "Weekly deal",
		RuleType:           "multi_day",
		DiscountPercentage: 10,
		Active:             true,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RuleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ruleID, resp.ID)
}

func TestHandler_UpsertRule_InvalidType(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPut, "/api/resources/"+resourceID+"/rules", map[string]any{
		"name":      "Weird",
		"rule_type": "flash_sale",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteRule_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.rules.EXPECT().DeleteRule(mock.Anything, ruleID).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/rules/"+ruleID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
