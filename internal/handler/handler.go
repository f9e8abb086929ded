package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/SeaBoo73/definitiveversion-sub001/internal/handler/dto"
)

type ResourceSvc interface {
	Create(ctx context.Context, input domain.CreateResourceInput) (*domain.Resource, error)
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
}

type CalendarSvc interface {
	GetAvailability(ctx context.Context, resourceID string, rng domain.DateRange) ([]*domain.AvailabilityDay, error)
	SetAvailability(ctx context.Context, resourceID string, day time.Time, input domain.UpdateAvailabilityInput) (*domain.AvailabilityDay, error)
}

type PricingSvc interface {
	Quote(ctx context.Context, resourceID string, rng domain.DateRange, demandMultiplier float64) (*domain.PriceBreakdown, error)
}

type LockSvc interface {
	CreateHold(ctx context.Context, in domain.CreateHoldInput) (*domain.ReservationHold, error)
	GetHold(ctx context.Context, holdID string) (*domain.ReservationHold, error)
	ReleaseHold(ctx context.Context, holdID, holderID string) error
}

type FinalizeSvc interface {
	Finalize(ctx context.Context, holdID string, conf domain.PaymentConfirmation) (*domain.Booking, error)
}

type RuleSvc interface {
	UpsertRule(ctx context.Context, rule *domain.BookingRule) (*domain.BookingRule, error)
	ListRules(ctx context.Context, resourceID string) ([]*domain.BookingRule, error)
	DeleteRule(ctx context.Context, ruleID string) error
}

type Handler struct {
	resources ResourceSvc
	calendar  CalendarSvc
	pricing   PricingSvc
	locks     LockSvc
	finalizer FinalizeSvc
	rules     RuleSvc
}

func NewHandler(
	resources ResourceSvc,
	calendar CalendarSvc,
	pricing PricingSvc,
	locks LockSvc,
	finalizer FinalizeSvc,
	rules RuleSvc,
) *Handler {
	return &Handler{
		resources: resources,
		calendar:  calendar,
		pricing:   pricing,
		locks:     locks,
		finalizer: finalizer,
		rules:     rules,
	}
}

// Resources

func (h *Handler) CreateResource(c *ginext.Context) {
	var req dto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resource, err := h.resources.Create(c.Request.Context(), domain.CreateResourceInput{
		OwnerID:         req.OwnerID,
		Name:            req.Name,
		DailyPriceCents: req.DailyPriceCents,
		Currency:        req.Currency,
		MaxAdvanceDays:  req.MaxAdvanceDays,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToResourceResponse(resource))
}

func (h *Handler) GetResource(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resource id"})
		return
	}

	resource, err := h.resources.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToResourceResponse(resource))
}

// Calendar

func (h *Handler) GetAvailability(c *ginext.Context) {
	resourceID := c.Param("id")
	if _, err := uuid.Parse(resourceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resource id"})
		return
	}

	rng, err := dto.ParseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	days, err := h.calendar.GetAvailability(c.Request.Context(), resourceID, rng)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AvailabilityDayResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, dto.ToAvailabilityDayResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SetAvailability(c *ginext.Context) {
	resourceID := c.Param("id")
	if _, err := uuid.Parse(resourceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resource id"})
		return
	}

	day, err := dto.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var req dto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.calendar.SetAvailability(c.Request.Context(), resourceID, day, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAvailabilityDayResponse(updated))
}

// Pricing

func (h *Handler) GetQuote(c *ginext.Context) {
	resourceID := c.Param("id")
	if _, err := uuid.Parse(resourceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resource id"})
		return
	}

	rng, err := dto.ParseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	demand := 1.0
	if raw := c.Query("demand"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid demand multiplier"})
			return
		}
		demand = parsed
	}

	breakdown, err := h.pricing.Quote(c.Request.Context(), resourceID, rng, demand)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// Holds

func (h *Handler) CreateHold(c *ginext.Context) {
	resourceID := c.Param("id")
	if _, err := uuid.Parse(resourceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resource id"})
		return
	}

	var req dto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rng, err := dto.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	hold, err := h.locks.CreateHold(c.Request.Context(), domain.CreateHoldInput{
		ResourceID:       resourceID,
		Range:            rng,
		HolderID:         req.HolderID,
		DemandMultiplier: req.DemandMultiplier,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHoldResponse(hold))
}

func (h *Handler) GetHold(c *ginext.Context) {
	holdID := c.Param("id")
	if _, err := uuid.Parse(holdID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hold id"})
		return
	}

	hold, err := h.locks.GetHold(c.Request.Context(), holdID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHoldResponse(hold))
}

func (h *Handler) ReleaseHold(c *ginext.Context) {
	holdID := c.Param("id")
	if _, err := uuid.Parse(holdID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hold id"})
		return
	}

	var req dto.ReleaseHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.locks.ReleaseHold(c.Request.Context(), holdID, req.HolderID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "released"})
}

func (h *Handler) FinalizeHold(c *ginext.Context) {
	holdID := c.Param("id")
	if _, err := uuid.Parse(holdID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hold id"})
		return
	}

	var req dto.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.finalizer.Finalize(c.Request.Context(), holdID, domain.PaymentConfirmation{
		Reference:   req.PaymentReference,
		HoldID:      holdID,
		AmountCents: req.AmountCents,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// Rules

func (h *Handler) UpsertRule(c *ginext.Context) {
	resourceID := c.Param("id")
	if _, err := uuid.Parse(resourceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resource id"})
		return
	}

	var req dto.UpsertRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rule, err := req.ToRule(resourceID)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	saved, err := h.rules.UpsertRule(c.Request.Context(), rule)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRuleResponse(saved))
}

func (h *Handler) ListRules(c *ginext.Context) {
	resourceID := c.Param("id")
	if _, err := uuid.Parse(resourceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid resource id"})
		return
	}

	rules, err := h.rules.ListRules(c.Request.Context(), resourceID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RuleResponse, 0, len(rules))
	for _, r := range rules {
		resp = append(resp, dto.ToRuleResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteRule(c *ginext.Context) {
	ruleID := c.Param("id")
	if _, err := uuid.Parse(ruleID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rule id"})
		return
	}

	if err := h.rules.DeleteRule(c.Request.Context(), ruleID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrResourceNotFound),
		errors.Is(err, domain.ErrHoldNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrRuleNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrBlocked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrExpired):
		c.JSON(http.StatusGone, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrPaymentMismatch),
		errors.Is(err, domain.ErrNotHoldOwner),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
