package domain

// DayPrice is one day's contribution to a quote.
type DayPrice struct {
	Day        string  `json:"day"`
	BaseCents  int64   `json:"base_cents"`
	Multiplier float64 `json:"multiplier"`
	PriceCents int64   `json:"price_cents"`
}

// PriceBreakdown is the output of a quote. Pure data: safe to recompute on
// every UI preview.
type PriceBreakdown struct {
	ResourceID          string            `json:"resource_id"`
	Range               DateRange         `json:"range"`
	Days                []DayPrice        `json:"days"`
	BasePriceCents      int64             `json:"base_price_cents"`
	SeasonAdjustedCents int64             `json:"season_adjusted_cents"`
	DemandMultiplier    float64           `json:"demand_multiplier"`
	AppliedDiscounts    []AppliedDiscount `json:"applied_discounts"`
	DiscountPercentage  float64           `json:"discount_percentage"`
	FinalPriceCents     int64             `json:"final_price_cents"`
	SavingsCents        int64             `json:"savings_cents"`
}
