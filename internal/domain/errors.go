package domain

import "errors"

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrHoldNotFound     = errors.New("hold not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrRuleNotFound     = errors.New("booking rule not found")
)

var (
	ErrConflict        = errors.New("date range conflicts with an active hold or confirmed booking")
	ErrExpired         = errors.New("hold has expired")
	ErrInvalidRange    = errors.New("invalid date range")
	ErrBlocked         = errors.New("day is blocked by a confirmed booking")
	ErrNotHoldOwner    = errors.New("caller does not own this hold")
	ErrPaymentMismatch = errors.New("payment confirmation does not match the hold")
	ErrBookingFailed   = errors.New("booking transaction failed")
)

var (
	ErrValidation = errors.New("validation error")
)
