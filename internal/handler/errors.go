package handler

import "github.com/gofiber/fiber/v3"

// ErrInvalidQueryParameters indicates that the request query string could not
// be parsed into the expected structure.
var ErrInvalidQueryParameters = fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")

// ErrAmountRequired is returned when the amount parameter is missing.
var ErrAmountRequired = fiber.NewError(fiber.StatusBadRequest, "amount is required")

// ErrInvalidAmountFormat is returned when the amount cannot be parsed as a
// base-10 integer.
var ErrInvalidAmountFormat = fiber.NewError(fiber.StatusBadRequest, "invalid amount format")

// ErrAmountNonPositive is returned when the amount is zero or negative.
var ErrAmountNonPositive = fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")

// ErrIdenticalTokensBadRequest maps an identical-tokens pair request to a 400
// error.
var ErrIdenticalTokensBadRequest = fiber.NewError(fiber.StatusBadRequest, "token addresses cannot be the same")

// ErrZeroTokenBadRequest maps a zero token address to a 400 error.
var ErrZeroTokenBadRequest = fiber.NewError(fiber.StatusBadRequest, "token address cannot be zero")

// ErrPathTooShortBadRequest maps a too-short trade path to a 400 error.
var ErrPathTooShortBadRequest = fiber.NewError(fiber.StatusBadRequest, "path must contain at least two tokens")

// ErrInsufficientLiquidityBadRequest maps empty or outsized reserve
// conditions to a 400 error.
var ErrInsufficientLiquidityBadRequest = fiber.NewError(fiber.StatusBadRequest, "pair has insufficient liquidity")

// ErrZeroAmountBadRequest maps a zero amount argument to a 400 error.
var ErrZeroAmountBadRequest = fiber.NewError(fiber.StatusBadRequest, "amount must be greater than zero")

// ErrQuoteFailedInternal signals a generic server-side quoting error.
var ErrQuoteFailedInternal = fiber.NewError(fiber.StatusInternalServerError, "quote failed")

// NewInvalidAmount wraps an amount parsing error into a 400 Bad Request with
// a descriptive message.
func NewInvalidAmount(field string, err error) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+": "+err.Error())
}

// NewAddressRequired returns a 400 Bad Request for a missing address field.
func NewAddressRequired(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, field+" address is required")
}

// NewInvalidAddress returns a 400 Bad Request for an invalid address format.
func NewInvalidAddress(field string) error {
	return fiber.NewError(fiber.StatusBadRequest, "invalid "+field+" address")
}
