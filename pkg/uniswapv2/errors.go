package uniswapv2

import "errors"

var (
	// ErrIdenticalAddresses is returned when a pair is requested for two
	// equal token addresses.
	ErrIdenticalAddresses = errors.New("identical token addresses")

	// ErrZeroAddress is returned when sorting yields the zero address as
	// token0.
	ErrZeroAddress = errors.New("zero token address")

	ErrInsufficientAmount       = errors.New("insufficient amount")
	ErrInsufficientInputAmount  = errors.New("insufficient input amount")
	ErrInsufficientOutputAmount = errors.New("insufficient output amount")

	// ErrInsufficientLiquidity covers empty reserves as well as an inverse
	// quote that asks for the whole reserve or more.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInvalidPath is returned for paths of fewer than two tokens.
	ErrInvalidPath = errors.New("path must contain at least two tokens")
)
