package uniswapv2

import "math/big"

// fee: 0.3% => multiplier 997/1000
var (
	feeMul = big.NewInt(997)
	feeDen = big.NewInt(1000)
	one    = big.NewInt(1)
)

// Quote converts amountA into the equivalent amount of the other asset at
// the current reserve ratio. No fee is applied; this is the proportional
// conversion used for liquidity ratios, not for swaps. Rounds down.
func Quote(amountA, reserveA, reserveB *big.Int) (*big.Int, error) {
	if amountA.Sign() <= 0 {
		return nil, ErrInsufficientAmount
	}
	if reserveA.Sign() <= 0 || reserveB.Sign() <= 0 {
		return nil, ErrInsufficientLiquidity
	}
	amountB := new(big.Int).Mul(amountA, reserveB)
	return amountB.Div(amountB, reserveA), nil
}

// GetAmountOut returns the maximum output amount a swap of amountIn yields
// against the given reserves, after the 0.3% fee:
//
//	out = (amountIn*997 * reserveOut) / (reserveIn*1000 + amountIn*997)
//
// The division truncates, so rounding always favors the pool.
func GetAmountOut(amountIn, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if amountIn.Sign() <= 0 {
		return nil, ErrInsufficientInputAmount
	}
	if reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return nil, ErrInsufficientLiquidity
	}

	amountInWithFee := new(big.Int).Mul(amountIn, feeMul)
	numerator := new(big.Int).Mul(amountInWithFee, reserveOut)
	denominator := new(big.Int).Mul(reserveIn, feeDen)
	denominator.Add(denominator, amountInWithFee)
	return numerator.Div(numerator, denominator), nil
}

// GetAmountIn returns the input amount required to receive exactly amountOut
// from the given reserves:
//
//	in = (reserveIn * amountOut * 1000) / ((reserveOut - amountOut) * 997) + 1
//
// The +1 rounds the required input up, so the quoted input is never short.
// A pair cannot pay out its entire reserve, so amountOut must be strictly
// less than reserveOut; the guard here keeps that case out of the division.
func GetAmountIn(amountOut, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if amountOut.Sign() <= 0 {
		return nil, ErrInsufficientOutputAmount
	}
	if reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return nil, ErrInsufficientLiquidity
	}
	if amountOut.Cmp(reserveOut) >= 0 {
		return nil, ErrInsufficientLiquidity
	}

	numerator := new(big.Int).Mul(reserveIn, amountOut)
	numerator.Mul(numerator, feeDen)
	denominator := new(big.Int).Sub(reserveOut, amountOut)
	denominator.Mul(denominator, feeMul)
	amountIn := numerator.Div(numerator, denominator)
	return amountIn.Add(amountIn, one), nil
}
