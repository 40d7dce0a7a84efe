package uniswapv2

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ReserveSource reads the two reserve balances a pair currently holds, in
// canonical (token0, token1) order. Implementations wrap whatever backing
// store holds live pair state; the library never caches what they return,
// so a snapshot may be stale the moment it is read.
type ReserveSource interface {
	Reserves(ctx context.Context, pair common.Address) (reserve0, reserve1 *big.Int, err error)
}

// GetReserves fetches the reserves of the pair for (tokenA, tokenB) under
// factory and returns them in the caller's (tokenA, tokenB) order.
func GetReserves(ctx context.Context, source ReserveSource, factory, tokenA, tokenB common.Address) (reserveA, reserveB *big.Int, err error) {
	token0, _, err := SortTokens(tokenA, tokenB)
	if err != nil {
		return nil, nil, err
	}
	pair, err := PairFor(factory, tokenA, tokenB)
	if err != nil {
		return nil, nil, err
	}

	reserve0, reserve1, err := source.Reserves(ctx, pair)
	if err != nil {
		return nil, nil, fmt.Errorf("reserves of pair %s: %w", pair.Hex(), err)
	}

	if tokenA == token0 {
		return reserve0, reserve1, nil
	}
	return reserve1, reserve0, nil
}

// GetAmountsOut performs chained GetAmountOut calculations along path,
// starting from amountIn of path[0]. The returned vector holds one amount
// per path element; the last is the net output after every hop's fee. A
// failure on any hop aborts the whole chain.
func GetAmountsOut(ctx context.Context, source ReserveSource, factory common.Address, amountIn *big.Int, path []common.Address) ([]*big.Int, error) {
	if len(path) < 2 {
		return nil, ErrInvalidPath
	}

	amounts := make([]*big.Int, len(path))
	amounts[0] = amountIn
	for i := 0; i < len(path)-1; i++ {
		reserveIn, reserveOut, err := GetReserves(ctx, source, factory, path[i], path[i+1])
		if err != nil {
			return nil, err
		}
		amounts[i+1], err = GetAmountOut(amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, fmt.Errorf("hop %d (%s -> %s): %w", i, path[i].Hex(), path[i+1].Hex(), err)
		}
	}
	return amounts, nil
}

// GetAmountsIn performs chained GetAmountIn calculations along path, walking
// backward from amountOut of the final token. The first element of the
// returned vector is the total input required to guarantee amountOut after
// every hop's fee.
func GetAmountsIn(ctx context.Context, source ReserveSource, factory common.Address, amountOut *big.Int, path []common.Address) ([]*big.Int, error) {
	if len(path) < 2 {
		return nil, ErrInvalidPath
	}

	amounts := make([]*big.Int, len(path))
	amounts[len(amounts)-1] = amountOut
	for i := len(path) - 1; i > 0; i-- {
		reserveIn, reserveOut, err := GetReserves(ctx, source, factory, path[i-1], path[i])
		if err != nil {
			return nil, err
		}
		amounts[i-1], err = GetAmountIn(amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, fmt.Errorf("hop %d (%s -> %s): %w", i-1, path[i-1].Hex(), path[i].Hex(), err)
		}
	}
	return amounts, nil
}
