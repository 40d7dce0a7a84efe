package service

import (
	"context"
	"fmt"
	"math/big"

	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/liwang258/v2-periphery/internal/eth"
	"github.com/liwang258/v2-periphery/pkg/uniswapv2"
)

// QuoteService answers pricing and addressing queries for Uniswap V2 pools
// by deriving pair addresses locally and reading reserves from on-chain pair
// storage at the latest block.
type QuoteService struct {
	BaseService
	ethereumClient *ethclient.Client
	reserves       *eth.ReserveReader
}

// NewQuoteService constructs a QuoteService using the provided logger and
// Ethereum client.
func NewQuoteService(logger *slog.Logger, ec ethclient.Client) *QuoteService {
	return &QuoteService{
		BaseService:    BaseService{logger: logger},
		ethereumClient: &ec,
		reserves:       eth.NewReserveReader(&ec),
	}
}

// pinnedReserves resolves the latest block once and returns a reader pinned
// to it, so every reserve snapshot within one request comes from the same
// block. Pair state can still change between requests; that staleness is
// inherent to quoting.
func (s *QuoteService) pinnedReserves(ctx context.Context) (*eth.ReserveReader, error) {
	bn, err := s.ethereumClient.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("block number: %w", err)
	}
	return s.reserves.AtBlock(new(big.Int).SetUint64(bn)), nil
}

// AmountsOut quotes a forward swap of amountIn along path, returning one
// amount per path token; the last element is the net output after fees.
func (s *QuoteService) AmountsOut(ctx context.Context, factory common.Address, amountIn *big.Int, path []common.Address) ([]*big.Int, error) {
	s.logger.Debug("quoting amounts out", "factory", factory.Hex(), "in", amountIn.String(), "hops", len(path)-1)

	if factory == (common.Address{}) {
		return nil, ErrZeroFactory
	}
	source, err := s.pinnedReserves(ctx)
	if err != nil {
		return nil, err
	}

	amounts, err := uniswapv2.GetAmountsOut(ctx, source, factory, amountIn, path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("amounts out computed", "out", amounts[len(amounts)-1].String())
	return amounts, nil
}

// AmountsIn quotes the inputs required along path to receive exactly
// amountOut of the final token; the first element is the total input needed.
func (s *QuoteService) AmountsIn(ctx context.Context, factory common.Address, amountOut *big.Int, path []common.Address) ([]*big.Int, error) {
	s.logger.Debug("quoting amounts in", "factory", factory.Hex(), "out", amountOut.String(), "hops", len(path)-1)

	if factory == (common.Address{}) {
		return nil, ErrZeroFactory
	}
	source, err := s.pinnedReserves(ctx)
	if err != nil {
		return nil, err
	}

	amounts, err := uniswapv2.GetAmountsIn(ctx, source, factory, amountOut, path)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("amounts in computed", "in", amounts[0].String())
	return amounts, nil
}

// Reserves returns the pair's reserves for (tokenA, tokenB) in the caller's
// token order.
func (s *QuoteService) Reserves(ctx context.Context, factory, tokenA, tokenB common.Address) (*big.Int, *big.Int, error) {
	if factory == (common.Address{}) {
		return nil, nil, ErrZeroFactory
	}
	source, err := s.pinnedReserves(ctx)
	if err != nil {
		return nil, nil, err
	}
	return uniswapv2.GetReserves(ctx, source, factory, tokenA, tokenB)
}

// PairAddress derives the pair address for (tokenA, tokenB) under factory.
// Pure computation, no chain access.
func (s *QuoteService) PairAddress(factory, tokenA, tokenB common.Address) (common.Address, error) {
	if factory == (common.Address{}) {
		return common.Address{}, ErrZeroFactory
	}
	return uniswapv2.PairFor(factory, tokenA, tokenB)
}
