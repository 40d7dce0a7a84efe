package handler

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"

	"github.com/liwang258/v2-periphery/internal/service"
	"github.com/liwang258/v2-periphery/pkg/uniswapv2"
)

// QuoteHandler serves pair derivation, reserve lookup and swap quoting over
// HTTP. Requests may name a factory explicitly; otherwise the configured
// default is used.
type QuoteHandler struct {
	BaseHandler
	service        *service.QuoteService
	defaultFactory common.Address
}

func NewQuoteHandler(logger *slog.Logger, svc *service.QuoteService, defaultFactory common.Address) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler: BaseHandler{
			logger: logger,
		},
		service:        svc,
		defaultFactory: defaultFactory,
	}
}

type PairRequest struct {
	Factory string `query:"factory" json:"factory"`
	TokenA  string `query:"token_a" json:"token_a"`
	TokenB  string `query:"token_b" json:"token_b"`
}

type AmountsRequest struct {
	Factory string `query:"factory" json:"factory"`
	Amount  string `query:"amount" json:"amount"`
	Path    string `query:"path" json:"path"`
}

type ReservesResponse struct {
	Pair     string `json:"pair"`
	ReserveA string `json:"reserve_a"`
	ReserveB string `json:"reserve_b"`
}

type AmountsResponse struct {
	Amounts []string `json:"amounts"`
}

// Pair returns the deterministic pair address for two tokens. No chain
// access is involved.
func (h *QuoteHandler) Pair() fiber.Handler {
	return func(c fiber.Ctx) error {
		factory, tokenA, tokenB, err := h.parsePairRequest(c)
		if err != nil {
			return err
		}

		pair, err := h.service.PairAddress(factory, tokenA, tokenB)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.SendString(pair.Hex())
	}
}

// Reserves returns the pair's current reserves in the requested token order.
func (h *QuoteHandler) Reserves() fiber.Handler {
	return func(c fiber.Ctx) error {
		factory, tokenA, tokenB, err := h.parsePairRequest(c)
		if err != nil {
			return err
		}

		reserveA, reserveB, err := h.service.Reserves(context.Background(), factory, tokenA, tokenB)
		if err != nil {
			return h.handleServiceError(err)
		}

		pair, _ := h.service.PairAddress(factory, tokenA, tokenB)
		return c.JSON(ReservesResponse{
			Pair:     pair.Hex(),
			ReserveA: reserveA.String(),
			ReserveB: reserveB.String(),
		})
	}
}

// AmountsOut quotes a forward swap along a path of token addresses.
func (h *QuoteHandler) AmountsOut() fiber.Handler {
	return func(c fiber.Ctx) error {
		factory, amount, path, err := h.parseAmountsRequest(c)
		if err != nil {
			return err
		}

		amounts, err := h.service.AmountsOut(context.Background(), factory, amount, path)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("amounts out served", "in", amount.String(), "out", amounts[len(amounts)-1].String(), "hops", len(path)-1)
		return c.JSON(amountsResponse(amounts))
	}
}

// AmountsIn quotes the inputs required to receive an exact output along a
// path of token addresses.
func (h *QuoteHandler) AmountsIn() fiber.Handler {
	return func(c fiber.Ctx) error {
		factory, amount, path, err := h.parseAmountsRequest(c)
		if err != nil {
			return err
		}

		amounts, err := h.service.AmountsIn(context.Background(), factory, amount, path)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("amounts in served", "out", amount.String(), "in", amounts[0].String(), "hops", len(path)-1)
		return c.JSON(amountsResponse(amounts))
	}
}

func amountsResponse(amounts []*big.Int) AmountsResponse {
	resp := AmountsResponse{Amounts: make([]string, len(amounts))}
	for i, a := range amounts {
		resp.Amounts[i] = a.String()
	}
	return resp
}

func (h *QuoteHandler) parsePairRequest(c fiber.Ctx) (factory, tokenA, tokenB common.Address, err error) {
	var req PairRequest
	if err := c.Bind().Query(&req); err != nil {
		h.logger.Debug("failed to bind query parameters", "err", err)
		return common.Address{}, common.Address{}, common.Address{}, ErrInvalidQueryParameters
	}

	factory, err = h.parseFactory(req.Factory)
	if err != nil {
		return common.Address{}, common.Address{}, common.Address{}, err
	}
	tokenA, err = parseAddress("token_a", req.TokenA)
	if err != nil {
		return common.Address{}, common.Address{}, common.Address{}, err
	}
	tokenB, err = parseAddress("token_b", req.TokenB)
	if err != nil {
		return common.Address{}, common.Address{}, common.Address{}, err
	}
	return factory, tokenA, tokenB, nil
}

func (h *QuoteHandler) parseAmountsRequest(c fiber.Ctx) (factory common.Address, amount *big.Int, path []common.Address, err error) {
	var req AmountsRequest
	if err := c.Bind().Query(&req); err != nil {
		h.logger.Debug("failed to bind query parameters", "err", err)
		return common.Address{}, nil, nil, ErrInvalidQueryParameters
	}

	factory, err = h.parseFactory(req.Factory)
	if err != nil {
		return common.Address{}, nil, nil, err
	}

	amount, err = parseAmount(req.Amount)
	if err != nil {
		return common.Address{}, nil, nil, NewInvalidAmount("amount", err)
	}

	path, err = parsePath(req.Path)
	if err != nil {
		return common.Address{}, nil, nil, err
	}

	return factory, amount, path, nil
}

// parseFactory resolves the optional factory parameter, falling back to the
// configured default.
func (h *QuoteHandler) parseFactory(raw string) (common.Address, error) {
	if raw == "" {
		return h.defaultFactory, nil
	}
	return parseAddress("factory", raw)
}

func parseAddress(field, raw string) (common.Address, error) {
	if raw == "" {
		return common.Address{}, NewAddressRequired(field)
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, NewInvalidAddress(field)
	}
	return common.HexToAddress(raw), nil
}

func parseAmount(amountStr string) (*big.Int, error) {
	if amountStr == "" {
		return nil, ErrAmountRequired
	}

	amount, ok := new(big.Int).SetString(amountStr, 10)
	if !ok {
		return nil, ErrInvalidAmountFormat
	}

	if amount.Sign() <= 0 {
		return nil, ErrAmountNonPositive
	}

	return amount, nil
}

// parsePath splits a comma-separated list of hex addresses. Path length is
// validated downstream so short paths surface as the library's invalid-path
// error.
func parsePath(raw string) ([]common.Address, error) {
	if raw == "" {
		return nil, ErrPathTooShortBadRequest
	}
	parts := strings.Split(raw, ",")
	path := make([]common.Address, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !common.IsHexAddress(p) {
			return nil, NewInvalidAddress("path")
		}
		path = append(path, common.HexToAddress(p))
	}
	return path, nil
}

func (h *QuoteHandler) handleServiceError(err error) error {
	switch {
	case errors.Is(err, uniswapv2.ErrIdenticalAddresses):
		return ErrIdenticalTokensBadRequest
	case errors.Is(err, uniswapv2.ErrZeroAddress):
		return ErrZeroTokenBadRequest
	case errors.Is(err, uniswapv2.ErrInvalidPath):
		return ErrPathTooShortBadRequest
	case errors.Is(err, uniswapv2.ErrInsufficientLiquidity):
		return ErrInsufficientLiquidityBadRequest
	case errors.Is(err, uniswapv2.ErrInsufficientAmount),
		errors.Is(err, uniswapv2.ErrInsufficientInputAmount),
		errors.Is(err, uniswapv2.ErrInsufficientOutputAmount):
		return ErrZeroAmountBadRequest
	default:
		h.logger.Error("service quote failed", "err", err)
		return ErrQuoteFailedInternal
	}
}
