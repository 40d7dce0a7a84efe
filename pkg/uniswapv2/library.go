// Package uniswapv2 implements the deterministic pricing and addressing
// primitives of a Uniswap V2 style constant-product exchange: canonical pair
// sorting, CREATE2 pair address derivation, reserve lookup and the swap
// quoting formulas, single-hop and chained.
package uniswapv2

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// PairInitCodeHash is keccak256 of the UniswapV2Pair creation bytecode. The
// factory deploys pairs via CREATE2, so this fingerprint plus the factory
// address and the sorted token pair fully determine every pair address.
var PairInitCodeHash = common.HexToHash("0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbee326c3e7da348845f")

// SortTokens returns the two token addresses in canonical order: token0 is
// the numerically smaller address. Every caller that derives a pair from an
// unordered (tokenA, tokenB) goes through this, so both argument orders map
// to the same pair.
func SortTokens(tokenA, tokenB common.Address) (token0, token1 common.Address, err error) {
	if tokenA == tokenB {
		return common.Address{}, common.Address{}, ErrIdenticalAddresses
	}
	token0, token1 = tokenA, tokenB
	if token1.Cmp(token0) < 0 {
		token0, token1 = token1, token0
	}
	if token0 == (common.Address{}) {
		return common.Address{}, common.Address{}, ErrZeroAddress
	}
	return token0, token1, nil
}

// PairFor computes the address the factory would deploy the pair for
// (tokenA, tokenB) at, without any chain access. Uses the canonical Uniswap
// V2 pair fingerprint; forks with a different pair bytecode go through
// PairForWithFingerprint.
func PairFor(factory, tokenA, tokenB common.Address) (common.Address, error) {
	return PairForWithFingerprint(factory, tokenA, tokenB, PairInitCodeHash)
}

// PairForWithFingerprint derives the CREATE2 pair address under the given
// factory for a fork whose pair creation code hashes to initCodeHash:
//
//	keccak256(0xff ++ factory ++ keccak256(token0 ++ token1) ++ initCodeHash)[12:]
//
// The salt hashes the packed 20-byte token addresses, not ABI-padded words.
func PairForWithFingerprint(factory, tokenA, tokenB common.Address, initCodeHash common.Hash) (common.Address, error) {
	token0, token1, err := SortTokens(tokenA, tokenB)
	if err != nil {
		return common.Address{}, err
	}

	salt := crypto.Keccak256Hash(token0.Bytes(), token1.Bytes())

	data := make([]byte, 1+20+32+32)
	data[0] = 0xff
	copy(data[1:21], factory.Bytes())
	copy(data[21:53], salt.Bytes())
	copy(data[53:85], initCodeHash.Bytes())

	// BytesToAddress keeps the low 20 bytes of the digest.
	return common.BytesToAddress(crypto.Keccak256(data)), nil
}
