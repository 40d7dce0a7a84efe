// Package eth wraps chain access: dialing the RPC endpoint and reading pair
// reserves straight out of contract storage.
package eth

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

func Dial(ctx context.Context, url string) (*ethclient.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	return ethclient.DialContext(ctx, url)
}

// contract UniswapV2Pair {
//     ...
//     uint112 private reserve0;           // uses single storage slot, accessible via getReserves
//     uint112 private reserve1;           // uses single storage slot, accessible via getReserves
//     uint32  private blockTimestampLast; // uses single storage slot, accessible via getReserves

// reservesSlot is the storage slot holding the packed reserves word of a
// UniswapV2Pair (slot 8: reserve0 | reserve1 | blockTimestampLast).
const reservesSlot = 8

// ReserveReader reads pair reserves via eth_getStorageAt. It implements
// uniswapv2.ReserveSource. The zero block means latest; AtBlock pins every
// read of a derived copy to one block so a multi-hop quote sees mutually
// consistent snapshots.
type ReserveReader struct {
	client *ethclient.Client
	block  *big.Int // nil = latest
}

func NewReserveReader(client *ethclient.Client) *ReserveReader {
	return &ReserveReader{client: client}
}

// AtBlock returns a copy of the reader whose reads are pinned to block n.
func (r *ReserveReader) AtBlock(n *big.Int) *ReserveReader {
	return &ReserveReader{client: r.client, block: n}
}

// Reserves returns the pair's two reserve balances in canonical (token0,
// token1) order. A pair that was never deployed has empty storage and reads
// as zero reserves; the quoting layer rejects those as insufficient
// liquidity.
func (r *ReserveReader) Reserves(ctx context.Context, pair common.Address) (*big.Int, *big.Int, error) {
	key := common.BigToHash(new(big.Int).SetUint64(reservesSlot))
	raw, err := r.client.StorageAt(ctx, pair, key, r.block)
	if err != nil {
		return nil, nil, fmt.Errorf("storageAt slot %d (pair %s): %w", reservesSlot, pair.Hex(), err)
	}
	reserve0, reserve1 := unpackReserves(raw)
	return reserve0, reserve1, nil
}

// unpackReserves splits two uint112 reserves out of the 32-byte storage word
// used by Uniswap V2 pairs. The layout, big-endian within the 256-bit word:
//
//	[ 32 bits timestamp | 112 bits reserve1 | 112 bits reserve0 ]
func unpackReserves(b []byte) (reserve0, reserve1 *big.Int) {
	v := new(big.Int).SetBytes(b)
	mask112 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1))

	reserve0 = new(big.Int).And(v, mask112)
	reserve1 = new(big.Int).And(new(big.Int).Rsh(v, 112), mask112)
	return
}
