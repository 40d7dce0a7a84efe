package uniswapv2

import (
	"context"
	"math/big"
	"os"
	"testing"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// router02 is the canonical Uniswap V2 router on mainnet; its getAmountOut
// is the reference for our math.
var router02 = common.HexToAddress("0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D")

func selector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}

func padArg(b []byte) []byte {
	return common.LeftPadBytes(b, 32)
}

// TestPairFor_Onchain compares the local CREATE2 derivation against the
// factory's getPair mapping via eth_call. Skips if ETH_RPC_URL is not set.
func TestPairFor_Onchain(t *testing.T) {
	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		t.Skip("ETH_RPC_URL not set; skipping on-chain comparison test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		t.Fatalf("dial eth rpc: %v", err)
	}
	defer client.Close()

	data := append(selector("getPair(address,address)"), padArg(dai.Bytes())...)
	data = append(data, padArg(weth.Bytes())...)

	ret, err := client.CallContract(ctx, ethereum.CallMsg{To: &uniFactory, Data: data}, nil)
	if err != nil {
		t.Fatalf("eth_call getPair: %v", err)
	}
	onchain := common.BytesToAddress(ret)

	local, err := PairFor(uniFactory, dai, weth)
	if err != nil {
		t.Fatalf("PairFor: %v", err)
	}
	if local != onchain {
		t.Fatalf("derived pair diverges from factory: local %s onchain %s", local.Hex(), onchain.Hex())
	}
}

// TestGetAmountOut_Onchain compares the local formula against Router02's
// getAmountOut via eth_call. Skips if ETH_RPC_URL is not set.
func TestGetAmountOut_Onchain(t *testing.T) {
	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		t.Skip("ETH_RPC_URL not set; skipping on-chain comparison test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		t.Fatalf("dial eth rpc: %v", err)
	}
	defer client.Close()

	amountIn := big.NewInt(1_000_000_000)
	reserveIn := new(big.Int).SetUint64(13_451_234_567_890)
	reserveOut := new(big.Int).SetUint64(98_765_432_109_876)

	data := selector("getAmountOut(uint256,uint256,uint256)")
	data = append(data, padArg(amountIn.Bytes())...)
	data = append(data, padArg(reserveIn.Bytes())...)
	data = append(data, padArg(reserveOut.Bytes())...)

	ret, err := client.CallContract(ctx, ethereum.CallMsg{To: &router02, Data: data}, nil)
	if err != nil {
		t.Fatalf("eth_call getAmountOut: %v", err)
	}
	onchain := new(big.Int).SetBytes(ret)

	local, err := GetAmountOut(amountIn, reserveIn, reserveOut)
	if err != nil {
		t.Fatalf("GetAmountOut: %v", err)
	}
	if local.Cmp(onchain) != 0 {
		t.Fatalf("formula diverges from router: local %s onchain %s", local, onchain)
	}
}
