package config

import (
	"os"

	"github.com/ethereum/go-ethereum/common"
)

// defaultFactory is the Uniswap V2 factory on Ethereum mainnet.
const defaultFactory = "0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f"

type Config struct {
	Addr        string
	RPCEndpoint string
	Factory     common.Address
	LogLevel    string
}

func FromEnv() (*Config, error) {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":1337"
	}

	rpcURL := os.Getenv("ETH_RPC_URL")
	if rpcURL == "" {
		return nil, ErrMissingRPCEndpoint
	}

	factoryHex := os.Getenv("FACTORY_ADDRESS")
	if factoryHex == "" {
		factoryHex = defaultFactory
	}
	if !common.IsHexAddress(factoryHex) {
		return nil, ErrInvalidFactoryAddress
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	cfg := &Config{
		Addr:        addr,
		RPCEndpoint: rpcURL,
		Factory:     common.HexToAddress(factoryHex),
		LogLevel:    logLevel,
	}

	return cfg, nil
}
