package main

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/urfave/cli"
)

// activeNetParams returns the parameters of the network selected through
// the global flags. The default is mainnet; regtest takes precedence over
// testnet when both are given.
func activeNetParams(ctx *cli.Context) *chaincfg.Params {
	switch {
	case ctx.GlobalBool("regtest"):
		return &chaincfg.RegressionNetParams

	case ctx.GlobalBool("testnet"):
		return &chaincfg.TestNet3Params

	default:
		return &chaincfg.MainNetParams
	}
}
