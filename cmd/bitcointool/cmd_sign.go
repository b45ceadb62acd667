package main

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/urfave/cli"

	"github.com/santos177/bitcointool/keys"
	"github.com/santos177/bitcointool/txsign"
)

var signCommand = cli.Command{
	Name:      "sign",
	Category:  "Transactions",
	Usage:     "Compute the sighash of a transaction input and sign it.",
	ArgsUsage: "",
	Description: `
	Computes the legacy signature hash of the designated input of the
	given transaction over the given previous output script. If a WIF
	private key is supplied and decodes for the active network, the input
	is signed and the compact and DER signatures as well as the signed
	transaction are printed.`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "txhex, x",
			Usage: "the hex encoded transaction",
		},
		cli.StringFlag{
			Name:  "scripthex, s",
			Usage: "the hex encoded previous output script",
		},
		cli.IntFlag{
			Name:  "inputindex, i",
			Usage: "the input to compute the sighash for",
		},
		cli.IntFlag{
			Name:  "sighashtype",
			Value: int(txscript.SigHashAll),
			Usage: "the sighash type to commit to",
		},
		cli.Int64Flag{
			Name:  "amount, a",
			Usage: "the value of the previous output in satoshis",
		},
		cli.StringFlag{
			Name:  "privkey, p",
			Usage: "the WIF encoded private key to sign with",
		},
	},
	Action: signTx,
}

func signTx(ctx *cli.Context) error {
	// A private key is optional, but when one is given it must at least
	// be long enough to be WIF.
	if wif := ctx.String("privkey"); wif != "" && len(wif) < keys.MinWIFLen {
		return fmt.Errorf("%w: must be WIF encoded",
			keys.ErrInvalidPrivateKey)
	}

	req := &txsign.Request{
		TxHex:       ctx.String("txhex"),
		ScriptHex:   ctx.String("scripthex"),
		InputIndex:  ctx.Int("inputindex"),
		SigHashType: txscript.SigHashType(ctx.Int("sighashtype")),
		Amount:      ctx.Int64("amount"),
		PrivKeyWIF:  ctx.String("privkey"),
		Params:      activeNetParams(ctx),
	}

	result, err := txsign.Sign(req)
	if err != nil {
		return err
	}

	fmt.Printf("script: %s\n", req.ScriptHex)
	fmt.Printf("script-type: %s\n", result.ScriptClass)
	fmt.Printf("inputindex: %d\n", req.InputIndex)
	fmt.Printf("sighashtype: %d\n", req.SigHashType)
	fmt.Printf("hash: %s\n", result.SigHash)

	if result.Skipped {
		fmt.Println("No private key provided, signing will not happen")
		return nil
	}

	if result.Warning != "" {
		fmt.Printf("warning: %s\n", result.Warning)
	}

	fmt.Println("\nSignature created:")
	fmt.Printf("signature compact: %x\n", result.CompactSig)
	fmt.Printf("signature DER (+hashtype): %x\n", result.DERSig)
	fmt.Printf("signed TX: %s\n", result.SignedTxHex)

	return nil
}

var comp2derCommand = cli.Command{
	Name:      "comp2der",
	Category:  "Transactions",
	Usage:     "Convert a 64-byte compact signature to DER encoding.",
	ArgsUsage: "signature",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name: "signature, s",
			Usage: "the hex encoded compact signature " +
				"(128 characters)",
		},
	},
	Action: comp2der,
}

func comp2der(ctx *cli.Context) error {
	sigHex := ctx.String("signature")
	if sigHex == "" && ctx.Args().Present() {
		sigHex = ctx.Args().First()
	}
	if sigHex == "" {
		return errors.New("missing compact signature (use --signature)")
	}

	compact, err := hex.DecodeString(sigHex)
	if err != nil {
		return fmt.Errorf("%w: %v", txsign.ErrInvalidCompactSig, err)
	}

	der, err := txsign.CompactToDER(compact)
	if err != nil {
		return err
	}

	fmt.Printf("compact: %s\n", sigHex)
	fmt.Printf("DER: %x\n", der)

	return nil
}
