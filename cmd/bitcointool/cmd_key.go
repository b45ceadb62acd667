package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/santos177/bitcointool/keys"
)

var pubFromPrivCommand = cli.Command{
	Name:      "pubfrompriv",
	Category:  "Keys",
	Usage:     "Derive the public key and addresses of a WIF private key.",
	ArgsUsage: "privkey",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "privkey, p",
			Usage: "the WIF encoded private key",
		},
	},
	Action: pubFromPriv,
}

func pubFromPriv(ctx *cli.Context) error {
	wif := ctx.String("privkey")
	if wif == "" && ctx.Args().Present() {
		wif = ctx.Args().First()
	}
	if wif == "" {
		return errors.New("missing private key (use --privkey)")
	}

	info, err := keys.PubFromPriv(wif, activeNetParams(ctx))
	if err != nil {
		return err
	}

	fmt.Printf("pubkey: %s\n", info.PubKeyHex)
	printAddrs(&info.Addrs)

	return nil
}

var addrFromPubCommand = cli.Command{
	Name:      "addrfrompub",
	Category:  "Keys",
	Usage:     "Derive the three standard addresses of a public key.",
	ArgsUsage: "pubkey",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "pubkey, k",
			Usage: "the hex encoded public key",
		},
	},
	Action: addrFromPub,
}

func addrFromPub(ctx *cli.Context) error {
	pubKey := ctx.String("pubkey")
	if pubKey == "" && ctx.Args().Present() {
		pubKey = ctx.Args().First()
	}
	if pubKey == "" {
		return errors.New("missing public key (use --pubkey)")
	}

	info, err := keys.AddressesFromPub(pubKey, activeNetParams(ctx))
	if err != nil {
		return err
	}

	printAddrs(&info.Addrs)

	return nil
}

var genKeyCommand = cli.Command{
	Name:     "genkey",
	Category: "Keys",
	Usage:    "Generate a fresh private key in WIF and hex form.",
	Action:   genKey,
}

func genKey(ctx *cli.Context) error {
	wif, hexKey, err := keys.GenKey(activeNetParams(ctx))
	if err != nil {
		return err
	}

	fmt.Printf("privatekey WIF: %s\n", wif)
	fmt.Printf("privatekey HEX: %s\n", hexKey)

	return nil
}

func printAddrs(addrs *keys.Addrs) {
	fmt.Printf("p2pkh address: %s\n", addrs.P2PKH)
	fmt.Printf("p2sh-p2wpkh address: %s\n", addrs.NestedP2WPKH)
	fmt.Printf("p2wpkh (bech32) address: %s\n", addrs.P2WPKH)
}
