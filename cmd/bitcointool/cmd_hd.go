package main

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/urfave/cli"

	"github.com/santos177/bitcointool/hdkey"
	"github.com/santos177/bitcointool/keypath"
)

var hdGenMasterCommand = cli.Command{
	Name:     "hdgenmaster",
	Category: "HD keys",
	Usage:    "Generate a fresh BIP32 master extended key.",
	Action:   hdGenMaster,
}

func hdGenMaster(ctx *cli.Context) error {
	master, err := hdkey.GenMaster(activeNetParams(ctx))
	if err != nil {
		return err
	}

	fmt.Printf("masterkey: %s\n", master.String())

	return nil
}

var hdPrintKeyCommand = cli.Command{
	Name:      "hdprintkey",
	Category:  "HD keys",
	Usage:     "Decode and print the fields of an extended key.",
	ArgsUsage: "extkey",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "privkey, p",
			Usage: "the extended key to decode",
		},
	},
	Action: hdPrintKey,
}

func hdPrintKey(ctx *cli.Context) error {
	extKey, err := extKeyArg(ctx)
	if err != nil {
		return err
	}

	info, err := hdkey.DescribeNode(extKey, activeNetParams(ctx))
	if err != nil {
		return err
	}

	printNodeInfo(info)

	return nil
}

var hdDeriveCommand = cli.Command{
	Name:      "hdderive",
	Category:  "HD keys",
	Usage:     "Derive one or a range of child keys from an extended key.",
	ArgsUsage: "extkey keypath",
	Description: `
	Derives the child node of the given extended key identified by the
	keypath, e.g. m/44'/0'/0'/0. The keypath may contain one bracketed
	range such as m/0'/[0-9], which derives and prints every path of the
	range in ascending order.`,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "privkey, p",
			Usage: "the extended key to derive from",
		},
		cli.StringFlag{
			Name:  "keypath, m",
			Usage: "the derivation path, optionally ranged",
		},
	},
	Action: hdDerive,
}

func hdDerive(ctx *cli.Context) error {
	extKey, err := extKeyArg(ctx)
	if err != nil {
		return err
	}

	path := ctx.String("keypath")
	if path == "" {
		return errors.New("missing keypath (use --keypath)")
	}

	params := activeNetParams(ctx)

	// Each derived node is printed before the next one is computed,
	// and the whole command aborts on the first failing path.
	exp := keypath.Expand(path)
	for {
		concrete, ok := exp.Next()
		if !ok {
			return nil
		}

		node, err := hdkey.Derive(extKey, concrete, params)
		if err != nil {
			return fmt.Errorf("deriving %s: %w", concrete, err)
		}

		info, err := hdkey.DescribeDerived(node, params)
		if err != nil {
			return err
		}

		fmt.Printf("keypath: %s\n", concrete)
		printNodeInfo(info)
	}
}

var bip32MainToTestCommand = cli.Command{
	Name:      "bip32maintotest",
	Category:  "HD keys",
	Usage:     "Re-serialize an extended key under the testnet encoding.",
	ArgsUsage: "extkey",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "privkey, p",
			Usage: "the extended key to re-serialize",
		},
	},
	Action: bip32MainToTest,
}

func bip32MainToTest(ctx *cli.Context) error {
	extKey, err := extKeyArg(ctx)
	if err != nil {
		return err
	}

	xprv, xpub, err := hdkey.Retarget(extKey, &chaincfg.TestNet3Params)
	if err != nil {
		return err
	}

	if xprv != "" {
		fmt.Printf("xpriv: %s\n", xprv)
	}
	fmt.Printf("xpub: %s\n", xpub)

	return nil
}

func extKeyArg(ctx *cli.Context) (string, error) {
	extKey := ctx.String("privkey")
	if extKey == "" && ctx.Args().Present() {
		extKey = ctx.Args().First()
	}
	if extKey == "" {
		return "", errors.New("missing extended key (use --privkey)")
	}

	return extKey, nil
}

func printNodeInfo(info *hdkey.NodeInfo) {
	fmt.Printf("ext key: %s\n", info.ExtendedKey)
	fmt.Printf("depth: %d\n", info.Depth)
	fmt.Printf("child index: %d\n", info.ChildIndex)
	fmt.Printf("parent fingerprint: %08x\n", info.ParentFingerprint)
	fmt.Printf("pubkey hex: %s\n", info.PubKeyHex)
	if info.WIF != "" {
		fmt.Printf("privatekey WIF: %s\n", info.WIF)
	}
	fmt.Printf("extended pubkey: %s\n", info.XPub)
}
