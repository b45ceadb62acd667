package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/santos177/bitcointool/build"
)

// fatal prints a human-readable error line and exits with a nonzero code.
func fatal(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "bitcointool"
	app.Version = build.Version() + " commit=" + build.Commit
	app.Usage = "derive and sign bitcoin keys and transactions"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "testnet, t",
			Usage: "Use the test network.",
		},
		cli.BoolFlag{
			Name:  "regtest, r",
			Usage: "Use the regression test network.",
		},
		cli.StringFlag{
			Name:  "debuglevel",
			Value: "warn",
			Usage: "Logging level for all subsystems.",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		return build.SetLogLevels(ctx.GlobalString("debuglevel"))
	}
	app.Commands = []cli.Command{
		pubFromPrivCommand,
		addrFromPubCommand,
		genKeyCommand,
		hdGenMasterCommand,
		hdPrintKeyCommand,
		hdDeriveCommand,
		bip32MainToTestCommand,
		signCommand,
		comp2derCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
