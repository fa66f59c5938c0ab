// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "registry-cli"
	app.Usage = "command line access to a registryd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "connect, c",
			Value: "127.0.0.1:2150",
			Usage: " registryd host/IP and port, `HOST:PORT`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create",
			Usage:     "mint a new resource token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*token name `STRING`",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: " resource type `STRING`",
				},
				cli.Uint64Flag{
					Name:  "value, V",
					Value: 0,
					Usage: "*token value `NUMBER`",
				},
				cli.StringFlag{
					Name:  "hash, H",
					Value: "",
					Usage: " content hash `STRING`",
				},
			},
			Action: runCreate,
		},
		{
			Name:   "list",
			Usage:  "list every token in the ledger",
			Action: runList,
		},
		{
			Name:      "metadata",
			Usage:     "show the full record of one token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token id `NUMBER`",
				},
			},
			Action: runMetadata,
		},
		{
			Name:      "sell",
			Usage:     "list an owned token for sale at its value",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token id `NUMBER`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
			},
			Action: runSell,
		},
		{
			Name:      "cancel",
			Usage:     "withdraw an active sale listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token id `NUMBER`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
			},
			Action: runCancel,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed token with an exact payment",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "token, t",
					Value: 0,
					Usage: "*token id `NUMBER`",
				},
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: "*buyer account `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "payment, p",
					Value: 0,
					Usage: "*payment amount `NUMBER`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "swap",
			Usage:     "atomically exchange two equal valued token selections",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*owned token ids `ID,ID,…`",
				},
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*counterparty token ids `ID,ID,…`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*caller account `ACCOUNT`",
				},
			},
			Action: runSwap,
		},
		{
			Name:      "owned",
			Usage:     "list the tokens held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "balance",
			Usage:     "show the sale proceeds credited to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner account `ACCOUNT`",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "info",
			Usage:  "display node status",
			Action: runInfo,
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		printError(app.ErrWriter, err)
		os.Exit(1)
	}
}
