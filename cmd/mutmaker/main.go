package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

/******************************************************************************

This file is the entry point for the mutmaker command line utility.

Initial argparsing and app definition is done entirely through
"github.com/urfave/cli/v2" for which you can find the docs here:

https://github.com/urfave/cli/blob/master/docs/v2/manual.md

mutmaker's app is defined via the &cli.App{} struct, with one subcommand per
primer design engine: ssm, qclm, and pas. Each subcommand reads a JSON
request from stdin (or the path given by -i) and writes a JSON solution to
stdout (or the path given by -o).

******************************************************************************/

// main is the entry point for the command line app. It is separated from
// the actual &cli.App to help with testing.
func main() {
	run(os.Args)
}

// run is separated from main for debugging's sake.
func run(args []string) {
	app := application()
	err := app.Run(args)
	if err != nil {
		log.Fatal(err)
	}
}

// application defines the top-level app and templates its subcommands.
func application() *cli.App {
	app := &cli.App{
		Name:  "mutmaker",
		Usage: "Design degenerate-codon primers for site-saturation and multi-site mutagenesis, and fragment genes for PCR-based synthesis.",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "i",
				Usage: "Input path for the request JSON. Defaults to stdin.",
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output path for the solution JSON. Defaults to stdout.",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 1,
				Usage: "Seed for the random number generator driving the degenerate-codon and fragment search.",
			},
		},

		Commands: []*cli.Command{
			{
				Name:  "ssm",
				Usage: "Design site-saturation mutagenesis primers for a set of codon positions.",
				Action: func(c *cli.Context) error {
					return ssmCommand(c)
				},
			},
			{
				Name:  "qclm",
				Usage: "Design QCLM/MSDM primers for a set of amino acid substitutions.",
				Action: func(c *cli.Context) error {
					return qclmCommand(c)
				},
			},
			{
				Name:  "pas",
				Usage: "Fragment a gene into overlapping oligo pairs for PCR-based accurate gene synthesis.",
				Action: func(c *cli.Context) error {
					return pasCommand(c)
				},
			},
		},
	}

	return app
}
