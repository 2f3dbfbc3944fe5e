package main

import (
	"encoding/json"
	"io"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bebop/mutmaker/codonusage"
	"github.com/bebop/mutmaker/engine"
	"github.com/bebop/mutmaker/pas"
	"github.com/bebop/mutmaker/qclm"
	"github.com/bebop/mutmaker/sitesplit"
	"github.com/bebop/mutmaker/ssm"
	"github.com/bebop/mutmaker/thermo"
)

// parseMutations parses a list of mutation strings such as "E42L" into
// AminoMutation values relative to geneOffset.
func parseMutations(mutationStrings []string, geneOffset int) ([]sitesplit.AminoMutation, error) {
	mutations := make([]sitesplit.AminoMutation, 0, len(mutationStrings))
	for _, s := range mutationStrings {
		m, err := sitesplit.ParseMutation(s, geneOffset)
		if err != nil {
			return nil, engine.Wrap(engine.Validation, err)
		}
		mutations = append(mutations, m)
	}
	return mutations, nil
}

// readRequest reads and unmarshals the request JSON from the path given
// by -i, or from stdin if -i was not set.
func readRequest(c *cli.Context, v interface{}) error {
	var r io.Reader = os.Stdin
	if path := c.String("i"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return engine.Wrap(engine.Validation, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return engine.Wrap(engine.Validation, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return engine.Wrap(engine.Validation, err)
	}
	return nil
}

// writeSolution marshals v as indented JSON to the path given by -o, or
// to stdout if -o was not set.
func writeSolution(c *cli.Context, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return engine.Wrap(engine.Internal, err)
	}
	data = append(data, '\n')

	if path := c.String("o"); path != "" {
		return os.WriteFile(path, data, 0644)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func rngFrom(c *cli.Context) *rand.Rand {
	return rand.New(rand.NewSource(c.Int64("seed")))
}

func ssmCommand(c *cli.Context) error {
	var req ssm.Request
	if err := readRequest(c, &req); err != nil {
		return err
	}

	calc := thermo.NewCalculator(req.Config.TemperatureConfig.WithDefaults())
	solution, err := ssm.Run(req, calc)
	if err != nil {
		return err
	}
	return writeSolution(c, solution)
}

func qclmCommand(c *cli.Context) error {
	var input struct {
		Sequence   string                     `json:"sequence"`
		GeneOffset int                        `json:"geneOffset"`
		Mutations  []string                   `json:"mutations"`
		Config     qclm.Config                `json:"config"`
		CodonUsage map[string][]codonTriplet  `json:"codonUsage"`
	}
	if err := readRequest(c, &input); err != nil {
		return err
	}

	mutations, err := parseMutations(input.Mutations, input.GeneOffset)
	if err != nil {
		return err
	}
	table, err := buildCodonTable(input.CodonUsage)
	if err != nil {
		return err
	}

	calc := thermo.NewCalculator(input.Config.TemperatureConfig.WithDefaults())
	req := qclm.Request{Sequence: input.Sequence, GeneOffset: input.GeneOffset, Mutations: mutations, Config: input.Config}
	solution, err := qclm.Run(rngFrom(c), table, req, calc)
	if err != nil {
		return err
	}
	return writeSolution(c, solution)
}

func pasCommand(c *cli.Context) error {
	var input struct {
		Gene      string `json:"gene"`
		Mutations []struct {
			Mutation  string  `json:"mutation"`
			Frequency float64 `json:"frequency"`
		} `json:"mutations"`
		Config     pas.Config                `json:"config"`
		CodonUsage map[string][]codonTriplet `json:"codonUsage"`
	}
	if err := readRequest(c, &input); err != nil {
		return err
	}

	mutationStrings := make([]string, len(input.Mutations))
	for i, m := range input.Mutations {
		mutationStrings[i] = m.Mutation
	}
	mutations, err := parseMutations(mutationStrings, 0)
	if err != nil {
		return err
	}
	requests := make([]pas.MutationRequest, len(mutations))
	for i, m := range mutations {
		requests[i] = pas.MutationRequest{AminoMutation: m, Frequency: input.Mutations[i].Frequency}
	}

	var table *codonusage.Table
	if len(input.CodonUsage) > 0 {
		table, err = buildCodonTable(input.CodonUsage)
		if err != nil {
			return err
		}
	}

	calc := thermo.NewCalculator(input.Config.TemperatureConfig.WithDefaults())
	req := pas.Request{Gene: input.Gene, Mutations: requests, Config: input.Config}
	solution, err := pas.Run(rngFrom(c), table, req, calc)
	if err != nil {
		return err
	}
	return writeSolution(c, solution)
}
