package main

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig mirrors the flag surface in TOML. Every key is optional.
type fileConfig struct {
	N            *int    `toml:"n"`
	Family       *string `toml:"family"`
	Backend      *string `toml:"backend"`
	Attempts     *int    `toml:"attempts"`
	AttemptNodes *int64  `toml:"attempt_nodes"`
	NodeBudget   *int64  `toml:"node_budget"`
	TimeLimit    *string `toml:"time_limit"`
	Workers      *int    `toml:"workers"`
	Seed         *int64  `toml:"seed"`
}

// applyFile loads the TOML config and fills in every option whose flag was
// not set on the command line. Explicit flags always win.
func (o *options) applyFile(cmd *cobra.Command) error {
	f, err := os.Open(o.configPath)
	if err != nil {
		return err
	}
	defer f.Close()

	var data fileConfig
	if _, err = toml.NewDecoder(f).Decode(&data); err != nil {
		return fmt.Errorf("config %s: %w", o.configPath, err)
	}

	changed := cmd.Flags().Changed
	if data.N != nil && !changed("n") {
		o.n = *data.N
	}
	if data.Family != nil && !changed("family") {
		o.family = *data.Family
	}
	if data.Backend != nil && !changed("backend") {
		o.backend = *data.Backend
	}
	if data.Attempts != nil && !changed("attempts") {
		o.attempts = *data.Attempts
	}
	if data.AttemptNodes != nil && !changed("attempt-nodes") {
		o.attemptNodes = *data.AttemptNodes
	}
	if data.NodeBudget != nil && !changed("node-budget") {
		o.nodeBudget = *data.NodeBudget
	}
	if data.TimeLimit != nil && !changed("time-limit") {
		d, err := time.ParseDuration(*data.TimeLimit)
		if err != nil {
			return fmt.Errorf("config %s: time_limit: %w", o.configPath, err)
		}
		o.timeLimit = d
	}
	if data.Workers != nil && !changed("workers") {
		o.workers = *data.Workers
	}
	if data.Seed != nil && !changed("seed") {
		o.seed = *data.Seed
	}

	return nil
}
