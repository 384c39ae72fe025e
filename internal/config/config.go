// Package config loads table configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/dng3rk1d/texasholdem/internal/game"
)

// File is the root of a table configuration file.
type File struct {
	Table TableConfig `hcl:"table,block"`
}

// TableConfig defines one poker table.
type TableConfig struct {
	SmallBlind    int          `hcl:"small_blind"`
	BigBlind      int          `hcl:"big_blind"`
	RaiseCap      int          `hcl:"raise_cap,optional"`
	StartingChips int          `hcl:"starting_chips,optional"`
	Seats         []SeatConfig `hcl:"seat,block"`
}

// SeatConfig defines a seat. The strategy is one of human, straightforward,
// risk_taker, strategic, or chaos.
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Position int    `hcl:"position,optional"`
	Chips    int    `hcl:"chips,optional"`
}

// Default returns the reference five-seat table: a human seat in late
// position against four AI styles, 1000 chips, 10/20 blinds, two raises per
// street.
func Default() game.Config {
	return game.Config{
		SmallBlind:    10,
		BigBlind:      20,
		RaiseCap:      2,
		StartingChips: 1000,
		Seats: []game.SeatConfig{
			{Name: "You", Strategy: game.TagHuman, Position: 3},
			{Name: "AI1", Strategy: game.TagStraightforward, Position: 1},
			{Name: "AI2", Strategy: game.TagRiskTaker, Position: 2},
			{Name: "AI3", Strategy: game.TagStrategic, Position: 1},
			{Name: "AI4", Strategy: game.TagChaos, Position: 2},
		},
	}
}

// Load reads a table configuration from an HCL file. A missing file yields
// the default table.
func Load(path string) (game.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return game.Config{}, fmt.Errorf("parsing %s: %s", path, diags.Error())
	}

	var f File
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return game.Config{}, fmt.Errorf("decoding %s: %s", path, diags.Error())
	}

	return f.Table.toGame(), nil
}

// toGame maps the HCL structure onto the engine configuration, applying
// defaults for optional fields.
func (tc TableConfig) toGame() game.Config {
	cfg := game.Config{
		SmallBlind:    tc.SmallBlind,
		BigBlind:      tc.BigBlind,
		RaiseCap:      tc.RaiseCap,
		StartingChips: tc.StartingChips,
	}
	if cfg.RaiseCap == 0 {
		cfg.RaiseCap = 2
	}
	if cfg.StartingChips == 0 {
		cfg.StartingChips = 1000
	}
	for _, s := range tc.Seats {
		position := s.Position
		if position == 0 {
			position = 1
		}
		cfg.Seats = append(cfg.Seats, game.SeatConfig{
			Name:     s.Name,
			Strategy: s.Strategy,
			Position: position,
			Chips:    s.Chips,
		})
	}
	return cfg
}
