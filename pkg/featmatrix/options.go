// Package featmatrix turns a spreadsheet of component records into
// per-entity feature comparisons.
package featmatrix

import (
	"go.uber.org/zap"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/cellvalue"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/config"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/parser"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/resolve"
)

// Options configures one exploration run.
type Options struct {
	// Load selects the sheet and region that become the table.
	Load parser.LoadOptions
	// Candidates drive automatic role detection.
	Candidates resolve.Candidates
	// Overrides replace detected role columns.
	Overrides resolve.Overrides
	// Features narrows the feature columns. Empty keeps every detected feature.
	Features []string
	// MaxRecords caps the record list. Zero or negative disables the cap.
	MaxRecords int
	// Codec serializes value sets.
	Codec cellvalue.Codec
	// Logger receives progress output. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default exploration options.
func DefaultOptions() Options {
	return Options{
		Candidates: resolve.DefaultCandidates(),
		MaxRecords: config.DefaultMaxRecords,
		Codec:      cellvalue.DefaultCodec,
	}
}

// OptionsFromConfig builds options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Load: parser.LoadOptions{
			Sheet:        cfg.Input.Sheet,
			Range:        cfg.Input.Range,
			UsePrintArea: cfg.Input.UsePrintArea,
		},
		Candidates: cfg.Columns.Candidates,
		Overrides:  cfg.Overrides(),
		Features:   cfg.Columns.Features,
		MaxRecords: cfg.Output.MaxRecords,
		Codec:      cfg.Codec(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}
