package featmatrix

import (
	"go.uber.org/zap"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/aggregate"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/parser"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/resolve"
)

// Explore loads a spreadsheet and aggregates it into a comparison result.
func Explore(path string, opts Options) (*models.Result, error) {
	t, err := LoadTable(path, opts)
	if err != nil {
		return nil, err
	}
	return Build(t, opts)
}

// LoadTable reads the table selected by opts.Load. Failures are wrapped in *LoadError.
func LoadTable(path string, opts Options) (*models.Table, error) {
	t, err := parser.Load(path, opts.Load)
	if err != nil {
		return nil, NewLoadError(path, opts.Load.Sheet, err)
	}
	opts.logger().Debug("loaded table",
		zap.String("file", t.Source),
		zap.String("sheet", t.Sheet),
		zap.Int("columns", len(t.Columns)),
		zap.Int("rows", len(t.Rows)),
	)
	return t, nil
}

// Plan is the resolved role mapping and feature list for a table.
type Plan struct {
	Mapping  models.RoleMapping
	Detected models.RoleMapping
	// Available lists every feature column before explicit selection.
	Available []string
	Features  []string
}

// Resolve detects role columns, applies overrides and selects features.
// Any mapping problem is returned as a *ConfigError before aggregation runs.
func Resolve(t *models.Table, opts Options) (*Plan, error) {
	detected := resolve.AutoMapping(t.Columns, opts.Candidates)
	m, err := resolve.ApplyOverrides(t.Columns, detected, opts.Overrides)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(t); err != nil {
		return nil, err
	}

	available := resolve.FeatureColumns(t.Columns, m, opts.Candidates.NonFeature)
	features, err := resolve.SelectFeatures(t.Columns, available, opts.Features, m)
	if err != nil {
		return nil, err
	}
	if len(features) == 0 {
		return nil, models.NewConfigError(ErrNoFeatures, nil)
	}

	opts.logger().Debug("resolved columns",
		zap.String("group", m.Group),
		zap.String("secondary", m.Secondary),
		zap.String("entity", m.Entity),
		zap.Strings("features", features),
	)
	return &Plan{Mapping: m, Detected: detected, Available: available, Features: features}, nil
}

// Build resolves and aggregates an already loaded table.
func Build(t *models.Table, opts Options) (*models.Result, error) {
	plan, err := Resolve(t, opts)
	if err != nil {
		return nil, err
	}

	out, err := aggregate.Aggregate(t, plan.Mapping, plan.Features, aggregate.Options{
		Codec:  opts.Codec,
		Logger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	records, truncated := aggregate.Truncate(out.Records, opts.MaxRecords)
	if truncated {
		opts.logger().Warn("records truncated",
			zap.Int("kept", len(records)),
			zap.Int("total", len(out.Records)),
		)
	}

	return &models.Result{
		Meta: models.Meta{
			FileName:     t.Source,
			Sheet:        t.Sheet,
			GroupCol:     plan.Mapping.Group,
			SecondaryCol: plan.Mapping.Secondary,
			EntityCol:    plan.Mapping.Entity,
			FeatureCount: len(plan.Features),
			RecordCount:  len(records),
			TotalRecords: len(out.Records),
			Truncated:    truncated,
		},
		Mapping:  plan.Mapping,
		Features: plan.Features,
		Entities: out.Entities,
		Records:  records,
	}, nil
}

// Sheets summarizes the sheets of a workbook.
func Sheets(path string) (*models.WorkbookData, error) {
	wb, err := parser.ListSheets(path)
	if err != nil {
		return nil, NewLoadError(path, "", err)
	}
	return wb, nil
}
