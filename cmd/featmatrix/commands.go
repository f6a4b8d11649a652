package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/featmatrix/pkg/featmatrix"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/aggregate"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/models"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/output"
)

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
}

func newSheetsCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "List the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := featmatrix.Sheets(args[0])
			if err != nil {
				return err
			}
			if !asJSON {
				return writeOutput(cmd, []byte(output.RenderSheets(wb)))
			}
			data, err := output.WorkbookToJSON(wb, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, data)
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newColumnsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns [input]",
		Short: "Show detected role columns and feature columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options()
			t, err := featmatrix.LoadTable(args[0], opts)
			if err != nil {
				return err
			}
			plan, err := featmatrix.Resolve(t, opts)
			if err != nil {
				return err
			}
			logger.Debug("columns", zap.Strings("columns", t.Columns))
			return writeOutput(cmd, []byte(output.RenderMapping(plan.Detected, plan.Mapping, plan.Features)))
		},
	}
	addOutputFlags(cmd)
	return cmd
}

func newBuildCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "build [input]",
		Short: "Aggregate a spreadsheet into comparison records",
		Long: `Aggregates every (tier-1, die family, feature) combination into one record
holding a value and a distinct-value count per company. Output is JSON
({meta, companies, records}) or a flat CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := engine.Explore(args[0], options())
			if err != nil {
				return err
			}
			if res.Meta.Truncated {
				logger.Warn("record list truncated; raise --max-records to keep more",
					zap.Int("kept", res.Meta.RecordCount),
					zap.Int("total", res.Meta.TotalRecords))
			}

			switch format {
			case "json":
				data, err := output.ToJSON(res, pretty)
				if err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				return writeOutput(cmd, data)
			case "csv":
				var buf bytes.Buffer
				if err := output.WriteRecordsCSV(&buf, res); err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				return writeOutput(cmd, bytes.TrimRight(buf.Bytes(), "\n"))
			default:
				return fmt.Errorf("invalid format: %s (must be json or csv)", format)
			}
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv")
	return cmd
}

func newViewCmd() *cobra.Command {
	var (
		group       string
		secondary   string
		by          string
		format      string
		search      string
		differsOnly bool
		entities    []string
	)
	cmd := &cobra.Command{
		Use:   "view [input]",
		Short: "Show one tier-1 / die family group as a comparison table",
		Long: `Renders one comparison group either feature-major (features as rows,
companies as columns) or entity-major (companies as rows, features as
columns). Without --group and --secondary the first group is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := engine.Explore(args[0], options())
			if err != nil {
				return err
			}

			key, err := pickGroup(res.Records, group, secondary, cmd.Flags().Changed("group"), cmd.Flags().Changed("secondary"))
			if err != nil {
				return err
			}
			filter := aggregate.Filter{Key: &key, Search: search, DiffersOnly: differsOnly, Entities: entities}
			compared, err := filter.Compared(res.Entities)
			if err != nil {
				return err
			}
			records, err := filter.Apply(res.Records, res.Entities)
			if err != nil {
				return err
			}

			var v aggregate.View
			switch by {
			case "feature":
				v = aggregate.FeatureMajor(records, compared, key)
			case "entity":
				v = aggregate.EntityMajor(records, compared, key, res.Meta.EntityCol)
			default:
				return fmt.Errorf("invalid --by: %s (must be feature or entity)", by)
			}

			switch format {
			case "table":
				return writeOutput(cmd, []byte(output.RenderView(v)))
			case "csv":
				var buf bytes.Buffer
				if err := output.WriteViewCSV(&buf, v); err != nil {
					return fmt.Errorf("serialization failed: %w", err)
				}
				return writeOutput(cmd, bytes.TrimRight(buf.Bytes(), "\n"))
			default:
				return fmt.Errorf("invalid format: %s (must be table or csv)", format)
			}
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().StringVar(&group, "group", "", "Tier-1 value of the group to show")
	cmd.Flags().StringVar(&secondary, "secondary", "", "DieFamily value of the group to show")
	cmd.Flags().StringVar(&by, "by", "feature", "Row dimension: feature, entity")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, csv")
	cmd.Flags().StringVar(&search, "search", "", "Keep rows whose feature or values contain this text")
	cmd.Flags().BoolVar(&differsOnly, "differs-only", false, "Keep rows whose values differ across companies")
	cmd.Flags().StringSliceVar(&entities, "companies", nil, "Companies to compare (default: all)")
	return cmd
}

func newKPICmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "kpi [input]",
		Short: "Summarize entity, feature and coverage counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := engine.Explore(args[0], options())
			if err != nil {
				return err
			}
			k := aggregate.Summarize(res.Entities, res.Records)
			if !asJSON {
				return writeOutput(cmd, []byte(output.RenderKPIs(k)))
			}
			data, err := output.KPIsToJSON(k, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(cmd, data)
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

// pickGroup selects the comparison group named by the flags, defaulting to the first group.
// Unset flags match any value.
func pickGroup(records []models.Record, group, secondary string, groupSet, secondarySet bool) (models.GroupKey, error) {
	groups := aggregate.Groups(records)
	for _, g := range groups {
		if groupSet && g.Group != group {
			continue
		}
		if secondarySet && g.Secondary != secondary {
			continue
		}
		return g, nil
	}
	if len(groups) == 0 {
		return models.GroupKey{}, fmt.Errorf("no records to show")
	}
	var names []string
	for _, g := range groups {
		names = append(names, g.Group+"/"+g.Secondary)
	}
	if len(names) > 10 {
		names = append(names[:10], "...")
	}
	return models.GroupKey{}, fmt.Errorf("no group %q/%q (available: %s)", group, secondary, strings.Join(names, ", "))
}
