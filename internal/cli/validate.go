package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/AndySiamas/LayoutLens/pkg/layout"
	"github.com/AndySiamas/LayoutLens/pkg/pipeline"
)

// validateOpts holds the flags shared by the envelope and plan commands.
type validateOpts struct {
	json        bool // print the JSON summary instead of text
	noCache     bool // bypass the report cache
	interactive bool // browse issues in a terminal UI
}

func (o *validateOpts) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "print a JSON summary")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "do not read or write the report cache")
	cmd.Flags().BoolVarP(&o.interactive, "interactive", "i", false, "browse issues interactively")
	cmd.MarkFlagsMutuallyExclusive("json", "interactive")
}

// envelopeCommand creates the "envelope" command.
func (c *CLI) envelopeCommand() *cobra.Command {
	var opts validateOpts
	cmd := &cobra.Command{
		Use:               "envelope FILE",
		Short:             "Validate a room envelope (boundary and openings)",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeJSONFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := layout.ReadEnvelopeFile(args[0])
			if err != nil {
				return err
			}
			return c.withRunner(cmd.Context(), opts, func(r *pipeline.Runner) error {
				res, err := r.ValidateEnvelope(cmd.Context(), env)
				if err != nil {
					return err
				}
				return report(cmd.OutOrStdout(), res, opts)
			})
		},
	}
	opts.register(cmd)
	return cmd
}

// planCommand creates the "plan" command. The envelope is validated first;
// element checks only run on an accepted envelope.
func (c *CLI) planCommand() *cobra.Command {
	var opts validateOpts
	cmd := &cobra.Command{
		Use:               "plan FILE",
		Short:             "Validate a room plan (envelope, then elements)",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeJSONFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := layout.ReadPlanFile(args[0])
			if err != nil {
				return err
			}
			return c.withRunner(cmd.Context(), opts, func(r *pipeline.Runner) error {
				res, err := r.ValidateEnvelope(cmd.Context(), &plan.Space)
				if err != nil {
					return err
				}
				if res.Accepted() {
					if res, err = r.ValidatePlan(cmd.Context(), plan); err != nil {
						return err
					}
				}
				return report(cmd.OutOrStdout(), res, opts)
			})
		},
	}
	opts.register(cmd)
	return cmd
}

func (c *CLI) withRunner(ctx context.Context, opts validateOpts, fn func(*pipeline.Runner) error) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	r, err := c.newRunner(ctx, cfg, opts.noCache, nil)
	if err != nil {
		return err
	}
	defer r.Close()
	return fn(r)
}

// report prints res and returns an ExitError when it was rejected.
func report(w io.Writer, res *pipeline.Result, opts validateOpts) error {
	switch {
	case opts.json:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res.Summary()); err != nil {
			return err
		}
	case opts.interactive && !res.Accepted():
		if err := browseIssues(res); err != nil {
			return err
		}
	default:
		printResult(w, res)
	}

	if !res.Accepted() {
		return &ExitError{Code: ExitRejected}
	}
	return nil
}
