package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/score-to-terraform/score2tf/internal/descriptor"
	_ "github.com/score-to-terraform/score2tf/internal/handler" // register handlers
	"github.com/score-to-terraform/score2tf/internal/logger"
	"github.com/score-to-terraform/score2tf/internal/parser"
)

var (
	errUsage    = errors.New("usage: score2tf <score_file_path>")
	errWarnings = errors.New("descriptor produced warnings (--strict)")
)

type rootFlags struct {
	output        string
	configOutput  string
	format        string
	emitVariables bool
	variablesFile string
	strict        bool
	logLevel      string
	logJSON       bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	opts := parser.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "score2tf [flags] <score_file_path>",
		Short: "Generate Terraform variables from a SCORE descriptor",
		Long: `score2tf reads a SCORE deployment descriptor and writes a flat Terraform
variable file plus the intermediate configuration as JSON.

Missing fields are filled with defaults. Workloads and routes of unknown
types are dropped and reported as warnings.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(f.logLevel)
			if err != nil {
				return err
			}
			log := logger.New(cmd.ErrOrStderr(), level, f.logJSON)

			opts.OutputFile = f.output
			opts.ConfigFile = f.configOutput
			opts.Format = f.format
			opts.EmitVariables = f.emitVariables
			opts.VariablesFile = f.variablesFile
			opts.Logger = log

			d, err := descriptor.Load(args[0])
			if err != nil {
				return err
			}
			res, err := parser.New(opts).Parse(d)
			if err != nil {
				return err
			}

			for _, w := range res.Warnings {
				log.Warn(w.Message, "type", w.Type, "workload", w.Workload, "suggestion", w.Suggestion)
			}
			if f.strict && len(res.Warnings) > 0 {
				return errWarnings
			}

			if err := parser.Write(res.Files); err != nil {
				return err
			}
			for _, file := range res.Files {
				fmt.Fprintln(cmd.OutOrStdout(), "wrote", file.Name)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "", "Variable file to write (default terraform.tfvars.json, or terraform.tfvars with --format hcl)")
	flags.StringVar(&f.configOutput, "config-output", opts.ConfigFile, "Intermediate config file to write")
	flags.StringVar(&f.format, "format", opts.Format, "Variable file format: json or hcl")
	flags.BoolVar(&f.emitVariables, "emit-variables", false, "Also write variables.tf declaring every variable")
	flags.StringVar(&f.variablesFile, "variables-output", opts.VariablesFile, "variables.tf file to write with --emit-variables")
	flags.BoolVar(&f.strict, "strict", false, "Fail without writing files if any warning is raised")
	flags.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flags.BoolVar(&f.logJSON, "log-json", false, "Log as JSON")

	return cmd
}
