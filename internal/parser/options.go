package parser

import "log/slog"

// Output formats of the variable set.
const (
	FormatJSON = "json"
	FormatHCL  = "hcl"
)

// Default output file names.
const (
	DefaultTfvarsJSONFile = "terraform.tfvars.json"
	DefaultTfvarsHCLFile  = "terraform.tfvars"
	DefaultConfigFile     = "score_config.json"
	DefaultVariablesFile  = "variables.tf"
)

// Options configures the parser behavior.
type Options struct {
	// OutputFile is where the variable set is written. Empty selects the
	// default name for Format.
	OutputFile string
	// ConfigFile is where the intermediate config is written.
	ConfigFile string
	// Format is FormatJSON or FormatHCL.
	Format string
	// EmitVariables also generates variables.tf when true.
	EmitVariables bool
	// VariablesFile is where variables.tf is written.
	VariablesFile string
	// Logger receives progress and diagnostics; nil uses logger.Default.
	Logger *slog.Logger
}

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		ConfigFile:    DefaultConfigFile,
		Format:        FormatJSON,
		VariablesFile: DefaultVariablesFile,
	}
}

// TfvarsFile returns the variable set file name.
func (o Options) TfvarsFile() string {
	if o.OutputFile != "" {
		return o.OutputFile
	}
	if o.Format == FormatHCL {
		return DefaultTfvarsHCLFile
	}
	return DefaultTfvarsJSONFile
}
