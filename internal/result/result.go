package result

// Warning types raised while extracting and projecting a descriptor.
const (
	WarnDroppedWorkload   = "dropped_workload"
	WarnDroppedRoute      = "dropped_route"
	WarnDroppedPort       = "dropped_port"
	WarnCoercedField      = "coerced_field"
	WarnUnknownDependency = "unknown_dependency"
	WarnDependencyCycle   = "dependency_cycle"
	WarnInvalidVersion    = "invalid_version"
	WarnDefaultCredential = "default_credential"
)

// Error represents a fatal failure reported to a remote caller.
type Error struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Warning represents a non-fatal diagnostic: something in the descriptor was
// dropped or replaced by a default.
type Warning struct {
	Type       string `json:"type"`
	Severity   string `json:"severity"`
	Workload   string `json:"workload,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Warn builds a Warning with severity "warning".
func Warn(typ, workload, message, suggestion string) Warning {
	return Warning{
		Type: typ, Severity: "warning", Workload: workload,
		Message: message, Suggestion: suggestion,
	}
}

// File is a generated output file.
type File struct {
	Name    string
	Content []byte
}

// ParseResult is the result of transforming one descriptor.
type ParseResult struct {
	Files    []File    `json:"-"` // in write order
	Warnings []Warning `json:"warnings,omitempty"`
}
