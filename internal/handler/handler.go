package handler

import (
	"github.com/score-to-terraform/score2tf/internal/config"
	"github.com/score-to-terraform/score2tf/internal/descriptor"
	"github.com/score-to-terraform/score2tf/internal/result"
)

// decode fills spec from the workload's properties and turns conversion
// failures into coerced_field warnings.
func decode(w *descriptor.Workload, spec any) []result.Warning {
	var warns []result.Warning
	for _, msg := range descriptor.Decode(w.Properties, spec) {
		warns = append(warns, config.CoercedWarning(w.Name, msg))
	}
	return warns
}
