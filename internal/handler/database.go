package handler

import (
	"fmt"

	"github.com/hashicorp/go-version"

	"github.com/score-to-terraform/score2tf/internal/config"
	"github.com/score-to-terraform/score2tf/internal/descriptor"
	"github.com/score-to-terraform/score2tf/internal/registry"
	"github.com/score-to-terraform/score2tf/internal/result"
)

type databaseHandler struct{}

func init() {
	registry.Default.Register("database", &databaseHandler{})
}

type databaseSpec struct {
	Engine      *string        `mapstructure:"engine"`
	Version     *string        `mapstructure:"version"`
	Resources   map[string]any `mapstructure:"resources"`
	Backup      map[string]any `mapstructure:"backup"`
	Credentials map[string]any `mapstructure:"credentials"`
}

func (databaseHandler) Kind() string { return "database" }

func (databaseHandler) Extract(w *descriptor.Workload, cfg *config.Config) []result.Warning {
	var spec databaseSpec
	warns := decode(w, &spec)

	db := config.DatabaseWorkload{
		Engine:      config.Or(spec.Engine, config.Default.Engine),
		Version:     config.Or(spec.Version, config.Default.EngineVersion),
		Resources:   config.MapOr(spec.Resources),
		Backup:      config.MapOr(spec.Backup),
		Credentials: config.MapOr(spec.Credentials),
	}

	if _, err := version.NewVersion(db.Version); err != nil {
		warns = append(warns, result.Warn(result.WarnInvalidVersion, w.Name,
			fmt.Sprintf("version %q is not a valid engine version", db.Version),
			"Use a dotted version such as \"13.4\""))
	}

	cfg.DatabaseWorkloads.Set(w.Name, db)
	return warns
}
