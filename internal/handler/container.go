package handler

import (
	"github.com/score-to-terraform/score2tf/internal/config"
	"github.com/score-to-terraform/score2tf/internal/descriptor"
	"github.com/score-to-terraform/score2tf/internal/registry"
	"github.com/score-to-terraform/score2tf/internal/result"
)

type containerHandler struct{}

func init() {
	registry.Default.Register("container", &containerHandler{})
}

type containerSpec struct {
	Image     *string `mapstructure:"image"`
	Resources struct {
		CPU    *int `mapstructure:"cpu"`
		Memory *int `mapstructure:"memory"`
	} `mapstructure:"resources"`
	Ports       []any          `mapstructure:"ports"`
	Replicas    *int           `mapstructure:"replicas"`
	Environment map[string]any `mapstructure:"environment"`
	Routes      []any          `mapstructure:"routes"`
	HealthCheck map[string]any `mapstructure:"healthCheck"`
	DependsOn   []any          `mapstructure:"dependsOn"`
}

func (containerHandler) Kind() string { return "container" }

func (containerHandler) Extract(w *descriptor.Workload, cfg *config.Config) []result.Warning {
	var spec containerSpec
	warns := decode(w, &spec)

	cfg.ContainerWorkloads.Set(w.Name, config.ContainerWorkload{
		Image:       config.Or(spec.Image, config.Default.Image),
		CPU:         config.Or(spec.Resources.CPU, config.Default.CPU),
		Memory:      config.Or(spec.Resources.Memory, config.Default.Memory),
		Ports:       config.ListOr(spec.Ports),
		Replicas:    config.Or(spec.Replicas, config.Default.Replicas),
		Environment: config.MapOr(spec.Environment),
		Routes:      config.ListOr(spec.Routes),
		HealthCheck: config.MapOr(spec.HealthCheck),
		DependsOn:   config.ListOr(spec.DependsOn),
	})
	return warns
}
