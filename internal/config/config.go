package config

import (
	"fmt"

	"github.com/score-to-terraform/score2tf/internal/descriptor"
	"github.com/score-to-terraform/score2tf/internal/result"
)

// Config is the defaulted, flattened view of a descriptor, grouped by
// workload kind. It is serialized verbatim to score_config.json.
type Config struct {
	AppName            string                       `json:"app_name"`
	Environment        string                       `json:"environment"`
	Provider           string                       `json:"provider"`
	Region             string                       `json:"region"`
	Tags               map[string]any               `json:"tags"`
	ContainerWorkloads Workloads[ContainerWorkload] `json:"container_workloads"`
	DatabaseWorkloads  Workloads[DatabaseWorkload]  `json:"database_workloads"`
	Networking         map[string]any               `json:"networking"`
	LoadBalancer       map[string]any               `json:"loadbalancer"`
	DNS                map[string]any               `json:"dns"`
}

// ContainerWorkload is a defaulted container workload. Ports, routes and the
// health check stay raw; projection interprets them.
type ContainerWorkload struct {
	Image       string         `json:"image"`
	CPU         int            `json:"cpu"`
	Memory      int            `json:"memory"`
	Ports       []any          `json:"ports"`
	Replicas    int            `json:"replicas"`
	Environment map[string]any `json:"environment"`
	Routes      []any          `json:"routes"`
	HealthCheck map[string]any `json:"healthCheck"`
	DependsOn   []any          `json:"dependsOn"`
}

// DatabaseWorkload is a defaulted database workload.
type DatabaseWorkload struct {
	Engine      string         `json:"engine"`
	Version     string         `json:"version"`
	Resources   map[string]any `json:"resources"`
	Backup      map[string]any `json:"backup"`
	Credentials map[string]any `json:"credentials"`
}

type metadataSpec struct {
	Name        *string        `mapstructure:"name"`
	Environment *string        `mapstructure:"environment"`
	Provider    *string        `mapstructure:"provider"`
	Region      *string        `mapstructure:"region"`
	Tags        map[string]any `mapstructure:"tags"`
}

// New builds a Config from the descriptor's metadata and resources. The
// workload sets start empty; workload handlers fill them.
func New(d *descriptor.Descriptor) (*Config, []result.Warning) {
	var warns []result.Warning
	for _, issue := range d.Issues {
		warns = append(warns, result.Warn(result.WarnCoercedField, "", issue, "Section ignored; defaults applied"))
	}

	var meta metadataSpec
	for _, msg := range descriptor.Decode(d.Metadata, &meta) {
		warns = append(warns, CoercedWarning("", "metadata: "+msg))
	}

	c := &Config{
		AppName:     Or(meta.Name, Default.AppName),
		Environment: Or(meta.Environment, Default.Environment),
		Provider:    Or(meta.Provider, Default.Provider),
		Region:      Or(meta.Region, Default.Region),
		Tags:        MapOr(meta.Tags),
	}

	var ws []result.Warning
	c.Networking, ws = section(d.Resources, "networking")
	warns = append(warns, ws...)
	c.LoadBalancer, ws = section(d.Resources, "loadbalancer")
	warns = append(warns, ws...)
	c.DNS, ws = section(d.Resources, "dns")
	warns = append(warns, ws...)
	return c, warns
}

// section passes a resources block through unchanged, defaulting to {}.
func section(resources map[string]any, key string) (map[string]any, []result.Warning) {
	if !descriptor.Has(resources, key) {
		return map[string]any{}, nil
	}
	m := descriptor.GetMap(resources, key)
	if m == nil {
		return map[string]any{}, []result.Warning{
			CoercedWarning("", fmt.Sprintf("resources.%s must be a mapping, got %T", key, resources[key])),
		}
	}
	return m, nil
}

// CoercedWarning reports a field that was replaced by its default because
// its value had the wrong shape.
func CoercedWarning(workload, msg string) result.Warning {
	return result.Warn(result.WarnCoercedField, workload, msg, "Default value used")
}
