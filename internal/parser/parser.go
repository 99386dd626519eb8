package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/score-to-terraform/score2tf/internal/config"
	"github.com/score-to-terraform/score2tf/internal/dependency"
	"github.com/score-to-terraform/score2tf/internal/descriptor"
	"github.com/score-to-terraform/score2tf/internal/logger"
	"github.com/score-to-terraform/score2tf/internal/registry"
	"github.com/score-to-terraform/score2tf/internal/result"
	"github.com/score-to-terraform/score2tf/internal/tfvars"
)

// ScoreParser turns SCORE descriptors into Terraform variable files.
type ScoreParser struct {
	opts Options
	reg  *registry.Registry
	log  *slog.Logger
}

// New returns a new parser with the given options.
func New(opts Options) *ScoreParser {
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	if opts.ConfigFile == "" {
		opts.ConfigFile = DefaultConfigFile
	}
	if opts.VariablesFile == "" {
		opts.VariablesFile = DefaultVariablesFile
	}
	log := opts.Logger
	if log == nil {
		log = logger.Default
	}
	return &ScoreParser{
		opts: opts,
		reg:  registry.Default,
		log:  log,
	}
}

// Extract builds the defaulted Config from a descriptor. Workloads whose type
// has no registered handler are dropped and reported.
func (p *ScoreParser) Extract(d *descriptor.Descriptor) (*config.Config, []result.Warning) {
	cfg, warns := config.New(d)

	for i := range d.Workloads {
		w := &d.Workloads[i]
		if w.Properties == nil {
			warns = append(warns, result.Warn(result.WarnDroppedWorkload, w.Name,
				"workload is not a mapping", "Describe the workload as a mapping with a type"))
			continue
		}
		h, ok := p.reg.Get(w.Type())
		if !ok {
			msg := "unsupported workload type: " + w.Type()
			if w.Type() == "" {
				msg = "workload has no type"
			}
			warns = append(warns, result.Warn(result.WarnDroppedWorkload, w.Name, msg,
				"Use one of: "+strings.Join(p.reg.ListSupportedKinds(), ", ")))
			continue
		}
		warns = append(warns, h.Extract(w, cfg)...)
	}

	warns = append(warns, p.checkDependencies(cfg)...)
	return cfg, warns
}

// checkDependencies reports dependsOn entries that name no workload, and
// cycles between workloads.
func (p *ScoreParser) checkDependencies(cfg *config.Config) []result.Warning {
	var warns []result.Warning
	g := &dependency.Graph{
		Nodes: append(cfg.ContainerWorkloads.Names(), cfg.DatabaseWorkloads.Names()...),
		Deps:  make(map[string][]string),
	}
	cfg.ContainerWorkloads.Each(func(name string, svc config.ContainerWorkload) {
		for _, dep := range svc.DependsOn {
			s, ok := dep.(string)
			if !ok {
				warns = append(warns, result.Warn(result.WarnUnknownDependency, name,
					fmt.Sprintf("dependsOn entry %v is not a workload name", dep), "List workload names"))
				continue
			}
			g.Deps[name] = append(g.Deps[name], s)
		}
	})

	unknown := dependency.Unknown(g)
	for _, name := range g.Nodes {
		for _, dep := range unknown[name] {
			warns = append(warns, result.Warn(result.WarnUnknownDependency, name,
				"depends on unknown workload: "+dep, "Reference a container or database workload"))
		}
	}

	_, tiers, err := dependency.Resolve(g)
	if errors.Is(err, dependency.ErrCycle) {
		warns = append(warns, result.Warn(result.WarnDependencyCycle, "", err.Error(),
			"Remove circular dependsOn entries"))
	} else if err == nil {
		p.log.Debug("resolved provisioning order", "tiers", tiers)
	}
	return warns
}

// Parse extracts and projects the descriptor and renders the output files.
func (p *ScoreParser) Parse(d *descriptor.Descriptor) (*result.ParseResult, error) {
	out := &result.ParseResult{}

	cfg, warns := p.Extract(d)
	out.Warnings = append(out.Warnings, warns...)

	vars, warns := tfvars.Project(cfg)
	out.Warnings = append(out.Warnings, warns...)

	b := tfvars.NewBuilder()
	switch p.opts.Format {
	case FormatJSON:
		content, err := tfvars.JSON(vars)
		if err != nil {
			return nil, fmt.Errorf("encode variables: %w", err)
		}
		b.SetTfvars(p.opts.TfvarsFile(), content)
	case FormatHCL:
		content, err := tfvars.TfvarsHCL(vars)
		if err != nil {
			return nil, fmt.Errorf("render variables: %w", err)
		}
		b.SetTfvars(p.opts.TfvarsFile(), content)
	default:
		return nil, fmt.Errorf("unsupported format %q (want %s or %s)", p.opts.Format, FormatJSON, FormatHCL)
	}

	content, err := tfvars.JSON(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	b.SetConfig(p.opts.ConfigFile, content)

	if p.opts.EmitVariables {
		b.SetVariables(p.opts.VariablesFile, tfvars.VariablesTF())
	}

	out.Files = b.Build()
	p.log.Debug("projected descriptor",
		"app", cfg.AppName,
		"services", len(vars.Services),
		"databases", len(vars.Databases),
		"warnings", len(out.Warnings))
	return out, nil
}

// Write writes files in order. Writes are not transactional: files written
// before a failure stay on disk.
func Write(files []result.File) error {
	for _, f := range files {
		if err := os.WriteFile(f.Name, f.Content, 0o644); err != nil {
			return &result.WriteError{Path: f.Name, Err: err}
		}
	}
	return nil
}
