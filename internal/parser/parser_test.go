package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/score-to-terraform/score2tf/internal/descriptor"
	_ "github.com/score-to-terraform/score2tf/internal/handler" // register handlers
	"github.com/score-to-terraform/score2tf/internal/logger"
	"github.com/score-to-terraform/score2tf/internal/result"
)

const shopScore = `
metadata:
  name: shop
  environment: prod
workloads:
  web:
    type: container
    image: nginx:latest
    ports:
      - port: 8080
        protocol: http
    replicas: 3
    dependsOn: [orders]
    routes:
      - type: public
        host: shop.example.com
        path: /
        port: 443
      - type: internal
        host: web.internal
        path: /admin
        port: 8080
      - type: partner
        host: partner.example.com
        path: /
        port: 443
  orders:
    type: database
    credentials:
      username: shop
      password: s3cret
  cache:
    type: redis
`

func parse(t *testing.T, src string, opts Options) (*result.ParseResult, map[string][]byte) {
	t.Helper()
	d, err := descriptor.Parse([]byte(src))
	require.NoError(t, err)
	opts.Logger = logger.New(&bytes.Buffer{}, slog.LevelDebug, false)
	res, err := New(opts).Parse(d)
	require.NoError(t, err)
	files := make(map[string][]byte, len(res.Files))
	for _, f := range res.Files {
		files[f.Name] = f.Content
	}
	return res, files
}

func tfvarsOf(t *testing.T, files map[string][]byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(files[DefaultTfvarsJSONFile], &out))
	return out
}

func warnTypes(warns []result.Warning) []string {
	var out []string
	for _, w := range warns {
		out = append(out, w.Type)
	}
	return out
}

func TestParse_EndToEnd(t *testing.T) {
	t.Parallel()

	res, files := parse(t, shopScore, DefaultOptions())

	require.Len(t, res.Files, 2)
	assert.Equal(t, DefaultTfvarsJSONFile, res.Files[0].Name)
	assert.Equal(t, DefaultConfigFile, res.Files[1].Name)

	vars := tfvarsOf(t, files)
	assert.Equal(t, "shop", vars["app_name"])
	assert.Equal(t, "prod", vars["environment"])
	assert.Equal(t, "us-east-1", vars["aws_region"])

	services := vars["services"].([]any)
	require.Len(t, services, 1)
	web := services[0].(map[string]any)
	assert.Equal(t, "web", web["name"])
	assert.EqualValues(t, 8080, web["container_port"])
	assert.EqualValues(t, 3, web["desired_count"])
	assert.Len(t, web["public_routes"], 1)
	assert.Len(t, web["internal_routes"], 1)
	assert.Equal(t, []any{"orders"}, web["depends_on"])

	databases := vars["databases"].([]any)
	require.Len(t, databases, 1)
	assert.Equal(t, "orders", databases[0].(map[string]any)["name"])
	assert.Equal(t, "s3cret", databases[0].(map[string]any)["password"])

	assert.Equal(t, []string{result.WarnDroppedWorkload, result.WarnDroppedRoute}, warnTypes(res.Warnings))
	assert.Equal(t, "cache", res.Warnings[0].Workload)
	assert.Equal(t, "Use one of: container, database", res.Warnings[0].Suggestion)
}

func TestParse_ConfigFile(t *testing.T) {
	t.Parallel()

	_, files := parse(t, shopScore, DefaultOptions())

	var cfg map[string]any
	require.NoError(t, json.Unmarshal(files[DefaultConfigFile], &cfg))
	assert.Equal(t, "shop", cfg["app_name"])
	assert.Equal(t, "aws", cfg["provider"])
	assert.Equal(t, "us-east-1", cfg["region"])
	assert.Contains(t, cfg["container_workloads"], "web")
	assert.NotContains(t, cfg["container_workloads"], "cache")
	assert.Contains(t, cfg["database_workloads"], "orders")
	assert.Equal(t, map[string]any{}, cfg["networking"])

	web := cfg["container_workloads"].(map[string]any)["web"].(map[string]any)
	assert.Len(t, web["routes"], 3, "config keeps routes unfiltered")
	assert.Equal(t, map[string]any{}, web["healthCheck"])
}

func TestParse_NoWorkloads(t *testing.T) {
	t.Parallel()

	res, files := parse(t, "metadata:\n  name: shop\n", DefaultOptions())
	assert.Empty(t, res.Warnings)

	assert.Contains(t, string(files[DefaultTfvarsJSONFile]), `"databases": []`)
	assert.Contains(t, string(files[DefaultTfvarsJSONFile]), `"services": []`)
	assert.Contains(t, string(files[DefaultConfigFile]), `"container_workloads": {}`)
	assert.Contains(t, string(files[DefaultConfigFile]), `"database_workloads": {}`)
}

func TestParse_NoPorts(t *testing.T) {
	t.Parallel()

	_, files := parse(t, "workloads:\n  web:\n    type: container\n    image: nginx\n", DefaultOptions())
	web := tfvarsOf(t, files)["services"].([]any)[0].(map[string]any)
	assert.EqualValues(t, 80, web["container_port"])
	assert.Equal(t, "http", web["protocol"])
}

func TestParse_TwoPorts(t *testing.T) {
	t.Parallel()

	src := `
workloads:
  web:
    type: container
    ports:
      - {port: 8080, protocol: http}
      - {port: 9443, protocol: https}
`
	res, files := parse(t, src, DefaultOptions())
	web := tfvarsOf(t, files)["services"].([]any)[0].(map[string]any)
	assert.EqualValues(t, 8080, web["container_port"])
	assert.Equal(t, "http", web["protocol"])
	assert.NotContains(t, string(files[DefaultTfvarsJSONFile]), "9443")
	assert.Equal(t, []string{result.WarnDroppedPort}, warnTypes(res.Warnings))
}

func TestParse_DroppedWorkloads(t *testing.T) {
	t.Parallel()

	src := `
workloads:
  untyped:
    image: nginx
  queue:
    type: sqs
  scalar: nginx
  web:
    type: container
`
	res, files := parse(t, src, DefaultOptions())
	assert.Len(t, tfvarsOf(t, files)["services"], 1)
	require.Equal(t, []string{
		result.WarnDroppedWorkload, result.WarnDroppedWorkload, result.WarnDroppedWorkload,
	}, warnTypes(res.Warnings))
	assert.Equal(t, "workload has no type", res.Warnings[0].Message)
	assert.Equal(t, "unsupported workload type: sqs", res.Warnings[1].Message)
	assert.Equal(t, "workload is not a mapping", res.Warnings[2].Message)
}

func TestParse_Dependencies(t *testing.T) {
	t.Parallel()

	src := `
workloads:
  web:
    type: container
    dependsOn: [api, cache, 7]
  api:
    type: container
    dependsOn: [web]
`
	res, files := parse(t, src, DefaultOptions())
	assert.Equal(t, []string{
		result.WarnUnknownDependency, result.WarnUnknownDependency, result.WarnDependencyCycle,
	}, warnTypes(res.Warnings))
	assert.Equal(t, "dependsOn entry 7 is not a workload name", res.Warnings[0].Message)
	assert.Equal(t, "depends on unknown workload: cache", res.Warnings[1].Message)

	web := tfvarsOf(t, files)["services"].([]any)[0].(map[string]any)
	assert.Equal(t, []any{"api", "cache", float64(7)}, web["depends_on"], "depends_on is passed through")
}

func TestParse_Deterministic(t *testing.T) {
	t.Parallel()

	_, first := parse(t, shopScore, DefaultOptions())
	_, second := parse(t, shopScore, DefaultOptions())
	assert.Equal(t, first, second)
}

func TestParse_HCLAndVariables(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Format = FormatHCL
	opts.EmitVariables = true
	res, files := parse(t, shopScore, opts)

	require.Len(t, res.Files, 3)
	assert.Equal(t, []string{DefaultTfvarsHCLFile, DefaultConfigFile, DefaultVariablesFile},
		[]string{res.Files[0].Name, res.Files[1].Name, res.Files[2].Name})
	assert.Contains(t, string(files[DefaultTfvarsHCLFile]), `app_name`)
	assert.Contains(t, string(files[DefaultVariablesFile]), `variable "services"`)
}

func TestParse_UnknownFormat(t *testing.T) {
	t.Parallel()

	d, err := descriptor.Parse([]byte("metadata: {}"))
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Format = "yaml"
	_, err = New(opts).Parse(d)
	assert.EqualError(t, err, `unsupported format "yaml" (want json or hcl)`)
}

func TestOptions_TfvarsFile(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	assert.Equal(t, "terraform.tfvars.json", opts.TfvarsFile())
	opts.Format = FormatHCL
	assert.Equal(t, "terraform.tfvars", opts.TfvarsFile())
	opts.OutputFile = "out/vars.tfvars"
	assert.Equal(t, "out/vars.tfvars", opts.TfvarsFile())
}

func TestWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := []result.File{
		{Name: filepath.Join(dir, "terraform.tfvars.json"), Content: []byte("{}\n")},
		{Name: filepath.Join(dir, "score_config.json"), Content: []byte("{}\n")},
	}
	require.NoError(t, Write(files))
	for _, f := range files {
		b, err := os.ReadFile(f.Name)
		require.NoError(t, err)
		assert.Equal(t, f.Content, b)
	}
}

func TestWrite_PartialFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "terraform.tfvars.json")
	second := filepath.Join(dir, "missing", "score_config.json")
	err := Write([]result.File{
		{Name: first, Content: []byte("{}\n")},
		{Name: second, Content: []byte("{}\n")},
	})

	var we *result.WriteError
	require.True(t, errors.As(err, &we))
	assert.Equal(t, second, we.Path)
	assert.FileExists(t, first, "earlier writes are not rolled back")
}
