package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     *string        `mapstructure:"name"`
	Replicas *int           `mapstructure:"replicas"`
	Enabled  *bool          `mapstructure:"enabled"`
	Env      map[string]any `mapstructure:"env"`
	Ports    []any          `mapstructure:"ports"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("weak conversion", func(t *testing.T) {
		t.Parallel()
		var p sample
		errs := Decode(map[string]any{"name": 123, "replicas": "3", "enabled": "true"}, &p)
		assert.Empty(t, errs)
		assert.Equal(t, "123", *p.Name)
		assert.Equal(t, 3, *p.Replicas)
		assert.True(t, *p.Enabled)
	})

	t.Run("missing and null fields stay unset", func(t *testing.T) {
		t.Parallel()
		var p sample
		errs := Decode(map[string]any{"name": nil}, &p)
		assert.Empty(t, errs)
		assert.Nil(t, p.Name)
		assert.Nil(t, p.Replicas)
		assert.Nil(t, p.Env)
	})

	t.Run("bad fields are reported and skipped", func(t *testing.T) {
		t.Parallel()
		var p sample
		errs := Decode(map[string]any{"name": "web", "replicas": "many", "env": "x"}, &p)
		assert.Len(t, errs, 2)
		assert.Equal(t, "web", *p.Name)
		assert.Nil(t, p.Replicas)
		assert.Nil(t, p.Env)
	})

	t.Run("fractional numbers are not truncated", func(t *testing.T) {
		t.Parallel()
		var p sample
		errs := Decode(map[string]any{"replicas": 2.9}, &p)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0], "replicas")
		assert.Nil(t, p.Replicas)
	})

	t.Run("whole floats convert", func(t *testing.T) {
		t.Parallel()
		var p sample
		errs := Decode(map[string]any{"replicas": 3.0}, &p)
		assert.Empty(t, errs)
		assert.Equal(t, 3, *p.Replicas)
	})

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()
		var p sample
		assert.Empty(t, Decode(nil, &p))
	})

	t.Run("not a mapping", func(t *testing.T) {
		t.Parallel()
		var p sample
		assert.NotEmpty(t, Decode("web", &p))
	})
}

func TestGetters(t *testing.T) {
	t.Parallel()

	m := map[string]any{"type": "container", "count": 3, "nested": map[string]any{"a": 1}, "none": nil}
	assert.Equal(t, "container", GetStr(m, "type"))
	assert.Equal(t, "", GetStr(m, "count"))
	assert.Equal(t, "", GetStr(nil, "type"))
	assert.Equal(t, map[string]any{"a": 1}, GetMap(m, "nested"))
	assert.Nil(t, GetMap(m, "type"))
	assert.True(t, Has(m, "count"))
	assert.False(t, Has(m, "none"))
	assert.False(t, Has(m, "absent"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"list": []any{map[any]any{1: "one"}},
		"map":  map[any]any{true: map[any]any{"x": 1}},
	}
	assert.Equal(t, map[string]any{
		"list": []any{map[string]any{"1": "one"}},
		"map":  map[string]any{"true": map[string]any{"x": 1}},
	}, Normalize(in))
}
