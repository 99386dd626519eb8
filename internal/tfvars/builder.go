package tfvars

import "github.com/score-to-terraform/score2tf/internal/result"

// Builder collects generated files in the order they must be written: the
// variable set first, then the intermediate config, then variables.tf.
type Builder struct {
	tfvars    result.File
	config    result.File
	variables result.File
}

// NewBuilder returns a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetTfvars sets the variable set file (JSON or HCL).
func (b *Builder) SetTfvars(name string, content []byte) {
	b.tfvars = result.File{Name: name, Content: content}
}

// SetConfig sets the intermediate config file.
func (b *Builder) SetConfig(name string, content []byte) {
	b.config = result.File{Name: name, Content: content}
}

// SetVariables sets the variables.tf file (optional).
func (b *Builder) SetVariables(name string, content []byte) {
	b.variables = result.File{Name: name, Content: content}
}

// Build returns the files that were set, in write order.
func (b *Builder) Build() []result.File {
	var out []result.File
	for _, f := range []result.File{b.tfvars, b.config, b.variables} {
		if f.Name != "" && len(f.Content) > 0 {
			out = append(out, f)
		}
	}
	return out
}
