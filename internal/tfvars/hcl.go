package tfvars

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclwrite"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// JSON encodes v with 2-space indentation, leaving <, > and & unescaped.
func JSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TfvarsHCL renders the variable set in native HCL syntax (terraform.tfvars),
// one attribute per declared variable.
func TfvarsHCL(v *Variables) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	ty, err := ctyjson.ImpliedType(b)
	if err != nil {
		return nil, fmt.Errorf("infer variable types: %w", err)
	}
	val, err := ctyjson.Unmarshal(b, ty)
	if err != nil {
		return nil, fmt.Errorf("convert variables: %w", err)
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, decl := range Declarations {
		body.SetAttributeValue(decl.Name, val.GetAttr(decl.Name))
	}
	return hclwrite.Format(f.Bytes()), nil
}
