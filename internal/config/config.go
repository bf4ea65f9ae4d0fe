package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/sumsquares/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// File is the decoded form of a settings file.
type File struct {
	Bound     *int64  `hcl:"bound,optional"`
	Checked   *bool   `hcl:"checked,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
}

// Load parses and decodes the HCL file at path.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading config file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	file, err := Parse(src, path, os.Environ())
	if err != nil {
		return nil, err
	}
	logger.Debug("Config file decoded.", "path", path)
	return file, nil
}

// Parse decodes HCL source. environ is a list of KEY=VALUE pairs exposed to
// expressions as the `env` map.
func Parse(src []byte, filename string, environ []string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var out File
	diags = gohcl.DecodeBody(hclFile.Body, newEvalContext(environ), &out)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return &out, nil
}

func newEvalContext(environ []string) *hcl.EvalContext {
	env := make(map[string]cty.Value, len(environ))
	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			env[pair[0]] = cty.StringVal(pair[1])
		}
	}
	envVal := cty.MapValEmpty(cty.String)
	if len(env) > 0 {
		envVal = cty.MapVal(env)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVal,
		},
		Functions: map[string]function.Function{
			"abs":      stdlib.AbsoluteFunc,
			"max":      stdlib.MaxFunc,
			"min":      stdlib.MinFunc,
			"tonumber": tonumberFunc,
		},
	}
}

// tonumberFunc converts a string or number to a number.
var tonumberFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "v", Type: cty.DynamicPseudoType},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		v := args[0]
		switch v.Type() {
		case cty.Number:
			return v, nil
		case cty.String:
			n, err := cty.ParseNumberVal(strings.TrimSpace(v.AsString()))
			if err != nil {
				return cty.UnknownVal(cty.Number), fmt.Errorf("cannot convert %q to a number", v.AsString())
			}
			return n, nil
		default:
			return cty.UnknownVal(cty.Number), fmt.Errorf("cannot convert %s to a number", v.Type().FriendlyName())
		}
	},
})
