package ruleset

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"

	"github.com/dmitrymomot/formstate/pkg/validator"
)

// FormDataVar is the name under which expressions see the whole form data.
const FormDataVar = "formData"

type exprCompiler struct {
	env *cel.Env
}

func newExprCompiler() (*exprCompiler, error) {
	env, err := cel.NewEnv(
		cel.Variable(FormDataVar, cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expression environment: %w", err)
	}
	return &exprCompiler{env: env}, nil
}

// compile turns src into a derived parameter. The program is built once and
// evaluated against the current form data on every validation pass.
func (c *exprCompiler) compile(src string) (validator.Param, error) {
	ast, iss := c.env.Compile(src)
	if iss != nil && iss.Err() != nil {
		return validator.Param{}, fmt.Errorf("%w: %q: %w", ErrInvalidExpression, src, iss.Err())
	}
	prg, err := c.env.Program(ast)
	if err != nil {
		return validator.Param{}, fmt.Errorf("%w: %q: %w", ErrInvalidExpression, src, err)
	}

	return validator.DerivedE(func(data map[string]any) (any, error) {
		if data == nil {
			data = map[string]any{}
		}
		out, _, err := prg.Eval(map[string]any{FormDataVar: data})
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrExpressionFailed, src, err)
		}
		return native(out), nil
	}), nil
}

// native converts an expression result into the plain Go values the rules
// understand: nil, scalars, []any and map[string]any.
func native(v ref.Val) any {
	if v == nil || v.Type() == types.NullType {
		return nil
	}
	switch t := v.(type) {
	case traits.Mapper:
		out := make(map[string]any)
		it := t.Iterator()
		for it.HasNext() == types.True {
			k := it.Next()
			out[fmt.Sprint(k.Value())] = native(t.Get(k))
		}
		return out
	case traits.Lister:
		n, _ := t.Size().(types.Int)
		out := make([]any, int(n))
		for i := range out {
			out[i] = native(t.Get(types.Int(i)))
		}
		return out
	}
	return v.Value()
}
