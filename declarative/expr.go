package declarative

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	gocomp "github.com/reoring/gocomp"
)

// CodeInvalidExpression marks an if expression that does not compile to a
// boolean.
const CodeInvalidExpression = "invalid_expression"

// exprEnv returns the expression environment for s. Every declared property
// is a variable; absent optional properties hold their type's zero value.
func exprEnv(s gocomp.Schema, p gocomp.Properties) map[string]any {
	env := make(map[string]any, len(s.Properties))
	for name, c := range s.Properties {
		switch c.Type {
		case gocomp.TypeNumber:
			env[name] = p.Number(name)
		case gocomp.TypeString:
			env[name] = p.String(name)
		case gocomp.TypeBoolean:
			env[name] = p.Bool(name)
		}
	}
	return env
}

func compileIf(s gocomp.Schema, src string) (*vm.Program, error) {
	env := exprEnv(s, gocomp.NewProperties(nil))
	return expr.Compile(src, expr.Env(env), expr.AsBool())
}

func evalIf(prog *vm.Program, s gocomp.Schema, p gocomp.Properties) (bool, error) {
	out, err := expr.Run(prog, exprEnv(s, p))
	if err != nil {
		return false, fmt.Errorf("run expression: %w", err)
	}
	ok, _ := out.(bool)
	return ok, nil
}
