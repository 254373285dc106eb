package dsl

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	represent "github.com/represent-go/represent"
	"github.com/represent-go/represent/internal/access"
)

// IfExpr gates the property on an expr-lang expression evaluated against the
// host instance, e.g. dsl.IfExpr(`plays > 100`). Accessor names follow the
// same snake_case/tag convention as property bindings. The expression is
// compiled once at declare time; a compile failure fails Build.
func IfExpr(expression string) Option {
	return func(p *represent.Property) error {
		if expression == "" {
			return fmt.Errorf("if_expr: empty expression")
		}
		program, err := exprlang.Compile(expression,
			exprlang.AllowUndefinedVariables(),
			exprlang.AsBool(),
		)
		if err != nil {
			return fmt.Errorf("if_expr: compile %q: %w", expression, err)
		}
		p.Condition = exprCondition(expression, program)
		return nil
	}
}

func exprCondition(expression string, program *vm.Program) represent.Condition {
	return func(host any) (bool, error) {
		out, err := exprlang.Run(program, access.Env(host))
		if err != nil {
			return false, fmt.Errorf("if_expr: run %q: %w", expression, err)
		}
		ok, isBool := out.(bool)
		if !isBool {
			return false, fmt.Errorf("if_expr: %q evaluated to %T, want bool", expression, out)
		}
		return ok, nil
	}
}
