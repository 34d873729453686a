// Package arith evaluates the numeric fields of a recipe manual.
//
// Expressions use HCL native syntax, restricted to numeric literals,
// parentheses, unary minus and the binary operators + - * /. Anything
// that could reach outside the expression itself (variables, function
// calls, templates, collections) is rejected before evaluation.
package arith

import (
	"fmt"
	"math"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// UnsupportedError reports a syntax construct that is not plain arithmetic.
type UnsupportedError struct {
	Expr      string
	Construct string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s in arithmetic expression %q", e.Construct, e.Expr)
}

// Eval parses src and returns its value as a float64.
func Eval(src string) (float64, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<expr>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return 0, fmt.Errorf("failed to parse %q: %w", src, diags)
	}
	if err := check(src, expr); err != nil {
		return 0, err
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("failed to evaluate %q: %w", src, diags)
	}
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.Number {
		return 0, fmt.Errorf("expression %q did not produce a number", src)
	}

	f, _ := val.AsBigFloat().Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("expression %q is not a finite number", src)
	}
	return f, nil
}

// MustEval is like Eval but panics on error. Intended for constants in tests.
func MustEval(src string) float64 {
	f, err := Eval(src)
	if err != nil {
		panic(err)
	}
	return f
}

// check walks the syntax tree and rejects anything but arithmetic.
func check(src string, expr hclsyntax.Expression) error {
	switch e := expr.(type) {
	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() != cty.Number {
			return &UnsupportedError{Expr: src, Construct: e.Val.Type().FriendlyName() + " literal"}
		}
		return nil
	case *hclsyntax.ParenthesesExpr:
		return check(src, e.Expression)
	case *hclsyntax.UnaryOpExpr:
		if e.Op != hclsyntax.OpNegate {
			return &UnsupportedError{Expr: src, Construct: "unary operator"}
		}
		return check(src, e.Val)
	case *hclsyntax.BinaryOpExpr:
		switch e.Op {
		case hclsyntax.OpAdd, hclsyntax.OpSubtract, hclsyntax.OpMultiply, hclsyntax.OpDivide:
		default:
			return &UnsupportedError{Expr: src, Construct: "operator"}
		}
		if err := check(src, e.LHS); err != nil {
			return err
		}
		return check(src, e.RHS)
	case *hclsyntax.ScopeTraversalExpr, *hclsyntax.RelativeTraversalExpr:
		return &UnsupportedError{Expr: src, Construct: "variable reference"}
	case *hclsyntax.FunctionCallExpr:
		return &UnsupportedError{Expr: src, Construct: "function call"}
	case *hclsyntax.ConditionalExpr:
		return &UnsupportedError{Expr: src, Construct: "conditional"}
	case *hclsyntax.TemplateExpr, *hclsyntax.TemplateWrapExpr:
		return &UnsupportedError{Expr: src, Construct: "string template"}
	default:
		return &UnsupportedError{Expr: src, Construct: fmt.Sprintf("%T", expr)}
	}
}
