package fluxins

import "strconv"

// parseFloat32 is the number-literal conversion the parser uses once
// the tokenizer has already validated the literal's shape.
func parseFloat32(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(v), nil
}

// evaluate walks n, resolving variables, functions, and operators
// against ctx and cfg. Binary and unary operators always evaluate both
// (or their one) operand; the conditional operator is the only
// short-circuiting construct, evaluating just the taken branch.
func (n *node) evaluate(code *Code, cfg *Config, ctx *Context) (float32, error) {
	switch n.kind {
	case nodeNumber:
		return n.value, nil

	case nodeVariable:
		if v, ok := ctx.ResolveVariable(n.name); ok {
			return v, nil
		}
		return 0, NewUnresolvedReferenceError(n.name, "variable", code, n.location)

	case nodeCall:
		args := make([]float32, len(n.args))
		for i, a := range n.args {
			v, err := a.evaluate(code, cfg, ctx)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		fn, ok := ctx.ResolveFunction(n.name)
		if !ok {
			return 0, NewUnresolvedReferenceError(n.name, "function", code, n.location)
		}
		return fn(code, n.location, args)

	case nodeOperator:
		return n.evaluateOperator(code, cfg, ctx)

	case nodeConditional:
		c, err := n.condition.evaluate(code, cfg, ctx)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return n.trueValue.evaluate(code, cfg, ctx)
		}
		return n.falseValue.evaluate(code, cfg, ctx)

	default:
		return 0, NewCodeError("malformed expression node", code, n.location)
	}
}

func (n *node) evaluateOperator(code *Code, cfg *Config, ctx *Context) (float32, error) {
	var leftValue, rightValue float32
	var err error
	if n.left != nil {
		leftValue, err = n.left.evaluate(code, cfg, ctx)
		if err != nil {
			return 0, err
		}
	}
	if n.right != nil {
		rightValue, err = n.right.evaluate(code, cfg, ctx)
		if err != nil {
			return 0, err
		}
	}

	switch {
	case n.left != nil && n.right != nil:
		op, err := cfg.GetBinaryOp(n.name)
		if err != nil {
			return 0, NewUnresolvedReferenceError(n.name, "binary operator", code, n.location)
		}
		return op.Operate(code, n.location, leftValue, rightValue)

	case n.left != nil:
		op, err := cfg.GetSuffixOp(n.name)
		if err != nil {
			return 0, NewUnresolvedReferenceError(n.name, "suffix operator", code, n.location)
		}
		return op.Operate(code, n.location, leftValue)

	case n.right != nil:
		op, err := cfg.GetPrefixOp(n.name)
		if err != nil {
			return 0, NewUnresolvedReferenceError(n.name, "prefix operator", code, n.location)
		}
		return op.Operate(code, n.location, rightValue)

	default:
		return 0, NewCodeError("operator has no operands", code, n.location)
	}
}
