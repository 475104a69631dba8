// Package fluxins implements an embeddable arithmetic expression
// tokenizer, parser, and evaluator.
//
// The operator set and its precedence are not compiled into the
// grammar: they live in a *Config that the host builds and mutates at
// runtime through AddPrefixOp, AddBinaryOp, AssignPrecedence, and
// friends. The default arithmetic operators and the usual math
// constants and functions are not part of this package; see the
// builtins subpackage for those.
//
// Values are always float32. There is no multi-precision arithmetic,
// no string or vector value type, and no statement or assignment
// syntax: an expression is a single value-producing tree.
package fluxins
