// Package builtins populates a fluxins Context with the standard
// math constants and functions, and builds the standard fluxins
// Config: the default operator set and precedence table that a bare
// fluxins.Config starts without.
//
// Neither of these is part of the core fluxins package: a host that
// wants a different operator set or a sandboxed symbol table is free
// to build its own from scratch.
package builtins

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/flowthorn/fluxins"
)

// Populate registers the standard constants and functions into ctx,
// overwriting any symbols of the same name already present.
func Populate(ctx *fluxins.Context) {
	registerConstants(ctx)
	registerFunctions(ctx)
}

// sqrt3 has no math package equivalent (math defines Sqrt2, SqrtE,
// SqrtPi, SqrtPhi, but no Sqrt3), same as egamma below.
const sqrt3 = 1.7320508075688772

func registerConstants(ctx *fluxins.Context) {
	constants := map[string]float32{
		"e":          math.E,
		"log2e":      math.Log2E,
		"log10e":     1 / math.Ln10,
		"pi":         math.Pi,
		"inv_pi":     1 / math.Pi,
		"inv_sqrtpi": 1 / math.SqrtPi,
		"ln2":        math.Ln2,
		"ln10":       math.Ln10,
		"sqrt2":      math.Sqrt2,
		"sqrt3":      sqrt3,
		"inv_sqrt3":  1 / sqrt3,
		"egamma":     0.5772156649015329,
		"phi":        math.Phi,
	}
	for name, v := range constants {
		ctx.SetVariable(name, v)
	}
}

// arity wraps fn with an argument-count check, raising
// *fluxins.InvalidArityError on mismatch. Pass atLeastOne for "one or
// more", the shape "max"/"min"/"avg" need.
func arity(name string, n int, fn func(args []float32) (float32, error)) fluxins.Callable {
	return func(code *fluxins.Code, loc fluxins.CodeLocation, args []float32) (float32, error) {
		switch {
		case n == atLeastOne:
			if len(args) == 0 {
				return 0, fluxins.NewInvalidArityError(name, len(args), 1, code, loc)
			}
		case len(args) != n:
			return 0, fluxins.NewInvalidArityError(name, len(args), n, code, loc)
		}
		return fn(args)
	}
}

const atLeastOne = -1

func registerFunctions(ctx *fluxins.Context) {
	one := func(f func(float64) float64) func([]float32) (float32, error) {
		return func(args []float32) (float32, error) {
			return float32(f(float64(args[0]))), nil
		}
	}
	two := func(f func(a, b float64) float64) func([]float32) (float32, error) {
		return func(args []float32) (float32, error) {
			return float32(f(float64(args[0]), float64(args[1]))), nil
		}
	}

	set1 := func(name string, f func(float64) float64) {
		ctx.SetFunction(name, arity(name, 1, one(f)))
	}
	set2 := func(name string, f func(a, b float64) float64) {
		ctx.SetFunction(name, arity(name, 2, two(f)))
	}

	set1("abs", math.Abs)
	set1("acos", math.Acos)
	set1("acosh", math.Acosh)
	set1("asin", math.Asin)
	set1("asinh", math.Asinh)
	set1("atan", math.Atan)
	set2("atan2", math.Atan2)
	set1("atanh", math.Atanh)
	set1("ceil", math.Ceil)
	set1("cbrt", math.Cbrt)
	ctx.SetFunction("clamp", arity("clamp", 3, func(args []float32) (float32, error) {
		x, lo, hi := args[0], args[1], args[2]
		if x < lo {
			return lo, nil
		}
		if x > hi {
			return hi, nil
		}
		return x, nil
	}))
	set1("cos", math.Cos)
	set1("cosh", math.Cosh)
	set1("erf", math.Erf)
	set1("erfc", math.Erfc)
	set1("exp", math.Exp)
	set1("exp2", math.Exp2)
	set1("expm1", math.Expm1)
	set1("floor", math.Floor)
	ctx.SetFunction("gcd", arity("gcd", 2, func(args []float32) (float32, error) {
		a, b := int64(math.Round(float64(args[0]))), int64(math.Round(float64(args[1])))
		for b != 0 {
			a, b = b, a%b
		}
		if a < 0 {
			a = -a
		}
		return float32(a), nil
	}))
	set2("hypot", math.Hypot)
	ctx.SetFunction("lcm", arity("lcm", 2, func(args []float32) (float32, error) {
		a, b := int64(math.Round(float64(args[0]))), int64(math.Round(float64(args[1])))
		if a == 0 || b == 0 {
			return 0, nil
		}
		g := a
		for h := b; h != 0; {
			g, h = h, g%h
		}
		if g < 0 {
			g = -g
		}
		return float32(a / g * b), nil
	}))
	ctx.SetFunction("lerp", arity("lerp", 3, func(args []float32) (float32, error) {
		a, b, t := args[0], args[1], args[2]
		return a + t*(b-a), nil
	}))
	set1("log", math.Log)
	set1("log1p", math.Log1p)
	set1("log10", math.Log10)
	set1("log2", math.Log2)
	ctx.SetFunction("max", arity("max", atLeastOne, func(args []float32) (float32, error) {
		m := args[0]
		for _, v := range args[1:] {
			if v > m {
				m = v
			}
		}
		return m, nil
	}))
	ctx.SetFunction("min", arity("min", atLeastOne, func(args []float32) (float32, error) {
		m := args[0]
		for _, v := range args[1:] {
			if v < m {
				m = v
			}
		}
		return m, nil
	}))
	set2("mod", math.Mod)
	set1("nearbyint", math.RoundToEven)
	set2("pow", math.Pow)
	set2("remainder", math.Remainder)
	set1("rint", math.RoundToEven)
	set1("round", math.Round)
	set1("sin", math.Sin)
	set1("sinh", math.Sinh)
	set1("sqrt", math.Sqrt)
	set1("tan", math.Tan)
	set1("tanh", math.Tanh)
	set1("tgamma", math.Gamma)
	set1("lgamma", func(x float64) float64 { v, _ := math.Lgamma(x); return v })
	set1("trunc", math.Trunc)

	ctx.SetFunction("avg", arity("avg", atLeastOne, func(args []float32) (float32, error) {
		var sum float32
		for _, v := range args {
			sum += v
		}
		return sum / float32(len(args)), nil
	}))
	ctx.SetFunction("rand", arity("rand", 0, func([]float32) (float32, error) {
		return rand.Float32(), nil
	}))
	ctx.SetFunction("srand", arity("srand", 1, func(args []float32) (float32, error) {
		rand.Seed(int64(args[0]))
		return 0, nil
	}))
	ctx.SetFunction("time", arity("time", 0, func([]float32) (float32, error) {
		return float32(time.Now().Unix()), nil
	}))
}

// Factorial is the default "!" suffix operator's implementation:
// negative inputs give 0, 0 and 1 give 1, otherwise the product
// 1*2*...*floor(x).
func Factorial(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x == 0 || x == 1 {
		return 1
	}
	result := float32(1)
	for i := 1; i <= int(x); i++ {
		result *= float32(i)
	}
	return result
}

// WrappingModulo is the default "%%" operator's implementation: a
// truncating integer modulo corrected to always land in [0, y).
func WrappingModulo(x, y float32) float32 {
	ix, iy := int(x), int(y)
	r := ix % iy
	if r < 0 {
		r += iy
	}
	return float32(r)
}

func divByZero(msg string, code *fluxins.Code, loc fluxins.CodeLocation) error {
	return fluxins.NewCodeError(msg, code, loc)
}

func boolf(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// DefaultConfig builds the standard operator set: 6 prefix operators,
// 1 suffix operator, 25 binary operators, and the precedence table
// assembled the same way the reference implementation's default
// constructor does, one assign-precedence call at a time from tightest
// to loosest.
func DefaultConfig() *fluxins.Config {
	cfg := fluxins.NewConfig()

	mustAddPrefix(cfg, "+", func(_ *fluxins.Code, _ fluxins.CodeLocation, x float32) (float32, error) { return x, nil })
	mustAddPrefix(cfg, "-", func(_ *fluxins.Code, _ fluxins.CodeLocation, x float32) (float32, error) { return -x, nil })
	mustAddPrefix(cfg, "*", func(_ *fluxins.Code, _ fluxins.CodeLocation, x float32) (float32, error) { return x, nil })
	mustAddPrefix(cfg, "/", func(code *fluxins.Code, loc fluxins.CodeLocation, x float32) (float32, error) {
		if x == 0 {
			return 0, divByZero("division by zero", code, loc)
		}
		return 1 / x, nil
	})
	mustAddPrefix(cfg, "!", func(_ *fluxins.Code, _ fluxins.CodeLocation, x float32) (float32, error) { return boolf(x == 0), nil })
	mustAddPrefix(cfg, "~", func(_ *fluxins.Code, _ fluxins.CodeLocation, x float32) (float32, error) { return float32(^int(x)), nil })

	mustAddSuffix(cfg, "!", func(_ *fluxins.Code, _ fluxins.CodeLocation, x float32) (float32, error) { return Factorial(x), nil })

	left, right := fluxins.LeftAssoc, fluxins.RightAssoc
	bin := func(symbol string, assoc fluxins.Associativity, fn fluxins.BinaryFunc) {
		mustAddBinary(cfg, symbol, assoc, fn)
	}

	bin("+", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return x + y, nil })
	bin("-", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return x - y, nil })
	bin("*", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return x * y, nil })
	bin("/", left, func(code *fluxins.Code, loc fluxins.CodeLocation, x, y float32) (float32, error) {
		if y == 0 {
			return 0, divByZero("division by zero", code, loc)
		}
		return x / y, nil
	})
	bin("%", left, func(code *fluxins.Code, loc fluxins.CodeLocation, x, y float32) (float32, error) {
		if y == 0 {
			return 0, divByZero("modulo by zero", code, loc)
		}
		return float32(math.Mod(float64(x), float64(y))), nil
	})
	bin("%%", left, func(code *fluxins.Code, loc fluxins.CodeLocation, x, y float32) (float32, error) {
		if y == 0 {
			return 0, divByZero("wrapping modulo by zero", code, loc)
		}
		return WrappingModulo(x, y), nil
	})
	bin("**", right, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) {
		return float32(math.Pow(float64(x), float64(y))), nil
	})
	bin("//", left, func(code *fluxins.Code, loc fluxins.CodeLocation, x, y float32) (float32, error) {
		if y == 0 {
			return 0, divByZero("flooring division by zero", code, loc)
		}
		return float32(math.Floor(float64(x / y))), nil
	})
	bin("==", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return boolf(x == y), nil })
	bin("!=", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return boolf(x != y), nil })
	bin("<", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return boolf(x < y), nil })
	bin(">", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return boolf(x > y), nil })
	bin("<=", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return boolf(x <= y), nil })
	bin(">=", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return boolf(x >= y), nil })
	bin("&&", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return boolf(x != 0 && y != 0), nil })
	bin("||", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return boolf(x != 0 || y != 0), nil })
	bin("&", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return float32(int(x) & int(y)), nil })
	bin("|", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return float32(int(x) | int(y)), nil })
	bin("^", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return float32(int(x) ^ int(y)), nil })
	bin("<<", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return float32(int(x) << uint(y)), nil })
	bin(">>", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return float32(int(x) >> uint(y)), nil })
	bin("!!", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return float32(math.Abs(float64(x - y))), nil })
	bin("??", right, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) {
		if x != 0 {
			return x, nil
		}
		return y, nil
	})
	bin("<?", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return float32(math.Min(float64(x), float64(y))), nil })
	bin(">?", left, func(_ *fluxins.Code, _ fluxins.CodeLocation, x, y float32) (float32, error) { return float32(math.Max(float64(x), float64(y))), nil })

	// Precedence, highest to lowest, matching the original's
	// assign-precedence call sequence exactly.
	mustAssignLowest(cfg, "<<", true)
	mustAssignLowest(cfg, ">>", false)

	mustAssignLowest(cfg, "^", true)

	mustAssignLowest(cfg, "&", true)
	mustAssignLowest(cfg, "|", false)

	mustAssignLowest(cfg, "!!", true)

	mustAssignLowest(cfg, "<?", true)
	mustAssignLowest(cfg, ">?", false)

	mustAssignLowest(cfg, "??", true)

	mustAssignLowest(cfg, "**", true)

	mustAssignLowest(cfg, "//", true)

	mustAssignLowest(cfg, "%", true)
	mustAssignLowest(cfg, "%%", false)

	mustAssignLowest(cfg, "*", true)
	mustAssignLowest(cfg, "/", false)

	mustAssignLowest(cfg, "+", true)
	mustAssignLowest(cfg, "-", false)

	mustAssignLowest(cfg, "==", true)
	mustAssignLowest(cfg, "!=", false)
	mustAssignLowest(cfg, "<", false)
	mustAssignLowest(cfg, ">", false)
	mustAssignLowest(cfg, "<=", false)
	mustAssignLowest(cfg, ">=", false)

	mustAssignLowest(cfg, "&&", true)
	mustAssignLowest(cfg, "||", false)

	return cfg
}

func mustAddPrefix(cfg *fluxins.Config, symbol string, fn fluxins.UnaryFunc) {
	if err := cfg.AddPrefixOp(fluxins.UnaryOperator{Symbol: symbol, Operate: fn}); err != nil {
		panic(fmt.Sprintf("fluxins/builtins: %v", err))
	}
}

func mustAddSuffix(cfg *fluxins.Config, symbol string, fn fluxins.UnaryFunc) {
	if err := cfg.AddSuffixOp(fluxins.UnaryOperator{Symbol: symbol, Operate: fn}); err != nil {
		panic(fmt.Sprintf("fluxins/builtins: %v", err))
	}
}

func mustAddBinary(cfg *fluxins.Config, symbol string, assoc fluxins.Associativity, fn fluxins.BinaryFunc) {
	if err := cfg.AddBinaryOp(fluxins.BinaryOperator{Symbol: symbol, Assoc: assoc, Operate: fn}); err != nil {
		panic(fmt.Sprintf("fluxins/builtins: %v", err))
	}
}

func mustAssignLowest(cfg *fluxins.Config, symbol string, insertRow bool) {
	if err := cfg.AssignPrecedenceLowest(symbol, insertRow, false); err != nil {
		panic(fmt.Sprintf("fluxins/builtins: %v", err))
	}
}
