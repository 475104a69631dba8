package fluxins

import "fmt"

// Associativity controls which direction a chain of same-precedence
// binary operators groups.
type Associativity int8

const (
	// LeftAssoc groups a + b + c as (a + b) + c.
	LeftAssoc Associativity = iota
	// RightAssoc groups a ** b ** c as a ** (b ** c).
	RightAssoc
)

func (a Associativity) String() string {
	switch a {
	case LeftAssoc:
		return "left"
	case RightAssoc:
		return "right"
	default:
		return "invalid"
	}
}

// UnaryFunc implements a prefix or suffix operator over one operand.
type UnaryFunc func(code *Code, loc CodeLocation, x float32) (float32, error)

// UnaryOperator is a prefix or suffix operator: a symbol plus the
// function that evaluates it.
type UnaryOperator struct {
	Symbol  string
	Operate UnaryFunc
}

// BinaryFunc implements a binary operator over two operands.
type BinaryFunc func(code *Code, loc CodeLocation, x, y float32) (float32, error)

// BinaryOperator is a binary operator: a symbol, its associativity,
// and the function that evaluates it.
type BinaryOperator struct {
	Symbol  string
	Assoc   Associativity
	Operate BinaryFunc
}

// Config holds the operator tables that drive parsing and evaluation.
// Every operator and its precedence is runtime data: there is no
// compiled-in grammar. The zero value is an empty configuration with
// no operators at all; see the builtins package for a populated
// default.
type Config struct {
	prefixOps []UnaryOperator
	suffixOps []UnaryOperator
	binaryOps []BinaryOperator

	// precedence holds rows of indices into binaryOps. Row 0 binds
	// tightest; the last row binds loosest. An operator absent from
	// every row exists in binaryOps but is not parsed as a binary
	// operator.
	precedence [][]int
}

// NewConfig returns an empty configuration with no operators defined.
func NewConfig() *Config {
	return &Config{}
}

func findUnary(ops []UnaryOperator, symbol string) int {
	for i, op := range ops {
		if op.Symbol == symbol {
			return i
		}
	}
	return -1
}

func findBinary(ops []BinaryOperator, symbol string) int {
	for i, op := range ops {
		if op.Symbol == symbol {
			return i
		}
	}
	return -1
}

// HasPrefixOp reports whether a prefix operator with the given symbol
// is registered.
func (c *Config) HasPrefixOp(symbol string) bool { return findUnary(c.prefixOps, symbol) >= 0 }

// HasSuffixOp reports whether a suffix operator with the given symbol
// is registered.
func (c *Config) HasSuffixOp(symbol string) bool { return findUnary(c.suffixOps, symbol) >= 0 }

// HasBinaryOp reports whether a binary operator with the given symbol
// is registered, independent of whether it has an assigned precedence.
func (c *Config) HasBinaryOp(symbol string) bool { return findBinary(c.binaryOps, symbol) >= 0 }

// GetPrefixOp returns the prefix operator for symbol.
func (c *Config) GetPrefixOp(symbol string) (UnaryOperator, error) {
	i := findUnary(c.prefixOps, symbol)
	if i < 0 {
		return UnaryOperator{}, fmt.Errorf("fluxins: no prefix operator %q", symbol)
	}
	return c.prefixOps[i], nil
}

// GetSuffixOp returns the suffix operator for symbol.
func (c *Config) GetSuffixOp(symbol string) (UnaryOperator, error) {
	i := findUnary(c.suffixOps, symbol)
	if i < 0 {
		return UnaryOperator{}, fmt.Errorf("fluxins: no suffix operator %q", symbol)
	}
	return c.suffixOps[i], nil
}

// GetBinaryOp returns the binary operator for symbol.
func (c *Config) GetBinaryOp(symbol string) (BinaryOperator, error) {
	i := findBinary(c.binaryOps, symbol)
	if i < 0 {
		return BinaryOperator{}, fmt.Errorf("fluxins: no binary operator %q", symbol)
	}
	return c.binaryOps[i], nil
}

// AddPrefixOp registers a new prefix operator.
func (c *Config) AddPrefixOp(op UnaryOperator) error {
	if c.HasPrefixOp(op.Symbol) {
		return fmt.Errorf("fluxins: prefix operator %q already exists", op.Symbol)
	}
	c.prefixOps = append(c.prefixOps, op)
	return nil
}

// RemovePrefixOp removes a prefix operator.
func (c *Config) RemovePrefixOp(symbol string) error {
	i := findUnary(c.prefixOps, symbol)
	if i < 0 {
		return fmt.Errorf("fluxins: cannot find prefix operator %q", symbol)
	}
	c.prefixOps = append(c.prefixOps[:i], c.prefixOps[i+1:]...)
	return nil
}

// AddSuffixOp registers a new suffix operator.
func (c *Config) AddSuffixOp(op UnaryOperator) error {
	if c.HasSuffixOp(op.Symbol) {
		return fmt.Errorf("fluxins: suffix operator %q already exists", op.Symbol)
	}
	c.suffixOps = append(c.suffixOps, op)
	return nil
}

// RemoveSuffixOp removes a suffix operator.
func (c *Config) RemoveSuffixOp(symbol string) error {
	i := findUnary(c.suffixOps, symbol)
	if i < 0 {
		return fmt.Errorf("fluxins: cannot find suffix operator %q", symbol)
	}
	c.suffixOps = append(c.suffixOps[:i], c.suffixOps[i+1:]...)
	return nil
}

// AddBinaryOp registers a new binary operator. The operator has no
// assigned precedence until AssignPrecedence is called for it, and so
// is not parsed as a binary operator in the meantime.
func (c *Config) AddBinaryOp(op BinaryOperator) error {
	if c.HasBinaryOp(op.Symbol) {
		return fmt.Errorf("fluxins: binary operator %q already exists", op.Symbol)
	}
	if op.Assoc != LeftAssoc && op.Assoc != RightAssoc {
		return fmt.Errorf("fluxins: binary operator %q has invalid associativity", op.Symbol)
	}
	c.binaryOps = append(c.binaryOps, op)
	return nil
}

// RemoveBinaryOp removes a binary operator and its precedence
// assignment, if any.
func (c *Config) RemoveBinaryOp(symbol string) error {
	i := findBinary(c.binaryOps, symbol)
	if i < 0 {
		return fmt.Errorf("fluxins: cannot find binary operator %q", symbol)
	}
	c.unassignIndex(i)
	c.binaryOps = append(c.binaryOps[:i], c.binaryOps[i+1:]...)
	for r, row := range c.precedence {
		for j, idx := range row {
			if idx > i {
				c.precedence[r][j] = idx - 1
			}
		}
	}
	return nil
}

// AssignPrecedence assigns symbol to precedence row row (0 is
// tightest-binding). If insertRow is true, a new empty row is first
// inserted at row and the rest shifted down. If override is true and
// the operator already has a precedence, it is removed from its old
// row first (deleting that row if it becomes empty, and shifting row
// down by one if the deleted row preceded it); otherwise a
// pre-existing assignment is an error.
func (c *Config) AssignPrecedence(symbol string, row int, insertRow, override bool) error {
	index := findBinary(c.binaryOps, symbol)
	if index < 0 {
		return fmt.Errorf("fluxins: cannot find binary operator %q", symbol)
	}

	for i, r := range c.precedence {
		j := indexOf(r, index)
		if j < 0 {
			continue
		}
		if !override {
			return fmt.Errorf("fluxins: operator %q already has precedence %d", symbol, i)
		}
		c.precedence[i] = append(r[:j], r[j+1:]...)
		if len(c.precedence[i]) == 0 {
			c.precedence = append(c.precedence[:i], c.precedence[i+1:]...)
			if i < row {
				row--
			}
		}
		break
	}

	if insertRow {
		if row > len(c.precedence) {
			return fmt.Errorf("fluxins: cannot insert precedence row %d, out of range", row)
		}
		c.precedence = append(c.precedence, nil)
		copy(c.precedence[row+1:], c.precedence[row:])
		c.precedence[row] = nil
	}

	if row >= len(c.precedence) {
		return fmt.Errorf("fluxins: cannot assign precedence row %d, out of range", row)
	}
	c.precedence[row] = append(c.precedence[row], index)
	return nil
}

// AssignPrecedenceLowest assigns symbol to the loosest-binding row
// (optionally inserting a new one below everything else).
func (c *Config) AssignPrecedenceLowest(symbol string, insertRow, override bool) error {
	row := len(c.precedence)
	if !insertRow {
		row--
	}
	return c.AssignPrecedence(symbol, row, insertRow, override)
}

// UnassignPrecedence removes symbol's precedence assignment, if any,
// leaving it registered in the binary operator table but unreachable
// by the parser.
func (c *Config) UnassignPrecedence(symbol string) error {
	index := findBinary(c.binaryOps, symbol)
	if index < 0 {
		return fmt.Errorf("fluxins: cannot find binary operator %q", symbol)
	}
	c.unassignIndex(index)
	return nil
}

func (c *Config) unassignIndex(index int) {
	for i, row := range c.precedence {
		j := indexOf(row, index)
		if j < 0 {
			continue
		}
		c.precedence[i] = append(row[:j], row[j+1:]...)
		if len(c.precedence[i]) == 0 {
			c.precedence = append(c.precedence[:i], c.precedence[i+1:]...)
		}
		return
	}
}

// PrecedenceOf returns the precedence row of symbol, if assigned.
func (c *Config) PrecedenceOf(symbol string) (int, bool) {
	index := findBinary(c.binaryOps, symbol)
	if index < 0 {
		return 0, false
	}
	for i, row := range c.precedence {
		if indexOf(row, index) >= 0 {
			return i, true
		}
	}
	return 0, false
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}
