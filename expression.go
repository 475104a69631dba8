package fluxins

// defaultConfig is used by an Expression (or Express) that doesn't
// carry its own Config. It has no operators registered; callers that
// want the standard arithmetic language should use
// builtins.DefaultConfig instead.
var defaultConfig = NewConfig()

// Expression is an expression's source text together with its parser
// configuration, symbol context, and caches of the tokens, AST, and
// evaluated value, so that repeated evaluation against changing
// variables doesn't repeat the parse.
type Expression struct {
	Code    *Code
	Config  *Config
	Context *Context

	tokens []Token
	tree   *node
	value  float32
}

// NewExpression wraps text for parsing and evaluation. cfg and ctx may
// be nil; a nil cfg falls back to an operator-less default, and a nil
// ctx is created lazily by Evaluate.
func NewExpression(text string, cfg *Config, ctx *Context) *Expression {
	return &Expression{Code: NewCode(text), Config: cfg, Context: ctx}
}

func (e *Expression) config() *Config {
	if e.Config != nil {
		return e.Config
	}
	return defaultConfig
}

// Parse tokenizes and parses e.Code into e's cached AST.
func (e *Expression) Parse() error {
	tokens, err := Tokenize(e.Code)
	if err != nil {
		return err
	}
	tree, err := Parse(e.Code, tokens, e.config())
	if err != nil {
		return err
	}
	e.tokens = tokens
	e.tree = tree
	return nil
}

// Evaluate walks e's cached AST into e's cached value. It creates a
// Context if e.Context is nil.
func (e *Expression) Evaluate() error {
	if e.tree == nil {
		if err := e.Parse(); err != nil {
			return err
		}
	}
	if e.Context == nil {
		e.Context = NewContext()
	}
	v, err := e.tree.evaluate(e.Code, e.config(), e.Context)
	if err != nil {
		return err
	}
	e.value = v
	return nil
}

// GetValue parses and evaluates e if it has no cached AST, then returns
// its cached value. Once an AST is cached it does not evaluate again: after
// Parse alone it returns the zero value, and after a variable changes it
// returns the value of the last Evaluate.
func (e *Expression) GetValue() (float32, error) {
	if e.tree == nil {
		if err := e.Evaluate(); err != nil {
			return 0, err
		}
	}
	return e.value, nil
}

// SetVariable sets a variable in e's context, creating one if absent.
func (e *Expression) SetVariable(name string, v float32) *Expression {
	if e.Context == nil {
		e.Context = NewContext()
	}
	e.Context.SetVariable(name, v)
	return e
}

// SetFunction sets a function in e's context, creating one if absent.
func (e *Expression) SetFunction(name string, fn Callable) *Expression {
	if e.Context == nil {
		e.Context = NewContext()
	}
	e.Context.SetFunction(name, fn)
	return e
}

// InheritContext adds parent as a fallback to e's context, creating
// one if absent.
func (e *Expression) InheritContext(parent *Context) *Expression {
	if e.Context == nil {
		e.Context = NewContext()
	}
	e.Context.InheritContext(parent)
	return e
}

// Express is a convenience wrapper that parses and evaluates text in
// one call, either of cfg and ctx may be nil.
func Express(text string, cfg *Config, ctx *Context) (float32, error) {
	return NewExpression(text, cfg, ctx).GetValue()
}
