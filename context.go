package fluxins

// Callable is a function symbol: it receives the source and call-site
// location (for raising a CodeErr that points at the call) and the
// already-evaluated argument values.
type Callable func(code *Code, loc CodeLocation, args []float32) (float32, error)

// Context is a scoped environment of variables and functions that an
// Expression evaluates against. A Context may inherit from parent
// contexts, forming a DAG that is searched depth-first, this context's
// own symbols before any parent's, first match wins. Cycles are the
// host's responsibility to avoid; Context performs no cycle detection.
type Context struct {
	variables map[string]float32
	functions map[string]Callable
	parents   []*Context
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{
		variables: make(map[string]float32),
		functions: make(map[string]Callable),
	}
}

// SetVariable assigns or overwrites a variable in this context.
func (ctx *Context) SetVariable(name string, v float32) *Context {
	if ctx.variables == nil {
		ctx.variables = make(map[string]float32)
	}
	ctx.variables[name] = v
	return ctx
}

// SetFunction assigns or overwrites a function in this context.
func (ctx *Context) SetFunction(name string, fn Callable) *Context {
	if ctx.functions == nil {
		ctx.functions = make(map[string]Callable)
	}
	ctx.functions[name] = fn
	return ctx
}

// InheritContext adds parent as a fallback context, searched after
// ctx's own symbols and after any previously inherited parent.
func (ctx *Context) InheritContext(parent *Context) *Context {
	ctx.parents = append(ctx.parents, parent)
	return ctx
}

// ResolveVariable looks up name in this context, then depth-first in
// its parents, first hit wins.
func (ctx *Context) ResolveVariable(name string) (float32, bool) {
	if v, ok := ctx.variables[name]; ok {
		return v, true
	}
	for _, parent := range ctx.parents {
		if v, ok := parent.ResolveVariable(name); ok {
			return v, true
		}
	}
	return 0, false
}

// ResolveFunction looks up name in this context, then depth-first in
// its parents, first hit wins.
func (ctx *Context) ResolveFunction(name string) (Callable, bool) {
	if fn, ok := ctx.functions[name]; ok {
		return fn, true
	}
	for _, parent := range ctx.parents {
		if fn, ok := parent.ResolveFunction(name); ok {
			return fn, true
		}
	}
	return nil, false
}
