// Package jsengine evaluates JavaScript predicates over parsed UI nodes.
package jsengine

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dop251/goja"

	"github.com/devicelab-dev/xcuikit/pkg/logger"
)

// ErrClosed is returned by every evaluation after Close.
var ErrClosed = errors.New("js engine closed")

// Engine wraps a goja runtime. It is safe for concurrent use; evaluations
// are serialized.
type Engine struct {
	runtime   *goja.Runtime
	variables map[string]interface{}
	closed    bool
	mu        sync.Mutex
}

// New creates a new JS engine instance
func New() *Engine {
	e := &Engine{
		runtime:   goja.New(),
		variables: make(map[string]interface{}),
	}
	e.setupBuiltins()
	return e
}

func (e *Engine) setupBuiltins() {
	console := e.runtime.NewObject()
	console.Set("log", e.consoleFunc(logger.Info))
	console.Set("debug", e.consoleFunc(logger.Debug))
	console.Set("warn", e.consoleFunc(logger.Warn))
	console.Set("error", e.consoleFunc(logger.Error))
	e.runtime.Set("console", console)

	e.runtime.Set("json", e.jsonFunc())
}

// consoleFunc routes console.* calls to the package logger.
func (e *Engine) consoleFunc(log func(format string, v ...interface{})) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		log("js: %s", strings.Join(parts, " "))
		return goja.Undefined()
	}
}

// jsonFunc returns the json() helper, a shorthand for JSON.parse.
func (e *Engine) jsonFunc() func(call goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			panic(e.runtime.NewTypeError("json requires 1 argument"))
		}
		parse, ok := goja.AssertFunction(e.runtime.Get("JSON").ToObject(e.runtime).Get("parse"))
		if !ok {
			panic(e.runtime.NewTypeError("JSON.parse unavailable"))
		}
		v, err := parse(goja.Undefined(), call.Arguments[0])
		if err != nil {
			panic(e.runtime.NewTypeError(fmt.Sprintf("invalid JSON: %v", err)))
		}
		return v
	}
}

// SetVariable sets a variable accessible in JS as a global
func (e *Engine) SetVariable(name string, value interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.variables[name] = value
	e.runtime.Set(name, value)
}

// SetVariables sets multiple variables
func (e *Engine) SetVariables(vars map[string]interface{}) {
	for k, v := range vars {
		e.SetVariable(k, v)
	}
}

// Variable returns a value previously set with SetVariable.
func (e *Engine) Variable(name string) (interface{}, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.variables[name]
	return v, ok
}

// Eval evaluates a JavaScript expression and returns the exported result
func (e *Engine) Eval(script string) (interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}
	result, err := e.runtime.RunString(script)
	if err != nil {
		return nil, fmt.Errorf("JS eval error: %w", err)
	}
	return result.Export(), nil
}

// EvalString evaluates a JavaScript expression and formats the result.
// null and undefined become "".
func (e *Engine) EvalString(script string) (string, error) {
	result, err := e.Eval(script)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}
	return fmt.Sprintf("%v", result), nil
}

// ExpandVariables replaces each ${expr} in text with its evaluated value.
// Expressions that fail to evaluate, or whose braces never close, are left
// untouched.
func (e *Engine) ExpandVariables(text string) (string, error) {
	var b strings.Builder
	rest := text

	for {
		idx := strings.Index(rest, "${")
		if idx == -1 {
			b.WriteString(rest)
			break
		}
		end := closingBrace(rest, idx+2)
		if end == -1 {
			b.WriteString(rest)
			break
		}

		b.WriteString(rest[:idx])
		placeholder := rest[idx : end+1]
		value, err := e.EvalString(rest[idx+2 : end])
		switch {
		case errors.Is(err, ErrClosed):
			return "", err
		case err != nil:
			logger.Debug("leaving %s unexpanded: %v", placeholder, err)
			b.WriteString(placeholder)
		default:
			b.WriteString(value)
		}
		rest = rest[end+1:]
	}
	return b.String(), nil
}

// closingBrace returns the index of the brace closing the one opened just
// before from, or -1.
func closingBrace(s string, from int) int {
	depth := 1
	for i := from; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// Close interrupts any running script and rejects further evaluations.
// Safe to call multiple times.
func (e *Engine) Close() {
	e.runtime.Interrupt(ErrClosed)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}
