// Package jsbind exposes the path offsetting functions to JavaScript through
// a goja runtime, under the same names and enum ordinals as the browser
// build.
package jsbind

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/vasalvit/svgoffset"
)

// Engine is a JavaScript runtime with the offsetting API registered. An
// Engine is not safe for concurrent use.
type Engine struct {
	vm   *goja.Runtime
	opts []svgoffset.Option
}

// NewEngine returns an engine whose functions run the pipeline with opts.
func NewEngine(opts ...svgoffset.Option) (*Engine, error) {
	e := &Engine{vm: goja.New(), opts: opts}
	if err := e.register(); err != nil {
		return nil, fmt.Errorf("jsbind: register: %w", err)
	}
	return e, nil
}

// Execute runs script and returns its completion value exported to Go.
// Cancelling ctx interrupts a running script. A JavaScript exception thrown
// by one of the offsetting functions unwraps to the underlying Go error.
func (e *Engine) Execute(ctx context.Context, script string) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	defer e.vm.ClearInterrupt()

	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			if cause := interrupted.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		var exc *goja.Exception
		if errors.As(err, &exc) {
			if cause := exc.Unwrap(); cause != nil {
				return nil, cause
			}
		}
		return nil, err
	}
	return val.Export(), nil
}

func (e *Engine) register() error {
	joins := e.vm.NewObject()
	for _, j := range []svgoffset.JoinType{svgoffset.JoinSquare, svgoffset.JoinBevel, svgoffset.JoinRound, svgoffset.JoinMiter} {
		if err := joins.Set(enumName(j.String()), int(j)); err != nil {
			return err
		}
	}
	ends := e.vm.NewObject()
	for _, et := range []svgoffset.EndType{svgoffset.EndPolygon, svgoffset.EndJoined, svgoffset.EndButt, svgoffset.EndSquare, svgoffset.EndRound} {
		if err := ends.Set(enumName(et.String()), int(et)); err != nil {
			return err
		}
	}

	for name, v := range map[string]any{
		"JoinType":            joins,
		"EndType":             ends,
		"offsetSvgPath":       e.offsetSvgPath,
		"offsetSvgPathSimple": e.offsetSvgPathSimple,
		"validateSvgPath":     e.validateSvgPath,
	} {
		if err := e.vm.Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

// enumName turns "round" into "Round".
func enumName(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// throw raises err as a JavaScript exception.
func (e *Engine) throw(err error) {
	panic(e.vm.NewGoError(err))
}

// offsetSvgPath(d, amount, join, end, miterLimit, arcTolerance, originX?, originY?)
func (e *Engine) offsetSvgPath(call goja.FunctionCall) goja.Value {
	if len(call.Arguments) < 6 {
		e.throw(fmt.Errorf("offsetSvgPath: expected at least 6 arguments, got %d", len(call.Arguments)))
	}
	var anchor svgoffset.Anchor
	if v := call.Argument(6); isSet(v) {
		anchor.X, anchor.HasX = v.ToFloat(), true
	}
	if v := call.Argument(7); isSet(v) {
		anchor.Y, anchor.HasY = v.ToFloat(), true
	}

	out, err := svgoffset.OffsetPath(
		call.Argument(0).String(),
		call.Argument(1).ToFloat(),
		svgoffset.JoinType(call.Argument(2).ToInteger()),
		svgoffset.EndType(call.Argument(3).ToInteger()),
		call.Argument(4).ToFloat(),
		call.Argument(5).ToFloat(),
		anchor,
		e.opts...,
	)
	if err != nil {
		e.throw(err)
	}
	return e.vm.ToValue(out)
}

// offsetSvgPathSimple(d, amount)
func (e *Engine) offsetSvgPathSimple(call goja.FunctionCall) goja.Value {
	out, err := svgoffset.OffsetPathSimple(call.Argument(0).String(), call.Argument(1).ToFloat(), e.opts...)
	if err != nil {
		e.throw(err)
	}
	return e.vm.ToValue(out)
}

// validateSvgPath(d)
func (e *Engine) validateSvgPath(call goja.FunctionCall) goja.Value {
	return e.vm.ToValue(svgoffset.ValidatePath(call.Argument(0).String(), e.opts...))
}

func isSet(v goja.Value) bool {
	return v != nil && !goja.IsUndefined(v) && !goja.IsNull(v)
}
