package listener

import (
	"context"
	"fmt"
	"reflect"
)

// HandlerFunc is a directly invocable listener. target is the effective
// target of the action: the registered target, or the owner when the action
// was registered without one.
type HandlerFunc func(ctx context.Context, target any, params ...any) error

// MethodResolver lets a target resolve named methods itself. It is consulted
// on every dispatch, so reassigning the method behind a name takes effect on
// the next Send.
type MethodResolver interface {
	ResolveMethod(name string) (HandlerFunc, bool)
}

type handle struct {
	fn HandlerFunc
}

// Method identifies what a listener invokes. It is either a direct handle
// created by Func or a name created by Named that is looked up on the target
// at dispatch time. Method values are comparable; two Methods are equal when
// they wrap the same handle or the same name.
type Method struct {
	name string
	h    *handle
}

// Func wraps fn in a new direct handle. Each call creates a distinct
// identity, so keep the returned Method to remove the listener later.
func Func(fn HandlerFunc) Method {
	if fn == nil {
		return Method{}
	}
	return Method{h: &handle{fn: fn}}
}

// Named returns a late-bound method resolved by name on the effective target.
func Named(name string) Method {
	return Method{name: name}
}

// IsZero reports whether m refers to nothing.
func (m Method) IsZero() bool {
	return m.h == nil && m.name == ""
}

// IsNamed reports whether m is late-bound.
func (m Method) IsNamed() bool {
	return m.h == nil && m.name != ""
}

// Name returns the method name for late-bound methods and "" otherwise.
func (m Method) Name() string {
	return m.name
}

func (m Method) String() string {
	switch {
	case m.h != nil:
		return fmt.Sprintf("func@%p", m.h)
	case m.name != "":
		return m.name
	default:
		return "<nil>"
	}
}

// bind resolves m against target. Named methods are looked up now, never cached.
func (m Method) bind(target any) (HandlerFunc, error) {
	if m.h != nil {
		return m.h.fn, nil
	}
	if m.name == "" {
		return nil, ErrInvalidMethod
	}
	if r, ok := target.(MethodResolver); ok {
		if fn, ok := r.ResolveMethod(m.name); ok && fn != nil {
			return fn, nil
		}
	}
	return reflectMethod(target, m.name)
}

var (
	contextType = reflect.TypeFor[context.Context]()
	errorType   = reflect.TypeFor[error]()
)

// reflectMethod looks name up in target's method set. A leading
// context.Context parameter receives the dispatch context and a trailing
// error result is returned to the dispatcher.
func reflectMethod(target any, name string) (HandlerFunc, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: %s on nil target", ErrMethodNotFound, name)
	}
	mv := reflect.ValueOf(target).MethodByName(name)
	if !mv.IsValid() {
		return nil, fmt.Errorf("%w: %T.%s", ErrMethodNotFound, target, name)
	}
	return func(ctx context.Context, _ any, params ...any) error {
		return callReflected(ctx, name, mv, params)
	}, nil
}

func callReflected(ctx context.Context, name string, fn reflect.Value, params []any) error {
	ft := fn.Type()

	args := make([]reflect.Value, 0, ft.NumIn())
	first := 0
	if ft.NumIn() > 0 && ft.In(0) == contextType {
		args = append(args, reflect.ValueOf(&ctx).Elem())
		first = 1
	}

	fixed := ft.NumIn() - first
	if ft.IsVariadic() {
		fixed--
	}
	if len(params) < fixed || (!ft.IsVariadic() && len(params) > fixed) {
		return fmt.Errorf("%w: %s takes %d params, got %d", ErrBadArguments, name, fixed, len(params))
	}

	for i, p := range params {
		var pt reflect.Type
		if ft.IsVariadic() && first+i >= ft.NumIn()-1 {
			pt = ft.In(ft.NumIn() - 1).Elem()
		} else {
			pt = ft.In(first + i)
		}
		v, err := argValue(p, pt)
		if err != nil {
			return fmt.Errorf("%w: %s param %d: %v", ErrBadArguments, name, i, err)
		}
		args = append(args, v)
	}

	out := fn.Call(args)
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType {
		if err, _ := out[n-1].Interface().(error); err != nil {
			return err
		}
	}
	return nil
}

func argValue(p any, pt reflect.Type) (reflect.Value, error) {
	if p == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", pt)
	}
	v := reflect.ValueOf(p)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%s is not assignable to %s", v.Type(), pt)
	}
	return v, nil
}
