// Package script runs tengo scripts against the property registry. Scripts
// see set_bool, set_text, set_color, get and log as globals; writes are
// queued like any other property update and land on the next maintenance
// pass.
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/rs/zerolog"

	"github.com/milk9111/hexfield/config"
	"github.com/milk9111/hexfield/ecs"
	"github.com/milk9111/hexfield/property"
)

var ErrEmptyScript = errors.New("script: empty source")

type Runner struct {
	reg  *property.Registry
	load func(name string) ([]byte, error)
	log  zerolog.Logger
}

func NewRunner(reg *property.Registry, logger zerolog.Logger) *Runner {
	return &Runner{
		reg:  reg,
		load: config.LoadScript,
		log:  logger.With().Str("component", "script").Logger(),
	}
}

// Run loads the named script from the config directory and executes it.
func (r *Runner) Run(w *ecs.World, name string) error {
	src, err := r.load(name)
	if err != nil {
		return fmt.Errorf("script: load %s: %w", name, err)
	}
	return r.RunSource(w, name, src)
}

// RunSource executes src. name is only used for logging and errors.
func (r *Runner) RunSource(w *ecs.World, name string, src []byte) error {
	if strings.TrimSpace(string(src)) == "" {
		return fmt.Errorf("script: run %s: %w", name, ErrEmptyScript)
	}
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for fname, fn := range r.builtins(w, name) {
		if err := s.Add(fname, fn); err != nil {
			return fmt.Errorf("script: run %s: %w", name, err)
		}
	}
	if _, err := s.Run(); err != nil {
		return fmt.Errorf("script: run %s: %w", name, err)
	}
	r.log.Info().Str("script", name).Msg("script finished")
	return nil
}

func (r *Runner) builtins(w *ecs.World, script string) map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"set_bool": {Name: "set_bool", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			name, err := nameArg(args[0])
			if err != nil {
				return nil, err
			}
			b, ok := tengo.ToBool(args[1])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "value", Expected: "bool", Found: args[1].TypeName()}
			}
			r.reg.Set(name, property.Bool(b))
			return tengo.UndefinedValue, nil
		}},
		"set_text": {Name: "set_text", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			name, err := nameArg(args[0])
			if err != nil {
				return nil, err
			}
			s, ok := tengo.ToString(args[1])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "value", Expected: "string", Found: args[1].TypeName()}
			}
			r.reg.Set(name, property.Text(s))
			return tengo.UndefinedValue, nil
		}},
		"set_color": {Name: "set_color", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 4 {
				return nil, tengo.ErrWrongNumArguments
			}
			name, err := nameArg(args[0])
			if err != nil {
				return nil, err
			}
			var rgb [3]float32
			for i, arg := range args[1:] {
				f, ok := tengo.ToFloat64(arg)
				if !ok {
					return nil, tengo.ErrInvalidArgumentType{Name: "channel", Expected: "float", Found: arg.TypeName()}
				}
				rgb[i] = float32(f)
			}
			r.reg.Set(name, property.Color(rgb[0], rgb[1], rgb[2]))
			return tengo.UndefinedValue, nil
		}},
		"get": {Name: "get", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			name, err := nameArg(args[0])
			if err != nil {
				return nil, err
			}
			v, ok := r.reg.Value(w, name)
			if !ok {
				return tengo.UndefinedValue, nil
			}
			return toObject(v), nil
		}},
		"log": {Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
			parts := make([]string, 0, len(args))
			for _, arg := range args {
				s, _ := tengo.ToString(arg)
				parts = append(parts, s)
			}
			r.log.Info().Str("script", script).Msg(strings.Join(parts, " "))
			return tengo.UndefinedValue, nil
		}},
	}
}

func nameArg(o tengo.Object) (string, error) {
	s, ok := o.(*tengo.String)
	if !ok || s.Value == "" {
		return "", tengo.ErrInvalidArgumentType{Name: "name", Expected: "non-empty string", Found: o.TypeName()}
	}
	return s.Value, nil
}

func toObject(v property.Value) tengo.Object {
	switch v.Kind() {
	case property.KindBool:
		if b, _ := v.AsBool(); b {
			return tengo.TrueValue
		}
		return tengo.FalseValue
	case property.KindText:
		s, _ := v.AsText()
		return &tengo.String{Value: s}
	case property.KindColor:
		c, _ := v.AsColor()
		return &tengo.Array{Value: []tengo.Object{
			&tengo.Float{Value: float64(c[0])},
			&tengo.Float{Value: float64(c[1])},
			&tengo.Float{Value: float64(c[2])},
		}}
	default:
		return tengo.UndefinedValue
	}
}
