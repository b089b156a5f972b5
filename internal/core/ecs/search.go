package ecs

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rotisserie/eris"
)

// Search returns the entities matched by Query(kinds...) for which the where
// expression evaluates to true. The expression sees the variable entity and
// one variable per kind holding that entity's first component of the kind,
// e.g. `Health.Value < 50 && Position.X > 0`. We use expr lang for the where
// clause, see https://expr-lang.org/docs/language-definition.
//
// An empty where clause returns the plain query result.
func Search(w *World, where string, kinds ...Kind) ([]Entity, error) {
	if !w.ready("search") {
		return nil, eris.Wrap(ErrUninitialized, "search")
	}
	matched := w.components.Query(kinds...)
	if where == "" {
		return matched, nil
	}

	program, err := compileWhere(where)
	if err != nil {
		return nil, err
	}

	out := make([]Entity, 0, len(matched))
	env := make(map[string]any, len(kinds)+1)
	for _, e := range matched {
		clear(env)
		env["entity"] = int(e)
		for _, kind := range kinds {
			if c, ok := w.components.First(kind, e); ok {
				env[string(kind)] = c
			}
		}
		ok, err := evalWhere(program, env)
		if err != nil {
			return nil, eris.Wrapf(err, "evaluate where clause for entity %d", e)
		}
		if ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func compileWhere(where string) (*vm.Program, error) {
	program, err := expr.Compile(where, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, eris.Wrap(err, "failed to compile where clause")
	}
	return program, nil
}

func evalWhere(program *vm.Program, env map[string]any) (bool, error) {
	result, err := expr.Run(program, env)
	if err != nil {
		return false, eris.Wrap(err, "failed to run where clause")
	}
	ok, isBool := result.(bool)
	if !isBool {
		return false, eris.New("where clause did not return a bool")
	}
	return ok, nil
}
