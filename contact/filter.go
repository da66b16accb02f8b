package contact

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
)

// filterEnv exposes message fields to filter expressions under their JSON names
func filterEnv(m Message) map[string]any {
	return map[string]any{
		"id":        m.ID,
		"timestamp": m.Timestamp,
		"name":      m.Name,
		"email":     m.Email,
		"message":   m.Message,
		"ip":        m.IP,
	}
}

// Filter is a compiled boolean expression over a message
// e.g. `email endsWith "@example.com" && timestamp > date("2025-01-01")`
type Filter struct {
	program *exprvm.Program
	source  string
}

// CompileFilter type-checks src against the message fields
func CompileFilter(src string) (*Filter, error) {
	program, err := exprlang.Compile(src,
		exprlang.Env(filterEnv(Message{})),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return &Filter{program: program, source: src}, nil
}

// Match evaluates the filter for m
func (f *Filter) Match(m Message) (bool, error) {
	out, err := exprlang.Run(f.program, filterEnv(m))
	if err != nil {
		return false, fmt.Errorf("run filter %q: %w", f.source, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Apply returns the messages matching f, in order
func (f *Filter) Apply(messages []Message) ([]Message, error) {
	out := make([]Message, 0, len(messages))
	for _, m := range messages {
		ok, err := f.Match(m)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}
