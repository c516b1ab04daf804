package main

import (
	"encoding/json"
	"fmt"
	"io"

	jmespath "github.com/jmespath-community/go-jmespath"
)

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func write(w io.Writer, args ...any) error {
	_, err := fmt.Fprint(w, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	if len(args) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	_, err := fmt.Fprintln(w, args...)
	return err
}

// queryEvaluator abstracts JMESPath operations for testability.
type queryEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements queryEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// renderJSONQuery writes value as indented JSON, optionally narrowed by a
// JMESPath expression. An empty expression selects the whole value.
func renderJSONQuery(w io.Writer, value any, expr string) error {
	// Round-trip through the JSON shape so expressions address wire field
	// names rather than Go struct fields.
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	if expr != "" {
		var evaluator queryEvaluator = jmespathLibEvaluator{}
		if err := evaluator.Validate(expr); err != nil {
			return fmt.Errorf("invalid query %q: %w", expr, err)
		}
		tree, err = evaluator.Evaluate(expr, tree)
		if err != nil {
			return fmt.Errorf("evaluate query %q: %w", expr, err)
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tree)
}
