package symbolic

// Equation is a parsed equation bound to a stable id (used by Frame to
// detect re-entrant root-finding) along with the set of variable/function
// names its AST mentions.
type Equation struct {
	ID           uint8
	Node         *Node
	Dependencies map[string]struct{}
}

// Environment holds every equation, function and constant an evaluation
// may draw on. It is built once (via Build) and then read-only; the
// mutable state of an evaluation in progress lives in Frame.
type Environment struct {
	Equations []*Equation
	Functions map[string]Function
	Constants map[string]float64
}

// Evaluate resolves a single top-level variable name against this
// environment, seeding the memo map with overrides (e.g. basis values
// injected by the tick orchestrator for this probe).
func (e *Environment) Evaluate(varName string, overrides map[string]float64) (float64, error) {
	memo := make(map[string]float64, len(overrides))
	for k, v := range overrides {
		memo[k] = v
	}
	frame := Frame{
		env:   e,
		stack: map[uint8]bool{},
		memo:  memo,
		local: map[string]float64{},
	}
	return evaluate(&Node{Kind: NodeVariable, Name: varName}, frame)
}

func analyze(node *Node, deps map[string]struct{}) {
	if node == nil {
		return
	}
	switch node.Kind {
	case NodeArithmetic, NodeComparison:
		analyze(node.Left, deps)
		analyze(node.Right, deps)
	case NodeVariable:
		deps[node.Name] = struct{}{}
	case NodeFunction:
		deps[node.Name] = struct{}{}
		for _, a := range node.Args {
			analyze(a, deps)
		}
	}
}

// Build parses every expression and partitions the results into function
// definitions (`f(x) = ...` with every argument a bare variable) and
// equations (anything else comparison-shaped). A parsed expression that is
// not a comparison at all (no top-level `=`) is not a function definition
// or an equation; it is silently dropped, matching the source this was
// ported from.
func Build(expressions []string, functions map[string]Function, constants map[string]float64) (*Environment, error) {
	funcs := make(map[string]Function, len(functions))
	for k, v := range functions {
		funcs[k] = v
	}

	var equations []*Equation
	var id uint8

	for _, src := range expressions {
		if src == "" {
			continue
		}
		node, err := Parse(NewLexer(src))
		if err != nil {
			return nil, err
		}

		if node.Kind != NodeComparison {
			continue
		}

		if node.Left.Kind == NodeFunction {
			params, ok := asVariableNames(node.Left.Args)
			if ok {
				funcs[node.Left.Name] = Function{
					Kind:     Mathematical,
					Node:     node.Right,
					ArgNames: params,
				}
				continue
			}
		}

		deps := map[string]struct{}{}
		analyze(node, deps)
		equations = append(equations, &Equation{ID: id, Node: node, Dependencies: deps})
		id++
	}

	return &Environment{Equations: equations, Functions: funcs, Constants: constants}, nil
}

func asVariableNames(args []*Node) ([]string, bool) {
	names := make([]string, len(args))
	for i, a := range args {
		if a.Kind != NodeVariable {
			return nil, false
		}
		names[i] = a.Name
	}
	return names, true
}
