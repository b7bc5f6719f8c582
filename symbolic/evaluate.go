package symbolic

import (
	"math"

	"github.com/durganmcbroom/iterative-physics/ierr"
)

// resolutionKind classifies how one candidate equation resolved while
// searching for an implicit root defining a variable.
type resolutionKind int

const (
	resSuccess resolutionKind = iota
	resUnsatisfiedVariable
	resIgnore
)

type resolution struct {
	kind  resolutionKind
	value float64
	name  string
}

// evaluate walks node, resolving Variable nodes either from locals/memo/
// constants or by searching the environment's equations for one that
// names this variable as a dependency and solving it for a root.
func evaluate(node *Node, frame Frame) (float64, error) {
	switch node.Kind {
	case NodeArithmetic:
		left, err := evaluate(node.Left, frame.clone())
		if err != nil {
			return 0, err
		}
		right, err := evaluate(node.Right, frame.clone())
		if err != nil {
			return 0, err
		}
		switch node.Operation {
		case Add:
			return left + right, nil
		case Sub:
			return left - right, nil
		case Multi:
			return left * right, nil
		case Div:
			return left / right, nil
		case Exp:
			return math.Pow(left, right), nil
		}
		return 0, ierr.Syntax("unreachable arithmetic operation")

	case NodeNumber:
		return node.Number, nil

	case NodeVariable:
		if v, ok := frame.lookup(node.Name); ok {
			return v, nil
		}
		if v, ok := frame.env.Constants[node.Name]; ok {
			return v, nil
		}

		var results []resolution
		for _, eq := range frame.env.Equations {
			if _, has := eq.Dependencies[node.Name]; !has {
				continue
			}
			if frame.visited(eq) {
				results = append(results, resolution{kind: resIgnore})
				continue
			}
			if eq.Node.Kind != NodeComparison {
				return 0, ierr.New(ierr.ExpectedComparison)
			}
			rootExpr := &Node{Kind: NodeArithmetic, Operation: Sub, Left: eq.Node.Left, Right: eq.Node.Right}

			root, err := findRoot(rootExpr, node.Name, 0.0, frame.push(eq))
			if err == nil {
				results = append(results, resolution{kind: resSuccess, value: root})
				continue
			}
			if ie, ok := err.(*ierr.Error); ok && ie.Kind == ierr.UnsatisfiedVariable {
				results = append(results, resolution{kind: resUnsatisfiedVariable, name: ie.Name})
				continue
			}
			return 0, err
		}

		var unsatisfied []string
		for _, r := range results {
			switch r.kind {
			case resSuccess:
				return r.value, nil
			case resUnsatisfiedVariable:
				unsatisfied = append(unsatisfied, r.name)
			}
		}

		if len(unsatisfied) == 0 {
			return 0, ierr.Variable(node.Name)
		}
		return 0, ierr.Variable(unsatisfied[0])

	case NodeFunction:
		fn, ok := frame.env.Functions[node.Name]
		if !ok {
			return 0, ierr.Function(node.Name)
		}

		args := make([]float64, len(node.Args))
		for i, a := range node.Args {
			v, err := evaluate(a, frame.clone())
			if err != nil {
				return 0, err
			}
			args[i] = v
		}

		switch fn.Kind {
		case Mathematical:
			if len(args) != len(fn.ArgNames) {
				return 0, ierr.Arity(node.Name, len(fn.ArgNames), len(args))
			}
			callFrame := frame.clone()
			callFrame.clearLocals()
			for i, name := range fn.ArgNames {
				callFrame.localSet(name, args[i])
			}
			return evaluate(fn.Node, callFrame)

		case Baked:
			if len(args) != fn.Expected {
				return 0, ierr.Arity(node.Name, fn.Expected, len(args))
			}
			return fn.CallSite(args), nil
		}
		return 0, ierr.Syntax("unreachable function kind")

	case NodeComparison:
		return 0, ierr.New(ierr.UnexpectedComparison)
	}

	return 0, ierr.Syntax("unreachable node kind")
}
