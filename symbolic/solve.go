package symbolic

import (
	"math"

	"github.com/durganmcbroom/iterative-physics/ierr"
)

const (
	rootEpsilon  = 0.00001
	rootMaxDepth = 10000
)

// findRoot solves node(target) == 0 for target via Newton's method,
// starting from guess. The slope at each step is estimated from a single
// forward difference of size rootEpsilon rather than an analytic
// derivative, since node is an arbitrary evaluated expression.
//
// On convergence the solved value is memoized under target's name so any
// other branch sharing this Frame's memo can reuse it without re-solving.
func findRoot(node *Node, target string, guess float64, frame Frame) (float64, error) {
	last := guess

	for i := 0; i < rootMaxDepth; i++ {
		frame.localSet(target, last)
		xi, err := evaluate(node, frame.clone())
		if err != nil {
			return 0, err
		}

		frame.localSet(target, last+rootEpsilon)
		xiEps, err := evaluate(node, frame.clone())
		if err != nil {
			return 0, err
		}

		slope := (xiEps - xi) / rootEpsilon
		next := last - xi/slope

		if math.Abs(last-next) < rootEpsilon {
			frame.memoSet(target, next)
			return next, nil
		}

		last = next
	}

	return 0, ierr.New(ierr.RootFindingDepthExceeded)
}
