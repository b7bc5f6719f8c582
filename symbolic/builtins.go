package symbolic

import "math"

// FuncKind discriminates a Function's two flavors: one defined in equation
// source (Mathematical) and one backed by a native Go closure (Baked).
type FuncKind int

const (
	Mathematical FuncKind = iota
	Baked
)

// Function is either a user-defined `f(x) = ...` equation or one of the
// built-in native functions (trig, log, sqrt, nrt).
type Function struct {
	Kind FuncKind

	// Mathematical
	Node     *Node
	ArgNames []string

	// Baked
	CallSite func([]float64) float64
	Expected int
}

func baked(expected int, call func([]float64) float64) Function {
	return Function{Kind: Baked, CallSite: call, Expected: expected}
}

func trig(f func(float64) float64) Function {
	return baked(1, func(x []float64) float64 { return f(x[0]) })
}

func logBase(base float64) Function {
	return baked(1, func(x []float64) float64 { return math.Log(x[0]) / math.Log(base) })
}

// BuiltinFunctions returns the native function table: sin/asin/cos/acos/
// tan/atan (arity 1), log (arity 2, arbitrary base), ln/log10/log2
// (arity 1), sqrt (arity 1), nrt (arity 2, nth root).
func BuiltinFunctions() map[string]Function {
	return map[string]Function{
		"sin":  trig(math.Sin),
		"asin": trig(math.Asin),
		"cos":  trig(math.Cos),
		"acos": trig(math.Acos),
		"tan":  trig(math.Tan),
		"atan": trig(math.Atan),
		"log":  baked(2, func(x []float64) float64 { return math.Log(x[0]) / math.Log(x[1]) }),
		"ln":   logBase(math.E),
		"log10": baked(1, func(x []float64) float64 { return math.Log10(x[0]) }),
		"log2":  baked(1, func(x []float64) float64 { return math.Log2(x[0]) }),
		"sqrt":  baked(1, func(x []float64) float64 { return math.Sqrt(x[0]) }),
		"nrt":   baked(2, func(x []float64) float64 { return math.Pow(x[0], 1/x[1]) }),
	}
}

// BuiltinConstants returns the named constants pi and e.
func BuiltinConstants() map[string]float64 {
	return map[string]float64{
		"pi": math.Pi,
		"e":  math.E,
	}
}
