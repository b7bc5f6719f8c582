package symbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durganmcbroom/iterative-physics/ierr"
)

func TestBuildRegistersFunctionDefinitions(t *testing.T) {
	env, err := Build([]string{"f(x, y) = x + y"}, nil, nil)
	require.NoError(t, err)
	require.Contains(t, env.Functions, "f")
	assert.Equal(t, Mathematical, env.Functions["f"].Kind)
	assert.Equal(t, []string{"x", "y"}, env.Functions["f"].ArgNames)
	assert.Empty(t, env.Equations)
}

func TestBuildRejectsSyntaxErrors(t *testing.T) {
	_, err := Build([]string{"a = "}, nil, nil)
	require.Error(t, err)

	var ie *ierr.Error
	require.ErrorAs(t, err, &ie)
}

func TestBuildSkipsBlankExpressions(t *testing.T) {
	env, err := Build([]string{"", "x = 1", ""}, nil, nil)
	require.NoError(t, err)
	require.Len(t, env.Equations, 1)
}

func TestBuildDropsNonComparisonExpressions(t *testing.T) {
	env, err := Build([]string{"1 + 2"}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, env.Equations)
	assert.Empty(t, env.Functions)
}

func TestEvaluateUnsatisfiedFunction(t *testing.T) {
	env, err := Build([]string{"y = unknownFn(1)"}, nil, nil)
	require.NoError(t, err)

	_, err = env.Evaluate("y", nil)
	require.Error(t, err)

	var ie *ierr.Error
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, ierr.UnsatisfiedFunction, ie.Kind)
}
