package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firsthome/affordability-service/internal/domain/valueobject"
)

func TestNewConvergenceStatus(t *testing.T) {
	s, err := valueobject.NewConvergenceStatus("CONVERGED")
	require.NoError(t, err)
	assert.True(t, s.Equal(valueobject.ConvergenceStatusConverged))

	_, err = valueobject.NewConvergenceStatus("SPINNING")
	assert.ErrorContains(t, err, "invalid convergence status")
}

func TestConvergenceStatus_IsTerminal(t *testing.T) {
	assert.False(t, valueobject.ConvergenceStatusInitial.IsTerminal())
	assert.False(t, valueobject.ConvergenceStatusIterating.IsTerminal())
	assert.True(t, valueobject.ConvergenceStatusConverged.IsTerminal())
	assert.True(t, valueobject.ConvergenceStatusMaxIterations.IsTerminal())
}

func TestConvergenceStatus_ZeroValue(t *testing.T) {
	var s valueobject.ConvergenceStatus
	assert.True(t, s.IsZero())
	assert.False(t, s.IsTerminal())
}
