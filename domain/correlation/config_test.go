package correlation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrogen/domain/core"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, FastConfig().Validate())
}

func TestConfigValidateMinimums(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BootstrapIterations = 99
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidInput)

	cfg = DefaultConfig()
	cfg.PermutationIterations = 50
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidInput)

	cfg = DefaultConfig()
	cfg.MinObservations = 2
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidInput)

	cfg = DefaultConfig()
	cfg.OrbTolerance = 0
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidInput)

	cfg = DefaultConfig()
	cfg.OrbTolerance = 20
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidInput)
}

func TestConfigValidateMethods(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Methods = []MethodName{MethodDignity, "palmistry"}
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidInput)

	cfg.Methods = []MethodName{MethodDignity, MethodAspect}
	assert.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Correction = "holm"
	assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidInput)
}

func TestEnabledMethodsDefaultsToAll(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, AllMethods, cfg.EnabledMethods())

	cfg.Methods = []MethodName{MethodPathway}
	require.Len(t, cfg.EnabledMethods(), 1)
	assert.Equal(t, MethodPathway, cfg.EnabledMethods()[0])
}

func TestWeightFor(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.35, cfg.WeightFor(MethodPathway))
	assert.Equal(t, 0.0, cfg.WeightFor("palmistry"))
}
