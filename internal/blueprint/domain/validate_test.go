package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSpec() *Spec {
	return &Spec{
		Meta:  Meta{ProjectName: "Taskboard", Summary: "Task tracking"},
		Stack: Stack{Type: StackFullstack},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validSpec().Validate())
}

func TestValidate_MissingName(t *testing.T) {
	spec := validSpec()
	spec.Meta.ProjectName = "   "
	err := spec.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSpec))
	assert.True(t, errors.Is(err, ErrMissingName))
}

func TestValidate_MissingSummary(t *testing.T) {
	spec := validSpec()
	spec.Meta.Summary = ""
	err := spec.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingSummary))
}

func TestValidate_BadStackType(t *testing.T) {
	for _, bad := range []string{"", "mobile", "FULLSTACK"} {
		spec := validSpec()
		spec.Stack.Type = bad
		err := spec.Validate()
		require.Error(t, err, "stack type %q", bad)
		assert.True(t, errors.Is(err, ErrInvalidStack))
	}
}
