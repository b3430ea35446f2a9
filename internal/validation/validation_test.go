package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ShortCircuitsOnFirstFailure(t *testing.T) {
	calls := []string{}

	err := Run(
		func() *Error { calls = append(calls, "first"); return nil },
		func() *Error { calls = append(calls, "second"); return New("name", "bad name") },
		func() *Error { calls = append(calls, "third"); return nil },
	)

	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, "name", err.Field)
	assert.Equal(t, "bad name", err.Message)
}

func TestRun_AllPass(t *testing.T) {
	err := Run(
		func() *Error { return nil },
		func() *Error { return nil },
	)
	assert.Nil(t, err)
}

func TestNonField_UsesReservedKey(t *testing.T) {
	err := NonField("something is off")
	assert.Equal(t, map[string][]string{
		"non_field_errors": {"something is off"},
	}, err.Errors())
}
