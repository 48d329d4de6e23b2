package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type langQuery struct {
	Lang string `validate:"min=2,max=5"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(langQuery{Lang: "en"}))
	assert.NoError(t, Struct(langQuery{Lang: "pt-BR"}))
}

func TestStruct_Invalid(t *testing.T) {
	assert.Error(t, Struct(langQuery{Lang: "e"}))
	assert.Error(t, Struct(langQuery{Lang: "en-USA1"}))
}

func TestFields_ExtractsFailedRules(t *testing.T) {
	err := Struct(langQuery{Lang: "e"})
	require.Error(t, err)

	fields := Fields(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Lang", fields[0].Field)
	assert.Equal(t, "min", fields[0].Rule)
	assert.Equal(t, "2", fields[0].Param)
}

func TestFields_NonValidationError(t *testing.T) {
	assert.Nil(t, Fields(errors.New("not a validation error")))
}
