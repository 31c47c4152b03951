package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionValidate(t *testing.T) {
	q := &Question{
		Text:          "capital of France",
		Options:       StringList{"Paris", "Lyon"},
		CorrectOption: "Paris",
	}
	assert.NoError(t, q.Validate())

	q.CorrectOption = "Marseille"
	assert.ErrorIs(t, q.Validate(), ErrCorrectOptionNotListed)

	q.Options = nil
	q.CorrectOption = ""
	assert.ErrorIs(t, q.Validate(), ErrCorrectOptionNotListed)
}

func TestQuestionValidateCaseSensitive(t *testing.T) {
	q := &Question{
		Options:       StringList{"Paris"},
		CorrectOption: "paris",
	}
	assert.ErrorIs(t, q.Validate(), ErrCorrectOptionNotListed)
}

func TestStringListScanRoundtrip(t *testing.T) {
	v, err := StringList{"a", "b"}.Value()
	require.NoError(t, err)

	var out StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, StringList{"a", "b"}, out)

	// Drivers hand back either bytes or a string depending on the dialect.
	var fromString StringList
	require.NoError(t, fromString.Scan(`["x","y"]`))
	assert.Equal(t, StringList{"x", "y"}, fromString)
}
