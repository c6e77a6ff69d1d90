package asset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypes(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []string
		unknown     string
		hasError    bool
	}{
		{description: "single label", input: "Mesh", expect: []string{"Mesh"}},
		{description: "default label", input: "GameObject", expect: []string{"GameObject"}},
		{description: "multiple labels", input: "Texture2D,Mesh", expect: []string{"Mesh", "Texture2D"}},
		{description: "whitespace is part of the label", input: "Mesh, Texture2D", unknown: " Texture2D", hasError: true},
		{description: "duplicate labels collapse", input: "Mesh,Mesh", expect: []string{"Mesh"}},
		{description: "full vocabulary", input: "Material,Animator,Texture2D,Mesh,GameObject", expect: []string{"GameObject", "Mesh", "Texture2D", "Animator", "Material"}},
		{description: "unknown label", input: "Mesh,AudioClip", unknown: "AudioClip", hasError: true},
		{description: "case sensitive", input: "mesh", unknown: "mesh", hasError: true},
		{description: "empty entry", input: "Mesh,,Material", unknown: "", hasError: true},
		{description: "empty input", input: "", unknown: "", hasError: true},
	}

	for _, testCase := range testCases {
		actual, err := ParseTypes(testCase.input)
		if testCase.hasError {
			require.Error(t, err, testCase.description)
			var unknown *UnknownTypeError
			require.True(t, errors.As(err, &unknown), testCase.description)
			assert.EqualValues(t, testCase.unknown, unknown.Label, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual.Labels(), testCase.description)
	}
}

func TestTypeSet_Has(t *testing.T) {
	set := NewTypeSet(TypeMesh, TypeTexture2D)
	assert.True(t, set.Has("Mesh"))
	assert.True(t, set.Has("Texture2D"))
	assert.False(t, set.Has("GameObject"))
	assert.False(t, set.Has("mesh"))
	assert.False(t, set.Has(""))
}

func TestUnknownTypeError(t *testing.T) {
	_, err := ParseType("Sprite")
	require.Error(t, err)
	assert.EqualValues(t, `"Sprite" is not a recognized type`, err.Error())
}
