package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/baiwen/asset"
)

const forestDocument = `[
	{"Name":"Tree_01","Container":"c","Source":"assets/forest.json","PathID":1,"Type":"Mesh"},
	{"Name":"Tree_02","Container":"c","Source":"assets/forest.json","PathID":2,"Type":"Mesh"},
	{"Name":"Rock_01","Container":"c","Source":"assets/props.json","PathID":3,"Type":"Texture2D"}
]`

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), "map.json")
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestService_Load(t *testing.T) {
	var testCases = []struct {
		description string
		content     string
		expect      []asset.Record
		invalid     bool
	}{
		{
			description: "valid document",
			content:     forestDocument,
			expect: []asset.Record{
				{Name: "Tree_01", Container: "c", Source: "assets/forest.json", PathID: 1, Type: "Mesh"},
				{Name: "Tree_02", Container: "c", Source: "assets/forest.json", PathID: 2, Type: "Mesh"},
				{Name: "Rock_01", Container: "c", Source: "assets/props.json", PathID: 3, Type: "Texture2D"},
			},
		},
		{
			description: "extra fields are ignored",
			content:     `[{"Name":"a","Container":"b","Source":"c","PathID":-7,"Type":"Mesh","Hash":"ff"}]`,
			expect:      []asset.Record{{Name: "a", Container: "b", Source: "c", PathID: -7, Type: "Mesh"}},
		},
		{
			description: "member names differing only in case are ignored",
			content:     `[{"Name":"Tree","Container":"c","Source":"s","PathID":1,"Type":"Mesh","type":"Texture2D","source":"other","NAME":"x"}]`,
			expect:      []asset.Record{{Name: "Tree", Container: "c", Source: "s", PathID: 1, Type: "Mesh"}},
		},
		{
			description: "lower case member before exact one",
			content:     `[{"type":"Texture2D","Name":"Tree","Container":"c","Source":"s","PathID":1,"Type":"Mesh"}]`,
			expect:      []asset.Record{{Name: "Tree", Container: "c", Source: "s", PathID: 1, Type: "Mesh"}},
		},
		{
			description: "empty array",
			content:     `[]`,
			expect:      []asset.Record{},
		},
		{description: "invalid json", content: `[{"Name":`, invalid: true},
		{description: "top level object", content: `{"Name":"a"}`, invalid: true},
		{description: "top level null", content: `null`, invalid: true},
		{description: "element is not an object", content: `[1]`, invalid: true},
		{description: "null element", content: `[null]`, invalid: true},
		{description: "missing field", content: `[{"Name":"a","Container":"b","Source":"c","Type":"Mesh"}]`, invalid: true},
		{description: "field name is case sensitive", content: `[{"name":"a","Container":"b","Source":"c","PathID":1,"Type":"Mesh"}]`, invalid: true},
		{description: "mistyped path id", content: `[{"Name":"a","Container":"b","Source":"c","PathID":"1","Type":"Mesh"}]`, invalid: true},
		{description: "mistyped name", content: `[{"Name":5,"Container":"b","Source":"c","PathID":1,"Type":"Mesh"}]`, invalid: true},
		{description: "null source", content: `[{"Name":"a","Container":"b","Source":null,"PathID":1,"Type":"Mesh"}]`, invalid: true},
	}

	srv, err := New()
	require.NoError(t, err)
	ctx := context.Background()
	for _, testCase := range testCases {
		location := writeDocument(t, testCase.content)
		actual, err := srv.Load(ctx, location)
		if testCase.invalid {
			require.Error(t, err, testCase.description)
			assert.True(t, errors.Is(err, ErrInvalidDocument), testCase.description)
			assert.Nil(t, actual, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		if len(testCase.expect) == 0 {
			assert.Empty(t, actual, testCase.description)
			continue
		}
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestService_Load_MissingFile(t *testing.T) {
	srv, err := New()
	require.NoError(t, err)
	location := filepath.Join(t.TempDir(), "missing.json")
	_, err = srv.Load(context.Background(), location)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidDocument))
	assert.Contains(t, err.Error(), "read asset document")
}
