package sqldiff

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	before = "SELECT a\nFROM t\nWHERE x = 1\n"
	after  = "SELECT a, b\nFROM t\nWHERE x = 1\nORDER BY a\n"
)

func TestCompare(t *testing.T) {
	result := Compare(before, after)
	assert.Equal(t, []Change{
		{Removed, "SELECT a\n"},
		{Added, "SELECT a, b\n"},
		{Unchanged, "FROM t\nWHERE x = 1\n"},
		{Added, "ORDER BY a\n"},
	}, result.Changes)
	assert.Equal(t, 2, result.Additions)
	assert.Equal(t, 1, result.Deletions)
	assert.Equal(t, 2, result.Unchanged)
	assert.True(t, result.HasChanges)
}

func TestCompare_LastLineWithoutBreak(t *testing.T) {
	result := Compare("a\nb", "a\nb\n")
	assert.Equal(t, []Change{
		{Unchanged, "a\n"},
		{Removed, "b"},
		{Added, "b\n"},
	}, result.Changes)
	assert.Equal(t, 1, result.Additions)
	assert.Equal(t, 1, result.Deletions)
}

func TestCompare_EmptyLinesNotCounted(t *testing.T) {
	result := Compare("", "\n\nSELECT 1\n\n")
	require.Len(t, result.Changes, 1)
	assert.Equal(t, Added, result.Changes[0].Kind)
	assert.Equal(t, 1, result.Additions)
	assert.True(t, result.HasChanges)

	result = Compare("SELECT 1\n", "SELECT 1\n\n")
	assert.Equal(t, 0, result.Additions)
	assert.False(t, result.HasChanges)
	assert.Len(t, result.Changes, 2)
}

func TestCompare_Identity(t *testing.T) {
	for _, sql := range []string{"", "SELECT 1", before, after, "\n\n", "a\r\nb\r\n"} {
		result := Compare(sql, sql)
		assert.False(t, result.HasChanges)
		assert.Equal(t, 0, result.Additions)
		assert.Equal(t, 0, result.Deletions)
		for _, c := range result.Changes {
			assert.Equal(t, Unchanged, c.Kind)
		}
	}
}

func TestCompare_Reconstruction(t *testing.T) {
	pairs := [][2]string{
		{before, after},
		{after, before},
		{"", "SELECT 1"},
		{"SELECT 1", ""},
		{"a\nb\nc\nd", "d\nc\nb\na"},
		{"x\ny\nx\ny\n", "y\nx\ny\nx\nz"},
		{"SELECT *\r\nFROM t\r\n", "SELECT *\nFROM t\n"},
	}
	for _, p := range pairs {
		original, modified := p[0], p[1]
		var gotOriginal, gotModified strings.Builder
		for _, c := range Compare(original, modified).Changes {
			if c.Kind != Added {
				gotOriginal.WriteString(c.Text)
			}
			if c.Kind != Removed {
				gotModified.WriteString(c.Text)
			}
		}
		assert.Equal(t, original, gotOriginal.String())
		assert.Equal(t, modified, gotModified.String())
	}
}

func TestCompare_NoAdjacentChangesOfSameKind(t *testing.T) {
	changes := Compare("a\nb\nc\nd\ne\n", "a\nx\ny\ne\nf\n").Changes
	for i := 1; i < len(changes); i++ {
		assert.NotEqual(t, changes[i-1].Kind, changes[i].Kind)
	}
}

func TestChange_JSON(t *testing.T) {
	data, err := json.Marshal(Change{Kind: Removed, Text: "x\n"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"removed","text":"x\n"}`, string(data))
}

func TestPatch(t *testing.T) {
	patch, err := Patch(before, after, "a.sql", "b.sql", 3)
	require.NoError(t, err)
	assert.Contains(t, patch, "--- a.sql")
	assert.Contains(t, patch, "+++ b.sql")
	assert.Contains(t, patch, "-SELECT a\n")
	assert.Contains(t, patch, "+SELECT a, b\n")
	assert.Contains(t, patch, "+ORDER BY a\n")

	patch, err = Patch(before, before, "a.sql", "b.sql", 3)
	require.NoError(t, err)
	assert.Empty(t, patch)
}
