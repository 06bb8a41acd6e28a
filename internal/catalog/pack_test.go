package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPack = `{
  "name": "General Knowledge",
  "version": 1,
  "categories": [
    {
      "id": "geo",
      "name": "Geography",
      "questions": [
        {"id": "geo-0001", "text": "Capital of France?", "answer": "Paris", "points": 100},
        {"id": "geo-0002", "text": "Longest river?", "answer": "The Nile", "points": 200}
      ]
    },
    {
      "id": "sci",
      "name": "Science",
      "questionIds": ["sci-0001", "sci-0002", "sci-0003"]
    }
  ]
}`

func TestParsePackValid(t *testing.T) {
	p, err := ParsePack([]byte(validPack))
	require.NoError(t, err)
	assert.Equal(t, "General Knowledge", p.Name)
	require.Len(t, p.Categories, 2)
	assert.Equal(t, "geo", p.Categories[0].Questions[0].CategoryID, "category ID should be stamped onto questions")
}

func TestParsePackRejectsMissingAnswer(t *testing.T) {
	bad := `{
	  "name": "Broken",
	  "categories": [
	    {"id": "x", "name": "X", "questions": [{"text": "orphan question", "points": 100}]}
	  ]
	}`
	_, err := ParsePack([]byte(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestParsePackRejectsBadPoints(t *testing.T) {
	bad := `{
	  "name": "Broken",
	  "categories": [
	    {"id": "x", "name": "X", "questions": [{"text": "q", "answer": "a", "points": 150}]}
	  ]
	}`
	_, err := ParsePack([]byte(bad))
	require.Error(t, err)
}

func TestParsePackRejectsGarbage(t *testing.T) {
	_, err := ParsePack([]byte("not json at all"))
	require.Error(t, err)
}

func TestLoadDirMissingIsEmpty(t *testing.T) {
	c, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Size())
}

func TestImportAndLoadDir(t *testing.T) {
	tmp := t.TempDir()
	src := filepath.Join(tmp, "general.json")
	require.NoError(t, os.WriteFile(src, []byte(validPack), 0o644))

	packsDir := filepath.Join(tmp, "packs")
	p, err := ImportPack(src, packsDir)
	require.NoError(t, err)
	assert.Equal(t, "General Knowledge", p.Name)

	c, err := LoadDir(packsDir)
	require.NoError(t, err)
	assert.Equal(t, 5, c.Size())
}
