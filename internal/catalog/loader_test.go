package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackOpener_Go/internal/domain"
)

const baseSeriesJSON = `{
	"series": "base",
	"cards": [
		{"id": "base-1", "name": "Alakazam", "rarity": "Holo Rare", "type": "Psychic"},
		{"id": "base-58", "name": "Pikachu", "rarity": "common", "type": "Lightning"},
		{"id": "base-24", "name": "Charmeleon", "rarity": "UNCOMMON"}
	]
}`

const jungleSeriesYAML = `series: jungle
cards:
  - id: jungle-1
    name: Clefable
    rarity: rare_holo
  - id: jungle-10
    name: Snorlax
    rarity: rare
`

func writeSeries(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestLoad(t *testing.T) {
	t.Run("loads JSON and YAML series from a directory", func(t *testing.T) {
		dir := t.TempDir()
		writeSeries(t, dir, "base.json", baseSeriesJSON)
		writeSeries(t, dir, "jungle.yaml", jungleSeriesYAML)
		writeSeries(t, dir, "README.md", "ignored")

		c, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, 5, c.Len())

		alakazam, err := c.Get("base-1")
		require.NoError(t, err)
		assert.Equal(t, domain.RarityHoloRare, alakazam.Rarity)
		assert.Equal(t, "base", alakazam.Series)
		assert.Equal(t, "Psychic", alakazam.Type)

		clefable, err := c.Get("jungle-1")
		require.NoError(t, err)
		assert.Equal(t, domain.RarityHoloRare, clefable.Rarity)
		assert.Equal(t, "jungle", clefable.Series)

		charmeleon, err := c.Get("base-24")
		require.NoError(t, err)
		assert.Equal(t, domain.RarityUncommon, charmeleon.Rarity)
	})

	t.Run("loads a single file", func(t *testing.T) {
		dir := t.TempDir()
		writeSeries(t, dir, "base.json", baseSeriesJSON)

		c, err := Load(filepath.Join(dir, "base.json"))
		require.NoError(t, err)
		assert.Equal(t, 3, c.Len())
	})

	t.Run("rejects unknown rarity", func(t *testing.T) {
		dir := t.TempDir()
		writeSeries(t, dir, "bad.json", `{"series": "x", "cards": [{"id": "x-1", "name": "X", "rarity": "mythic"}]}`)

		_, err := Load(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		assert.ErrorIs(t, err, domain.ErrUnknownRarity)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		dir := t.TempDir()
		writeSeries(t, dir, "bad.json", `{"series": "x", "cards": [{"id": "x-1", "rarity": "common"}]}`)

		_, err := Load(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
		assert.Contains(t, err.Error(), ErrContextInvalidSeriesFile)
	})

	t.Run("rejects empty series", func(t *testing.T) {
		dir := t.TempDir()
		writeSeries(t, dir, "empty.yaml", "series: empty\ncards: []\n")

		_, err := Load(dir)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("rejects duplicate ids across files", func(t *testing.T) {
		dir := t.TempDir()
		writeSeries(t, dir, "a.json", baseSeriesJSON)
		writeSeries(t, dir, "b.json", `{"series": "promo", "cards": [{"id": "base-1", "name": "Copy", "rarity": "rare"}]}`)

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextDuplicateCardID)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextFailedToListCatalog)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		writeSeries(t, dir, "broken.json", `{"series": `)

		_, err := Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrContextFailedToLoadSeries)
	})
}
