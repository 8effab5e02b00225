package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
pages:
  - slug: about
    title: About us
    body: We are a neighbourhood association.
  - slug: Board
    title: Board
    members:
      - name: Ada
        role: Chair
      - name: Ben
        role: Treasurer
  - slug: donate
    title: Support us
    methods:
      - kind: bank
        label: Bank transfer
        details: IBAN XX00 0000
`

func TestParse_IndexesBySlug(t *testing.T) {
	pages, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"about", "board", "donate"}, pages.Slugs())

	board, err := pages.Get("board")
	require.NoError(t, err)
	require.Len(t, board.Members, 2)
	assert.Equal(t, "Treasurer", board.Members[1].Role)

	donate, err := pages.Get("DONATE")
	require.NoError(t, err)
	assert.Equal(t, "bank", donate.Methods[0].Kind)
}

func TestGet_UnknownSlug(t *testing.T) {
	pages, err := Parse([]byte(sample))
	require.NoError(t, err)

	_, err = pages.Get("history")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestParse_RejectsDuplicateAndMissingSlugs(t *testing.T) {
	_, err := Parse([]byte("pages:\n  - slug: about\n  - slug: About\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("pages:\n  - title: nameless\n"))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	pages, err := Load(path)
	require.NoError(t, err)
	_, err = pages.Get("about")
	assert.NoError(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
