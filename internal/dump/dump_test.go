package dump

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/stretchr/testify/require"
)

func TestCreator(t *testing.T) {
	dir := t.TempDir()
	id := ID{Label: "testnet", Block: 42}

	c, err := NewCreator(dir, id)
	require.NoError(t, err)

	w := c.AddContract("token", state.Contract{})
	require.NoError(t, w.Write([]byte{1, 2}, []byte{3}))

	require.NoError(t, c.Flush())
	c.Close()

	data, err := os.ReadFile(filepath.Join(dir, "testnet-42-storage.csv"))
	require.NoError(t, err)

	recs, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "token", recs[0][0])

	// Dumps are never overwritten.
	_, err = NewCreator(dir, id)
	require.Error(t, err)
}
