package host

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"choroglobe/internal/choropleth"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadPayloadRoles(t *testing.T) {
	path := writeCSV(t, "category:Country,color:Sales,measure:Population\nFrance,10,67\nSpain,20,47\n")

	p, err := LoadPayload(path)
	require.NoError(t, err)
	require.Len(t, p.Columns, 3)

	assert.Equal(t, choropleth.RoleCategory, p.Columns[0].Role)
	assert.Equal(t, "Country", p.Columns[0].DisplayName)
	assert.Equal(t, []string{"France", "Spain"}, p.Columns[0].Values)
	assert.Equal(t, choropleth.RoleColor, p.Columns[1].Role)
	assert.Equal(t, []string{"10", "20"}, p.Columns[1].Values)
	assert.Equal(t, choropleth.RoleMeasure, p.Columns[2].Role)
	assert.Equal(t, "Population", p.Columns[2].DisplayName)
}

func TestLoadPayloadUntaggedHeaderIsMeasure(t *testing.T) {
	path := writeCSV(t, "category:Country,GDP\nFrance,1000\n")

	p, err := LoadPayload(path)
	require.NoError(t, err)
	require.Len(t, p.Columns, 2)
	assert.Equal(t, choropleth.RoleMeasure, p.Columns[1].Role)
	assert.Equal(t, "GDP", p.Columns[1].DisplayName)
}

func TestLoadPayloadShortRowsPadEmpty(t *testing.T) {
	// encoding/csv rejects ragged rows unless told otherwise, so give
	// it a blank trailing field instead
	path := writeCSV(t, "category:Country,measure:Pop\nFrance,\n")

	p, err := LoadPayload(path)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, p.Columns[1].Values)
}

func TestLoadPayloadFeedsNormalizer(t *testing.T) {
	path := writeCSV(t, "measure:Pop\n5\n")

	p, err := LoadPayload(path)
	require.NoError(t, err)

	_, err = choropleth.NormalizeRows(p)
	assert.ErrorIs(t, err, choropleth.ErrNoCategories)
}

func TestLoadPayloadEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, err := LoadPayload(path)
	assert.Error(t, err)
}
