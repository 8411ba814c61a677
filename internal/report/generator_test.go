package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/typed-csv/pkg/csvreader"
)

const sampleInput = "id,name,amount,opened,score\n" +
	"1,alice,CHF 10.50,2024-01-15,3.5\n" +
	"2,bob,CHF 7.00,2024-02-01,\n" +
	"3,,CHF 1.25,2024-03-09,1.25\n"

func TestProfile(t *testing.T) {
	g := NewGenerator(nil)

	profiles, err := g.Profile(csvreader.NewFromString(sampleInput))
	require.NoError(t, err)
	require.Len(t, profiles, 5)

	byName := map[string]ColumnProfile{}
	for _, p := range profiles {
		byName[p.Column] = p
	}

	assert.Equal(t, "integer", byName["id"].Type)
	assert.Equal(t, 3, byName["id"].Filled)
	assert.Equal(t, "1.00", byName["id"].FillRate)

	assert.Equal(t, "text", byName["name"].Type)
	assert.Equal(t, 2, byName["name"].Filled)
	assert.Equal(t, "0.67", byName["name"].FillRate)

	assert.Equal(t, "amount", byName["amount"].Type)
	assert.Equal(t, "date", byName["opened"].Type)
	assert.Equal(t, "double", byName["score"].Type)

	// Order must follow header positions.
	assert.Equal(t, 0, profiles[0].Position)
	assert.Equal(t, "id", profiles[0].Column)
	assert.Equal(t, "score", profiles[4].Column)
}

func TestProfileEmptyColumn(t *testing.T) {
	g := NewGenerator(nil)

	profiles, err := g.Profile(csvreader.NewFromString("a,b\n1,\n2,\n"))
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "empty", profiles[1].Type)
	assert.Equal(t, "0.00", profiles[1].FillRate)
}

func TestProfileNoHeader(t *testing.T) {
	g := NewGenerator(nil)

	_, err := g.Profile(csvreader.NewFromString(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header")
}

func TestRender(t *testing.T) {
	g := NewGenerator(nil)
	profiles := []ColumnProfile{
		{Column: "id", Position: 0, Rows: 2, Filled: 2, FillRate: "1.00", Type: "integer"},
	}

	t.Run("csv", func(t *testing.T) {
		out, err := g.Render(profiles, "csv")
		require.NoError(t, err)
		assert.Contains(t, string(out), "column,position,rows,filled,fill_rate,type")
		assert.Contains(t, string(out), "id,0,2,2,1.00,integer")
	})

	t.Run("json", func(t *testing.T) {
		out, err := g.Render(profiles, "json")
		require.NoError(t, err)
		assert.Contains(t, string(out), `"column": "id"`)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := g.Render(profiles, "pdf")
		assert.Error(t, err)
	})
}
