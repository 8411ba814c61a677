package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistersPersistentFlags(t *testing.T) {
	Init()

	for _, name := range []string{"input", "output", "delimiter", "escape", "skip", "charset"} {
		assert.NotNil(t, Cmd.PersistentFlags().Lookup(name), "missing flag %s", name)
	}

	assert.Equal(t, ",", Cmd.PersistentFlags().Lookup("delimiter").DefValue)
	assert.Equal(t, `"`, Cmd.PersistentFlags().Lookup("escape").DefValue)
}

func TestReaderOptionsUsesFlagValues(t *testing.T) {
	Init()
	originalFlags := SharedFlags
	defer func() { SharedFlags = originalFlags }()

	SharedFlags.Delimiter = ";"
	SharedFlags.Escape = "'"
	SharedFlags.SkipLines = 2
	SharedFlags.Charset = "windows-1252"

	opts := ReaderOptions(Cmd)
	// logger + delimiter + escape + skip + charset
	require.Len(t, opts, 5)
}

func TestReaderOptionsRejectsMultiCharDelimiter(t *testing.T) {
	Init()
	originalFlags := SharedFlags
	defer func() { SharedFlags = originalFlags }()

	SharedFlags.Delimiter = ";;"
	SharedFlags.Escape = `"`
	SharedFlags.SkipLines = 0
	SharedFlags.Charset = ""

	opts := ReaderOptions(Cmd)
	// logger + escape only; the bad delimiter is skipped
	require.Len(t, opts, 2)
}

func TestRootCommandMetadata(t *testing.T) {
	assert.Equal(t, "typed-csv", Cmd.Use)
	assert.NotEmpty(t, Cmd.Short)
}
