package clean_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fire-report/cmd/clean"
	"fjacquet/fire-report/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCleanCommand_Metadata(t *testing.T) {
	assert.Equal(t, "clean", clean.Cmd.Use)
	assert.Contains(t, clean.Cmd.Short, "cleaned datasets")
	assert.Contains(t, clean.Cmd.Long, "bereinigt")
	assert.NotNil(t, clean.Cmd.RunE)
	assert.NotNil(t, clean.Cmd.Flags().Lookup("format"))
}

func TestCleanCommand_RunWithoutContainer(t *testing.T) {
	original := root.AppContainer
	defer func() { root.AppContainer = original }()
	root.AppContainer = nil

	err := clean.Cmd.RunE(clean.Cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "container not initialized")
}

func writeInputs(t *testing.T) string {
	t.Helper()
	in := t.TempDir()
	files := map[string]string{
		"data2000_2024.csv": "year,number\n2000,5\n2001,0\n2002,\n",
		"region.csv":        "region,number\nNord,3\nSüd,-1\n",
		"nrw.csv":           "state,year,number\nNRW,2000,3\nNRW,,4\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(in, name), []byte(content), 0600))
	}
	return in
}

func execute(t *testing.T, args ...string) {
	t.Helper()
	originalConfig, originalContainer := root.AppConfig, root.AppContainer
	t.Cleanup(func() {
		root.AppConfig, root.AppContainer = originalConfig, originalContainer
		root.Cmd.SetArgs(nil)
	})

	root.Init()
	if !hasClean() {
		root.Cmd.AddCommand(clean.Cmd)
	}
	root.Cmd.SetArgs(append([]string{"clean"}, args...))
	require.NoError(t, root.Cmd.Execute())
}

func hasClean() bool {
	for _, c := range root.Cmd.Commands() {
		if c == clean.Cmd {
			return true
		}
	}
	return false
}

func TestCleanCommand_CSV(t *testing.T) {
	in, out := writeInputs(t), t.TempDir()
	execute(t, "--input-dir", in, "--output-dir", out, "--format", "csv")

	data, err := os.ReadFile(filepath.Join(out, "bereinigt", "data2000_2024.csv"))
	require.NoError(t, err)
	assert.Equal(t, "year,number\n2000,5\n", string(data))

	data, err = os.ReadFile(filepath.Join(out, "bereinigt", "region.csv"))
	require.NoError(t, err)
	assert.Equal(t, "region,number\nNord,3\n", string(data))

	assert.FileExists(t, filepath.Join(out, "bereinigt", "nrw.csv"))
}

func TestCleanCommand_XLSX(t *testing.T) {
	in, out := writeInputs(t), t.TempDir()
	execute(t, "--input-dir", in, "--output-dir", out, "--format", "xlsx")

	f, err := excelize.OpenFile(filepath.Join(out, "bereinigt.xlsx"))
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 3)
}
