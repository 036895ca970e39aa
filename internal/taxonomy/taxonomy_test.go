package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return New([]Entry{
		{Unit: "Kantor Telkom Regional III", SubUnits: []string{"Human Capital", "Finance"}},
		{Unit: "Witel Suramadu", SubUnits: []string{"Network Operations"}},
	})
}

func TestCatalogIsValid(t *testing.T) {
	catalog := testCatalog()

	require.True(t, catalog.IsValid("Kantor Telkom Regional III", "Finance"))
	require.True(t, catalog.IsValid("Witel Suramadu", ""))
	require.False(t, catalog.IsValid("Witel Bali", ""))
	require.False(t, catalog.IsValid("Witel Suramadu", "Finance"))
}

func TestCatalogSubUnitScopedToUnit(t *testing.T) {
	catalog := testCatalog()

	// "Network Operations" exists, but only under Witel Suramadu.
	require.True(t, catalog.IsValid("Witel Suramadu", "Network Operations"))
	require.False(t, catalog.IsValid("Kantor Telkom Regional III", "Network Operations"))
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.json")
	payload := `[{"unit":"Witel Suramadu","subUnits":["Network Operations"]}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	catalog, err := Load(path)
	require.NoError(t, err)
	require.True(t, catalog.IsValid("Witel Suramadu", "Network Operations"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoadCatalogRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}
