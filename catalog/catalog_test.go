package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bplusdb/table"
)

func peopleSchema() table.Schema {
	return table.Schema{"id": table.TypeInt, "name": table.TypeString}
}

func TestDatabaseAndTableLifecycle(t *testing.T) {
	c := New()
	require.NoError(t, c.CreateDatabase("app"))
	assert.ErrorIs(t, c.CreateDatabase("app"), ErrDatabaseExists)

	_, err := CreateTable[int](c, "app", "people", peopleSchema(), 4, "id")
	require.NoError(t, err)
	_, err = CreateTable[int](c, "app", "people", peopleSchema(), 4, "id")
	assert.ErrorIs(t, err, ErrTableExists)

	_, err = CreateTable[int](c, "missing-db", "people", peopleSchema(), 4, "id")
	assert.ErrorIs(t, err, ErrDatabaseNotFound)

	names, err := c.ListTables("app")
	require.NoError(t, err)
	assert.Equal(t, []string{"people"}, names)

	require.NoError(t, c.DeleteTable("app", "people"))
	assert.ErrorIs(t, c.DeleteTable("app", "people"), ErrTableNotFound)

	require.NoError(t, c.DeleteDatabase("app"))
	assert.ErrorIs(t, c.DeleteDatabase("app"), ErrDatabaseNotFound)
}

func TestGetTableKeyMismatch(t *testing.T) {
	c := New()
	require.NoError(t, c.CreateDatabase("app"))
	_, err := CreateTable[int](c, "app", "people", peopleSchema(), 4, "id")
	require.NoError(t, err)

	_, err = GetTable[string](c, "app", "people")
	assert.ErrorIs(t, err, ErrTableKeyMismatch)

	tbl, err := GetTable[int](c, "app", "people")
	require.NoError(t, err)
	assert.Equal(t, "people", tbl.Name)
}

// Scenario 5 from spec.md §8: two databases, each with one populated
// table, survive a save -> fresh-catalog load round trip.
func TestSaveAndLoadDatabaseRoundTrip(t *testing.T) {
	c := New()
	require.NoError(t, c.CreateDatabase("shop"))
	require.NoError(t, c.CreateDatabase("crm"))

	shopPeople, err := CreateTable[int](c, "shop", "customers", peopleSchema(), 4, "id")
	require.NoError(t, err)
	for i := 1; i <= 5; i++ {
		require.NoError(t, shopPeople.Insert(table.Record{"id": i, "name": "c"}))
	}

	crmPeople, err := CreateTable[string](c, "crm", "contacts", table.Schema{"email": table.TypeString}, 4, "email")
	require.NoError(t, err)
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		require.NoError(t, crmPeople.Insert(table.Record{"email": email}))
	}

	path := filepath.Join(t.TempDir(), "out")
	require.NoError(t, c.SaveDatabase(path))

	fresh := New()
	require.NoError(t, fresh.LoadDatabase(path+snapExtension))

	assert.ElementsMatch(t, []string{"shop", "crm"}, fresh.ListDatabases())

	freshShopPeople, err := GetTable[int](fresh, "shop", "customers")
	require.NoError(t, err)
	assert.Equal(t, shopPeople.GetAll(), freshShopPeople.GetAll())

	freshCrmPeople, err := GetTable[string](fresh, "crm", "contacts")
	require.NoError(t, err)
	assert.Equal(t, crmPeople.GetAll(), freshCrmPeople.GetAll())
}

func TestLoadDatabaseMissingFile(t *testing.T) {
	c := New()
	err := c.LoadDatabase(filepath.Join(t.TempDir(), "nope.snap"))
	assert.ErrorIs(t, err, ErrSnapshotIO)
}

func TestSaveDatabaseAddsExtensionAndCreatesDirectories(t *testing.T) {
	c := New()
	require.NoError(t, c.CreateDatabase("app"))

	path := filepath.Join(t.TempDir(), "nested", "dir", "mydb")
	require.NoError(t, c.SaveDatabase(path))

	fresh := New()
	require.NoError(t, fresh.LoadDatabase(path+snapExtension))
	assert.Equal(t, []string{"app"}, fresh.ListDatabases())
}
