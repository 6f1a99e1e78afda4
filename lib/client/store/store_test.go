package clientstore

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbmodels "labo-isometeer-backend/models/db"
)

func newTestStore(t *testing.T) Provider {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&dbmodels.Client{}))
	return NewInstance(conn)
}

func TestClientUniqueness(t *testing.T) {
	store := newTestStore(t)

	acmeID, err := store.Create(dbmodels.Client{Code: "ACME", Name: "ACME S.A."})
	require.NoError(t, err)
	otherID, err := store.Create(dbmodels.Client{Code: "METR", Name: "Metrología del Sur"})
	require.NoError(t, err)

	t.Run(`código repetido`, func(t *testing.T) {
		_, err := store.Create(dbmodels.Client{Code: "ACME", Name: "Otro nombre"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "código")
	})

	t.Run(`nombre repetido`, func(t *testing.T) {
		_, err := store.Create(dbmodels.Client{Code: "OTRO", Name: "ACME S.A."})
		require.Error(t, err)
		require.Contains(t, err.Error(), "nombre")
	})

	t.Run(`update a nombre ajeno`, func(t *testing.T) {
		err := store.Update(otherID, map[string]interface{}{"name": "ACME S.A."})
		require.Error(t, err)
		require.Contains(t, err.Error(), "nombre")
	})

	t.Run(`update conservando los propios datos`, func(t *testing.T) {
		err := store.Update(acmeID, map[string]interface{}{
			"code":  "ACME",
			"name":  "ACME S.A.",
			"email": "ventas@acme.test",
		})
		require.NoError(t, err)
	})
}
