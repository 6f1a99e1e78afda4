package displayorder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"labo-isometeer-backend/lib/workload"
)

func savedOrder(t *testing.T, store KVStore) []string {
	t.Helper()
	raw, exist, err := store.Get(StorageKey)
	require.Nil(t, err)
	require.True(t, exist)
	var order []string
	require.Nil(t, json.Unmarshal(raw, &order))
	return order
}

func TestResolve(t *testing.T) {
	t.Run(`sin orden guardado arranca alfabético y lo persiste`, func(t *testing.T) {
		store := NewMemoryStore()
		m := NewManager(store)
		order, err := m.Resolve([]string{"Carla", "Ana", "Beto"})
		require.Nil(t, err)
		require.Equal(t, []string{"Ana", "Beto", "Carla"}, order)
		require.Equal(t, []string{"Ana", "Beto", "Carla"}, savedOrder(t, store))
	})

	t.Run(`los nombres nuevos van al final, no intercalados`, func(t *testing.T) {
		store := NewMemoryStore()
		raw, _ := json.Marshal([]string{"Ana", "Beto"})
		require.Nil(t, store.Set(StorageKey, raw))

		m := NewManager(store)
		order, err := m.Resolve([]string{"Ana", "Beto", "Carla"})
		require.Nil(t, err)
		require.Equal(t, []string{"Ana", "Beto", "Carla"}, order)
	})

	t.Run(`varios nombres nuevos quedan alfabéticos entre sí`, func(t *testing.T) {
		store := NewMemoryStore()
		raw, _ := json.Marshal([]string{"Zoe"})
		require.Nil(t, store.Set(StorageKey, raw))

		m := NewManager(store)
		order, err := m.Resolve([]string{"Beto", "Zoe", "Ana"})
		require.Nil(t, err)
		require.Equal(t, []string{"Zoe", "Ana", "Beto"}, order)
	})

	t.Run(`un blob corrupto equivale a no tener orden guardado`, func(t *testing.T) {
		store := NewMemoryStore()
		require.Nil(t, store.Set(StorageKey, []byte("{esto no es json")))

		m := NewManager(store)
		order, err := m.Resolve([]string{"Beto", "Ana"})
		require.Nil(t, err)
		require.Equal(t, []string{"Ana", "Beto"}, order)
	})
}

func TestReorderOps(t *testing.T) {
	newStore := func(t *testing.T, names ...string) KVStore {
		store := NewMemoryStore()
		raw, err := json.Marshal(names)
		require.Nil(t, err)
		require.Nil(t, store.Set(StorageKey, raw))
		return store
	}

	t.Run(`moveToTop persiste y es idempotente`, func(t *testing.T) {
		store := newStore(t, "Ana", "Beto", "Carla")
		m := NewManager(store)
		require.Nil(t, m.MoveToTop("Carla"))
		require.Equal(t, []string{"Carla", "Ana", "Beto"}, savedOrder(t, store))
		require.Nil(t, m.MoveToTop("Carla"))
		require.Equal(t, []string{"Carla", "Ana", "Beto"}, savedOrder(t, store))
	})

	t.Run(`moveToBottom`, func(t *testing.T) {
		store := newStore(t, "Ana", "Beto", "Carla")
		m := NewManager(store)
		require.Nil(t, m.MoveToBottom("Ana"))
		require.Equal(t, []string{"Beto", "Carla", "Ana"}, savedOrder(t, store))
	})

	t.Run(`moveUp y moveDown intercambian adyacentes`, func(t *testing.T) {
		store := newStore(t, "Ana", "Beto", "Carla")
		m := NewManager(store)
		require.Nil(t, m.MoveUp("Beto"))
		require.Equal(t, []string{"Beto", "Ana", "Carla"}, savedOrder(t, store))
		require.Nil(t, m.MoveDown("Ana"))
		require.Equal(t, []string{"Beto", "Carla", "Ana"}, savedOrder(t, store))
	})

	t.Run(`en los bordes son no-op`, func(t *testing.T) {
		store := newStore(t, "Ana", "Beto")
		m := NewManager(store)
		require.Nil(t, m.MoveUp("Ana"))
		require.Nil(t, m.MoveDown("Beto"))
		require.Equal(t, []string{"Ana", "Beto"}, savedOrder(t, store))
	})

	t.Run(`un nombre desconocido es no-op`, func(t *testing.T) {
		store := newStore(t, "Ana", "Beto")
		m := NewManager(store)
		require.Nil(t, m.MoveToTop("Zoe"))
		require.Nil(t, m.MoveUp("Zoe"))
		require.Equal(t, []string{"Ana", "Beto"}, savedOrder(t, store))
	})
}

func TestApply(t *testing.T) {
	store := NewMemoryStore()
	raw, _ := json.Marshal([]string{"Carla", "Ana"})
	require.Nil(t, store.Set(StorageKey, raw))

	m := NewManager(store)
	records := []workload.Record{
		{Name: "Ana"},
		{Name: "Beto"},
		{Name: "Carla"},
		{Name: "Aldo"},
	}
	sorted := m.Apply(records)
	names := make([]string, 0, len(sorted))
	for _, rec := range sorted {
		names = append(names, rec.Name)
	}
	// presentes en el orden guardado primero, ausentes después
	// alfabéticamente
	require.Equal(t, []string{"Carla", "Ana", "Aldo", "Beto"}, names)
}
