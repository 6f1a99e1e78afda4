package displayorder

import (
	"encoding/json"
	"sort"

	"labo-isometeer-backend/lib/workload"
)

// StorageKey es la clave fija bajo la que se persiste el orden
// del tablero de carga de trabajo.
const StorageKey = "workload_order"

// KVStore abstrae la persistencia del orden para poder testear el
// manager con un mapa en memoria.
type KVStore interface {
	Get(key string) (value []byte, exist bool, err error)
	Set(key string, value []byte) error
}

type Manager struct {
	store KVStore
}

func NewManager(store KVStore) *Manager {
	return &Manager{store: store}
}

// load lee el orden persistido; un blob corrupto o ausente equivale
// a "sin orden guardado" y nunca propaga error al llamador.
func (m *Manager) load() []string {
	raw, exist, err := m.store.Get(StorageKey)
	if err != nil || !exist {
		return nil
	}
	var order []string
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil
	}
	return order
}

func (m *Manager) persist(order []string) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return m.store.Set(StorageKey, raw)
}

// Resolve devuelve el orden efectivo para el conjunto de nombres
// dado: los conocidos conservan su índice persistido y los nuevos
// van al final en orden alfabético entre sí. Si no había orden
// guardado, el orden alfabético inicial se persiste.
func (m *Manager) Resolve(names []string) ([]string, error) {
	saved := m.load()
	if saved == nil {
		fresh := append([]string{}, names...)
		sort.Strings(fresh)
		if err := m.persist(fresh); err != nil {
			return nil, err
		}
		return fresh, nil
	}

	present := map[string]bool{}
	for _, name := range names {
		present[name] = true
	}
	result := make([]string, 0, len(names))
	known := map[string]bool{}
	for _, name := range saved {
		if present[name] {
			result = append(result, name)
			known[name] = true
		}
	}
	unseen := []string{}
	for _, name := range names {
		if !known[name] {
			unseen = append(unseen, name)
		}
	}
	sort.Strings(unseen)
	return append(result, unseen...), nil
}

// Apply ordena los registros del agregador según el orden
// persistido: los ausentes del orden guardado van después de los
// presentes, alfabéticamente entre sí.
func (m *Manager) Apply(records []workload.Record) []workload.Record {
	saved := m.load()
	index := map[string]int{}
	for i, name := range saved {
		index[name] = i
	}
	sorted := append([]workload.Record{}, records...)
	sort.SliceStable(sorted, func(a, b int) bool {
		ia, okA := index[sorted[a].Name]
		ib, okB := index[sorted[b].Name]
		switch {
		case okA && okB:
			return ia < ib
		case okA:
			return true
		case okB:
			return false
		default:
			return sorted[a].Name < sorted[b].Name
		}
	})
	return sorted
}

// Las cuatro operaciones de reordenamiento son no-op si el nombre
// no figura en el orden persistido, y escriben el orden completo
// de inmediato en cada mutación.

func (m *Manager) MoveUp(name string) error {
	order := m.load()
	for i, n := range order {
		if n == name {
			if i == 0 {
				return nil
			}
			order[i-1], order[i] = order[i], order[i-1]
			return m.persist(order)
		}
	}
	return nil
}

func (m *Manager) MoveDown(name string) error {
	order := m.load()
	for i, n := range order {
		if n == name {
			if i == len(order)-1 {
				return nil
			}
			order[i], order[i+1] = order[i+1], order[i]
			return m.persist(order)
		}
	}
	return nil
}

func (m *Manager) MoveToTop(name string) error {
	order, found := remove(m.load(), name)
	if !found {
		return nil
	}
	return m.persist(append([]string{name}, order...))
}

func (m *Manager) MoveToBottom(name string) error {
	order, found := remove(m.load(), name)
	if !found {
		return nil
	}
	return m.persist(append(order, name))
}

func remove(order []string, name string) ([]string, bool) {
	for i, n := range order {
		if n == name {
			return append(order[:i:i], order[i+1:]...), true
		}
	}
	return order, false
}
