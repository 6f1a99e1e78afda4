package displayorder

// MemoryStore cumple el contrato de KVStore con un mapa; se usa en
// tests y como degradado cuando no hay base disponible.
type MemoryStore struct {
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	value, exist := s.data[key]
	return value, exist, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.data[key] = value
	return nil
}
