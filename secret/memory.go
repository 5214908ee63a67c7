package secret

import (
	"sort"
	"sync"
)

// MemoryVault is an in-memory Vault for tests and for callers running on
// platforms without a usable keyring. Records are lost on process exit.
type MemoryVault struct {
	mu      sync.Mutex
	records map[string]Record
}

// NewMemoryVault creates an empty in-memory vault.
func NewMemoryVault() *MemoryVault {
	return &MemoryVault{records: make(map[string]Record)}
}

func (v *MemoryVault) Read(target string) (Record, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	rec, ok := v.records[target]
	if !ok {
		return Record{}, false, nil
	}
	// Copy Data so callers cannot mutate the stored bytes.
	out := rec
	out.Data = append([]byte(nil), rec.Data...)
	return out, true, nil
}

func (v *MemoryVault) Write(rec Record) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	stored := rec
	stored.Data = append([]byte(nil), rec.Data...)
	v.records[stored.Target] = stored
	return nil
}

func (v *MemoryVault) Delete(target string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.records, target)
	return nil
}

func (v *MemoryVault) Keys() ([]string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	keys := make([]string, 0, len(v.records))
	for k := range v.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
