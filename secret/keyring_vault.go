package secret

import (
	"github.com/99designs/keyring"

	"credstore/config"
)

type systemVault struct {
	ring keyring.Keyring
}

// OpenSystemVault opens the OS credential vault via 99designs/keyring using
// the configured service name and backend restrictions. If it fails, returns
// an error so callers can fall back to MemoryVault.
func OpenSystemVault(cfg *config.Config) (Vault, error) {
	kc := keyring.Config{ServiceName: cfg.Vault.Service}
	if cfg.Vault.Keychain != "" {
		kc.KeychainName = cfg.Vault.Keychain
	}
	if cfg.Vault.FileDir != "" {
		kc.FileDir = cfg.Vault.FileDir
	}
	for _, b := range cfg.Vault.Backends {
		kc.AllowedBackends = append(kc.AllowedBackends, keyring.BackendType(b))
	}

	ring, err := keyring.Open(kc)
	if err != nil {
		return nil, newVaultError("open", "", "cannot open OS credential vault", err)
	}
	return &systemVault{ring: ring}, nil
}

func (v *systemVault) Read(target string) (Record, bool, error) {
	item, err := v.ring.Get(target)
	if err != nil {
		if err == keyring.ErrKeyNotFound {
			return Record{}, false, nil
		}
		return Record{}, false, newVaultError("read", target, "vault query failed", err)
	}
	return Record{Target: item.Key, Label: item.Description, Data: item.Data}, true, nil
}

func (v *systemVault) Write(rec Record) error {
	err := v.ring.Set(keyring.Item{
		Key:         rec.Target,
		Data:        rec.Data,
		Description: rec.Label,
		Label:       rec.Label,
	})
	if err != nil {
		return newVaultError("write", rec.Target, "vault write failed", err)
	}
	return nil
}

func (v *systemVault) Delete(target string) error {
	// Some backends report a missing key from Remove; deletion is
	// idempotent at this layer.
	if err := v.ring.Remove(target); err != nil && err != keyring.ErrKeyNotFound {
		return newVaultError("delete", target, "vault delete failed", err)
	}
	return nil
}

func (v *systemVault) Keys() ([]string, error) {
	keys, err := v.ring.Keys()
	if err != nil {
		return nil, newVaultError("keys", "", "vault enumeration failed", err)
	}
	return keys, nil
}
