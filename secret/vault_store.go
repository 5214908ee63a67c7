package secret

import (
	"log"

	"github.com/bmatcuk/doublestar/v4"
)

type vaultStore struct {
	vault Vault
}

// NewStore wraps a Vault with identifier validation and payload encoding.
// All length limits are checked locally before any vault call is made.
func NewStore(v Vault) Store {
	return &vaultStore{vault: v}
}

// Ensure vaultStore implements Store
var _ Store = (*vaultStore)(nil)

func (s *vaultStore) Read(target string) (string, bool, error) {
	if utf16Length(target) > MaxTargetLength {
		return "", false, ErrTargetTooLong
	}
	rec, found, err := s.vault.Read(target)
	if err != nil {
		log.Printf("secret: vault read failed: %v", err)
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	payload, err := decodePayload(rec.Data)
	if err != nil {
		return "", false, err
	}
	return payload, true, nil
}

func (s *vaultStore) Write(target, description, payload string) error {
	if utf16Length(target) > MaxTargetLength {
		return ErrTargetTooLong
	}
	if utf16Length(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	data, err := encodePayload(payload)
	if err != nil {
		return err
	}
	if len(data) > MaxPayloadBytes {
		return ErrPayloadTooLarge
	}
	rec := Record{Target: target, Label: description, Data: data}
	if err := s.vault.Write(rec); err != nil {
		log.Printf("secret: vault write failed: %v", err)
		return err
	}
	return nil
}

func (s *vaultStore) Delete(target string) error {
	if utf16Length(target) > MaxTargetLength {
		return ErrTargetTooLong
	}
	if err := s.vault.Delete(target); err != nil {
		log.Printf("secret: vault delete failed: %v", err)
		return err
	}
	return nil
}

func (s *vaultStore) Keys(pattern string) ([]string, error) {
	keys, err := s.vault.Keys()
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return keys, nil
	}
	var matched []string
	for _, k := range keys {
		ok, err := doublestar.Match(pattern, k)
		if err != nil {
			return nil, newVaultError("keys", "", "invalid key pattern", err)
		}
		if ok {
			matched = append(matched, k)
		}
	}
	return matched, nil
}
