package secret

// Record is a single credential vault entry.
type Record struct {
	Target string // unique identifier the record is stored under
	Label  string // display label, also shown as the account name
	Data   []byte // raw payload bytes (UTF-16LE encoded text)
}

// Vault is the narrow capability surface of a platform credential store.
// The store logic depends only on this interface, so tests and keyring-less
// platforms can substitute MemoryVault.
type Vault interface {
	// Read returns the record stored under target. An absent target is
	// reported as found=false with a nil error.
	Read(target string) (Record, bool, error)

	// Write creates or fully replaces the record under rec.Target.
	Write(rec Record) error

	// Delete removes the record under target. An absent target is not
	// an error.
	Delete(target string) error

	// Keys lists all stored target identifiers.
	Keys() ([]string, error)
}
