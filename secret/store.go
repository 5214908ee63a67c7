package secret

// Platform limits validated locally before any vault call. Lengths are
// measured in UTF-16 code units, the unit the native credential APIs count
// in; the payload limit is the byte length of the UTF-16 encoded text.
const (
	MaxTargetLength      = 32767
	MaxDescriptionLength = 256
	MaxPayloadBytes      = 5 * 512
)

// Store persists connection secrets (passwords and key-file passphrases)
// under synthesized target identifiers. Implementations are safe to call
// from multiple goroutines when the underlying Vault is.
type Store interface {
	// Read returns the payload stored under target. An absent target is
	// reported as found=false with a nil error.
	Read(target string) (payload string, found bool, err error)

	// Write creates or fully replaces the record under target. The
	// description is also shown as the account label in platform UI.
	Write(target, description, payload string) error

	// Delete removes the record under target. Deleting an absent target
	// is not an error.
	Delete(target string) error

	// Keys lists stored target identifiers. A non-empty pattern filters
	// them with doublestar glob semantics.
	Keys(pattern string) ([]string, error)
}
