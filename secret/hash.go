package secret

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// FileHash returns the lowercase hex SHA-256 digest of the file content at
// path, with no separators. The hash depends only on content, never on the
// path, and is used purely as an identifier component for KeyFileTarget.
// A missing file yields an error satisfying errors.Is(err, fs.ErrNotExist).
func FileHash(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", newHashError("stat", path, "key file not found", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", newHashError("open", path, "cannot open key file", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", newHashError("read", path, "cannot read key file", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
