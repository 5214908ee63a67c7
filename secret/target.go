package secret

import (
	"fmt"
	"strconv"
)

// targetPrefix namespaces every identifier written by this library. It must
// not change: stored records are addressed by the exact identifier string.
const targetPrefix = "Poderosa-"

// LoginTarget builds the target identifier for a remote-login password:
// "Poderosa-{protocol}://{user}@{host}" with ":{port}" appended only when
// port is positive. Values are concatenated as-is with no case or encoding
// normalization, so identical inputs always produce byte-identical output.
func LoginTarget(protocol, host string, port int, user string) string {
	id := fmt.Sprintf("%s%s://%s@%s", targetPrefix, protocol, user, host)
	if port > 0 {
		id += ":" + strconv.Itoa(port)
	}
	return id
}

// KeyFileTarget builds the target identifier for a key-file passphrase:
// "Poderosa-{protocol}://keyfile-{hash}". The hash should come from
// FileHash. The "keyfile-" segment sits where a login identifier has
// "{user}@", which keeps the two namespaces collision-free.
func KeyFileTarget(protocol, hash string) string {
	return fmt.Sprintf("%s%s://keyfile-%s", targetPrefix, protocol, hash)
}
