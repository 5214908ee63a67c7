package secret

import (
	"golang.org/x/text/encoding/unicode"
)

// Payloads are stored as UTF-16LE without a BOM, the platform-native
// "Unicode" encoding. A credential entered by hand through the platform's
// own control surface is stored the same way, so the two stay interoperable.
var utf16Codec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func encodePayload(payload string) ([]byte, error) {
	data, err := utf16Codec.NewEncoder().Bytes([]byte(payload))
	if err != nil {
		return nil, newEncodingError("encode", "cannot encode payload as UTF-16", err)
	}
	return data, nil
}

func decodePayload(data []byte) (string, error) {
	text, err := utf16Codec.NewDecoder().Bytes(data)
	if err != nil {
		return "", newEncodingError("decode", "cannot decode stored payload as UTF-16", err)
	}
	return string(text), nil
}

// utf16Length counts the UTF-16 code units of s: one per BMP rune, two per
// supplementary rune. The platform limits count in these units, not bytes.
func utf16Length(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}
