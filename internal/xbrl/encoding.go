package xbrl

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// EDINET exports are inconsistent about encoding: most CSV entries are
// UTF-16LE with a BOM, some are plain UTF-8, and older reference files are
// Shift-JIS. The fallback order matters: Shift-JIS will happily decode
// almost anything, so it goes last.
var decodings = []struct {
	name   string
	decode func([]byte) (string, bool)
}{
	{"utf-16le", decodeUTF16LE},
	{"utf-16", decodeUTF16BOM},
	{"utf-8", decodeUTF8},
	{"shift-jis", decodeShiftJIS},
}

// decodeText tries each candidate encoding in order and returns the first
// clean decode, with any leading BOM stripped. Returns false when no
// candidate accepts the bytes.
func decodeText(raw []byte) (string, string, bool) {
	for _, d := range decodings {
		if s, ok := d.decode(raw); ok {
			return strings.TrimPrefix(s, "\ufeff"), d.name, true
		}
	}
	return "", "", false
}

func decodeUTF16LE(raw []byte) (string, bool) {
	if len(raw)%2 != 0 {
		return "", false
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(raw)
	if err != nil {
		return "", false
	}
	return requireClean(string(out))
}

// decodeUTF16BOM handles the byte-order-mark form, covering big-endian
// exports that the LE pass rejects.
func decodeUTF16BOM(raw []byte) (string, bool) {
	if len(raw) < 2 {
		return "", false
	}
	hasBOM := (raw[0] == 0xFF && raw[1] == 0xFE) || (raw[0] == 0xFE && raw[1] == 0xFF)
	if !hasBOM || len(raw)%2 != 0 {
		return "", false
	}
	dec := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
	out, err := dec.Bytes(raw)
	if err != nil {
		return "", false
	}
	return requireClean(string(out))
}

func decodeUTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})), true
}

func decodeShiftJIS(raw []byte) (string, bool) {
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return requireClean(string(out))
}

// requireClean rejects decodes that produced replacement runes. The x/text
// decoders substitute U+FFFD instead of failing, so this is what "decoded
// without error" means for the fallback chain.
func requireClean(s string) (string, bool) {
	if strings.ContainsRune(s, utf8.RuneError) {
		return "", false
	}
	return s, true
}
