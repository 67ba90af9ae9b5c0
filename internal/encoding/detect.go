// Package encoding normalizes the charset of imported CSV files.
// Spreadsheet apps and older phones save exports in all kinds of
// encodings; everything funnels through here before parsing.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// peekSize covers BOM detection and gives chardet enough material.
const peekSize = 4096

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader wraps r in a reader that yields UTF-8, whatever the
// input encoding. A UTF-8 BOM is stripped, UTF-16 is decoded by its
// BOM, valid UTF-8 passes through untouched, and anything else goes
// through chardet with Windows-1252 as the last resort.
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(peekSize)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if dec, ok := bomReader(br, head); ok {
		return dec, nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	return legacyReader(br, head), nil
}

// bomReader resolves the encoding from a byte-order mark, when present.
func bomReader(br *bufio.Reader, head []byte) (io.Reader, bool) {
	switch {
	case bytes.HasPrefix(head, bomUTF8):
		_, _ = br.Discard(len(bomUTF8))
		return br, true
	case bytes.HasPrefix(head, bomUTF16LE):
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), true
	case bytes.HasPrefix(head, bomUTF16BE):
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), true
	}

	return nil, false
}

// legacyReader picks a single-byte decoder for non-UTF-8 content.
func legacyReader(br *bufio.Reader, head []byte) io.Reader {
	cm := charmap.Windows1252

	if result, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		switch result.Charset {
		case "ISO-8859-9":
			cm = charmap.ISO8859_9
		case "ISO-8859-15":
			cm = charmap.ISO8859_15
		}
	}

	return transform.NewReader(br, cm.NewDecoder())
}
