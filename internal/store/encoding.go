package store

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// encodings maps accepted --encoding names to their codec. A nil codec
// means plain UTF-8 passthrough.
var encodings = map[string]encoding.Encoding{
	"utf-8":        nil,
	"utf8":         nil,
	"utf-8-bom":    unicode.UTF8BOM,
	"utf-8-sig":    unicode.UTF8BOM,
	"utf-16":       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"latin-1":      charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// EncodingNames lists the canonical names shown in flag help and errors.
func EncodingNames() []string {
	return []string{"utf-8", "utf-8-bom", "utf-16", "utf-16le", "utf-16be", "latin-1", "windows-1252"}
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, nil
	}
	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q (supported: %s)", name, strings.Join(EncodingNames(), ", "))
	}
	return enc, nil
}

// decodingReader wraps r so the rest of the loader always sees UTF-8.
func decodingReader(r io.Reader, name string) (io.Reader, error) {
	enc, err := lookupEncoding(name)
	if err != nil || enc == nil {
		return r, err
	}
	return enc.NewDecoder().Reader(r), nil
}

// encodingWriter wraps w so UTF-8 output lands on disk in the requested
// encoding. The caller keeps writing UTF-8 and must Close the result to
// flush transformed bytes before syncing the file.
func encodingWriter(w io.Writer, name string) (io.WriteCloser, error) {
	enc, err := lookupEncoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return nopWriteCloser{w}, nil
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
