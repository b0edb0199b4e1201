// Package input reads operator answers from a console that may not speak
// UTF-8. Legacy Windows consoles send CP850 or Windows-1252 bytes; they are
// decoded on the way in and prompts are encoded on the way out.
package input

import (
	"io"
	"runtime"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding names a console code page
type Encoding string

const (
	EncodingAuto   Encoding = "auto"
	EncodingUTF8   Encoding = "utf8"
	EncodingCP850  Encoding = "cp850"
	EncodingCP1252 Encoding = "cp1252"
)

var ErrUnknownEncoding = errors.New("unknown console encoding")

// ParseEncoding accepts the configured encoding name, case-insensitively.
// "utf-8" and "65001" are accepted as UTF-8, "850" and "1252" as the
// matching code pages.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return EncodingAuto, nil
	case "utf8", "utf-8", "65001":
		return EncodingUTF8, nil
	case "cp850", "850":
		return EncodingCP850, nil
	case "cp1252", "1252", "windows-1252":
		return EncodingCP1252, nil
	default:
		return "", errors.Wrapf(ErrUnknownEncoding, "%q", s)
	}
}

// Resolve maps EncodingAuto to the platform default: CP850 on Windows,
// UTF-8 elsewhere
func (e Encoding) Resolve() Encoding {
	if e != EncodingAuto && e != "" {
		return e
	}
	if runtime.GOOS == "windows" {
		return EncodingCP850
	}
	return EncodingUTF8
}

func (e Encoding) codePage() encoding.Encoding {
	switch e.Resolve() {
	case EncodingCP850:
		return charmap.CodePage850
	case EncodingCP1252:
		return charmap.Windows1252
	default:
		return nil
	}
}

// NewDecoder converts console bytes read from r into UTF-8
func NewDecoder(r io.Reader, enc Encoding) io.Reader {
	cp := enc.codePage()
	if cp == nil {
		return r
	}
	return transform.NewReader(r, cp.NewDecoder())
}

// NewWriter converts UTF-8 text written to it into the console code page.
// Runes the code page cannot represent are replaced.
func NewWriter(w io.Writer, enc Encoding) io.Writer {
	cp := enc.codePage()
	if cp == nil {
		return w
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(cp.NewEncoder()))
}
