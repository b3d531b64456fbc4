package mimesniff

import "bytes"

// Signature is a single sniffing rule. Given the sniffing window and the
// index of its first non-whitespace byte, it returns a MIME type or "" when
// the rule does not apply.
//
// The set of rules is fixed by the algorithm; use the constructors in this
// package to build one.
type Signature interface {
	match(data []byte, firstNonWS int) string
}

// Exact returns a signature matching data that starts with sig. sig is
// copied.
func Exact(sig []byte, contentType string) Signature {
	return &exactSig{sig: bytes.Clone(sig), ct: contentType}
}

// Masked returns a signature that ANDs each leading byte with mask and
// compares the result against pat. With skipLeadingWS the comparison starts
// at the first non-whitespace byte. mask and pat are copied.
func Masked(mask, pat []byte, skipLeadingWS bool, contentType string) Signature {
	return &maskedSig{
		mask:   bytes.Clone(mask),
		pat:    bytes.Clone(pat),
		skipWS: skipLeadingWS,
		ct:     contentType,
	}
}

// HTMLTag returns a signature matching an HTML tag opener, case-insensitive
// for ASCII letters, followed by a tag-terminating byte. pat must use
// upper-case letters. pat is copied.
func HTMLTag(pat []byte) Signature {
	return htmlSig(bytes.Clone(pat))
}

// MP4 returns the signature for an ISO base media "ftyp" box carrying an
// "mp4" brand.
func MP4() Signature {
	return mp4Sig{}
}

// PlainText returns the plain-text fallback. It belongs at the end of a
// registry.
func PlainText() Signature {
	return textSig{}
}

type exactSig struct {
	sig []byte
	ct  string
}

func (e *exactSig) match(data []byte, firstNonWS int) string {
	if len(data) >= len(e.sig) && bytes.Equal(data[:len(e.sig)], e.sig) {
		return e.ct
	}
	return ""
}

type maskedSig struct {
	mask, pat []byte
	skipWS    bool
	ct        string
}

// match implements the pattern matching algorithm of
// https://mimesniff.spec.whatwg.org/#pattern-matching-algorithm
func (m *maskedSig) match(data []byte, firstNonWS int) string {
	if m.skipWS {
		data = data[firstNonWS:]
	}
	if len(m.pat) != len(m.mask) {
		return ""
	}
	if len(data) < len(m.pat) {
		return ""
	}
	for i, pb := range m.pat {
		if data[i]&m.mask[i] != pb {
			return ""
		}
	}
	return m.ct
}

type htmlSig []byte

func (h htmlSig) match(data []byte, firstNonWS int) string {
	data = data[firstNonWS:]
	if len(data) < len(h)+1 {
		return ""
	}
	for i, b := range h {
		db := data[i]
		if 'A' <= b && b <= 'Z' {
			db &= 0xDF
		}
		if b != db {
			return ""
		}
	}
	// Next byte must be a tag-terminating byte (0xTT).
	if !isTT(data[len(h)]) {
		return ""
	}
	return MIMETypeTextHTML
}

type textSig struct{}

func (textSig) match(data []byte, firstNonWS int) string {
	// c.f. section 5, step 4.
	for _, b := range data[firstNonWS:] {
		switch {
		case b <= 0x08,
			b == 0x0B,
			0x0E <= b && b <= 0x1A,
			0x1C <= b && b <= 0x1F:
			return ""
		}
	}
	return MIMETypeTextPlain
}
