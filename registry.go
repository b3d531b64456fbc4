package mimesniff

import "sync"

// Registry is an ordered, immutable list of signatures. Earlier entries take
// priority over later ones.
type Registry struct {
	sigs []Signature
}

// NewRegistry returns a registry evaluating sigs in the given order. The
// slice is copied. The plain-text fallback, if present, must be last.
func NewRegistry(sigs ...Signature) (*Registry, error) {
	for i, sig := range sigs {
		if _, ok := sig.(textSig); ok && i != len(sigs)-1 {
			return nil, ErrFallbackNotLast
		}
	}
	return &Registry{sigs: append([]Signature(nil), sigs...)}, nil
}

// Len returns the number of signatures in the registry.
func (r *Registry) Len() int {
	return len(r.sigs)
}

// Labels returns the distinct content types the registry can produce, in
// the order they are first reachable. The plain-text fallback contributes
// "text/plain; charset=utf-8".
func (r *Registry) Labels() []string {
	seen := make(map[string]bool)
	labels := make([]string, 0, len(r.sigs))
	for _, sig := range r.sigs {
		ct := label(sig)
		if ct == "" || seen[ct] {
			continue
		}
		seen[ct] = true
		labels = append(labels, ct)
	}
	return labels
}

// label returns the content type a signature yields on a match.
func label(sig Signature) string {
	switch s := sig.(type) {
	case *exactSig:
		return s.ct
	case *maskedSig:
		return s.ct
	case htmlSig:
		return MIMETypeTextHTML
	case mp4Sig:
		return MIMETypeVideoMP4
	case textSig:
		return MIMETypeTextPlain
	}
	return ""
}

// Global default registry (lazy initialized)
var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the registry holding the signature table of
// https://mimesniff.spec.whatwg.org/ in its normative order.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = &Registry{sigs: sniffSignatures()}
	})
	return defaultRegistry
}

// sniffSignatures builds the table. Order matters: several prefixes (a
// leading '<' for one) are claimed by more than one rule.
func sniffSignatures() []Signature {
	return []Signature{
		// Data matching the table in section 6.
		HTMLTag([]byte("<!DOCTYPE HTML")),
		HTMLTag([]byte("<HTML")),
		HTMLTag([]byte("<HEAD")),
		HTMLTag([]byte("<SCRIPT")),
		HTMLTag([]byte("<IFRAME")),
		HTMLTag([]byte("<H1")),
		HTMLTag([]byte("<DIV")),
		HTMLTag([]byte("<FONT")),
		HTMLTag([]byte("<TABLE")),
		HTMLTag([]byte("<A")),
		HTMLTag([]byte("<STYLE")),
		HTMLTag([]byte("<TITLE")),
		HTMLTag([]byte("<B")),
		HTMLTag([]byte("<BODY")),
		HTMLTag([]byte("<BR")),
		HTMLTag([]byte("<P")),
		HTMLTag([]byte("<!--")),
		Masked(
			[]byte("\xFF\xFF\xFF\xFF\xFF"),
			[]byte("<?xml"),
			true,
			MIMETypeTextXML,
		),
		Exact([]byte("%PDF-"), MIMETypeApplicationPDF),
		Exact([]byte("%!PS-Adobe-"), MIMETypeApplicationPostScript),

		// UTF BOMs.
		Masked(
			[]byte("\xFF\xFF\x00\x00"),
			[]byte("\xFE\xFF\x00\x00"),
			false,
			MIMETypeTextPlainUTF16BE,
		),
		Masked(
			[]byte("\xFF\xFF\x00\x00"),
			[]byte("\xFF\xFE\x00\x00"),
			false,
			MIMETypeTextPlainUTF16LE,
		),
		Masked(
			[]byte("\xFF\xFF\xFF\x00"),
			[]byte("\xEF\xBB\xBF\x00"),
			false,
			MIMETypeTextPlain,
		),

		// Image types. Icons use "image/x-icon" per section 6.2 of
		// https://mimesniff.spec.whatwg.org/#matching-an-image-type-pattern
		Exact([]byte("\x00\x00\x01\x00"), MIMETypeImageIcon),
		Exact([]byte("\x00\x00\x02\x00"), MIMETypeImageIcon),
		Exact([]byte("BM"), MIMETypeImageBMP),
		Exact([]byte("GIF87a"), MIMETypeImageGIF),
		Exact([]byte("GIF89a"), MIMETypeImageGIF),
		Masked(
			[]byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF\xFF\xFF"),
			[]byte("RIFF\x00\x00\x00\x00WEBPVP"),
			false,
			MIMETypeImageWebP,
		),
		Exact([]byte("\x89PNG\x0D\x0A\x1A\x0A"), MIMETypeImagePNG),
		Exact([]byte("\xFF\xD8\xFF"), MIMETypeImageJPEG),

		// Audio and video types, in the order prescribed by
		// https://mimesniff.spec.whatwg.org/#matching-an-audio-or-video-type-pattern
		Masked(
			[]byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"),
			[]byte("FORM\x00\x00\x00\x00AIFF"),
			false,
			MIMETypeAudioAIFF,
		),
		Masked(
			[]byte("\xFF\xFF\xFF"),
			[]byte("ID3"),
			false,
			MIMETypeAudioMPEG,
		),
		Masked(
			[]byte("\xFF\xFF\xFF\xFF\xFF"),
			[]byte("OggS\x00"),
			false,
			MIMETypeApplicationOgg,
		),
		Masked(
			[]byte("\xFF\xFF\xFF\xFF\xFF\xFF\xFF\xFF"),
			[]byte("MThd\x00\x00\x00\x06"),
			false,
			MIMETypeAudioMIDI,
		),
		Masked(
			[]byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"),
			[]byte("RIFF\x00\x00\x00\x00AVI "),
			false,
			MIMETypeVideoAVI,
		),
		Masked(
			[]byte("\xFF\xFF\xFF\xFF\x00\x00\x00\x00\xFF\xFF\xFF\xFF"),
			[]byte("RIFF\x00\x00\x00\x00WAVE"),
			false,
			MIMETypeAudioWave,
		),
		// 6.2.0.2. video/mp4
		MP4(),
		// 6.2.0.3. video/webm
		Exact([]byte("\x1A\x45\xDF\xA3"), MIMETypeVideoWebM),

		// Font types
		Masked(
			// 34 NULL bytes followed by \xFF\xFF
			[]byte("\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xFF\xFF"),
			// 34 NULL bytes followed by the string "LP"
			[]byte("\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00LP"),
			false,
			MIMETypeFontEOT,
		),
		Exact([]byte("\x00\x01\x00\x00"), MIMETypeFontTTF),
		Exact([]byte("OTTO"), MIMETypeFontOTF),
		Exact([]byte("ttcf"), MIMETypeFontCollection),
		Exact([]byte("wOFF"), MIMETypeFontWOFF),
		Exact([]byte("wOF2"), MIMETypeFontWOFF2),

		// Archive types
		Exact([]byte("\x1F\x8B\x08"), MIMETypeApplicationGzip),
		Exact([]byte("PK\x03\x04"), MIMETypeApplicationZip),
		// RAR signatures are incorrectly defined by the sniffing standard, see
		//    https://github.com/whatwg/mimesniff/issues/63
		// However, RAR Labs correctly defines it at:
		//    https://www.rarlab.com/technote.htm#rarsign
		// so we use the definition from RAR Labs.
		Exact([]byte("Rar!\x1A\x07\x00"), MIMETypeApplicationRAR),
		Exact([]byte("Rar!\x1A\x07\x01\x00"), MIMETypeApplicationRAR),

		Exact([]byte("\x00\x61\x73\x6D"), MIMETypeApplicationWasm),

		PlainText(), // should be last
	}
}
