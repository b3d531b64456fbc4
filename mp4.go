package mimesniff

import (
	"bytes"
	"encoding/binary"
)

var (
	mp4ftype = []byte("ftyp")
	mp4      = []byte("mp4")
)

type mp4Sig struct{}

// match implements https://mimesniff.spec.whatwg.org/#signature-for-mp4
func (mp4Sig) match(data []byte, firstNonWS int) string {
	if len(data) < 12 {
		return ""
	}
	boxSize := int(binary.BigEndian.Uint32(data[:4]))
	if len(data) < boxSize || boxSize%4 != 0 {
		return ""
	}
	if !bytes.Equal(data[4:8], mp4ftype) {
		return ""
	}
	for st := 8; st < boxSize; st += 4 {
		if st == 12 {
			// Bytes 12-15 are the major brand's version number.
			continue
		}
		if bytes.Equal(data[st:st+3], mp4) {
			return MIMETypeVideoMP4
		}
	}
	return ""
}
