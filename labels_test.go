package mimesniff

import "testing"

func TestBaseType(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"text/plain; charset=utf-8", "text/plain"},
		{"Text/HTML ;charset=UTF-8", "text/html"},
		{"image/png", "image/png"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := BaseType(tt.input); got != tt.expected {
			t.Errorf("BaseType(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCharset(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{MIMETypeTextPlain, "utf-8"},
		{MIMETypeTextPlainUTF16BE, "utf-16be"},
		{MIMETypeTextPlainUTF16LE, "utf-16le"},
		{"text/html; charset=UTF-8", "utf-8"},
		{MIMETypeImagePNG, ""},
		{"not a media type;;", ""},
	}

	for _, tt := range tests {
		if got := Charset(tt.input); got != tt.expected {
			t.Errorf("Charset(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestIsText(t *testing.T) {
	textTypes := []string{
		MIMETypeTextHTML,
		MIMETypeTextXML,
		MIMETypeTextPlain,
		MIMETypeTextPlainUTF16LE,
		"application/json",
	}
	for _, ct := range textTypes {
		if !IsText(ct) {
			t.Errorf("IsText(%q) = false, want true", ct)
		}
		if IsBinary(ct) {
			t.Errorf("IsBinary(%q) = true, want false", ct)
		}
	}

	binaryTypes := []string{
		MIMETypeImagePNG,
		MIMETypeApplicationPDF,
		MIMETypeVideoMP4,
		DefaultContentType,
	}
	for _, ct := range binaryTypes {
		if IsText(ct) {
			t.Errorf("IsText(%q) = true, want false", ct)
		}
		if !IsBinary(ct) {
			t.Errorf("IsBinary(%q) = false, want true", ct)
		}
	}
}

func TestIsExecutable(t *testing.T) {
	if !IsExecutable(MIMETypeApplicationWasm) {
		t.Error("IsExecutable(wasm) = false, want true")
	}
	if !IsExecutable("application/x-executable") {
		t.Error("IsExecutable(x-executable) = false, want true")
	}
	if IsExecutable(MIMETypeApplicationZip) {
		t.Error("IsExecutable(zip) = true, want false")
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{MIMETypeImageGIF, "image"},
		{MIMETypeImageIcon, "image"},
		{MIMETypeVideoWebM, "video"},
		{MIMETypeVideoAVI, "video"},
		{MIMETypeAudioWave, "audio"},
		{MIMETypeApplicationOgg, "audio"},
		{MIMETypeTextHTML, "text"},
		{MIMETypeFontWOFF2, "font"},
		{MIMETypeFontEOT, "font"},
		{MIMETypeApplicationGzip, "archive"},
		{MIMETypeApplicationZip, "archive"},
		{MIMETypeApplicationRAR, "archive"},
		{MIMETypeApplicationPDF, "document"},
		{MIMETypeApplicationPostScript, "document"},
		{MIMETypeApplicationWasm, "executable"},
		{DefaultContentType, "other"},
	}

	for _, tt := range tests {
		if got := Category(tt.input); got != tt.expected {
			t.Errorf("Category(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{MIMETypeTextHTML, ".html"},
		{MIMETypeTextPlainUTF16BE, ".txt"},
		{MIMETypeImageJPEG, ".jpg"},
		{MIMETypeApplicationGzip, ".gz"},
		{MIMETypeFontCollection, ".ttc"},
		{"application/x-unknown-thing", ".bin"},
	}

	for _, tt := range tests {
		if got := ExtensionFor(tt.input); got != tt.expected {
			t.Errorf("ExtensionFor(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestExtensionFor_EveryLabel(t *testing.T) {
	for _, l := range Default().Labels() {
		if ext := ExtensionFor(l); ext == ".bin" {
			t.Errorf("ExtensionFor(%q) = .bin, want a specific extension", l)
		}
	}
}
