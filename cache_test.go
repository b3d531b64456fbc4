package mimesniff

import (
	"bytes"
	"fmt"
	"sync"
	"testing"
)

func TestCachedDetector(t *testing.T) {
	c := NewCachedDetector(nil, 16)

	inputs := [][]byte{
		[]byte("GIF89a"),
		[]byte("\x89PNG\x0D\x0A\x1A\x0A"),
		[]byte("   <HTML>"),
		{},
		{0x01},
	}

	for _, data := range inputs {
		want := DetectContentType(data)
		if got := c.Detect(data); got != want {
			t.Errorf("first Detect(%q) = %s, want %s", data, got, want)
		}
		if got := c.Detect(data); got != want {
			t.Errorf("cached Detect(%q) = %s, want %s", data, got, want)
		}
	}

	stats := c.Stats()
	if stats.Hits != int64(len(inputs)) {
		t.Errorf("Hits = %d, want %d", stats.Hits, len(inputs))
	}
	if stats.Misses != int64(len(inputs)) {
		t.Errorf("Misses = %d, want %d", stats.Misses, len(inputs))
	}
	if stats.Size != int64(len(inputs)) {
		t.Errorf("Size = %d, want %d", stats.Size, len(inputs))
	}
	if stats.HitRate != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", stats.HitRate)
	}
}

func TestCachedDetector_KeysOnWindow(t *testing.T) {
	c := NewCachedDetector(nil, 16)

	base := bytes.Repeat([]byte("a"), sniffLen)
	c.Detect(append(append([]byte(nil), base...), 0x00))
	got := c.Detect(append(append([]byte(nil), base...), "different tail"...))

	if got != MIMETypeTextPlain {
		t.Errorf("Detect() = %s, want %s", got, MIMETypeTextPlain)
	}
	if stats := c.Stats(); stats.Hits != 1 || stats.Size != 1 {
		t.Errorf("Stats() = %+v, want 1 hit and 1 entry", stats)
	}
}

func TestCachedDetector_Eviction(t *testing.T) {
	c := NewCachedDetector(nil, 2)

	for i := 0; i < 5; i++ {
		c.Detect([]byte(fmt.Sprintf("text %d", i)))
	}

	stats := c.Stats()
	if stats.Size != 2 {
		t.Errorf("Size = %d, want 2", stats.Size)
	}
	if stats.Evictions != 3 {
		t.Errorf("Evictions = %d, want 3", stats.Evictions)
	}
}

func TestCachedDetector_Disabled(t *testing.T) {
	c := NewCachedDetector(nil, 0)

	if got := c.Detect([]byte("GIF87a")); got != MIMETypeImageGIF {
		t.Errorf("Detect() = %s, want %s", got, MIMETypeImageGIF)
	}
	if stats := c.Stats(); stats.Size != 0 || stats.Misses != 0 {
		t.Errorf("Stats() = %+v, want empty stats when disabled", stats)
	}
}

func TestCachedDetector_CustomRegistry(t *testing.T) {
	reg, _ := NewRegistry(Exact([]byte("X"), "x/x"))
	c := NewCachedDetector(reg, 4)

	if got := c.Detect([]byte("GIF89a")); got != DefaultContentType {
		t.Errorf("Detect() = %s, want %s", got, DefaultContentType)
	}
	if got := c.Detect([]byte("Xyz")); got != "x/x" {
		t.Errorf("Detect() = %s, want x/x", got)
	}
}

func TestCachedDetector_Clear(t *testing.T) {
	c := NewCachedDetector(nil, 4)
	c.Detect([]byte("GIF89a"))
	c.Clear()

	if stats := c.Stats(); stats.Size != 0 || stats.Misses != 1 {
		t.Errorf("Stats() after Clear = %+v, want size 0 and misses kept", stats)
	}
}

func TestCachedDetector_Concurrent(t *testing.T) {
	c := NewCachedDetector(nil, 8)
	inputs := [][]byte{
		[]byte("GIF89a"),
		[]byte("%PDF-1.4"),
		[]byte("<html>"),
		[]byte("PK\x03\x04"),
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				data := inputs[i%len(inputs)]
				if got, want := c.Detect(data), DetectContentType(data); got != want {
					t.Errorf("Detect(%q) = %s, want %s", data, got, want)
					return
				}
			}
		}()
	}
	wg.Wait()

	if stats := c.Stats(); stats.Hits+stats.Misses != 8*200 {
		t.Errorf("Hits+Misses = %d, want %d", stats.Hits+stats.Misses, 8*200)
	}
}
