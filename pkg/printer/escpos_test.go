package printer

import (
	"bytes"
	"testing"
)

func TestKeyValueAlignsToWidth(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("Total:", "250.00")

	out := doc.Bytes()
	line := "Total:" + "                    " + "250.00"
	if len(line) != 32 {
		t.Fatalf("test fixture is wrong, line is %d chars", len(line))
	}
	if !bytes.Contains(out, []byte(line)) {
		t.Fatalf("key/value line not aligned: %q", out)
	}
}

func TestItemLineTruncatesLongNames(t *testing.T) {
	doc := NewDocument(32)
	doc.ItemLine("A very long drink name that overflows", 2, "240.00")

	out := doc.Bytes()
	var line []byte
	for _, b := range bytes.Split(out, []byte{lf}) {
		if bytes.Contains(b, []byte("240.00")) {
			line = b
		}
	}
	if line == nil {
		t.Fatalf("item line missing from output: %q", out)
	}
	if got := len(line); got != 32 {
		t.Fatalf("item line must fill the width exactly, got %d chars: %q", got, line)
	}
}

func TestDocumentStartsWithInit(t *testing.T) {
	doc := NewDocument(32)
	out := doc.Bytes()
	if len(out) < 2 || out[0] != esc || out[1] != '@' {
		t.Fatalf("document must start with the init sequence, got % x", out[:2])
	}
}

func TestNewFactoryValidatesConfig(t *testing.T) {
	if _, err := New("usb", "", ""); err == nil {
		t.Fatalf("usb without a device path must fail")
	}
	if _, err := New("network", "", ""); err == nil {
		t.Fatalf("network without an address must fail")
	}
	if _, err := New("teleport", "", ""); err == nil {
		t.Fatalf("unknown printer type must fail")
	}
	p, err := New("none", "", "")
	if err != nil {
		t.Fatalf("null printer must always build: %v", err)
	}
	if err := p.Print([]byte("x")); err != nil {
		t.Fatalf("null printer must swallow prints: %v", err)
	}
}
