//go:build ocr

package ocr

import (
	"testing"
)

func TestNew(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if client == nil {
		t.Error("Expected non-nil client")
	}
}

func TestRecognize(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	// The test image is a solid rectangle; only check that recognition runs.
	if _, err := client.Recognize(createTestPNG(100, 50)); err != nil {
		t.Errorf("Recognize failed: %v", err)
	}
}

func TestSetLanguage(t *testing.T) {
	client, err := New()
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if err := client.SetLanguage("eng"); err != nil {
		t.Errorf("SetLanguage failed: %v", err)
	}
	if err := client.SetPageSegMode(PSMSingleBlock); err != nil {
		t.Errorf("SetPageSegMode failed: %v", err)
	}
}
