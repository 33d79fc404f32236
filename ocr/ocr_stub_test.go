//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when OCR is disabled")
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestStubMethods(t *testing.T) {
	var client Client
	if _, err := client.Recognize(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Recognize: %v", err)
	}
	if err := client.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage: %v", err)
	}
	if err := client.SetPageSegMode(PSMAuto); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetPageSegMode: %v", err)
	}
}

func TestStubClientAsEngine(t *testing.T) {
	var client Client
	lib := Library(&client)

	_, err := lib.ExtractBytes(createTestPNG(10, 10), "", false)
	if err == nil || !contains(err.Error(), ErrOCRNotEnabled.Error()) {
		t.Errorf("expected the stub error through the boundary, got %v", err)
	}
}
