package stt

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestNewWhisperSpeechToText_RequiresAPIKey(t *testing.T) {
	if _, err := NewWhisperSpeechToText(WhisperConfig{}, zaptest.NewLogger(t)); err == nil {
		t.Error("Expected error when API key is not set")
	}
}

func TestWhisperSpeechToText_TranscribeFile(t *testing.T) {
	var gotModel, gotFilename, gotContent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("Expected file part: %v", err)
			http.Error(w, "no file", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, _ := io.ReadAll(file)
		gotContent = string(data)
		gotFilename = header.Filename
		gotModel = r.FormValue("model")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"text": "patient reports mild headache"})
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "clip.webm")
	if err := os.WriteFile(path, []byte("fake-audio"), 0o600); err != nil {
		t.Fatalf("Failed to write audio fixture: %v", err)
	}

	w, err := NewWhisperSpeechToText(WhisperConfig{APIKey: "test-api-key", BaseURL: server.URL + "/v1"}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Failed to create WhisperSpeechToText: %v", err)
	}

	text, err := w.TranscribeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("TranscribeFile returned error: %v", err)
	}

	if text != "patient reports mild headache" {
		t.Errorf("Unexpected transcript %q", text)
	}
	if gotModel != "whisper-1" {
		t.Errorf("Expected model whisper-1, got %q", gotModel)
	}
	if gotFilename != "clip.webm" {
		t.Errorf("Expected filename clip.webm, got %q", gotFilename)
	}
	if gotContent != "fake-audio" {
		t.Errorf("Expected uploaded content to match file, got %q", gotContent)
	}
}
