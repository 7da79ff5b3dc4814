// Command chatbot-client exercises a running chatbot server's chat and
// transcribe endpoints.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

type chatRequest struct {
	UserInput string `json:"user_input"`
}

func main() {
	server := flag.String("server", "http://localhost:5001", "chatbot server base URL")
	message := flag.String("message", "What should I know about managing blood pressure?", "text sent to /chatbot/chat")
	audioPath := flag.String("audio", "", "recording uploaded to /chatbot/transcribe (skipped when empty)")
	timeout := flag.Duration("timeout", 2*time.Minute, "per-request timeout")
	flag.Parse()

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := &http.Client{Timeout: *timeout}
	base := strings.TrimRight(*server, "/") + "/chatbot"

	failed := false

	if *message != "" {
		status, body, err := postChat(client, base+"/chat", *message)
		if err != nil {
			logger.Error("Chat request failed", zap.Error(err))
			failed = true
		} else {
			logger.Info("Chat response", zap.Int("status", status), zap.String("body", body))
			failed = failed || status != http.StatusOK
		}
	}

	if *audioPath != "" {
		status, body, err := postAudio(client, base+"/transcribe", *audioPath)
		if err != nil {
			logger.Error("Transcribe request failed", zap.Error(err))
			failed = true
		} else {
			logger.Info("Transcribe response", zap.Int("status", status), zap.String("body", body))
			failed = failed || status != http.StatusOK
		}
	}

	if failed {
		os.Exit(1)
	}
}

func postChat(client *http.Client, url, message string) (int, string, error) {
	payload, err := json.Marshal(chatRequest{UserInput: message})
	if err != nil {
		return 0, "", err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), err
}

func postAudio(client *http.Client, url, path string) (int, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("audio", filepath.Base(path))
	if err != nil {
		return 0, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return 0, "", fmt.Errorf("read %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return 0, "", err
	}

	resp, err := client.Post(url, writer.FormDataContentType(), &buf)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), err
}
