package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xilidan/notes/pkg/logger"
)

type fakeAPI struct {
	chatStatus    int
	chatBody      string
	lastChat      map[string]any
	audioStatus   int
	audioBody     string
	lastAudioFile string
	lastAudioData string
	lastModel     string
}

func (f *fakeAPI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&f.lastChat); err != nil {
			t.Errorf("decode chat request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.chatStatus)
		io.WriteString(w, f.chatBody)
	})
	mux.HandleFunc("POST /v1/audio/transcriptions", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		f.lastModel = r.FormValue("model")
		if file, header, err := r.FormFile("file"); err == nil {
			data, _ := io.ReadAll(file)
			file.Close()
			f.lastAudioFile = header.Filename
			f.lastAudioData = string(data)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.audioStatus)
		io.WriteString(w, f.audioBody)
	})
	return mux
}

func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)

	return New(Config{
		APIKey:  "sk-test",
		BaseURL: srv.URL + "/v1",
	}, logger.Discard())
}

func TestComplete(t *testing.T) {
	api := &fakeAPI{
		chatStatus: http.StatusOK,
		chatBody:   `{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"## Summary\nok"},"finish_reason":"stop"}]}`,
	}
	client := newTestClient(t, api)

	got, err := client.Complete(context.Background(), "Convert this")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "## Summary\nok" {
		t.Errorf("Complete() = %q", got)
	}

	if api.lastChat["model"] != "gpt-4o-mini" {
		t.Errorf("model = %v, want gpt-4o-mini", api.lastChat["model"])
	}
	msgs, _ := api.lastChat["messages"].([]any)
	if len(msgs) != 1 {
		t.Fatalf("messages = %v, want exactly one", api.lastChat["messages"])
	}
	msg, _ := msgs[0].(map[string]any)
	if msg["role"] != "user" || msg["content"] != "Convert this" {
		t.Errorf("message = %v", msg)
	}
}

func TestCompleteNoChoices(t *testing.T) {
	client := newTestClient(t, &fakeAPI{
		chatStatus: http.StatusOK,
		chatBody:   `{"id":"c1","object":"chat.completion","choices":[]}`,
	})

	if _, err := client.Complete(context.Background(), "x"); err == nil {
		t.Fatal("Complete() error = nil, want error for empty choices")
	}
}

func TestCompleteAPIError(t *testing.T) {
	client := newTestClient(t, &fakeAPI{
		chatStatus: http.StatusTooManyRequests,
		chatBody:   `{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`,
	})

	_, err := client.Complete(context.Background(), "x")
	if err == nil {
		t.Fatal("Complete() error = nil, want API error")
	}
	if !strings.Contains(err.Error(), "Rate limit reached") {
		t.Errorf("error = %q, want upstream message", err)
	}
}

func TestTranscribe(t *testing.T) {
	api := &fakeAPI{
		audioStatus: http.StatusOK,
		audioBody:   `{"text":"hello from the meeting"}`,
	}
	client := newTestClient(t, api)

	path := filepath.Join(t.TempDir(), "clip.mp3")
	if err := os.WriteFile(path, []byte("ID3-fake-audio"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := client.Transcribe(context.Background(), path)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if got != "hello from the meeting" {
		t.Errorf("Transcribe() = %q", got)
	}
	if api.lastModel != "whisper-1" {
		t.Errorf("model = %q, want whisper-1", api.lastModel)
	}
	if api.lastAudioFile != "clip.mp3" {
		t.Errorf("uploaded filename = %q", api.lastAudioFile)
	}
	if api.lastAudioData != "ID3-fake-audio" {
		t.Errorf("uploaded data = %q", api.lastAudioData)
	}
}

func TestTranscribeAPIError(t *testing.T) {
	client := newTestClient(t, &fakeAPI{
		audioStatus: http.StatusBadRequest,
		audioBody:   `{"error":{"message":"Invalid file format.","type":"invalid_request_error"}}`,
	})

	path := filepath.Join(t.TempDir(), "clip.txt")
	if err := os.WriteFile(path, []byte("not audio"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := client.Transcribe(context.Background(), path)
	if err == nil {
		t.Fatal("Transcribe() error = nil, want API error")
	}
	if !strings.Contains(err.Error(), "Invalid file format.") {
		t.Errorf("error = %q, want upstream message", err)
	}
	if strings.HasPrefix(err.Error(), "createTranscription") {
		t.Errorf("error = %q, want upstream error unwrapped", err)
	}
}

func TestTranscribeMissingFile(t *testing.T) {
	client := newTestClient(t, &fakeAPI{audioStatus: http.StatusOK, audioBody: `{"text":"x"}`})

	if _, err := client.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Fatal("Transcribe() error = nil, want error for missing file")
	}
}
