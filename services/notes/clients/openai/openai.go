package openai

import (
	"context"
	"errors"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

type Config struct {
	APIKey             string
	BaseURL            string
	ChatModel          string
	TranscriptionModel string
}

// Client talks to an OpenAI-compatible API for chat completions and audio
// transcriptions.
type Client struct {
	client             *openai.Client
	chatModel          string
	transcriptionModel string
	log                *slog.Logger
}

func New(cfg Config, log *slog.Logger) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	transcriptionModel := cfg.TranscriptionModel
	if transcriptionModel == "" {
		transcriptionModel = openai.Whisper1
	}

	log.Debug("creating openai client",
		slog.String("base_url", clientCfg.BaseURL),
		slog.String("chat_model", chatModel),
		slog.String("transcription_model", transcriptionModel),
		slog.Bool("api_key_set", cfg.APIKey != ""))

	return &Client{
		client:             openai.NewClientWithConfig(clientCfg),
		chatModel:          chatModel,
		transcriptionModel: transcriptionModel,
		log:                log,
	}
}

// Complete sends prompt as a single user message and returns the first
// choice's content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	c.log.Debug("sending chat completion",
		slog.String("model", c.chatModel),
		slog.Int("prompt_length", len(prompt)))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai returned no choices")
	}

	c.log.Debug("chat completion received",
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens))
	return resp.Choices[0].Message.Content, nil
}

// Transcribe uploads the audio file at path and returns its plain text.
func (c *Client) Transcribe(ctx context.Context, path string) (string, error) {
	c.log.Debug("sending transcription",
		slog.String("model", c.transcriptionModel),
		slog.String("path", path))

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcriptionModel,
		FilePath: path,
	})
	if err != nil {
		return "", err
	}

	c.log.Debug("transcription received", slog.Int("text_length", len(resp.Text)))
	return resp.Text, nil
}
