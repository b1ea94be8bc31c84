package convert

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/net/proxy"
)

// Completer sends a system and user prompt to a language model and streams
// back its answer.
type Completer interface {
	Stream(ctx context.Context, system, user string) (ChunkStream, error)
}

// ChunkStream yields the answer piece by piece. Recv returns io.EOF once
// the answer is complete.
type ChunkStream interface {
	Recv() (string, error)
	Close() error
}

const (
	DefaultModel     = "gpt-4o-mini-2024-07-18"
	DefaultMaxTokens = 3000
)

var ErrNoAPIKey = errors.New("OpenAI API key not configured")

type OpenAIConfig struct {
	APIKey    string `yaml:"-"`
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	// SocksProxy is the host:port of a SOCKS5 proxy to reach the API
	// through.
	SocksProxy string `yaml:"-"`
}

// OpenAI completes with the chat completion API of OpenAI, or of any
// service compatible with it.
type OpenAI struct {
	Client    *openai.Client
	Model     string
	MaxTokens int
}

var _ Completer = &OpenAI{}

func NewOpenAI(cfg OpenAIConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.SocksProxy != "" {
		dialer, err := proxy.SOCKS5("tcp", cfg.SocksProxy, nil, proxy.Direct)
		if err != nil {
			return nil, errors.Wrapf(err, "could not connect with SOCKS5 to %s", cfg.SocksProxy)
		}
		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, errors.Errorf("SOCKS5 dialer for %s cannot dial with a context", cfg.SocksProxy)
		}
		clientConfig.HTTPClient = &http.Client{
			Transport: &http.Transport{DialContext: contextDialer.DialContext},
		}
	}

	o := &OpenAI{
		Client:    openai.NewClientWithConfig(clientConfig),
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
	}
	if o.Model == "" {
		o.Model = DefaultModel
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	return o, nil
}

func (o *OpenAI) Stream(ctx context.Context, system, user string) (ChunkStream, error) {
	stream, err := o.Client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model: o.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens: o.MaxTokens,
		Stream:    true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create chat completion stream")
	}
	return openAIStream{stream}, nil
}

type openAIStream struct {
	stream *openai.ChatCompletionStream
}

// Recv passes io.EOF through unwrapped.
func (s openAIStream) Recv() (string, error) {
	resp, err := s.stream.Recv()
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Delta.Content, nil
}

func (s openAIStream) Close() error {
	return s.stream.Close()
}
