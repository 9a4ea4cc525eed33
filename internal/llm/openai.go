package llm

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"git.home.luguber.info/inful/docugen/internal/config"
	derrors "git.home.luguber.info/inful/docugen/internal/errors"
	"git.home.luguber.info/inful/docugen/internal/prompt"
)

// OpenAI implements Capability using the official openai-go SDK (chat
// completions). Provider configuration is injected at construction; nothing
// is read from ambient process state.
type OpenAI struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAI builds the capability from provider config.
func NewOpenAI(cfg config.ProviderConfig) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, derrors.ConfigMissing("provider.api_key")
	}
	if cfg.Model == "" {
		return nil, derrors.ConfigMissing("provider.model")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAI{model: cfg.Model, opts: opts}, nil
}

// Generate performs one full-generation call and decodes the four-section
// payload. Provider failures surface as-is; no hidden backoff.
func (o *OpenAI) Generate(ctx context.Context, req prompt.GenerationRequest) (*SectionPayload, error) {
	content, err := o.complete(ctx, req.System, req.User)
	if err != nil {
		return nil, derrors.GenerationFailed(err)
	}
	return DecodePayload(content)
}

// Regenerate performs one single-section regeneration call.
func (o *OpenAI) Regenerate(ctx context.Context, req prompt.RegenerationRequest) (string, error) {
	content, err := o.complete(ctx, req.System, req.User)
	if err != nil {
		return "", derrors.GenerationFailed(err)
	}
	return DecodeRegenerated(content)
}

func (o *OpenAI) complete(ctx context.Context, system, user string) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("provider returned empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
