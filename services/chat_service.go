package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/chat"
)

// TextGenerator produces a reply to message under the given system instruction.
type TextGenerator interface {
	Generate(ctx context.Context, systemInstruction, message string) (string, error)
}

const systemInstruction = `You are a Vedic philosophical coach specializing in Hindu scriptures and wisdom.
When responding to questions, ALWAYS include a relevant Sanskrit shloka with:
1. The Sanskrit text (in Devanagari script)
2. The English translation/meaning
3. The specific reference (e.g., "Bhagavad Gita, Chapter 2, Verse 47")

Format your response as JSON with this structure:
{
  "content": "Your philosophical guidance here",
  "shloka": {
    "sanskrit": "Sanskrit text here",
    "meaning": "English translation here",
    "reference": "Source reference here"
  }
}`

var errGeneratorDisabled = errors.New("text generation is not configured")

type ChatService struct {
	generator TextGenerator
	timeout   time.Duration
	logger    *zap.Logger
}

// NewChatService builds the gateway. A nil generator makes every answer the fallback.
func NewChatService(generator TextGenerator, timeout time.Duration, logger *zap.Logger) *ChatService {
	return &ChatService{generator: generator, timeout: timeout, logger: logger}
}

// Ask returns the model's answer. On any generator or parse failure it returns
// chat.Fallback together with an apperr.ErrExternalService error, so callers
// always have a well-formed answer to show. Only a blank message yields an
// empty answer (with apperr.ErrValidation).
func (s *ChatService) Ask(ctx context.Context, req *chat.AskRequest) (chat.Answer, error) {
	trim(&req.Message)
	if err := validateRequest(req); err != nil {
		return chat.Answer{}, err
	}

	answer, err := s.generate(ctx, req.Message)
	if err != nil {
		chatResponses.WithLabelValues("fallback").Inc()
		s.logger.Error("Chat generation failed, serving fallback", zap.Error(err))
		return chat.Fallback, err
	}

	chatResponses.WithLabelValues("model").Inc()
	return answer, nil
}

func (s *ChatService) generate(ctx context.Context, message string) (chat.Answer, error) {
	if s.generator == nil {
		return chat.Answer{}, apperr.External("generate", errGeneratorDisabled)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.generator.Generate(ctx, systemInstruction, message)
	if err != nil {
		return chat.Answer{}, apperr.External("generate", err)
	}

	answer, err := parseAnswer(text)
	if err != nil {
		return chat.Answer{}, apperr.External("parse reply", err)
	}
	return answer, nil
}

// parseAnswer decodes the model's JSON reply, tolerating a Markdown code fence around it.
func parseAnswer(text string) (chat.Answer, error) {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return chat.Answer{}, errors.New("empty response from model")
	}

	var answer chat.Answer
	if err := json.Unmarshal([]byte(text), &answer); err != nil {
		return chat.Answer{}, fmt.Errorf("decode reply: %w", err)
	}
	if !answer.Complete() {
		return chat.Answer{}, errors.New("reply is missing content or shloka fields")
	}
	return answer, nil
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	// Drop the opening fence line (which may carry a language tag)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSpace(text)
	return strings.TrimSpace(strings.TrimSuffix(text, "```"))
}
