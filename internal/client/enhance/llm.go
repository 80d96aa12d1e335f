package enhance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/dmitrijs2005/jobdesk/internal/client/editor"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// maxInput bounds the text sent to the model.
const maxInput = 8000

const summaryPrompt = `You are an expert resume writer. Rewrite the professional summary below so it is concise, specific and results-oriented.

### RULES:
1. Keep every fact from the original. Do not invent employers, numbers or skills.
2. Write in the first person without pronouns, as is usual for CVs.
3. Return a single paragraph of plain text. No headings, lists, quotes or markdown.
4. Stay under 120 words.

### SUMMARY:
%s
`

// LLM rewrites summaries with a langchaingo model.
type LLM struct {
	model       llms.Model
	temperature float64
	maxTokens   int
}

type LLMOption func(*LLM)

func WithTemperature(t float64) LLMOption { return func(l *LLM) { l.temperature = t } }

func WithMaxTokens(n int) LLMOption { return func(l *LLM) { l.maxTokens = n } }

func NewLLM(model llms.Model, opts ...LLMOption) *LLM {
	l := &LLM{model: model, temperature: 0.4, maxTokens: 512}
	for _, o := range opts {
		o(l)
	}
	return l
}

// NewGemini builds an LLM backed by Google's Gemini API.
func NewGemini(ctx context.Context, apiKey, model string, opts ...LLMOption) (*LLM, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is not set")
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	m, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return NewLLM(m, opts...), nil
}

var _ editor.Enhancer = (*LLM)(nil)

func (l *LLM) Enhance(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	text = truncate(text, maxInput)

	prompt := fmt.Sprintf(summaryPrompt, text)
	resp, err := llms.GenerateFromSinglePrompt(ctx, l.model, prompt,
		llms.WithTemperature(l.temperature),
		llms.WithMaxTokens(l.maxTokens),
	)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return Sanitize(stripFences(resp))
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// stripFences removes a markdown code fence and wrapping quotes that models
// sometimes add despite the prompt.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.Contains(s[:i], " ") {
			s = s[i+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return s
}
