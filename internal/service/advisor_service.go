package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"student-recommendation-platform/config"
	"student-recommendation-platform/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// promptTemplate embeds the profile fields the advisor reasons over. The response is
// returned to the caller verbatim; nothing downstream parses or ranks it.
const promptTemplate = `Analyze the following student profile and suggest personalized learning paths:

Profile Details:
- Education Level: %s
- Field of Study: %s
- Previous Marks: %.1f%%
- Technical Skills: %s
- Learning Interests: %s

Provide a detailed recommendation for online courses, learning platforms,
and potential career growth paths based on this profile.`

// ProfileAdvisor generates a free-text study recommendation for a profile.
type ProfileAdvisor interface {
	Analyze(ctx context.Context, profile *entity.StudentProfile) (string, error)
}

type geminiAdvisor struct {
	client     *genai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	log        *logrus.Logger
}

// NewGeminiAdvisor creates a ProfileAdvisor backed by the Gemini API.
func NewGeminiAdvisor(cfg config.GeminiConfig, log *logrus.Logger) (ProfileAdvisor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiAdvisor{
		client:     client,
		model:      model,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		log:        log,
	}, nil
}

// Analyze sends the rendered prompt to Gemini and returns the completion text verbatim.
// Each attempt runs under the configured timeout; transient failures are retried with
// exponential backoff up to maxRetries before the error is reported to the caller.
func (a *geminiAdvisor) Analyze(ctx context.Context, profile *entity.StudentProfile) (string, error) {
	prompt := BuildPrompt(profile)

	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(1<<uint(attempt-1)) * time.Second):
			}
			a.log.Warnf("Retrying Gemini request (attempt %d/%d): %v", attempt, a.maxRetries, lastErr)
		}

		text, err := a.generate(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}
		return text, nil
	}

	return "", fmt.Errorf("gemini request failed after %d retries: %w", a.maxRetries, lastErr)
}

func (a *geminiAdvisor) generate(ctx context.Context, prompt string) (string, error) {
	// Apply the configured timeout unless the caller already set a tighter deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", fmt.Errorf("no completion returned")
	}

	return text, nil
}

// BuildPrompt renders the fixed prompt template for a profile. Skill and interest
// sets are comma-joined in submission order.
func BuildPrompt(profile *entity.StudentProfile) string {
	return fmt.Sprintf(promptTemplate,
		profile.EducationLevel,
		profile.FieldOfStudy,
		profile.PreviousMarks,
		strings.Join(profile.TechnicalSkills, ", "),
		strings.Join(profile.LearningInterests, ", "),
	)
}
