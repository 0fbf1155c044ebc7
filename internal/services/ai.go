package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/employee-management-api/internal/constants"
	"github.com/yukikurage/employee-management-api/internal/derive"
	"github.com/yukikurage/employee-management-api/internal/models"
)

// ErrAIUnavailable is returned when no OpenAI key is configured.
var ErrAIUnavailable = errors.New("task suggestions are not configured")

// ChatCompleter is the part of the OpenAI client the AI service uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type AIService struct {
	clocked
	client ChatCompleter
}

// GeneratedTask is a suggested task. It is never stored by the service.
type GeneratedTask struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
}

// NewAIService returns a service backed by OpenAI, or one that reports
// ErrAIUnavailable when apiKey is empty.
func NewAIService(apiKey string) *AIService {
	if apiKey == "" {
		return &AIService{}
	}
	return &AIService{client: openai.NewClient(apiKey)}
}

// NewAIServiceWithClient uses an explicit chat client.
func NewAIServiceWithClient(client ChatCompleter) *AIService {
	return &AIService{client: client}
}

// Enabled reports whether suggestions can be generated.
func (s *AIService) Enabled() bool {
	return s.client != nil
}

// GenerateTasksFromText analyzes text and extracts tasks using OpenAI GPT
func (s *AIService) GenerateTasksFromText(ctx context.Context, text string) ([]GeneratedTask, error) {
	if s.client == nil {
		return nil, ErrAIUnavailable
	}

	today := s.Today()
	prompt := fmt.Sprintf(`You extract actionable tasks for a small business owner from free text.

Today is %s.

Text:
%s

Return a JSON array of tasks in this shape:
[
  {
    "title": "short task title",
    "description": "details of the task",
    "priority": "one of urgent, high, medium, low",
    "due_date": "YYYY-MM-DD, or null when no deadline is stated"
  }
]

Rules:
- Return [] when the text contains no tasks
- Convert relative deadlines such as "tomorrow" or "next week" into dates
- Return only JSON, without commentary`, derive.FormatDate(&today), text)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := stripCodeFence(resp.Choices[0].Message.Content)

	var tasks []GeneratedTask
	if err := json.Unmarshal([]byte(content), &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	return normalizeGenerated(tasks), nil
}

// normalizeGenerated drops untitled suggestions, coerces unknown priorities
// to medium, and discards unparseable due dates.
func normalizeGenerated(tasks []GeneratedTask) []GeneratedTask {
	out := make([]GeneratedTask, 0, len(tasks))
	for _, t := range tasks {
		t.Title = strings.TrimSpace(t.Title)
		if t.Title == "" {
			continue
		}
		if p := models.TaskPriority(t.Priority); !validPriority(p) || p == models.TaskPriorityNone {
			t.Priority = string(models.TaskPriorityMedium)
		}
		if t.DueDate != nil {
			if d, err := derive.ParseDate(strings.TrimSpace(*t.DueDate)); err == nil {
				formatted := derive.FormatDate(&d)
				t.DueDate = &formatted
			} else {
				t.DueDate = nil
			}
		}
		out = append(out, t)
		if len(out) == constants.MaxAIGeneratedTasks {
			break
		}
	}
	return out
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
