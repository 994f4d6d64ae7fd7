// Package gemini implements a news provider on top of Gemini with Google
// Search grounding.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/fina"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxArticles is the number of articles asked for.
const maxArticles = 5

// News is a fina.NewsProvider asking Gemini for recent news.
type News struct {
	client *genai.Client
	Model  string // defaults to model
}

var _ fina.NewsProvider = (*News)(nil)

// NewNews creates the Gemini client. An empty apiKey lets genai read
// GEMINI_API_KEY or GOOGLE_API_KEY from the environment.
func NewNews(ctx context.Context, apiKey string) (*News, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini's client: %w", err)
	}
	return &News{client: client}, nil
}

// News asks for the latest articles about symbol.
func (n *News) News(ctx context.Context, symbol string) ([]fina.NewsArticle, error) {
	name := n.Model
	if name == "" {
		name = model
	}
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial news desk. You leverage Google Search to find the latest
			news about listed companies, you never invent an article.
			Answer with a JSON array only, no prose.
		`}}},
	}

	result, err := n.client.Models.GenerateContent(ctx, name, genai.Text(prompt(symbol)), config)
	if err != nil {
		return nil, fmt.Errorf("gemini generation failed: %w", err)
	}
	return parseArticles(result.Text())
}

func prompt(symbol string) string {
	return fmt.Sprintf(`List the %d most recent news articles about the company with ticker %s.
Each element has the fields:
  "headline", "source", "url", "summary" (one sentence),
  "sentiment" (one of "Positive", "Neutral", "Negative"),
  "publishedDate" (YYYY-MM-DD).`, maxArticles, symbol)
}

// parseArticles decodes the model's JSON answer, tolerating a markdown code fence.
func parseArticles(text string) ([]fina.NewsArticle, error) {
	text = strings.TrimSpace(text)
	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start >= 0 && end > start {
		text = text[start : end+1]
	}

	type jarticle struct {
		Headline      string `json:"headline"`
		Source        string `json:"source"`
		URL           string `json:"url"`
		Summary       string `json:"summary"`
		Sentiment     string `json:"sentiment"`
		PublishedDate string `json:"publishedDate"`
	}
	var content []jarticle
	if err := json.Unmarshal([]byte(text), &content); err != nil {
		return nil, fmt.Errorf("invalid news answer: %w", err)
	}

	res := make([]fina.NewsArticle, 0, len(content))
	for _, a := range content {
		if strings.TrimSpace(a.Headline) == "" {
			continue
		}
		published, err := parsePublished(a.PublishedDate)
		if err != nil {
			published = time.Time{}
		}
		res = append(res, fina.NewsArticle{
			ID:            uuid.New(),
			Headline:      a.Headline,
			Source:        a.Source,
			URL:           a.URL,
			Summary:       a.Summary,
			Sentiment:     a.Sentiment,
			PublishedDate: published,
		})
	}
	return res, nil
}

func parsePublished(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
