// Package translate implements machine translation of catalog metadata
// pairs through an OpenAI-compatible chat-completions endpoint.
//
// One call translates one name/description pair into one target language.
// There are no retries: callers decide what a failed translation means
// (the batch runner degrades to the source text).
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/catalog-tools/metaloc/config"
	"github.com/catalog-tools/metaloc/langdetect"
	"github.com/catalog-tools/metaloc/langmeta"
	"github.com/catalog-tools/metaloc/metafile"
)

// SystemPrompt directs the backend to act as a structure-preserving
// translation engine.
const SystemPrompt = `You are a professional translation engine for software catalog metadata. You receive a JSON object with a "title" and a "description" and translate it.

TECHNICAL REQUIREMENTS:
- Return ONLY a JSON object with exactly the same keys as the input ("title" and "description").
- Translate ONLY the values, never the keys.
- Keep brand names and proper nouns unchanged.
- Preserve punctuation patterns and the level of technical detail of the original.
- Return ONLY the JSON object, no explanations or markdown code blocks.`

// ---------------------------------------------------------------------------
// Error types
// ---------------------------------------------------------------------------

// ConfigError reports a client-side configuration problem: a missing
// credential or an unregistered target language.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "translation not configured: " + e.Reason
}

// UpstreamError reports a non-success response from the backend, carrying
// the status code and the raw response body.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.Status, truncate(e.Body, 500))
}

// ---------------------------------------------------------------------------
// Client
// ---------------------------------------------------------------------------

// Client talks to one OpenAI-compatible endpoint.
type Client struct {
	cfg  config.Config
	http *http.Client
}

// New creates a client for the given configuration. A missing API key is
// not an error here; Translate reports it on first use.
func New(cfg config.Config) *Client {
	return &Client{
		cfg:  cfg,
		http: makeHTTPClient(cfg.Timeout),
	}
}

func makeHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyFromEnvironment
	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// Translate sends one pair to the backend and returns the translated pair.
// Failure modes: *ConfigError (no key, unregistered target), *UpstreamError
// (non-2xx), or a wrapped transport/parse error.
func (c *Client) Translate(ctx context.Context, pair metafile.Pair, target langdetect.Lang) (metafile.Pair, error) {
	if c.cfg.APIKey == "" {
		return metafile.Pair{}, &ConfigError{Reason: "no API key set (METALOC_API_KEY)"}
	}
	meta, ok := langmeta.Resolve(target)
	if !ok {
		return metafile.Pair{}, &ConfigError{Reason: fmt.Sprintf("no display name registered for language %q", target)}
	}

	payload, err := json.Marshal(struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}{Title: pair.Name, Description: pair.Description})
	if err != nil {
		return metafile.Pair{}, fmt.Errorf("marshaling payload: %w", err)
	}
	userPrompt := fmt.Sprintf("Translate the following JSON object into %s:\n\n%s", meta.Name, payload)

	body, err := buildChatRequest(c.cfg.Model, SystemPrompt, userPrompt, 0.3)
	if err != nil {
		return metafile.Pair{}, fmt.Errorf("building request: %w", err)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return metafile.Pair{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return metafile.Pair{}, fmt.Errorf("API request failed: %w", err)
	}
	respBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return metafile.Pair{}, &UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return parseReply(respBody)
}

// buildChatRequest constructs an OpenAI chat-completions request body.
func buildChatRequest(model, systemPrompt, userPrompt string, temperature float64) ([]byte, error) {
	type msg struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	req := struct {
		Model       string  `json:"model"`
		Messages    []msg   `json:"messages"`
		Temperature float64 `json:"temperature"`
		Stream      bool    `json:"stream"`
	}{
		Model: model,
		Messages: []msg{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
		Stream:      false,
	}
	return json.Marshal(req)
}

// ---------------------------------------------------------------------------
// Response parsing
// ---------------------------------------------------------------------------

var markdownCodeBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// parseReply extracts the first completion's message content and parses it
// as the translated {title, description} object. Both keys must be
// present; empty values are fine.
func parseReply(body []byte) (metafile.Pair, error) {
	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() {
		return metafile.Pair{}, fmt.Errorf("could not extract message content from response: %s", truncate(string(body), 500))
	}

	text := strings.TrimSpace(content.String())
	// Models sometimes wrap the object in a markdown fence despite the
	// prompt. Strip it before parsing.
	if m := markdownCodeBlock.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	if !gjson.Valid(text) {
		return metafile.Pair{}, fmt.Errorf("reply is not valid JSON: %s", truncate(text, 500))
	}
	parsed := gjson.Parse(text)
	title := parsed.Get("title")
	desc := parsed.Get("description")
	if !title.Exists() || !desc.Exists() {
		return metafile.Pair{}, fmt.Errorf("reply is missing title or description: %s", truncate(text, 500))
	}

	return metafile.Pair{Name: title.String(), Description: desc.String()}, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
