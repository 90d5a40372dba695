package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Generator is the raw capability boundary to the generative model: one
// logical generate operation, optionally constrained to a JSON schema.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string, schema map[string]any, out any) error
}

// GeminiClient is a minimal Gemini generateContent REST client.
type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	httpDo  *http.Client
}

func NewGeminiClient(apiKey, baseURL, model string) *GeminiClient {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpDo: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType,omitempty"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
	Temperature      float32        `json:"temperature,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string, schema map[string]any, out any) error {
	raw, err := c.generate(ctx, prompt, &generationConfig{
		ResponseMimeType: "application/json",
		ResponseSchema:   schema,
		Temperature:      0.2,
	})
	if err != nil {
		return err
	}
	return DecodeModelJSON(raw, out)
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, cfg *generationConfig) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("gemini api key is empty")
	}
	reqBody := generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: cfg,
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errMap map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&errMap)
		return "", fmt.Errorf("gemini http %d: %v", resp.StatusCode, errMap)
	}
	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no candidates returned by model")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// DecodeModelJSON parses a model reply into out, tolerating fenced code
// blocks and leading prose around the JSON payload.
func DecodeModelJSON(raw string, out any) error {
	raw = strings.TrimSpace(raw)
	if err := json.Unmarshal([]byte(raw), out); err == nil {
		return nil
	}
	start := strings.IndexAny(raw, "{[")
	if start < 0 {
		return fmt.Errorf("no JSON found in model reply")
	}
	var end int
	if raw[start] == '{' {
		end = strings.LastIndex(raw, "}")
	} else {
		end = strings.LastIndex(raw, "]")
	}
	if end <= start {
		return fmt.Errorf("unterminated JSON in model reply")
	}
	return json.Unmarshal([]byte(raw[start:end+1]), out)
}

// Schema helpers in the shape the generateContent API expects.

func schemaString(desc string) map[string]any {
	s := map[string]any{"type": "STRING"}
	if desc != "" {
		s["description"] = desc
	}
	return s
}

func schemaNumber(desc string) map[string]any {
	s := map[string]any{"type": "NUMBER"}
	if desc != "" {
		s["description"] = desc
	}
	return s
}

func schemaBool() map[string]any {
	return map[string]any{"type": "BOOLEAN"}
}

func schemaArray(items map[string]any) map[string]any {
	return map[string]any{"type": "ARRAY", "items": items}
}

func schemaObject(props map[string]any) map[string]any {
	return map[string]any{"type": "OBJECT", "properties": props}
}

func schemaEnum(values ...string) map[string]any {
	return map[string]any{"type": "STRING", "enum": values}
}
