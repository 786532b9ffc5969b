package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"resihub/src/config"

	"github.com/tidwall/gjson"
)

var geminiBaseURL = config.GEMINI_API_BASE_URL

func NewGeminiBaseURL(u string) {
	geminiBaseURL = u
}

const storyPrompt = `Write a short, engaging story (2-3 paragraphs) about daily life in a student housing in Zurich, Switzerland.
The story should be set at Witellikerstrasse 20 near Balgrist University Hospital.
Include details about:
- Student interactions
- Local surroundings
- A touch of Swiss culture
- A hint of humor
Make it feel personal and authentic.`

// StoryFallback is served when generation fails so the page never goes empty.
const StoryFallback = "We're brewing up today's story. Check back in a moment!"

// GenerateDailyStory asks the generative model for a new residence story and
// returns the fallback text on any failure.
func GenerateDailyStory(ctx context.Context) string {
	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": storyPrompt}}},
		},
	}
	b, _ := json.Marshal(payload)
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", geminiBaseURL, config.GEMINI_MODEL, config.GeminiAPIKey())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		log.Printf("[story] Error building request: %s\n", err.Error())
		return StoryFallback
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("[story] Error generating story: %s\n", err.Error())
		return StoryFallback
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		log.Printf("[story] Generation returned status %d\n", res.StatusCode)
		return StoryFallback
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Printf("[story] Error reading response: %s\n", err.Error())
		return StoryFallback
	}
	text := gjson.GetBytes(body, "candidates.0.content.parts.0.text").String()
	if text == "" {
		return StoryFallback
	}
	return text
}
