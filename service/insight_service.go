package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"loan-strategy/domain"
	"loan-strategy/money"
)

const (
	defaultInsightURL   = "https://api.openai.com/v1/chat/completions"
	defaultInsightModel = "gpt-4o-mini"
)

// InsightService writes the one-sentence key insight shown above a comparison.
// With an API key it asks a chat completion endpoint; otherwise, or on any
// failure, it falls back to a fixed sentence built from the hybrid KPIs.
type InsightService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewInsightService(apiKey, apiURL, model string) *InsightService {
	if apiURL == "" {
		apiURL = defaultInsightURL
	}
	if model == "" {
		model = defaultInsightModel
	}

	return &InsightService{
		apiKey:  apiKey,
		apiURL:  apiURL,
		model:   model,
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateInsight summarises what the hybrid strategy achieves.
func (s *InsightService) GenerateInsight(ctx context.Context, result domain.ComparisonResult) string {
	hybrid, ok := result.Strategy(StrategyHybridFloor)
	if !ok {
		return ""
	}

	if s == nil || !s.enabled {
		return fallbackInsight(hybrid.KPIs)
	}

	prompt := fmt.Sprintf(`Explain in two sentences the effect of an accelerated mortgage repayment plan.

LOAN:
- Principal: %s
- Annual rate: %.2f%%
- Term: %d months
- Standard monthly payment: %s

HYBRID STRATEGY (extra principal each month = max(interest charge, %s)):
- Payoff: %d months (%.1f years)
- Total interest: %s versus %s on the standard plan
- Interest saved: %s
- Years saved: %.1f`,
		money.Format(result.Input.Principal), result.Input.AnnualRate*100, result.Input.TermMonths,
		money.FormatPlaces(result.StandardPayment, 2),
		money.Format(result.Input.HybridFloor),
		hybrid.KPIs.PayoffMonths, hybrid.KPIs.PayoffYears,
		money.Format(hybrid.KPIs.TotalInterest), money.Format(result.Baseline.TotalInterest),
		money.Format(hybrid.KPIs.InterestSaved), hybrid.KPIs.YearsSaved)

	insight, err := s.callLLM(ctx, prompt)
	if err != nil {
		log.Printf("Warning: insight generation failed, using fallback: %v", err)
		return fallbackInsight(hybrid.KPIs)
	}

	return insight
}

func (s *InsightService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are a mortgage adviser. You explain repayment strategies plainly, quote the numbers you are given, and never invent figures.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 200,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from AI")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func fallbackInsight(kpis domain.KPISet) string {
	return fmt.Sprintf("Key Insight: The Hybrid strategy saves %s in total interest and pays off the loan %.1f years earlier.",
		money.Format(kpis.InterestSaved), kpis.YearsSaved)
}
