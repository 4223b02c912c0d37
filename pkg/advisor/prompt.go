package advisor

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var recommendationTemplate = template.Must(template.ParseFS(templateFS, "templates/recommendation.tmpl"))

const systemPrompt = "You are a financial advisor. You MUST respond with ONLY a valid JSON object. Do not include any explanatory text, markdown formatting, or commentary before or after the JSON. Start your response directly with { and end with }."

type expense struct {
	Category string
	Amount   decimal.Decimal
}

type promptData struct {
	Income         decimal.Decimal
	Expenses       []expense
	FinancialGoals string
}

// buildPrompt renders the user prompt for a request. Expenses are
// sorted by category so that equal requests result in equal prompts.
func buildPrompt(req Request) (string, error) {
	data := promptData{
		Income:         req.Income,
		FinancialGoals: strings.TrimSpace(req.FinancialGoals),
	}

	for category, amount := range req.Expenses {
		data.Expenses = append(data.Expenses, expense{Category: category, Amount: amount})
	}
	sort.Slice(data.Expenses, func(i, j int) bool {
		return data.Expenses[i].Category < data.Expenses[j].Category
	})

	var buf bytes.Buffer
	if err := recommendationTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}

	return buf.String(), nil
}

// cleanMarkdownWrapper removes markdown code fences some models wrap
// their JSON output in.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
