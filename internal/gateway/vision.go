package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"fincheck/internal/domain"
)

// OpenAIVisionExtractor implements the VisionExtractor interface against the
// OpenAI chat completions API with image inputs.
type OpenAIVisionExtractor struct {
	client *openai.Client
	model  string
}

// NewOpenAIVisionExtractor creates a vision extractor. An empty model falls
// back to GPT-4o.
func NewOpenAIVisionExtractor(apiKey, model string) *OpenAIVisionExtractor {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIVisionExtractor{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// ExtractPages sends the page images for structured extraction and decodes
// the strict-JSON response into a VisionDocument. A response that is not the
// expected page-collection shape surfaces as ErrMalformedInput.
func (e *OpenAIVisionExtractor) ExtractPages(ctx context.Context, images [][]byte) (*domain.VisionDocument, error) {
	parts := make([]openai.ChatMessagePart, 0, len(images))
	for _, content := range images {
		encoded := base64.StdEncoding.EncodeToString(content)
		parts = append(parts, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeImageURL,
			ImageURL: &openai.ChatMessageImageURL{
				URL: fmt.Sprintf("data:%s;base64,%s", http.DetectContentType(content), encoded),
			},
		})
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: extractionPrompt,
			},
			{
				Role:         openai.ChatMessageRoleUser,
				MultiContent: parts,
			},
		},
		MaxTokens: 16384,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("vision extraction request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("vision extraction returned no choices")
	}

	return DecodeVisionDocument([]byte(resp.Choices[0].Message.Content))
}

// DecodeVisionDocument parses raw vision output into a VisionDocument,
// enforcing the page-collection root shape.
func DecodeVisionDocument(data []byte) (*domain.VisionDocument, error) {
	var doc domain.VisionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedInput, err)
	}
	if doc.Pages == nil {
		return nil, fmt.Errorf("%w: missing pages array", domain.ErrMalformedInput)
	}
	return &doc, nil
}

// extractionPrompt instructs the model to emit one structured record per page
// with "unknown" sentinels for anything it cannot read. Classification and
// business fields appear on the first page only.
const extractionPrompt = `You are a data extraction AI. ` +
	`We have multiple page images of a PDF. Produce a JSON object with a 'pages' array, ` +
	`where each element corresponds to one page. For the FIRST page only, include: ` +
	`"classification" ("bank_statement" or "other"), "business_name", "business_address", ` +
	`and "bank_name" (each a string or "unknown"). ` +
	`On ALL pages include: ` +
	`"page_number" (integer), ` +
	`"opening_balance" (float or "unknown"), ` +
	`"closing_balance" (float or "unknown"), ` +
	`"transaction_count" (int or "unknown"), ` +
	`"transactions" (an array of {"date": "YYYY-MM-DD" or "unknown", "amount": "+300" or "-200" or "unknown"}, or "unknown" if none are found), ` +
	`"page_text" (the entire text you can read or infer from that page), and ` +
	`"Obvious Tampering" (0, 1, or "unknown"). ` +
	`IMPORTANT INSTRUCTIONS: ` +
	`1) Only extract transactions from the main continuous ledger spanning from opening_balance to closing_balance. ` +
	`2) Incorporate heading lines such as "Checks Paid" or "Deposits & Other Credits" only when they clearly belong to the same ledger's date/amount sequence; skip separate summaries and repeated partial lines. ` +
	`3) Do not skip valid rows of the main ledger table: if a row there has a date and an amount, include it unless it is a repeated summary line. ` +
	`4) Never merge partial data from year-to-date summaries or repeated headings. ` +
	`5) If unsure whether a line belongs to the main ledger, set its "amount" to "unknown" rather than omitting it. ` +
	`6) Set "Obvious Tampering" to 1 on clear signs of tampering (overwritten text, placeholders, suspicious overlays, repeated partial disclaimers), 0 when none are visible, "unknown" if uncertain. ` +
	`7) Return strictly valid JSON and nothing else.`
