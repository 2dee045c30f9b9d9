package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MeyerNigrini/SmartPantry-sub000/domain"
	"github.com/MeyerNigrini/SmartPantry-sub000/internal/utils"
)

const maxImageSize = 10 << 20 // 10 MiB inline-data ceiling

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type (
	GeminiClient interface {
		GenerateText(ctx context.Context, prompt string) (string, error)
		ExtractProduct(ctx context.Context, imageData []byte, mimeType string) (domain.ExtractedProduct, error)
	}

	geminiClient struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}
)

func NewGeminiClient() GeminiClient {
	return &geminiClient{
		apiKey:     utils.GetConfig("GEMINI_API_KEY"),
		model:      utils.GetConfig("GEMINI_MODEL"),
		baseURL:    "https://generativelanguage.googleapis.com",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", domain.ErrEmptyPrompt
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	return c.generateContent(ctx, requestBody)
}

func (c *geminiClient) ExtractProduct(ctx context.Context, imageData []byte, mimeType string) (domain.ExtractedProduct, error) {
	if len(imageData) == 0 {
		return domain.ExtractedProduct{}, domain.ErrImageRequired
	}
	if !allowedImageTypes[mimeType] {
		return domain.ExtractedProduct{}, domain.ErrUnsupportedImageType
	}
	if len(imageData) > maxImageSize {
		return domain.ExtractedProduct{}, domain.ErrImageTooLarge
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": "Analyze this food product image and respond ONLY with a valid JSON object containing exactly these fields: " +
							"'productName' (string), 'quantity' (string, e.g. '500 g'), 'brand' (string), 'category' (string), " +
							"and 'expirationDate' (string in YYYY-MM-DD format, or null if not visible). " +
							"Do not include any explanations, markdown formatting, or extra text.",
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64.StdEncoding.EncodeToString(imageData),
						},
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	responseText, err := c.generateContent(ctx, requestBody)
	if err != nil {
		return domain.ExtractedProduct{}, err
	}

	var extracted domain.ExtractedProduct
	if err := json.Unmarshal([]byte(responseText), &extracted); err != nil {
		return domain.ExtractedProduct{}, fmt.Errorf("%w: unparseable extraction response: %v", domain.ErrGeminiAPIFailed, err)
	}

	if extracted.ProductName == "" {
		extracted.ProductName = "Unknown"
	}
	if extracted.Quantity == "" {
		extracted.Quantity = "Unknown"
	}
	if extracted.Brand == "" {
		extracted.Brand = "Unknown"
	}
	if extracted.Category == "" {
		extracted.Category = "Unknown"
	}

	return extracted, nil
}

func (c *geminiClient) generateContent(ctx context.Context, requestBody map[string]interface{}) (string, error) {
	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiAPIFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %s - %s", domain.ErrGeminiAPIFailed, resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiAPIFailed, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrGeminiAPIFailed)
	}

	text := stripCodeFences(geminiResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response text", domain.ErrGeminiAPIFailed)
	}
	return text, nil
}

// stripCodeFences removes surrounding markdown code-fence markers the model
// tends to wrap JSON answers in.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
