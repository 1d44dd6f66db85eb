package bill

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"Gastos-API/domain"
	"Gastos-API/internal/utils"
)

const textPrompt = `Extrae la siguiente información de este gasto escrito en lenguaje natural:

- total (como número)
- moneda (solo CRC o USD)
- proveedor o persona (si aplica)
- descripción corta
- tipo de gasto: 'simple' si es una frase como "5000 colones a la pulpería", o 'invoice' si parece una factura con múltiples productos.
- categoría: una sola palabra en mayúsculas. Escoge de estas opciones: FOOD, TRANSPORT, MEDICAL, SERVICES, SUBSCRIPTIONS, INSTALLMENTS, ENTERTAINMENT, HOUSEHOLD, EDUCATION, OTHER
- si aparece una fecha en el texto, devuelve "fecha": "2025-06-21T00:00:00Z" en formato ISO. Si no aparece, devuelve "fecha": null.

Devuelve SOLO este objeto JSON con esta estructura en base al texto proporcionado, sin explicaciones ni formato markdown:

{
  "total": 18900,
  "moneda": "CRC",
  "proveedor": "Supermercado XYZ",
  "descripcion": "Compra de víveres",
  "tipo": "invoice",
  "categoria": "FOOD",
  "fecha": "2025-06-21T00:00:00Z",
  "detalles": [
    { "product": "Leche", "quantity": 2, "unitPrice": 900 },
    { "product": "Pan", "quantity": 1, "unitPrice": 1200 }
  ]
}

Texto: `

const imagePrompt = `Extrae la siguiente información de esta imagen de factura:

- total (número)
- moneda (solo CRC o USD)
- proveedor o comercio (si aparece)
- descripción corta del gasto
- tipo: 'invoice' si hay varios productos, 'simple' si es solo un total
- categoría: una sola palabra en mayúsculas entre FOOD, TRANSPORT, MEDICAL, SERVICES, SUBSCRIPTIONS, INSTALLMENTS, ENTERTAINMENT, HOUSEHOLD, EDUCATION, OTHER
- y si aplica, una lista de productos (nombre, cantidad, precio unitario)

Devuelve SOLO un JSON con esta estructura basado en la información extraída de la imagen, sin explicaciones ni formato markdown:

{
  "total": 18900,
  "moneda": "CRC",
  "proveedor": "Supermercado XYZ",
  "descripcion": "Compra en supermercado",
  "tipo": "invoice",
  "categoria": "FOOD",
  "detalles": [
    { "product": "Leche", "quantity": 2, "unitPrice": 900 },
    { "product": "Pan", "quantity": 1, "unitPrice": 1200 }
  ]
}`

type (
	// Extractor turns free-form input into the structured expense shape by
	// prompting the generative model. It performs no retries and persists
	// nothing; transport and parse failures surface immediately.
	Extractor interface {
		ExtractFromText(ctx context.Context, message string) (domain.ExtractionResult, error)
		ExtractFromImage(ctx context.Context, imageData []byte, mimeType string) (domain.ExtractionResult, error)
	}

	geminiExtractor struct {
		httpClient *http.Client
	}
)

func NewGeminiExtractor() Extractor {
	return &geminiExtractor{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (e *geminiExtractor) ExtractFromText(ctx context.Context, message string) (domain.ExtractionResult, error) {
	parts := []map[string]interface{}{
		{"text": textPrompt + message},
	}
	return e.generate(ctx, parts)
}

func (e *geminiExtractor) ExtractFromImage(ctx context.Context, imageData []byte, mimeType string) (domain.ExtractionResult, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	parts := []map[string]interface{}{
		{"text": imagePrompt},
		{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(imageData),
			},
		},
	}
	return e.generate(ctx, parts)
}

func (e *geminiExtractor) generate(ctx context.Context, parts []map[string]interface{}) (domain.ExtractionResult, error) {
	apiKey := utils.GetConfig("GEMINI_API_KEY")
	if apiKey == "" {
		return domain.ExtractionResult{}, fmt.Errorf("GEMINI_API_KEY not configured: %w", domain.ErrModelUnavailable)
	}

	model := utils.GetConfig("GEMINI_MODEL")
	if model == "" {
		return domain.ExtractionResult{}, fmt.Errorf("GEMINI_MODEL not configured: %w", domain.ErrModelUnavailable)
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", model, apiKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.0,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.ExtractionResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.ExtractionResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return domain.ExtractionResult{}, fmt.Errorf("%w: %s - %s", domain.ErrModelUnavailable, resp.Status, string(bodyBytes))
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
		return domain.ExtractionResult{}, fmt.Errorf("%w: %v", domain.ErrModelUnavailable, err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return domain.ExtractionResult{}, domain.ErrEmptyModelAnswer
	}

	return parseExtraction(geminiResp.Candidates[0].Content.Parts[0].Text)
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// parseExtraction strips markdown fencing from the raw completion and decodes
// the outermost JSON object. A decode failure is ErrExtractionUnparsable,
// which is distinct from a schema failure downstream.
func parseExtraction(raw string) (domain.ExtractionResult, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	text = strings.TrimSpace(text)

	if match := jsonObjectPattern.FindString(text); match != "" {
		text = match
	}

	var result domain.ExtractionResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return domain.ExtractionResult{}, fmt.Errorf("%w: %v", domain.ErrExtractionUnparsable, err)
	}

	return result, nil
}
