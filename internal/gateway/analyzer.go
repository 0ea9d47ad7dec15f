package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"medreport-assistant/config"
	"medreport-assistant/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// ErrGatewayFailure wraps every transport and malformed-response condition.
// Callers get one opaque error; retry and backoff policy is theirs.
var ErrGatewayFailure = errors.New("report analysis failed")

const analysisPrompt = `You are a medical assistant helping a patient understand a photo of their medical report.
If the image is not a medical report or lab result, set isMedicalContent to false and leave the other fields empty.
Otherwise extract every measurement row with its value, unit, reference range and a plain-language status,
write a short summary and explanatory sections in simple terms, define the medical jargon that appears,
and recommend which kind of specialist the patient should consult, with reasoning and talking points for the visit.
Do not diagnose; explain what the report says.`

// Analyzer calls a hosted multimodal structured-generation endpoint and
// decodes its JSON answer into an AnalysisResult.
type Analyzer struct {
	cfg    config.AnalyzerConfig
	log    *logrus.Logger
	client *http.Client
}

func NewAnalyzer(cfg config.AnalyzerConfig, log *logrus.Logger) *Analyzer {
	return &Analyzer{
		cfg:    cfg,
		log:    log,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string                 `json:"responseMimeType"`
	ResponseSchema   map[string]interface{} `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze sends one image to the model and returns the structured
// interpretation. Either a whole document comes back or an error does;
// there are no partial results.
func (a *Analyzer) Analyze(ctx context.Context, image []byte, mimeType string) (*entity.AnalysisResult, error) {
	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
				{Text: analysisPrompt},
			},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   analysisSchema(),
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", a.cfg.BaseURL, a.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", a.cfg.APIKey)

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Warnf("Analysis request failed: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		a.log.Warnf("Analysis endpoint returned status %d: %s", resp.StatusCode, body)
		return nil, fmt.Errorf("%w: endpoint returned status %d", ErrGatewayFailure, resp.StatusCode)
	}

	var generated generateResponse
	if err := json.Unmarshal(body, &generated); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	if len(generated.Candidates) == 0 || len(generated.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrGatewayFailure)
	}

	var result entity.AnalysisResult
	if err := json.Unmarshal([]byte(generated.Candidates[0].Content.Parts[0].Text), &result); err != nil {
		a.log.Warnf("Analysis response did not match schema: %+v", err)
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	a.log.Infof("Analysis complete: medical=%t, measurements=%d", result.IsMedicalContent, len(result.Measurements))
	return &result, nil
}

// analysisSchema is the strict output schema sent with every request. It
// covers every AnalysisResult field so the model cannot omit sections.
func analysisSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"isMedicalContent": map[string]interface{}{"type": "BOOLEAN"},
			"summary":          map[string]interface{}{"type": "STRING"},
			"sections": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"title":   map[string]interface{}{"type": "STRING"},
						"content": map[string]interface{}{"type": "STRING"},
					},
					"required": []string{"title", "content"},
				},
			},
			"measurements": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"item":           map[string]interface{}{"type": "STRING"},
						"value":          map[string]interface{}{"type": "STRING"},
						"unit":           map[string]interface{}{"type": "STRING"},
						"referenceRange": map[string]interface{}{"type": "STRING"},
						"status":         map[string]interface{}{"type": "STRING"},
						"notes":          map[string]interface{}{"type": "STRING"},
					},
					"required": []string{"item", "value", "status"},
				},
			},
			"definitions": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"term":    map[string]interface{}{"type": "STRING"},
						"meaning": map[string]interface{}{"type": "STRING"},
					},
					"required": []string{"term", "meaning"},
				},
			},
			"consultation": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"specialistType": map[string]interface{}{"type": "STRING"},
					"reasoning":      map[string]interface{}{"type": "STRING"},
					"talkingPoints": map[string]interface{}{
						"type":  "ARRAY",
						"items": map[string]interface{}{"type": "STRING"},
					},
				},
				"required": []string{"specialistType", "reasoning"},
			},
		},
		"required": []string{"isMedicalContent", "summary", "sections", "measurements", "definitions", "consultation"},
	}
}
