package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medreport-assistant/config"

	"github.com/sirupsen/logrus"
)

func testAnalyzer(baseURL string) *Analyzer {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAnalyzer(config.AnalyzerConfig{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	}, log)
}

func candidateBody(t *testing.T, document string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": document}},
			}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestAnalyzeDecodesStructuredDocument(t *testing.T) {
	document := `{
		"isMedicalContent": true,
		"summary": "Routine panel, LDL elevated.",
		"sections": [{"title": "Overview", "content": "Blood work in plain terms."}],
		"measurements": [{"item": "LDL", "value": "164", "unit": "mg/dL", "referenceRange": "<130", "status": "High", "notes": ""}],
		"definitions": [{"term": "LDL", "meaning": "Bad cholesterol."}],
		"consultation": {"specialistType": "Cardiologist", "reasoning": "Elevated LDL.", "talkingPoints": ["Ask about statins"]}
	}`

	var gotPath, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body did not decode: %v", err)
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 2 {
			t.Errorf("request parts = %+v, want image + prompt", req.Contents)
		}
		if req.GenerationConfig.ResponseMimeType != "application/json" {
			t.Errorf("responseMimeType = %q", req.GenerationConfig.ResponseMimeType)
		}
		if req.GenerationConfig.ResponseSchema == nil {
			t.Error("request carried no response schema")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(candidateBody(t, document))
	}))
	defer server.Close()

	analyzer := testAnalyzer(server.URL)
	result, err := analyzer.Analyze(context.Background(), []byte("fake-image"), "image/png")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if gotPath != "/models/test-model:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if !result.IsMedicalContent || result.Summary == "" {
		t.Errorf("result = %+v", result)
	}
	if len(result.Measurements) != 1 || result.Measurements[0].Status != "High" {
		t.Errorf("measurements = %+v", result.Measurements)
	}
	if result.Consultation.SpecialistType != "Cardiologist" {
		t.Errorf("consultation = %+v", result.Consultation)
	}
}

func TestAnalyzeNonMedicalImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateBody(t, `{"isMedicalContent": false, "summary": "", "sections": [], "measurements": [], "definitions": [], "consultation": {"specialistType": "", "reasoning": "", "talkingPoints": []}}`))
	}))
	defer server.Close()

	result, err := testAnalyzer(server.URL).Analyze(context.Background(), []byte("cat-photo"), "image/jpeg")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if result.IsMedicalContent {
		t.Error("IsMedicalContent = true for a rejection document")
	}
}

func TestAnalyzeErrorConditionsWrapGatewayFailure(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates": [`))
			},
		},
		{
			name: "no candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates": []}`))
			},
		},
		{
			name: "document does not match schema",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "{\"isMedicalContent\": \"not-a-bool\"}"}]}}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			_, err := testAnalyzer(server.URL).Analyze(context.Background(), []byte("img"), "image/png")
			if !errors.Is(err, ErrGatewayFailure) {
				t.Fatalf("error = %v, want ErrGatewayFailure", err)
			}
		})
	}
}

func TestAnalyzeTransportFailure(t *testing.T) {
	// Nothing is listening here.
	_, err := testAnalyzer("http://127.0.0.1:1").Analyze(context.Background(), []byte("img"), "image/png")
	if !errors.Is(err, ErrGatewayFailure) {
		t.Fatalf("error = %v, want ErrGatewayFailure", err)
	}
}
