package duui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestProbe_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/typesystem" {
			t.Errorf("Expected path /v1/typesystem, got %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewComponent("Sentiment", server.URL, 5*time.Second, 10*time.Second)
	if err := c.Probe(context.Background()); err != nil {
		t.Errorf("Expected probe to succeed, got %v", err)
	}
}

func TestProbe_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := NewComponent("Sentiment", server.URL, 5*time.Second, 10*time.Second)
	if err := c.Probe(context.Background()); err == nil {
		t.Error("Expected probe to fail on HTTP 503")
	}
}

func TestProbe_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Shut down immediately so the address refuses connections

	c := NewComponent("Sentiment", server.URL, time.Second, time.Second)
	if err := c.Probe(context.Background()); err == nil {
		t.Error("Expected probe to fail against a closed server")
	}
}

func TestProcess_SentimentPayloadShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/process" {
			t.Errorf("Expected path /v1/process, got %s", r.URL.Path)
		}

		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Failed to decode payload: %v", err)
		}
		for _, key := range []string{"selections", "lang", "doc_len", "model_name", "batch_size", "ignore_max_length_truncation_padding"} {
			if _, ok := payload[key]; !ok {
				t.Errorf("Payload missing field %q", key)
			}
		}

		_ = json.NewEncoder(w).Encode(SentimentResponse{
			Selections: []SentimentSelection{
				{Selection: "text", Sentences: []SentimentSentence{{Pos: 0.1, Neu: 0.2, Neg: 0.7}}},
			},
			Meta: Meta{ModelName: "test-model", Version: "1.0"},
		})
	}))
	defer server.Close()

	c := NewComponent("Sentiment", server.URL, 5*time.Second, 10*time.Second)
	resp, err := c.Sentiment(context.Background(), NewSentimentRequest("some text", "en", "test-model", 32))
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if resp.Meta.ModelName != "test-model" {
		t.Errorf("Unexpected model name: %s", resp.Meta.ModelName)
	}
	if resp.Selections[0].Sentences[0].Neg != 0.7 {
		t.Errorf("Unexpected neg score: %v", resp.Selections[0].Sentences[0].Neg)
	}
}

func TestProcess_HateCheckPayloadHasNoModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Failed to decode payload: %v", err)
		}
		if _, ok := payload["model_name"]; ok {
			t.Error("HateCheck payload must not carry model_name")
		}
		_ = json.NewEncoder(w).Encode(HateCheckResponse{
			Hate:    []float64{0.88},
			NonHate: []float64{0.12},
			Meta:    Meta{ModelName: "hate-model"},
		})
	}))
	defer server.Close()

	c := NewComponent("HateCheck", server.URL, 5*time.Second, 10*time.Second)
	resp, err := c.HateCheck(context.Background(), NewHateCheckRequest("some text", "en"))
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if len(resp.Hate) != 1 || resp.Hate[0] != 0.88 {
		t.Errorf("Unexpected hate scores: %v", resp.Hate)
	}
}

func TestProcess_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewComponent("FactCheck", server.URL, 5*time.Second, 10*time.Second)
	err := c.Process(context.Background(), map[string]string{}, &struct{}{})
	if err == nil {
		t.Fatal("Expected error for HTTP 500")
	}
	if IsTimeout(err) {
		t.Error("HTTP 500 must not classify as timeout")
	}
}

func TestProcess_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	c := NewComponent("FactCheck", server.URL, 5*time.Second, 50*time.Millisecond)
	err := c.Process(context.Background(), map[string]string{}, &struct{}{})
	if err == nil {
		t.Fatal("Expected timeout error")
	}
	if !IsTimeout(err) {
		t.Errorf("Expected IsTimeout to classify %v as timeout", err)
	}
}

func TestProcess_TransportErrorIsNotTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := NewComponent("FactCheck", server.URL, 5*time.Second, 5*time.Second)
	err := c.Process(context.Background(), map[string]string{}, &struct{}{})
	if err == nil {
		t.Fatal("Expected transport error")
	}
	if IsTimeout(err) {
		t.Errorf("Connection refused must not classify as timeout: %v", err)
	}
}
