package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/promptgen-dev/promptgen/config"
	"github.com/promptgen-dev/promptgen/llm"
	"github.com/promptgen-dev/promptgen/prompt"
)

type fakeLLM struct {
	response llm.Response
}

func (f *fakeLLM) Generate(req llm.Request) llm.Response {
	return f.response
}

func newTestServer(clients map[llm.Provider]llm.LLM, constructionErrs map[llm.Provider]error) *Server {
	srv := New(config.WithDefaults())
	srv.newClient = func(provider llm.Provider) (llm.LLM, error) {
		if err, ok := constructionErrs[provider]; ok {
			return nil, err
		}
		if client, ok := clients[provider]; ok {
			return client, nil
		}
		return &fakeLLM{response: llm.Response{Content: "default output"}}, nil
	}
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	return w
}

func TestGenerateEndpoint_Success(t *testing.T) {
	srv := newTestServer(map[llm.Provider]llm.LLM{
		llm.ProviderAnthropic: &fakeLLM{response: llm.Response{Content: "GENERATED PROMPT"}},
	}, nil)

	w := doJSON(t, srv, http.MethodPost, "/api/generate", `{"provider": "anthropic", "project_idea": "Build a CLI task tracker"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Provider    string `json:"provider"`
		DisplayName string `json:"display_name"`
		Filename    string `json:"filename"`
		Content     string `json:"content"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Provider != "anthropic" {
		t.Errorf("Expected provider anthropic, got %q", resp.Provider)
	}
	if resp.DisplayName != "Claude 3.5 Sonnet" {
		t.Errorf("Expected display name Claude 3.5 Sonnet, got %q", resp.DisplayName)
	}
	if resp.Filename != "ai_prompt.md" {
		t.Errorf("Expected the single mode filename ai_prompt.md, got %q", resp.Filename)
	}
	if resp.Content != "GENERATED PROMPT" {
		t.Errorf("Expected the generated content, got %q", resp.Content)
	}
}

func TestGenerateEndpoint_DefaultProvider(t *testing.T) {
	srv := newTestServer(nil, nil)

	w := doJSON(t, srv, http.MethodPost, "/api/generate", `{"project_idea": "Build a CLI task tracker"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"provider":"anthropic"`) {
		t.Errorf("Expected the default provider anthropic, got %s", w.Body.String())
	}
}

func TestGenerateEndpoint_EmptyProjectIdea(t *testing.T) {
	srv := newTestServer(nil, nil)
	srv.newClient = func(provider llm.Provider) (llm.LLM, error) {
		t.Errorf("Expected no client to be constructed for invalid input, got a request for %s", provider)
		return nil, nil
	}

	w := doJSON(t, srv, http.MethodPost, "/api/generate", `{"provider": "anthropic", "project_idea": "   "}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "project idea") {
		t.Errorf("Expected a project idea validation message, got %s", w.Body.String())
	}
}

func TestGenerateEndpoint_UnknownProvider(t *testing.T) {
	srv := newTestServer(nil, nil)

	w := doJSON(t, srv, http.MethodPost, "/api/generate", `{"provider": "gemini", "project_idea": "Build a CLI task tracker"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "unknown provider") {
		t.Errorf("Expected an unknown provider message, got %s", w.Body.String())
	}
}

func TestGenerateEndpoint_UpstreamFailure(t *testing.T) {
	srv := newTestServer(map[llm.Provider]llm.LLM{
		llm.ProviderAnthropic: &fakeLLM{response: llm.Response{
			Error: &llm.ProviderError{Provider: llm.ProviderAnthropic, StatusCode: 401, Message: "invalid x-api-key"},
		}},
	}, nil)

	w := doJSON(t, srv, http.MethodPost, "/api/generate", `{"provider": "anthropic", "project_idea": "Build a CLI task tracker"}`)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("Expected status 502, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "invalid x-api-key") {
		t.Errorf("Expected the provider message to surface, got %s", w.Body.String())
	}
}

func TestCompareEndpoint_PartialFailure(t *testing.T) {
	srv := newTestServer(map[llm.Provider]llm.LLM{
		llm.ProviderAnthropic: &fakeLLM{response: llm.Response{Content: "claude output"}},
		llm.ProviderDeepSeek:  &fakeLLM{response: llm.Response{Content: "deepseek output"}},
	}, map[llm.Provider]error{
		llm.ProviderOpenAI: errors.New("GPT-4o API key not found: set OPENAI_API_KEY"),
	})

	w := doJSON(t, srv, http.MethodPost, "/api/compare", `{"project_idea": "Build a CLI task tracker"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Results []struct {
			Provider string `json:"provider"`
			Filename string `json:"filename"`
			Content  string `json:"content"`
			Error    string `json:"error"`
		} `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(resp.Results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(resp.Results))
	}

	wantProviders := []string{"anthropic", "openai", "deepseek"}
	wantFilenames := []string{"claude_prompt.md", "gpt_prompt.md", "deepseek_prompt.md"}
	for i, result := range resp.Results {
		if result.Provider != wantProviders[i] {
			t.Errorf("Expected result %d to be %s, got %s", i, wantProviders[i], result.Provider)
		}
		if result.Filename != wantFilenames[i] {
			t.Errorf("Expected filename %s, got %s", wantFilenames[i], result.Filename)
		}
	}

	if resp.Results[0].Content != "claude output" {
		t.Errorf("Expected the first slot to succeed, got %+v", resp.Results[0])
	}
	if resp.Results[1].Error == "" || !strings.Contains(resp.Results[1].Error, "OPENAI_API_KEY") {
		t.Errorf("Expected the second slot to carry the construction error, got %+v", resp.Results[1])
	}
	if resp.Results[2].Content != "deepseek output" {
		t.Errorf("Expected the third slot to succeed, got %+v", resp.Results[2])
	}
}

func TestCompareEndpoint_RequiresProjectIdea(t *testing.T) {
	srv := newTestServer(nil, nil)

	w := doJSON(t, srv, http.MethodPost, "/api/compare", `{"project_idea": ""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("Expected a healthy status, got %s", w.Body.String())
	}
}

func TestIndexPage(t *testing.T) {
	srv := newTestServer(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "AI Prompt Generator for Coding") {
		t.Error("Expected the page heading")
	}
	if !strings.Contains(body, "Claude 3.5 Sonnet (Best for Logic)") {
		t.Error("Expected the provider options to be rendered")
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected a generated request ID header")
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	w = httptest.NewRecorder()
	srv.engine.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "caller-supplied-id" {
		t.Errorf("Expected the caller supplied request ID to be kept, got %q", got)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&prompt.ValidationError{Field: "project_idea", Message: "please enter a project idea"}, http.StatusBadRequest},
		{&llm.ProviderError{Provider: llm.ProviderOpenAI, StatusCode: 429, Message: "rate limited"}, http.StatusBadGateway},
		{&llm.TransportError{Provider: llm.ProviderOpenAI, Err: errors.New("connection refused")}, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, c := range cases {
		if got := statusFor(c.err); got != c.want {
			t.Errorf("Expected status %d for %T, got %d", c.want, c.err, got)
		}
	}
}
