package llm

import (
	"strings"
	"testing"

	"github.com/promptgen-dev/promptgen/config"
)

func testConfig() *config.Config {
	cfg := config.WithDefaults()
	cfg.Anthropic.APIKey = "anthropic-test-key"
	cfg.OpenAI.APIKey = "openai-test-key"
	cfg.DeepSeek.APIKey = "deepseek-test-key"
	return cfg
}

func TestAll_Order(t *testing.T) {
	want := []Provider{ProviderAnthropic, ProviderOpenAI, ProviderDeepSeek}

	all := All()
	if len(all) != len(want) {
		t.Fatalf("Expected %d providers, got %d", len(want), len(all))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("Expected provider %s at position %d, got %s", want[i], i, all[i])
		}
	}
}

func TestParseProvider(t *testing.T) {
	cases := []struct {
		in   string
		want Provider
	}{
		{"anthropic", ProviderAnthropic},
		{"openai", ProviderOpenAI},
		{"deepseek", ProviderDeepSeek},
		{"Anthropic", ProviderAnthropic},
		{" openai ", ProviderOpenAI},
	}

	for _, c := range cases {
		got, err := ParseProvider(c.in)
		if err != nil {
			t.Errorf("Expected %q to parse, got error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Expected %q to parse as %s, got %s", c.in, c.want, got)
		}
	}
}

func TestParseProvider_Unknown(t *testing.T) {
	_, err := ParseProvider("gemini")
	if err == nil {
		t.Fatal("Expected an error for an unknown provider")
	}
	if !strings.Contains(err.Error(), "anthropic") {
		t.Errorf("Expected the error to list valid providers, got: %v", err)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[Provider]string{
		ProviderAnthropic: "Claude 3.5 Sonnet",
		ProviderOpenAI:    "GPT-4o",
		ProviderDeepSeek:  "DeepSeek V3",
	}

	for provider, want := range cases {
		if got := provider.DisplayName(); got != want {
			t.Errorf("Expected display name %q for %s, got %q", want, provider, got)
		}
	}
}

func TestNewLLM_AllProviders(t *testing.T) {
	cfg := testConfig()

	for _, provider := range All() {
		client, err := NewLLM(provider, cfg)
		if err != nil {
			t.Errorf("Expected %s client to build, got error: %v", provider, err)
			continue
		}
		if client == nil {
			t.Errorf("Expected a client for %s", provider)
		}
	}
}

func TestNewLLM_MissingAPIKey(t *testing.T) {
	cfg := testConfig()
	cfg.OpenAI.APIKey = ""

	_, err := NewLLM(ProviderOpenAI, cfg)
	if err == nil {
		t.Fatal("Expected an error for a missing API key")
	}
	if !strings.Contains(err.Error(), config.EnvOpenAIAPIKey) {
		t.Errorf("Expected the error to name %s, got: %v", config.EnvOpenAIAPIKey, err)
	}
}

func TestNewLLM_UnsupportedProvider(t *testing.T) {
	_, err := NewLLM(Provider("gemini"), testConfig())
	if err == nil {
		t.Fatal("Expected an error for an unsupported provider")
	}
}
