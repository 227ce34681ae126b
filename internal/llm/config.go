package llm

import (
	"fmt"
	"os"
	"time"
)

// ProviderName selects a backend.
type ProviderName string

const (
	ProviderAnthropic  ProviderName = "anthropic"
	ProviderOpenAI     ProviderName = "openai"
	ProviderGemini     ProviderName = "gemini"
	ProviderOpenRouter ProviderName = "openrouter"
	ProviderMock       ProviderName = "mock"
)

// EnvPrefix namespaces every configuration variable.
const EnvPrefix = "CONFIDEX_"

// Config selects and configures one provider.
type Config struct {
	Provider ProviderName

	Anthropic  Credentials
	OpenAI     Credentials
	Gemini     Credentials
	OpenRouter Credentials

	Retry RetryConfig
}

// Credentials are the settings shared by all hosted providers.
type Credentials struct {
	APIKey  string
	Model   string
	BaseURL string // optional override
}

// RetryConfig is the exponential backoff policy.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64

	// Timeout bounds one Generate call including all retries. Zero means
	// no bound beyond the caller's context.
	Timeout time.Duration
}

// DefaultConfig uses Anthropic's small model with three attempts.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  Credentials{Model: "claude-haiku"},
		OpenAI:     Credentials{Model: "gpt-4o-mini"},
		Gemini:     Credentials{Model: "gemini-flash"},
		OpenRouter: Credentials{Model: "google/gemini-2.0-flash-001", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
			Timeout:     30 * time.Second,
		},
	}
}

// credentials returns the settings of the named provider.
func (c *Config) credentials(name ProviderName) *Credentials {
	switch name {
	case ProviderAnthropic:
		return &c.Anthropic
	case ProviderOpenAI:
		return &c.OpenAI
	case ProviderGemini:
		return &c.Gemini
	case ProviderOpenRouter:
		return &c.OpenRouter
	}
	return nil
}

var hostedProviders = []ProviderName{ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter}

// ConfigFromEnv overlays CONFIDEX_LLM_PROVIDER, CONFIDEX_LLM_TIMEOUT and
// CONFIDEX_<PROVIDER>_{API_KEY,MODEL,BASE_URL} on the defaults.
func ConfigFromEnv() Config {
	return configFrom(os.Getenv)
}

func configFrom(getenv func(string) string) Config {
	cfg := DefaultConfig()
	if p := getenv(EnvPrefix + "LLM_PROVIDER"); p != "" {
		cfg.Provider = ProviderName(p)
	}
	if t := getenv(EnvPrefix + "LLM_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Retry.Timeout = d
		}
	}
	for _, name := range hostedProviders {
		creds := cfg.credentials(name)
		prefix := EnvPrefix + envName(name) + "_"
		if v := getenv(prefix + "API_KEY"); v != "" {
			creds.APIKey = v
		}
		if v := getenv(prefix + "MODEL"); v != "" {
			creds.Model = v
		}
		if v := getenv(prefix + "BASE_URL"); v != "" {
			creds.BaseURL = v
		}
	}
	return cfg
}

// DiscoverConfig looks for a vendor API key, in the order Gemini, OpenAI,
// Anthropic, OpenRouter, and configures the first one found.
func DiscoverConfig() (Config, bool) {
	return discoverFrom(os.Getenv)
}

func discoverFrom(getenv func(string) string) (Config, bool) {
	cfg := DefaultConfig()
	for _, name := range []ProviderName{ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOpenRouter} {
		if k := getenv(envName(name) + "_API_KEY"); k != "" {
			cfg.Provider = name
			cfg.credentials(name).APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Resolve prefers an explicit CONFIDEX_ configuration and falls back to
// discovery. ok is false when no provider can be used.
func Resolve() (cfg Config, ok bool) {
	return resolveFrom(os.Getenv)
}

func resolveFrom(getenv func(string) string) (Config, bool) {
	cfg := configFrom(getenv)
	if cfg.Validate() == nil {
		return cfg, true
	}
	if getenv(EnvPrefix+"LLM_PROVIDER") != "" {
		return cfg, false
	}
	return discoverFrom(getenv)
}

// Validate checks the selected provider has an API key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	creds := c.credentials(c.Provider)
	if creds == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if creds.APIKey == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider", EnvPrefix, envName(c.Provider), c.Provider)
	}
	return nil
}

func envName(name ProviderName) string {
	switch name {
	case ProviderAnthropic:
		return "ANTHROPIC"
	case ProviderOpenAI:
		return "OPENAI"
	case ProviderGemini:
		return "GEMINI"
	case ProviderOpenRouter:
		return "OPENROUTER"
	}
	return "MOCK"
}
