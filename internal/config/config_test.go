package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "FUZZY_THRESHOLD", "ESCALATION_THRESHOLD",
		"LIVE_AGENT_PHRASES", "MAX_CHAT_HISTORY", "MAX_MESSAGE_LENGTH",
		"MIN_MESSAGE_INTERVAL", "SENTRY_TOKEN", "SENTRY_HOST",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "5000" {
		t.Errorf("Port = %q, want 5000", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Bot.FuzzyThreshold != 80 {
		t.Errorf("FuzzyThreshold = %d, want 80", cfg.Bot.FuzzyThreshold)
	}
	if cfg.Bot.EscalationThreshold != 3 {
		t.Errorf("EscalationThreshold = %d, want 3", cfg.Bot.EscalationThreshold)
	}
	if cfg.Bot.MinMessageInterval != 2*time.Second {
		t.Errorf("MinMessageInterval = %v, want 2s", cfg.Bot.MinMessageInterval)
	}
	if cfg.Bot.MaxHistory != 50 {
		t.Errorf("MaxHistory = %d, want 50", cfg.Bot.MaxHistory)
	}
	if len(cfg.Bot.LiveAgentPhrases) != 2 {
		t.Errorf("LiveAgentPhrases = %v, want the two defaults", cfg.Bot.LiveAgentPhrases)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("FUZZY_THRESHOLD", "90")
	t.Setenv("ESCALATION_THRESHOLD", "5")
	t.Setenv("LIVE_AGENT_PHRASES", "agent, human , operator")
	t.Setenv("MIN_MESSAGE_INTERVAL", "500ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Bot.FuzzyThreshold != 90 {
		t.Errorf("FuzzyThreshold = %d, want 90", cfg.Bot.FuzzyThreshold)
	}
	if cfg.Bot.EscalationThreshold != 5 {
		t.Errorf("EscalationThreshold = %d, want 5", cfg.Bot.EscalationThreshold)
	}
	want := []string{"agent", "human", "operator"}
	if len(cfg.Bot.LiveAgentPhrases) != len(want) {
		t.Fatalf("LiveAgentPhrases = %v, want %v", cfg.Bot.LiveAgentPhrases, want)
	}
	for i, phrase := range want {
		if cfg.Bot.LiveAgentPhrases[i] != phrase {
			t.Errorf("LiveAgentPhrases[%d] = %q, want %q", i, cfg.Bot.LiveAgentPhrases[i], phrase)
		}
	}
	if cfg.Bot.MinMessageInterval != 500*time.Millisecond {
		t.Errorf("MinMessageInterval = %v, want 500ms", cfg.Bot.MinMessageInterval)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("FUZZY_THRESHOLD", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Bot.FuzzyThreshold != 80 {
		t.Errorf("FuzzyThreshold = %d, want default 80", cfg.Bot.FuzzyThreshold)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("FUZZY_THRESHOLD", "150")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for out-of-range threshold")
	}
}

func TestValidateSentryHostRequiredWithToken(t *testing.T) {
	t.Setenv("SENTRY_TOKEN", "token123")
	t.Setenv("SENTRY_HOST", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected validation error when SENTRY_TOKEN set without SENTRY_HOST")
	}
	if !strings.Contains(err.Error(), "SENTRY_HOST") {
		t.Errorf("error should name SENTRY_HOST, got %v", err)
	}
}

func TestBotConfigValidate(t *testing.T) {
	t.Parallel()

	valid := BotConfig{
		FuzzyThreshold:         80,
		EscalationThreshold:    3,
		MaxHistory:             50,
		MaxMessageLength:       1000,
		MinMessageInterval:     2 * time.Second,
		RateLimitCleanupPeriod: 5 * time.Minute,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	bad := valid
	bad.EscalationThreshold = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero escalation threshold should be rejected")
	}

	bad = valid
	bad.MaxMessageLength = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero max message length should be rejected")
	}
}
