package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type SlackConfig struct {
	BotToken        string
	SigningSecret   string
	AlertWebhookURL string
}

// IsConfigured returns true if all required Slack configuration is present
func (c SlackConfig) IsConfigured() bool {
	return c.BotToken != "" &&
		c.SigningSecret != ""
	// Note: AlertWebhookURL is optional
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

// IsConfigured returns true if all required OpenAI configuration is present
func (c OpenAIConfig) IsConfigured() bool {
	return c.APIKey != "" && c.Model != ""
}

type AppConfig struct {
	Port        string // Optional with default "3000"
	Environment string

	// EmptyMentionReply is the canned reply used when stripping mentions
	// leaves no text. Empty means the empty message is still forwarded to
	// the model.
	EmptyMentionReply string

	SlackConfig  SlackConfig
	OpenAIConfig OpenAIConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	botToken, err := getEnvRequired("SLACK_BOT_TOKEN")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(botToken, "xoxb-") {
		return nil, fmt.Errorf("SLACK_BOT_TOKEN must be a bot token starting with 'xoxb-'")
	}

	signingSecret, err := getEnvRequired("SLACK_SIGNING_SECRET")
	if err != nil {
		return nil, err
	}

	openaiAPIKey, err := getEnvRequired("OPENAI_API_KEY")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		Port:              getEnvWithDefault("PORT", "3000"),
		Environment:       getEnvWithDefault("ENVIRONMENT", "dev"),
		EmptyMentionReply: os.Getenv("EMPTY_MENTION_REPLY"),

		SlackConfig: SlackConfig{
			BotToken:        botToken,
			SigningSecret:   signingSecret,
			AlertWebhookURL: os.Getenv("SLACK_ALERT_WEBHOOK_URL"),
		},

		OpenAIConfig: OpenAIConfig{
			APIKey: openaiAPIKey,
			Model:  getEnvWithDefault("OPENAI_MODEL", "gpt-4"),
		},
	}

	log.Printf("✅ Slack integration configured")
	log.Printf("✅ OpenAI integration configured (model: %s)", config.OpenAIConfig.Model)
	if config.SlackConfig.AlertWebhookURL == "" {
		log.Printf("⚠️ SLACK_ALERT_WEBHOOK_URL not set - operator error alerts will be disabled")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
