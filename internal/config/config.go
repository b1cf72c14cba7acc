package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyNarrativeProvider, "openai")
	viper.SetDefault(KeyNarrativeModel, "gpt-4o")
	viper.SetDefault(KeyOllamaURL, "http://localhost:11434")
	viper.SetDefault(KeyLLMCallTimeout, "2m")
	viper.SetDefault(KeyMaxPromptTokens, 24000)
	viper.SetDefault(KeyExcludePrefixes, ".github/")
	viper.SetDefault(KeyPostEmptySummary, false)
	viper.SetDefault(KeyUpdateComment, true)
}

func GitHubToken() string            { return viper.GetString(KeyGitHubToken) }
func GitHubRepository() string       { return viper.GetString(KeyGitHubRepository) }
func GitHubEventPath() string        { return viper.GetString(KeyGitHubEventPath) }
func LogLevel() string               { return viper.GetString(KeyLogLevel) }
func NarrativeProvider() string      { return viper.GetString(KeyNarrativeProvider) }
func NarrativeModel() string         { return viper.GetString(KeyNarrativeModel) }
func NarrativeBaseURL() string       { return viper.GetString(KeyNarrativeBaseURL) }
func OpenAIAPIKey() string           { return viper.GetString(KeyOpenAIAPIKey) }
func OllamaURL() string              { return viper.GetString(KeyOllamaURL) }
func LLMCallTimeout() time.Duration  { return viper.GetDuration(KeyLLMCallTimeout) }
func MaxPromptTokens() int           { return viper.GetInt(KeyMaxPromptTokens) }
func PostEmptySummary() bool         { return viper.GetBool(KeyPostEmptySummary) }
func UpdateExistingComment() bool    { return viper.GetBool(KeyUpdateComment) }
func PRNumber() int                  { return viper.GetInt(KeyPRNumber) }

// ExcludePrefixes returns the comma-separated exclusion prefix list, with
// blank entries dropped.
func ExcludePrefixes() []string {
	var out []string
	for _, p := range strings.Split(viper.GetString(KeyExcludePrefixes), ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
