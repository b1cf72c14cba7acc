package config

// Viper keys. With AutomaticEnv these map directly onto the upper-cased
// environment variables GitHub Actions provides (GITHUB_TOKEN,
// GITHUB_REPOSITORY, GITHUB_EVENT_PATH, OPENAI_API_KEY, ...).
const (
	KeyGitHubToken       = "github_token"
	KeyGitHubRepository  = "github_repository"
	KeyGitHubEventPath   = "github_event_path"
	KeyLogLevel          = "log_level"
	KeyNarrativeProvider = "narrative_provider"
	KeyNarrativeModel    = "narrative_model"
	KeyNarrativeBaseURL  = "narrative_base_url"
	KeyOpenAIAPIKey      = "openai_api_key"
	KeyOllamaURL         = "ollama_url"
	KeyLLMCallTimeout    = "llm_call_timeout"
	KeyMaxPromptTokens   = "max_prompt_tokens"
	KeyExcludePrefixes   = "exclude_prefixes"
	KeyPostEmptySummary  = "post_empty_summary"
	KeyUpdateComment     = "update_existing_comment"
	KeyPRNumber          = "pr"
)
