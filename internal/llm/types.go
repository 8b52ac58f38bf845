package llm

const (
	ProviderBedrock = "bedrock"
	ProviderOpenAI  = "openai"
	ProviderRemote  = "remote"
)

type LLMRequest struct {
	// System is the persona and rules sent ahead of the prompt. Optional.
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type LLMResponse struct {
	Content    string
	StopReason string
}
