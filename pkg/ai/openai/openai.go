package openai

import (
	"strings"
	"sync"

	"github.com/Puss-M/Domino-Agent/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// GraphOpenAIClient talks to any OpenAI-compatible chat completion API
// (OpenAI, DeepSeek, vLLM, ...). It is stateless per call and can be shared
// across requests.
//
// A GraphOpenAIClient should be created using NewGraphOpenAIClient.
type GraphOpenAIClient struct {
	chatModel string

	chatURL string
	chatKey string

	responseFormat string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewGraphOpenAIClientParams defines the configuration parameters for creating
// a new GraphOpenAIClient.
//
// ChatModel specifies the model used for all completions.
// ChatURL and ChatKey configure the chat/completion API endpoint. An empty
// ChatURL uses the official OpenAI endpoint.
// ResponseFormat selects how structured output is requested: ResponseFormatJSONSchema
// or ResponseFormatJSONObject. Empty picks json_schema for the official
// endpoint and json_object for everything else.
type NewGraphOpenAIClientParams struct {
	ChatModel string

	ChatURL string
	ChatKey string

	ResponseFormat string
}

// Structured output modes. json_object is accepted by most OpenAI-compatible
// servers (DeepSeek rejects json_schema); the schema then only reaches the
// model through the prompt.
const (
	ResponseFormatJSONSchema = "json_schema"
	ResponseFormatJSONObject = "json_object"
)

func resolveResponseFormat(format string, chatURL string) string {
	switch format {
	case ResponseFormatJSONSchema, ResponseFormatJSONObject:
		return format
	}
	if chatURL == "" || strings.Contains(chatURL, "api.openai.com") {
		return ResponseFormatJSONSchema
	}
	return ResponseFormatJSONObject
}

// NewGraphOpenAIClient creates and returns a new GraphOpenAIClient configured
// with the provided parameters.
//
// A missing API key is not an error here; every call fails with
// ErrMissingAPIKey instead.
//
// Example:
//
//	client := openai.NewGraphOpenAIClient(openai.NewGraphOpenAIClientParams{
//		ChatModel: "deepseek-chat",
//		ChatURL:   "https://api.deepseek.com",
//		ChatKey:   os.Getenv("OPENAI_API_KEY"),
//	})
func NewGraphOpenAIClient(
	params NewGraphOpenAIClientParams,
) *GraphOpenAIClient {
	chatClient := newOpenaiClient(params.ChatURL, params.ChatKey)

	return &GraphOpenAIClient{
		chatModel: params.ChatModel,

		chatURL: params.ChatURL,
		chatKey: params.ChatKey,

		responseFormat: resolveResponseFormat(params.ResponseFormat, params.ChatURL),

		metricsLock: sync.Mutex{},
		metrics:     ai.ModelMetrics{},

		ChatClient: chatClient,
	}
}

func newOpenaiClient(
	baseURL string,
	apiKey string,
) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}
