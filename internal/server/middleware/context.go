package middleware

import (
	"time"

	"github.com/Puss-M/Domino-Agent/internal/util"
	"github.com/Puss-M/Domino-Agent/pkg/ai"
	"github.com/Puss-M/Domino-Agent/pkg/ai/ollama"
	"github.com/Puss-M/Domino-Agent/pkg/ai/openai"
	"github.com/Puss-M/Domino-Agent/pkg/graph"
	"github.com/Puss-M/Domino-Agent/pkg/logger"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/labstack/echo/v4"
)

const (
	defaultChatURL   = "https://api.deepseek.com"
	defaultChatModel = "deepseek-chat"
)

type AppUser struct {
	UserID string
	Role   string
}

// App holds the process-wide dependencies shared by all requests.
type App struct {
	AiClient        ai.GraphAIClient
	Engine          *graph.GraphClient
	Key             keyfunc.Keyfunc
	MasterAPIKey    string
	AnalysisTimeout time.Duration
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

// UserID returns the authenticated user's id, or "anonymous" when the
// request passed without authentication.
func (c *AppContext) UserID() string {
	if c.User == nil {
		return "anonymous"
	}
	return c.User.UserID
}

// Role returns the authenticated user's role, or "anonymous".
func (c *AppContext) Role() string {
	if c.User == nil {
		return "anonymous"
	}
	return c.User.Role
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}

// NewAIClient creates the generative backend client selected by AI_ADAPTER.
// A missing API key is not checked here; it surfaces on the first call.
func NewAIClient() ai.GraphAIClient {
	adapter := util.GetEnv("AI_ADAPTER")
	model := util.GetEnvString("AI_CHAT_MODEL", defaultChatModel)

	switch adapter {
	case "ollama":
		client, err := ollama.NewGraphOllamaClient(ollama.NewGraphOllamaClientParams{
			ChatModel: model,

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnvFirst("AI_CHAT_KEY", "OPENAI_API_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 15)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return openai.NewGraphOpenAIClient(openai.NewGraphOpenAIClientParams{
			ChatModel: model,

			ChatURL: util.GetEnvString("AI_CHAT_URL", defaultChatURL),
			ChatKey: util.GetEnvFirst("AI_CHAT_KEY", "OPENAI_API_KEY"),

			ResponseFormat: util.GetEnv("AI_RESPONSE_FORMAT"),
		})
	}
}
