package plannerfx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenClient,
	ProvidePlannerService)

// ProvideTextGenClient builds the text generation client from environment
// variables. A missing key or unknown provider is not fatal: the planner
// accepts a nil client and serves fallback content instead.
func ProvideTextGenClient() utils.TextGenClientInterface {
	provider := strings.ToLower(os.Getenv("AI_PROVIDER"))

	var apiKey string
	switch provider {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
	default:
		apiKey = os.Getenv("GOOGLE_AI_API_KEY")
	}

	client, err := utils.NewTextGenClient(provider, apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Printf("Text generation client unavailable (%v), planner will serve fallback data", err)
		return nil
	}

	log.Printf("Initialized %s text generation client", clientProviderName(provider))
	return client
}

func clientProviderName(provider string) string {
	if provider == "" {
		return "gemini"
	}
	return provider
}

func ProvidePlannerService(aiClient utils.TextGenClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(aiClient)
}
