package planner_fx

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"globehopper/internal/api/controllers"
	"globehopper/internal/services"
	"globehopper/pkg/utils"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	providePlannerConfig,
	providePlannerClient,
	providePlannerService,
	providePlannerController,
	provideCredentialController,
)

// providePlannerConfig reads the provider selection and the pre-provisioned
// environment credential. An interactively entered key overrides this one.
func providePlannerConfig() services.PlannerConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var envKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		envKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "")
	default:
		envKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.0-flash")
	}

	log.WithFields(log.Fields{"provider": provider, "model": model}).
		Info("Initializing planner client")

	return services.PlannerConfig{Provider: provider, Model: model, EnvKey: envKey}
}

func providePlannerClient(config services.PlannerConfig) (utils.PlannerClientInterface, error) {
	return utils.NewPlannerClient(config.Provider, config.Model)
}

func providePlannerService(
	trip services.TripServiceInterface,
	itinerary services.ItineraryServiceInterface,
	state services.StateServiceInterface,
	client utils.PlannerClientInterface,
	config services.PlannerConfig,
) services.PlannerServiceInterface {
	return services.NewPlannerService(trip, itinerary, state, client, config)
}

func providePlannerController(
	plannerService services.PlannerServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) *controllers.PlannerController {
	return controllers.NewPlannerController(plannerService, itineraryService)
}

func provideCredentialController(plannerService services.PlannerServiceInterface) *controllers.CredentialController {
	return controllers.NewCredentialController(plannerService)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
