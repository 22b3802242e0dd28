package itinerary_fx

import (
	"globehopper/internal/api/controllers"
	"globehopper/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideItineraryService, provideItineraryController)

func provideItineraryService(state services.StateServiceInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(state)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
