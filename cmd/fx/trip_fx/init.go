package trip_fx

import (
	"globehopper/internal/api/controllers"
	"globehopper/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideTripService, provideTripController)

func provideTripService(state services.StateServiceInterface) services.TripServiceInterface {
	return services.NewTripService(state)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
