package rates_fx

import (
	"globehopper/internal/api/controllers"
	"globehopper/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideRateService, provideRatesController)

func provideRateService() services.RateServiceInterface {
	return services.NewRateService()
}

func provideRatesController(rateService services.RateServiceInterface) *controllers.RatesController {
	return controllers.NewRatesController(rateService)
}
