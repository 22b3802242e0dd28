package ledger_fx

import (
	"globehopper/internal/api/controllers"
	"globehopper/internal/services"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideLedgerService, provideLedgerController)

func provideLedgerService(state services.StateServiceInterface) services.LedgerServiceInterface {
	return services.NewLedgerService(state)
}

func provideLedgerController(ledgerService services.LedgerServiceInterface) *controllers.LedgerController {
	return controllers.NewLedgerController(ledgerService)
}
