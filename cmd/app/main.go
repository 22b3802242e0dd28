package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"globehopper/cmd/fx/db_fx"
	"globehopper/cmd/fx/itinerary_fx"
	"globehopper/cmd/fx/ledger_fx"
	"globehopper/cmd/fx/planner_fx"
	"globehopper/cmd/fx/rates_fx"
	"globehopper/cmd/fx/state_fx"
	"globehopper/cmd/fx/trip_fx"
	"globehopper/internal/api/controllers"
	"globehopper/pkg/middleware"
	"go.uber.org/fx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded")
	}

	app := fx.New(
		db_fx.Module,
		state_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		planner_fx.Module,
		ledger_fx.Module,
		rates_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.WithField("port", port).Info("Starting HTTP server")
				if err := engine.Run(":" + port); err != nil {
					log.WithError(err).Fatal("Failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	plannerController *controllers.PlannerController,
	credentialController *controllers.CredentialController,
	itineraryController *controllers.ItineraryController,
	ledgerController *controllers.LedgerController,
	ratesController *controllers.RatesController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		tripController,
		plannerController,
		credentialController,
		itineraryController,
		ledgerController,
		ratesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	plannerController *controllers.PlannerController,
	credentialController *controllers.CredentialController,
	itineraryController *controllers.ItineraryController,
	ledgerController *controllers.LedgerController,
	ratesController *controllers.RatesController) {

	tripGroup := r.Group("/trip")
	tripGroup.GET("", tripController.GetTripHandler)
	tripGroup.PUT("", tripController.UpdateTripHandler)
	tripGroup.PUT("/notes", tripController.UpdateNotesHandler)
	tripGroup.GET("/days", tripController.TripDaysHandler)

	planGroup := r.Group("/plan")
	planGroup.POST("/generate", plannerController.GenerateHandler)
	planGroup.GET("/guide", plannerController.GuideHandler)

	keyGroup := r.Group("/key")
	keyGroup.PUT("", credentialController.SetKeyHandler)
	keyGroup.DELETE("", credentialController.ClearKeyHandler)
	keyGroup.GET("/status", credentialController.KeyStatusHandler)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.GET("/days/:date", itineraryController.DayViewHandler)
	itineraryGroup.PUT("/accommodations/:date", itineraryController.SetAccommodationHandler)
	itineraryGroup.DELETE("/accommodations/:date", itineraryController.RemoveAccommodationHandler)

	ledgerGroup := r.Group("/ledger")
	ledgerGroup.GET("", ledgerController.ListLedgerHandler)
	ledgerGroup.POST("", ledgerController.AddLedgerEntryHandler)
	ledgerGroup.DELETE("/:id", ledgerController.RemoveLedgerEntryHandler)

	shoppingGroup := r.Group("/shopping")
	shoppingGroup.GET("", ledgerController.ListShoppingHandler)
	shoppingGroup.POST("", ledgerController.AddShoppingItemHandler)
	shoppingGroup.PATCH("/:id/toggle", ledgerController.ToggleShoppingItemHandler)
	shoppingGroup.DELETE("/:id", ledgerController.RemoveShoppingItemHandler)

	r.GET("/rates", ratesController.GetRateHandler)
}
