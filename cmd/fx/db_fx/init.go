package db_fx

import (
	"globehopper/internal/infra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideDB)

func provideDB() *gorm.DB {
	return infra.InitSQLite()
}
