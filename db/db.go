package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mauriciortega07/backend-proyecto-biomedica/config"
	"github.com/mauriciortega07/backend-proyecto-biomedica/models"
)

// Connect abre la conexión Postgres, configura el pool y migra las tablas.
func Connect(cfg config.AppConfig) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Violaciones de llave única se reportan como gorm.ErrDuplicatedKey,
		// sin importar el driver.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(60 * time.Minute)

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

// Migrate crea las tablas y los índices (equipo_id, unique client_uid).
// Compartido con las bases de prueba.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.Equipo{},
		&models.Mantenimiento{},
		&models.Usuario{},
	)
}
