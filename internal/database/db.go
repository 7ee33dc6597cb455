package database

import (
	"log"

	"distribuidora-backend/internal/config"
	"distribuidora-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Branch{},
		&models.User{},
		&models.StockContainer{},
		&models.StockItem{},
		&models.CategoryDeclaration{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("Erro no AutoMigrate: %v", err)
	}

	log.Println("Conexão com o banco ok. Migration concluída.")
}
