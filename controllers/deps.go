package controllers

import (
	"gorm.io/gorm"

	"rf-wms/config"
	"rf-wms/repositories"
	"rf-wms/services"
)

// Deps dibuat sekali di main dan dibagikan ke semua controller. Repository
// inventory harus tunggal karena memegang lock per (bin, item).
type Deps struct {
	DB   *gorm.DB
	Repo *repositories.InventoryRepository
	Txns *repositories.TransactionRepository

	Lookup    *services.LookupService
	Bins      *services.BinService
	Receiving *services.ReceivingService
	Picking   *services.PickingService
	Counting  *services.CountingService
	Sessions  *services.SessionService
	Imports   *services.ImportService
	Exports   *services.ExportService
}

func NewDeps(db *gorm.DB) *Deps {
	store := repositories.NewGormStore(db)
	repo := repositories.NewInventoryRepository(store)
	txns := repositories.NewTransactionRepository(store)

	bins := services.NewBinService(repo)
	receiving := services.NewReceivingService(repo, bins, txns)

	return &Deps{
		DB:        db,
		Repo:      repo,
		Txns:      txns,
		Lookup:    services.NewLookupService(config.WarehousePrefix),
		Bins:      bins,
		Receiving: receiving,
		Picking:   services.NewPickingService(repo, bins),
		Counting:  services.NewCountingService(repo, bins, txns),
		Sessions:  services.NewSessionService(repo, bins, txns),
		Imports:   services.NewImportService(repo, receiving),
		Exports:   services.NewExportService(repo),
	}
}
