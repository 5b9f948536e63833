package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"rf-wms/models"
	"rf-wms/repositories"
)

func RunSeeders(db *gorm.DB) {
	SeedUserMaster(db)
	SeedSampleData(db)
}

func SeedUserMaster(db *gorm.DB) {
	users := []models.User{
		{
			Username: "admin",
			Password: "admin",
			FullName: "Admin",
			Role:     "admin",
			IsActive: true,
		},
		{
			Username: "operator",
			Password: "operator",
			FullName: "RF Operator",
			Role:     "operator",
			IsActive: true,
		},
	}

	for _, user := range users {
		var existing models.User
		err := db.Where("username = ?", user.Username).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hashed, hashErr := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
			if hashErr != nil {
				log.Println("Gagal hash password:", user.Username, hashErr)
				continue
			}
			user.Password = string(hashed)
			if err := db.Create(&user).Error; err != nil {
				log.Println("Gagal insert user:", user.Username, err)
			} else {
				log.Println("Insert user:", user.Username)
			}
		}
	}
}

// SeedSampleData mengisi aggregate awal untuk demo. Tidak menimpa data yang
// sudah ada.
func SeedSampleData(db *gorm.DB) {
	store := repositories.NewGormStore(db)
	repo := repositories.NewInventoryRepository(store)

	bins, err := repo.GetBins()
	if err != nil {
		log.Println("Gagal membaca bins:", err)
		return
	}
	if len(bins) > 0 {
		return
	}

	sampleBins := []models.BinLocation{
		{BinCode: "A-01-01", Zone: "Zone A - Furniture", Capacity: 100, Status: "active",
			Items: []models.BinItem{{ItemCode: "DESK-001", Description: "Standing Desk", Quantity: 10}}},
		{BinCode: "A-01-02", Zone: "Zone A - Furniture", Capacity: 100, Status: "active",
			Items: []models.BinItem{{ItemCode: "CHAIR-001", Description: "Ergonomic Chair", Quantity: 15}}},
		{BinCode: "B-02-01", Zone: "Zone B - Electronics", Capacity: 200, Status: "active",
			Items: []models.BinItem{{ItemCode: "MOUSE-001", Description: "Wireless Mouse", Quantity: 45}}},
		{BinCode: "B-02-02", Zone: "Zone B - Electronics", Capacity: 200, Status: "active",
			Items: []models.BinItem{{ItemCode: "KEYB-001", Description: "Mechanical Keyboard", Quantity: 30}}},
		{BinCode: "B-03-01", Zone: "Zone B - Electronics", Capacity: 150, Status: "active",
			Items: []models.BinItem{{ItemCode: "MON-001", Description: "24\" LED Monitor", Quantity: 18}}},
		{BinCode: "C-01-01", Zone: "Zone C - Computing", Capacity: 50, Status: "active",
			Items: []models.BinItem{{ItemCode: "LAPTOP-001", Description: "Business Laptop", Quantity: 12}}},
		{BinCode: "C-02-01", Zone: "Zone C - Computing", Capacity: 100, Status: "active",
			Items: []models.BinItem{{ItemCode: "TABLET-001", Description: "10\" Tablet", Quantity: 25}}},
		{BinCode: "D-01-01", Zone: "Zone D - Receiving", Capacity: 500, Status: "active", Items: []models.BinItem{}},
		{BinCode: "E-01-01", Zone: "Zone E - Shipping", Capacity: 500, Status: "active", Items: []models.BinItem{}},
	}
	if err := repo.SaveBins(sampleBins); err != nil {
		log.Println("Gagal seed bins:", err)
		return
	}

	samplePOs := []models.PurchaseOrder{
		{ID: "po-001", PONumber: "PO-2026-001", Vendor: "Tech Supplies Inc.", Status: "pending", ExpectedDate: "2026-09-28",
			Items: []models.POItem{
				{ItemCode: "MOUSE-001", Description: "Wireless Mouse", OrderedQty: 50, RemainingQty: 50},
				{ItemCode: "KEYB-001", Description: "Mechanical Keyboard", OrderedQty: 30, RemainingQty: 30},
				{ItemCode: "MON-001", Description: "24\" LED Monitor", OrderedQty: 20, RemainingQty: 20},
			}},
		{ID: "po-002", PONumber: "PO-2026-002", Vendor: "Office Essentials Co.", Status: "receiving", ExpectedDate: "2026-09-27",
			Items: []models.POItem{
				{ItemCode: "DESK-001", Description: "Standing Desk", OrderedQty: 15, ReceivedQty: 10, RemainingQty: 5, BinCode: "A-01-01"},
				{ItemCode: "CHAIR-001", Description: "Ergonomic Chair", OrderedQty: 25, ReceivedQty: 15, RemainingQty: 10, BinCode: "A-01-02"},
			}},
	}
	if err := repo.SavePurchaseOrders(samplePOs); err != nil {
		log.Println("Gagal seed purchase orders:", err)
	}

	sampleOrders := []models.Order{
		{ID: "ord-001", OrderNumber: "ORD-2026-101", Customer: "ABC Corporation", Priority: "urgent", Status: "pending", WaveID: "wave-001",
			Items: []models.OrderItem{
				{ItemCode: "MOUSE-001", Description: "Wireless Mouse", OrderedQty: 5, BinCode: "B-02-01"},
				{ItemCode: "KEYB-001", Description: "Mechanical Keyboard", OrderedQty: 5, BinCode: "B-02-02"},
			}},
		{ID: "ord-002", OrderNumber: "ORD-2026-102", Customer: "XYZ Enterprises", Priority: "normal", Status: "pending", WaveID: "wave-001",
			Items: []models.OrderItem{
				{ItemCode: "MON-001", Description: "24\" LED Monitor", OrderedQty: 3, BinCode: "B-03-01"},
				{ItemCode: "DESK-001", Description: "Standing Desk", OrderedQty: 2, BinCode: "A-01-01"},
			}},
	}
	if err := repo.SaveOrders(sampleOrders); err != nil {
		log.Println("Gagal seed orders:", err)
	}

	sampleWaves := []models.Wave{
		{ID: "wave-001", WaveNumber: "WAVE-001", Orders: []string{"ord-001", "ord-002"}, Status: "pending", CreatedDate: "2026-08-28T08:00:00Z"},
	}
	if err := repo.SaveWaves(sampleWaves); err != nil {
		log.Println("Gagal seed waves:", err)
	}

	var items []models.Item
	for _, bin := range sampleBins {
		for _, binItem := range bin.Items {
			items = append(items, models.Item{
				BinCode:     bin.BinCode,
				ItemCode:    binItem.ItemCode,
				Description: binItem.Description,
				ExpectedQty: binItem.Quantity,
			})
		}
	}
	if err := repo.SaveActiveItems(items); err != nil {
		log.Println("Gagal seed items:", err)
	}
	if err := repo.SaveMasterItems(items); err != nil {
		log.Println("Gagal seed master items:", err)
	}

	log.Println("Sample data seeded")
}
