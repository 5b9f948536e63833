package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/rand"

	"rf-wms/controllers/helpers"
	"rf-wms/models"
)

// SeedController membuat data dummy untuk latihan scan di device RF.
type SeedController struct {
	Deps *Deps
}

func NewSeedController(deps *Deps) *SeedController {
	return &SeedController{Deps: deps}
}

var seedZones = []string{"Zone A - Storage", "Zone B - Storage", "Zone C - Picking", "Zone D - Bulk"}

// GenerateDummyBins menambah bin acak berisi item acak ke datastore.
func (c *SeedController) GenerateDummyBins(ctx *fiber.Ctx) error {
	count := ctx.QueryInt("count", 10)
	if count < 1 || count > 500 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "count must be between 1 and 500",
		})
	}

	bins, err := c.Deps.Repo.GetBins()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	existing := make(map[string]bool, len(bins))
	for _, b := range bins {
		existing[b.BinCode] = true
	}

	created := make([]models.BinLocation, 0, count)
	for i := 0; i < count; i++ {
		aisle := rune('A' + rand.Intn(5))
		code := fmt.Sprintf("%c-%02d-%02d", aisle, rand.Intn(10)+1, rand.Intn(20)+1)
		if existing[code] {
			continue
		}
		existing[code] = true

		itemCode := fmt.Sprintf("ITEM-%03d", rand.Intn(1000))
		bin := models.BinLocation{
			BinCode:  code,
			Zone:     seedZones[rand.Intn(len(seedZones))],
			Capacity: 100,
			Status:   "active",
			Items: []models.BinItem{
				{
					ItemCode:    itemCode,
					Description: fmt.Sprintf("Dummy Item %s", itemCode),
					Quantity:    rand.Intn(90) + 10,
				},
			},
		}
		bins = append(bins, bin)
		created = append(created, bin)
	}

	if err := c.Deps.Repo.SaveBins(bins); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	actor := helpers.GetActor(ctx)
	helpers.InsertActivityLog(c.Deps.DB, actor.UserID, actor.Username, "SEED",
		fmt.Sprintf("Generated %d dummy bins", len(created)))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d dummy bins created", len(created)),
		"data":    created,
	})
}
