package helpers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rf-wms/models"
)

// InsertActivityLog mencatat aksi user untuk audit.
func InsertActivityLog(db *gorm.DB, userID uint, username, action, detail string) error {
	log := models.ActivityLog{
		UserID:   userID,
		Username: username,
		Action:   action,
		Detail:   detail,
	}
	return db.Create(&log).Error
}

type Actor struct {
	UserID   uint
	Username string
	Role     string
}

// GetActor membaca identitas user yang disimpan middleware di context.
func GetActor(ctx *fiber.Ctx) Actor {
	actor := Actor{}
	if id, ok := ctx.Locals("userID").(float64); ok {
		actor.UserID = uint(id)
	}
	if username, ok := ctx.Locals("username").(string); ok {
		actor.Username = username
	}
	if role, ok := ctx.Locals("role").(string); ok {
		actor.Role = role
	}
	return actor
}
