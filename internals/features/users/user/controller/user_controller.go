package controller

import (
	"errors"

	"kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/u/users/me
func (ctl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var u model.UserModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonOK(c, "ok", u)
}
