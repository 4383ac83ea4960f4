// internals/features/lms/progress/controller/video_progress_controller.go
package controller

import (
	"errors"

	progressDTO "kampusku_backend/internals/features/lms/progress/dto"
	progressModel "kampusku_backend/internals/features/lms/progress/model"
	progressService "kampusku_backend/internals/features/lms/progress/service"
	helper "kampusku_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoProgressController struct {
	DB        *gorm.DB
	Service   *progressService.ProgressService
	Validator *validator.Validate
}

func NewVideoProgressController(db *gorm.DB) *VideoProgressController {
	return &VideoProgressController{
		DB:        db,
		Service:   progressService.NewProgressService(db),
		Validator: validator.New(),
	}
}

// POST /api/u/lms/video-progress — laporan periodik dari player
func (ctl *VideoProgressController) Report(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req progressDTO.ReportVideoProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.Clamp()
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	outcome, err := ctl.Service.Report(c.UserContext(), studentID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Progress tersimpan", outcome)
}

// GET /api/u/lms/video-progress/:material_id — progress milik sendiri
func (ctl *VideoProgressController) GetMine(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	materialID, err := uuid.Parse(c.Params("material_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Material ID tidak valid")
	}

	var progress progressModel.VideoProgressModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("video_progress_student_id = ? AND video_progress_material_id = ?", studentID, materialID).
		Take(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada progress untuk materi ini")
		}
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database sedang tidak tersedia")
	}

	return helper.JsonOK(c, "ok", progress)
}
