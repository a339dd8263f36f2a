package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rafael/betterlife-api/internal/database"
	"github.com/rafael/betterlife-api/internal/models"
)

// ListActions returns the action catalog for the event logging flow.
func ListActions(c *fiber.Ctx) error {
	var actions []models.Action
	if err := database.DB.Order("name").Find(&actions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load actions",
		})
	}
	return c.JSON(actions)
}

func CreateAction(c *fiber.Ctx) error {
	var req models.CreateActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	action := models.Action{
		Name:             req.Name,
		AreaDeltas:       req.AreaDeltas,
		Synergy:          req.Synergy,
		PlannedPenalty:   req.PlannedPenalty,
		UnplannedPenalty: req.UnplannedPenalty,
	}
	if action.AreaDeltas == nil {
		action.AreaDeltas = map[models.Area]float64{}
	}

	if err := database.DB.Create(&action).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create action",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(action)
}

func UpdateAction(c *fiber.Ctx) error {
	actionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid action ID",
		})
	}

	var action models.Action
	if err := database.DB.First(&action, actionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Action not found",
		})
	}

	var req models.UpdateActionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name != nil {
		action.Name = *req.Name
	}
	if req.AreaDeltas != nil {
		action.AreaDeltas = *req.AreaDeltas
	}
	if req.Synergy != nil {
		action.Synergy = *req.Synergy
	}
	if req.PlannedPenalty != nil {
		action.PlannedPenalty = *req.PlannedPenalty
	}
	if req.UnplannedPenalty != nil {
		action.UnplannedPenalty = *req.UnplannedPenalty
	}

	if err := database.DB.Save(&action).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update action",
		})
	}

	return c.JSON(action)
}

// DeleteAction removes a catalog entry. Events referencing it stay in
// history and simply stop contributing to score.
func DeleteAction(c *fiber.Ctx) error {
	actionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid action ID",
		})
	}

	result := database.DB.Delete(&models.Action{}, actionID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete action",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Action not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
