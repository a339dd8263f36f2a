package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rafael/betterlife-api/internal/database"
	"github.com/rafael/betterlife-api/internal/engine"
	"github.com/rafael/betterlife-api/internal/middleware"
	"github.com/rafael/betterlife-api/internal/models"
	"github.com/rafael/betterlife-api/internal/services"
)

// TrophyWithProgress is a trophy decorated with the caller's evaluated
// progress and earned state.
type TrophyWithProgress struct {
	models.Trophy
	Progress engine.TrophyProgress `json:"progress"`
	Earned   bool                  `json:"earned"`
}

// ListTrophies returns every trophy/goal with the current user's progress.
func ListTrophies(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var trophies []models.Trophy
	if err := database.DB.Order("created_at").Find(&trophies).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load trophies",
		})
	}

	events, actions, err := loadHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	earned := earnedTrophyIDs(userID)

	out := make([]TrophyWithProgress, 0, len(trophies))
	for _, trophy := range trophies {
		out = append(out, TrophyWithProgress{
			Trophy:   trophy,
			Progress: engine.EvaluateTrophy(trophy, events, actions),
			Earned:   earned[trophy.ID],
		})
	}
	return c.JSON(out)
}

// GetTrophyProgress evaluates one trophy for the current user.
func GetTrophyProgress(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	trophyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid trophy ID",
		})
	}

	var trophy models.Trophy
	if err := database.DB.First(&trophy, trophyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trophy not found",
		})
	}

	events, actions, err := loadHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	return c.JSON(engine.EvaluateTrophy(trophy, events, actions))
}

// EvaluateTrophies awards every not-yet-earned trophy whose objectives are
// now all complete: records the UserTrophy, applies experience rewards,
// processes level-ups and notifies the user.
func EvaluateTrophies(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var trophies []models.Trophy
	if err := database.DB.Find(&trophies).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load trophies",
		})
	}

	events, actions, err := loadHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	earned := earnedTrophyIDs(userID)

	newlyEarned := []models.Trophy{}
	totalXP := 0
	leveledUp := false

	for _, trophy := range trophies {
		if earned[trophy.ID] {
			continue
		}
		progress := engine.EvaluateTrophy(trophy, events, actions)
		if !progress.Complete {
			continue
		}

		record := models.UserTrophy{UserID: userID, TrophyID: trophy.ID}
		if err := database.DB.Create(&record).Error; err != nil {
			continue
		}

		for _, reward := range trophy.Rewards {
			if reward.Type == models.RewardExperience && reward.Experience > 0 {
				totalXP += reward.Experience
				if user.GainExperience(reward.Experience) {
					leveledUp = true
				}
			}
		}

		notifyTrophyEarned(userID, trophy)
		newlyEarned = append(newlyEarned, trophy)
	}

	if totalXP > 0 {
		if err := database.DB.Save(&user).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save experience",
			})
		}
	}
	if leveledUp {
		notifyLevelUp(userID, user.Level)
	}

	return c.JSON(fiber.Map{
		"newlyEarned":  newlyEarned,
		"level":        user.Level,
		"experience":   user.Experience,
		"nextLevelExp": user.NextLevelExp,
	})
}

func earnedTrophyIDs(userID uuid.UUID) map[uuid.UUID]bool {
	var records []models.UserTrophy
	database.DB.Where("user_id = ?", userID).Find(&records)
	earned := make(map[uuid.UUID]bool, len(records))
	for _, r := range records {
		earned[r.TrophyID] = true
	}
	return earned
}

func notifyTrophyEarned(userID uuid.UUID, trophy models.Trophy) {
	metadata, _ := json.Marshal(map[string]string{"trophyId": trophy.ID.String()})
	meta := string(metadata)
	database.DB.Create(&models.Notification{
		UserID:   userID,
		Type:     "trophy_earned",
		Title:    "Trophy earned!",
		Body:     "You completed \"" + trophy.Name + "\"",
		Metadata: &meta,
	})

	services.Push.SendToUser(userID, "Trophy earned!", trophy.Name,
		map[string]string{"trophyId": trophy.ID.String()})

	WS.Broadcast(userID, WSEvent{
		Type: EventTrophyEarned,
		Data: trophy,
	})
}

func notifyLevelUp(userID uuid.UUID, level int) {
	database.DB.Create(&models.Notification{
		UserID: userID,
		Type:   "level_up",
		Title:  "Level up!",
		Body:   "You reached a new level",
	})

	WS.Broadcast(userID, WSEvent{
		Type: EventLevelUp,
		Data: fiber.Map{"level": level},
	})
}

// Admin CRUD

func CreateTrophy(c *fiber.Ctx) error {
	var req models.CreateTrophyRequest
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

	kind := req.Kind
	if kind == "" {
		kind = models.TrophyKindTrophy
	}
	if kind != models.TrophyKindTrophy && kind != models.TrophyKindGoal {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Kind must be trophy or goal",
		})
	}

	trophy := models.Trophy{
		Name:        req.Name,
		Description: req.Description,
		Kind:        kind,
		Objectives:  req.Objectives,
		Rewards:     req.Rewards,
	}

	if err := database.DB.Create(&trophy).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create trophy",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(trophy)
}

func UpdateTrophy(c *fiber.Ctx) error {
	trophyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid trophy ID",
		})
	}

	var trophy models.Trophy
	if err := database.DB.First(&trophy, trophyID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trophy not found",
		})
	}

	var req models.UpdateTrophyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name != nil {
		trophy.Name = *req.Name
	}
	if req.Description != nil {
		trophy.Description = *req.Description
	}
	if req.Kind != nil {
		trophy.Kind = *req.Kind
	}
	if req.Objectives != nil {
		trophy.Objectives = *req.Objectives
	}
	if req.Rewards != nil {
		trophy.Rewards = *req.Rewards
	}

	if err := database.DB.Save(&trophy).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update trophy",
		})
	}

	return c.JSON(trophy)
}

func DeleteTrophy(c *fiber.Ctx) error {
	trophyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid trophy ID",
		})
	}

	result := database.DB.Delete(&models.Trophy{}, trophyID)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete trophy",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Trophy not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
