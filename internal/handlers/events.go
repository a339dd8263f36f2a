package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/rafael/betterlife-api/internal/database"
	"github.com/rafael/betterlife-api/internal/engine"
	"github.com/rafael/betterlife-api/internal/middleware"
	"github.com/rafael/betterlife-api/internal/models"
)

// parseDay parses a YYYY-MM-DD date string into a UTC calendar day.
func parseDay(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return engine.DateOnly(d), nil
}

func ListEvents(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	query := database.DB.Where("user_id = ?", userID)
	if from := c.Query("from"); from != "" {
		day, err := parseDay(from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid from date, expected YYYY-MM-DD",
			})
		}
		query = query.Where("date >= ?", day)
	}

	var events []models.Event
	if err := query.Order("date DESC, created_at DESC").Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load events",
		})
	}
	return c.JSON(events)
}

func CreateEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.ActionID == uuid.Nil || req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Action ID and date are required",
		})
	}

	day, err := parseDay(req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
	}

	event := models.Event{
		UserID:         userID,
		ActionID:       req.ActionID,
		Date:           day,
		Note:           req.Note,
		PlannedExpense: req.PlannedExpense,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create event",
		})
	}

	broadcastScoreUpdate(userID, EventLogged, event)

	return c.Status(fiber.StatusCreated).JSON(event)
}

// UpdateEvent edits an event in place: action reference, note, planned
// flag and date may all change; the id never does.
func UpdateEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	var event models.Event
	if err := database.DB.Where("id = ? AND user_id = ?", eventID, userID).First(&event).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ActionID != nil {
		event.ActionID = *req.ActionID
	}
	if req.Date != nil {
		day, err := parseDay(*req.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		}
		event.Date = day
	}
	if req.Note != nil {
		event.Note = *req.Note
	}
	if req.PlannedExpense != nil {
		event.PlannedExpense = *req.PlannedExpense
	}

	if err := database.DB.Save(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update event",
		})
	}

	broadcastScoreUpdate(userID, EventUpdated, event)

	return c.JSON(event)
}

func DeleteEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid event ID",
		})
	}

	result := database.DB.Where("id = ? AND user_id = ?", eventID, userID).Delete(&models.Event{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete event",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	broadcastScoreUpdate(userID, EventDeleted, nil)

	return c.SendStatus(fiber.StatusNoContent)
}

// broadcastScoreUpdate tells the user's other connected clients that the
// event log changed and ships them a fresh snapshot for today.
func broadcastScoreUpdate(userID uuid.UUID, eventType string, payload interface{}) {
	WS.Broadcast(userID, WSEvent{
		Type: eventType,
		Data: payload,
	})

	events, actions, err := loadHistory(userID)
	if err != nil {
		return
	}
	snap := engine.ComputeScore(time.Now(), events, actions)
	WS.Broadcast(userID, WSEvent{
		Type: EventScoreUpdated,
		Data: snap,
	})
}

// loadHistory fetches the user's full event history and the catalog; the
// engine does its own filtering and windowing.
func loadHistory(userID uuid.UUID) ([]models.Event, []models.Action, error) {
	var events []models.Event
	if err := database.DB.Where("user_id = ?", userID).Find(&events).Error; err != nil {
		return nil, nil, err
	}
	var actions []models.Action
	if err := database.DB.Find(&actions).Error; err != nil {
		return nil, nil, err
	}
	return events, actions, nil
}
