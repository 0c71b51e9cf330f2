package controllers

import (
	"errors"
	"log"
	"strconv"
	"time"

	"glowup/backend/config"
	"glowup/backend/engine"
	"glowup/backend/middleware"
	"glowup/backend/store"
	"glowup/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// HabitsController serves the aggregate state and the two update intents.
// Every mutation is a synchronous reducer call on the loaded aggregate;
// persistence is best-effort and never blocks or rolls the state back.
type HabitsController struct {
	Gateway *store.Gateway
	Cfg     *config.Config
	Logger  *log.Logger

	// Now is swappable so tests can pin the calendar day.
	Now func() time.Time
}

func NewHabitsController(gw *store.Gateway, cfg *config.Config, logger *log.Logger) *HabitsController {
	return &HabitsController{Gateway: gw, Cfg: cfg, Logger: logger, Now: time.Now}
}

func ownerIDFromLocals(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals(middleware.UserIDKey).(uint)
	if !ok {
		return "", false
	}
	return strconv.FormatUint(uint64(userID), 10), true
}

// loadOrCreate resolves the owner's aggregate, creating fresh defaults on a
// first session, and runs the daily reconciler against today.
func (hc *HabitsController) loadOrCreate(c *fiber.Ctx, ownerID string) (engine.UserData, bool) {
	today := engine.DayKey(hc.Now())

	data, ok := hc.Gateway.Load(c.UserContext(), ownerID)
	if !ok {
		data = engine.NewUserData(ownerID, today)
		degraded := hc.Gateway.Save(c.UserContext(), ownerID, data)
		return data, degraded
	}

	reconciled := engine.Reconcile(data, today)
	if reconciled.LastVisitDate != data.LastVisitDate {
		degraded := hc.Gateway.Save(c.UserContext(), ownerID, reconciled)
		return reconciled, degraded
	}
	return reconciled, false
}

func statePayload(data engine.UserData, newlyUnlocked []engine.Badge, syncDegraded bool) fiber.Map {
	payload := fiber.Map{
		"data":         data,
		"syncDegraded": syncDegraded,
	}
	if len(newlyUnlocked) > 0 {
		payload["newlyUnlocked"] = newlyUnlocked
	}
	return payload
}

// GetState godoc
// @Summary Get the habit tracking state
// @Description Loads the aggregate, applies the daily reset, returns it
// @Tags habits
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /state [get]
func (hc *HabitsController) GetState(c *fiber.Ctx) error {
	ownerID, ok := ownerIDFromLocals(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	data, degraded := hc.loadOrCreate(c, ownerID)
	return utils.Success(c, fiber.StatusOK, statePayload(data, nil, degraded))
}

type progressInput struct {
	Progress *float64 `json:"progress"`
}

// UpdateProgress godoc
// @Summary Update a habit's progress
// @Description Records an absolute progress value and recomputes XP, streaks and badges
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param request body progressInput true "New absolute progress"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{id}/progress [post]
func (hc *HabitsController) UpdateProgress(c *fiber.Ctx) error {
	ownerID, ok := ownerIDFromLocals(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input progressInput
	if err := c.BodyParser(&input); err != nil || input.Progress == nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	data, _ := hc.loadOrCreate(c, ownerID)
	today := engine.DayKey(hc.Now())

	res, err := engine.UpdateProgress(data, c.Params("id"), *input.Progress, today)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidInput) {
			return utils.BadRequest(c, "Progress must be a non-negative number")
		}
		return utils.InternalServerError(c, "Could not update progress")
	}

	degraded := hc.Gateway.Save(c.UserContext(), ownerID, res.Data)
	return utils.Success(c, fiber.StatusOK, statePayload(res.Data, res.NewlyUnlocked, degraded))
}

type targetInput struct {
	Target *float64 `json:"target"`
}

// UpdateTarget godoc
// @Summary Update a habit's target
// @Description Changes the daily target and recomputes XP against existing progress
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param request body targetInput true "New target"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /habits/{id}/target [post]
func (hc *HabitsController) UpdateTarget(c *fiber.Ctx) error {
	ownerID, ok := ownerIDFromLocals(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input targetInput
	if err := c.BodyParser(&input); err != nil || input.Target == nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	data, _ := hc.loadOrCreate(c, ownerID)

	res, err := engine.UpdateTarget(data, c.Params("id"), *input.Target)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidInput) {
			return utils.BadRequest(c, "Target must be a number of at least 1")
		}
		return utils.InternalServerError(c, "Could not update target")
	}

	degraded := hc.Gateway.Save(c.UserContext(), ownerID, res.Data)
	return utils.Success(c, fiber.StatusOK, statePayload(res.Data, res.NewlyUnlocked, degraded))
}

// ClearState godoc
// @Summary Clear the session-local cached state
// @Description Removes the local cached copy only; the remote copy is untouched
// @Tags habits
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /state [delete]
func (hc *HabitsController) ClearState(c *fiber.Ctx) error {
	ownerID, ok := ownerIDFromLocals(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if err := hc.Gateway.Clear(ownerID); err != nil {
		hc.Logger.Printf("clearing local cache for %s failed: %v", ownerID, err)
		return utils.InternalServerError(c, "Could not clear local data")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Local data cleared",
	})
}
