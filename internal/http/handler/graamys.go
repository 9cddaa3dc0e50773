package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"clubsite/internal/model"
	"clubsite/internal/service"
)

// ResultsPasswordHeader lets clients send the results password outside the body.
const ResultsPasswordHeader = "X-Graamys-Password"

type nominationRequest struct {
	BestDancer         string `json:"bestDancer"`
	BestAthlete        string `json:"bestAthlete"`
	FunniestMember     string `json:"funniestMember"`
	BestDressed        string `json:"bestDressed"`
	MostSpirited       string `json:"mostSpirited"`
	RisingStar         string `json:"risingStar"`
	BestDuo            string `json:"bestDuo"`
	MostValuableMember string `json:"mostValuableMember"`
	LifeOfTheParty     string `json:"lifeOfTheParty"`
}

func (r nominationRequest) toModel() model.Nomination {
	return model.Nomination{
		BestDancer:         r.BestDancer,
		BestAthlete:        r.BestAthlete,
		FunniestMember:     r.FunniestMember,
		BestDressed:        r.BestDressed,
		MostSpirited:       r.MostSpirited,
		RisingStar:         r.RisingStar,
		BestDuo:            r.BestDuo,
		MostValuableMember: r.MostValuableMember,
		LifeOfTheParty:     r.LifeOfTheParty,
	}
}

type resultsRequest struct {
	Password string `json:"password"`
}

// SubmitNomination godoc
// @Summary Submit a Graamys ballot
// @Accept json
// @Produce json
// @Param ballot body nominationRequest true "one nominee per category"
// @Success 200 {object} map[string]any
// @Failure 500 {object} errorPayload
// @Router /api/graamys [post]
func SubmitNomination(svc service.GraamysService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req nominationRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		stored, err := svc.Submit(c.UserContext(), req.toModel())
		if err != nil {
			log.Error("submit nomination failed", zap.String("request_id", requestIDFromCtx(c)), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit nomination")
		}
		return c.JSON(fiber.Map{"success": true, "id": stored.ID})
	}
}

// GraamysResults godoc
// @Summary Password-gated top-5 tally per category
// @Accept json
// @Produce json
// @Param body body resultsRequest true "shared secret"
// @Success 200 {object} map[string]any
// @Failure 401 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/graamys/results [post]
func GraamysResults(svc service.GraamysService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req resultsRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
			}
		}
		password := req.Password
		if password == "" {
			password = c.Get(ResultsPasswordHeader)
		}

		res, err := svc.Results(c.UserContext(), password)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
			}
			log.Error("fetch graamys results failed", zap.String("request_id", requestIDFromCtx(c)), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch results")
		}
		return c.JSON(fiber.Map{"success": true, "data": res})
	}
}

// GraamysStats godoc
// @Summary Value frequencies per nominee field
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 500 {object} errorPayload
// @Router /api/graamys/stats [get]
func GraamysStats(svc service.GraamysService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			log.Error("fetch graamys stats failed", zap.String("request_id", requestIDFromCtx(c)), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch stats")
		}
		return c.JSON(fiber.Map{"success": true, "stats": stats})
	}
}
