package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/midpoint-service/internal/domain"
	"github.com/midpoint-service/internal/pkg/errors"
	"github.com/midpoint-service/internal/pkg/utils"
	"github.com/midpoint-service/internal/pkg/validator"
	"github.com/midpoint-service/internal/usecase"
	"github.com/midpoint-service/internal/usecase/dto"
)

// MidpointHandler - обработчик запросов точки встречи и истории
type MidpointHandler struct {
	midpointUC *usecase.MidpointUseCase
	historyUC  *usecase.HistoryUseCase
	logger     *zap.Logger
}

// NewMidpointHandler - создание нового MidpointHandler
func NewMidpointHandler(midpointUC *usecase.MidpointUseCase, historyUC *usecase.HistoryUseCase, logger *zap.Logger) *MidpointHandler {
	return &MidpointHandler{
		midpointUC: midpointUC,
		historyUC:  historyUC,
		logger:     logger,
	}
}

// LegacyMidpoint godoc
// @Summary Точка встречи (совместимый формат)
// @Description Геокодирует 2 или 3 города, вычисляет середину (или центроид), выполняет обратное геокодирование центра и строит граф-звезду. Ответ без обёртки data/meta.
// @Tags Midpoint
// @Accept json
// @Produce json
// @Param request body dto.MidpointRequest true "Названия городов"
// @Success 200 {object} dto.MidpointResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/midpoint [post]
func (h *MidpointHandler) LegacyMidpoint(c *fiber.Ctx) error {
	record, err := h.compute(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(dto.NewMidpointResponse(record))
}

// ComputeMidpoint godoc
// @Summary Точка встречи
// @Description То же вычисление, что и /api/midpoint, в стандартной обёртке. meta.id можно запросить через /api/v1/history/{id}.
// @Tags Midpoint
// @Accept json
// @Produce json
// @Param request body dto.MidpointRequest true "Названия городов"
// @Success 200 {object} utils.SuccessResponse{data=dto.MidpointResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/midpoint [post]
func (h *MidpointHandler) ComputeMidpoint(c *fiber.Ctx) error {
	start := time.Now()

	record, err := h.compute(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.NewMidpointResponse(record), &utils.Meta{
		ID:       record.ID.String(),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// MidpointGeoJSON godoc
// @Summary Точка встречи в GeoJSON
// @Description Возвращает FeatureCollection: точки входных городов, центр и рёбра звезды (LineString) с расстоянием в км.
// @Tags Midpoint
// @Accept json
// @Produce json
// @Param request body dto.MidpointRequest true "Названия городов"
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/midpoint/geojson [post]
func (h *MidpointHandler) MidpointGeoJSON(c *fiber.Ctx) error {
	record, err := h.compute(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	body, err := dto.NewFeatureCollection(record).MarshalJSON()
	if err != nil {
		h.logger.Error("Failed to encode GeoJSON", zap.String("id", record.ID.String()), zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer.Wrap(err))
	}

	c.Set(fiber.HeaderContentType, "application/geo+json")
	return c.Send(body)
}

// ListHistory godoc
// @Summary История вычислений
// @Description Возвращает последние результаты, новые первыми
// @Tags History
// @Produce json
// @Param limit query int false "Максимальное количество результатов" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.HistoryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/history [get]
func (h *MidpointHandler) ListHistory(c *fiber.Ctx) error {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("invalid query: %v", err))
	}
	if err := validator.Validate(&q); err != nil {
		return utils.SendError(c, err)
	}

	records, err := h.historyUC.List(c.UserContext(), q.Limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp := dto.NewHistoryResponse(records)
	return utils.SendSuccess(c, resp, &utils.Meta{
		Total: resp.Total,
		Limit: q.Limit,
	})
}

// GetHistory godoc
// @Summary Результат по ID
// @Tags History
// @Produce json
// @Param id path string true "ID результата (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=dto.HistoryEntry}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/history/{id} [get]
func (h *MidpointHandler) GetHistory(c *fiber.Ctx) error {
	record, err := h.historyUC.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.NewHistoryEntry(record), &utils.Meta{ID: record.ID.String()})
}

// compute parses and validates the body, runs the pipeline and records the result.
func (h *MidpointHandler) compute(c *fiber.Ctx) (*domain.ResultRecord, error) {
	var req dto.MidpointRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("invalid request body: %v", err)
	}

	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	ctx := c.UserContext()
	record, err := h.midpointUC.ComputeCenter(ctx, req.Names())
	if err != nil {
		return nil, err
	}

	// история не критична для ответа
	if err := h.historyUC.Record(ctx, record); err != nil {
		h.logger.Warn("Result not recorded", zap.String("id", record.ID.String()), zap.Error(err))
	}

	return record, nil
}
