package api

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/core"
	"cpu-scheduler-sim/internal/report"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/simulation"
)

type SchedulerHandler interface {
	RunSimulation(ctx *fiber.Ctx) error
	LastSimulation(ctx *fiber.Ctx) error
	LastSimulationChart(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig

	// one simulation at a time, across all requests
	running sync.Mutex

	mu   sync.RWMutex
	last *responses.SimulationResponse
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) RunSimulation(ctx *fiber.Ctx) error {
	var request requests.SimulationRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if err := request.Validate(s.config.MaxProcessCount); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	seed := request.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	response, err := s.simulate(ctx.Context(), request.ProcessCount, seed)
	if err != nil {
		log.WithError(err).Error("simulation failed")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}

	s.mu.Lock()
	s.last = response
	s.mu.Unlock()

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) LastSimulation(ctx *fiber.Ctx) error {
	last := s.lastSimulation()
	if last == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no simulation has run yet"})
	}
	return ctx.JSON(last)
}

func (s *SchedulerHandlerImpl) LastSimulationChart(ctx *fiber.Ctx) error {
	last := s.lastSimulation()
	if last == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no simulation has run yet"})
	}

	png, err := report.RenderChart(last.Results)
	if err != nil {
		log.WithError(err).Error("rendering chart")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not render chart"})
	}
	ctx.Type("png")
	return ctx.Send(png)
}

func (s *SchedulerHandlerImpl) lastSimulation() *responses.SimulationResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

func (s *SchedulerHandlerImpl) simulate(ctx context.Context, n int, seed int64) (*responses.SimulationResponse, error) {
	s.running.Lock()
	defer s.running.Unlock()

	events := &core.EventLog{}
	runs, err := simulation.New(s.config.TimeUnit, events).RunAll(ctx, n, seed)
	if err != nil {
		return nil, err
	}

	response := &responses.SimulationResponse{
		ProcessCount: n,
		Seed:         seed,
		Results:      make([]responses.ScheduleResponse, 0, len(runs)),
	}
	all := events.Events()
	for _, run := range runs {
		response.Results = append(response.Results, schedulers.GenerateResponse(run, all))
	}
	return response, nil
}
