package api

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"cpu-scheduler/internal/simulator"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error

	AddProcess(ctx *fiber.Ctx) error
	ChangeAlgorithm(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	CurrentState(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	simulator *simulator.Simulator
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, simulator *simulator.Simulator) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, simulator: simulator}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.runStateless(ctx, core.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.runStateless(ctx, core.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.runStateless(ctx, core.ShortestJobFirst)
}

// AllAlgorithms runs every discipline over the same jobs so they can be
// compared side by side.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx)
	}
	set, err := request.ProcessSet(s.config.MaxTime)
	if err != nil {
		return writeError(ctx, err)
	}

	results := make(map[string]responses.ScheduleResponse, len(core.Algorithms))
	for _, algorithm := range core.Algorithms {
		discipline, err := core.ParseDiscipline(string(algorithm), request.TimeQuantum, s.config.RoundRobinTimeQuantum)
		if err != nil {
			return writeError(ctx, err)
		}
		result, err := schedulers.Schedule(set, discipline, nil)
		if err != nil {
			return writeError(ctx, err)
		}
		results[string(algorithm)] = responses.NewScheduleResponse(result)
	}
	return ctx.JSON(fiber.Map{"success": true, "results": results})
}

func (s *SchedulerHandlerImpl) runStateless(ctx *fiber.Ctx, algorithm core.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx)
	}
	discipline, err := core.ParseDiscipline(string(algorithm), request.TimeQuantum, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return writeError(ctx, err)
	}
	set, err := request.ProcessSet(s.config.MaxTime)
	if err != nil {
		return writeError(ctx, err)
	}
	result, err := schedulers.Schedule(set, discipline, nil)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(fiber.Map{"success": true, "results": responses.NewScheduleResponse(result)})
}

func (s *SchedulerHandlerImpl) AddProcess(ctx *fiber.Ctx) error {
	var request requests.AddProcessRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx)
	}
	if err := s.simulator.AddProcess(request.ProcessId, request.ArrivalTime, request.BurstTime); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success":       true,
		"message":       fmt.Sprintf("process %s added", request.ProcessId),
		"process_count": len(s.simulator.CurrentState().Processes),
	})
}

func (s *SchedulerHandlerImpl) ChangeAlgorithm(ctx *fiber.Ctx) error {
	var request requests.ChangeAlgorithmRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequest(ctx)
	}
	if err := s.simulator.SetDiscipline(request.Algorithm, request.TimeQuantum); err != nil {
		return writeError(ctx, err)
	}
	state := s.simulator.CurrentState()
	return ctx.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("algorithm changed to %s", state.Discipline),
		"state":   responses.NewStateResponse(state),
	})
}

func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	result, err := s.simulator.Schedule()
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"results": responses.NewScheduleResponse(result),
		"message": fmt.Sprintf("scheduling completed using %s", result.Discipline),
	})
}

func (s *SchedulerHandlerImpl) Reset(ctx *fiber.Ctx) error {
	s.simulator.Reset()
	return ctx.JSON(fiber.Map{"success": true, "message": "scheduler reset"})
}

func (s *SchedulerHandlerImpl) CurrentState(ctx *fiber.Ctx) error {
	return ctx.JSON(responses.NewStateResponse(s.simulator.CurrentState()))
}

func invalidRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid request format"})
}

func writeError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(errorStatus(err)).JSON(fiber.Map{"success": false, "error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrDuplicateID):
		return fiber.StatusConflict
	case errors.Is(err, core.ErrInvalidValue), errors.Is(err, core.ErrUnknownDiscipline):
		return fiber.StatusBadRequest
	case errors.Is(err, core.ErrEmptyInput):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
