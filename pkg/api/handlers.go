package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thoshino/wardroster/internal/config"
	"github.com/thoshino/wardroster/pkg/core/scheduler"
	"github.com/thoshino/wardroster/pkg/db"
)

// RunStore is the slice of the database the read endpoints need.
type RunStore interface {
	GetScheduleRuns(ctx context.Context) ([]db.ScheduleRun, error)
	GetScheduleCells(ctx context.Context, runID string) ([]db.ScheduleCell, error)
}

type Handler struct {
	Store  RunStore
	Logger *zap.Logger
}

func NewHandler(store RunStore, logger *zap.Logger) *Handler {
	return &Handler{Store: store, Logger: logger}
}

type staffRequest struct {
	ID             string   `json:"id" binding:"required"`
	Name           string   `json:"name"`
	Shifts         []string `json:"shifts" binding:"required"`
	RestWeekdays   []string `json:"restWeekdays"`
	MinMonthlyDays int      `json:"minMonthlyDays"`
	MaxMonthlyDays int      `json:"maxMonthlyDays"`
	MinWeeklyDays  int      `json:"minWeeklyDays"`
	MaxWeeklyDays  int      `json:"maxWeeklyDays"`
}

type dayOffRequest struct {
	StaffID string `json:"staffId" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

type scheduleRequest struct {
	Year    int             `json:"year" binding:"required"`
	Month   int             `json:"month" binding:"required"`
	Roster  []staffRequest  `json:"roster" binding:"required"`
	DaysOff []dayOffRequest `json:"daysOff"`
}

type scheduleRow struct {
	StaffID string   `json:"staffId"`
	Cells   []string `json:"cells"`
}

type scheduleResponse struct {
	Year   int               `json:"year"`
	Month  int               `json:"month"`
	Days   int               `json:"days"`
	Rows   []scheduleRow     `json:"rows"`
	Report *scheduler.Report `json:"report"`
}

// GenerateSchedule runs the allocator over the roster in the request body.
// It is stateless: nothing is persisted.
func (h *Handler) GenerateSchedule(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := toSchedulingInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := scheduler.Schedule(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Logger.Info("Generated schedule",
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("staff", len(req.Roster)))

	c.JSON(http.StatusOK, toScheduleResponse(req, result))
}

func (h *Handler) ListRuns(c *gin.Context) {
	if h.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no database configured"})
		return
	}

	runs, err := h.Store.GetScheduleRuns(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list schedule runs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list schedule runs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (h *Handler) GetRunCells(c *gin.Context) {
	if h.Store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no database configured"})
		return
	}

	runID := c.Param("id")
	cells, err := h.Store.GetScheduleCells(c.Request.Context(), runID)
	if err != nil {
		h.Logger.Error("Failed to load schedule cells", zap.String("runId", runID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule cells"})
		return
	}
	if len(cells) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "run not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runId": runID, "cells": cells})
}

func toSchedulingInput(req scheduleRequest) (scheduler.SchedulingInput, error) {
	roster := make([]scheduler.StaffProfile, 0, len(req.Roster))
	for _, s := range req.Roster {
		rest := make([]time.Weekday, 0, len(s.RestWeekdays))
		for _, name := range s.RestWeekdays {
			wd, err := config.ParseWeekday(name)
			if err != nil {
				return scheduler.SchedulingInput{}, err
			}
			rest = append(rest, wd)
		}
		roster = append(roster, scheduler.StaffProfile{
			ID:             s.ID,
			Name:           s.Name,
			AllowedShifts:  s.Shifts,
			RestWeekdays:   rest,
			MinMonthlyDays: s.MinMonthlyDays,
			MaxMonthlyDays: s.MaxMonthlyDays,
			MinWeeklyDays:  s.MinWeeklyDays,
			MaxWeeklyDays:  s.MaxWeeklyDays,
		})
	}

	daysOff := make([]scheduler.DayOff, 0, len(req.DaysOff))
	for _, d := range req.DaysOff {
		date, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return scheduler.SchedulingInput{}, err
		}
		daysOff = append(daysOff, scheduler.DayOff{StaffID: d.StaffID, Date: date})
	}

	return scheduler.SchedulingInput{
		Year:    req.Year,
		Month:   time.Month(req.Month),
		Roster:  roster,
		DaysOff: daysOff,
	}, nil
}

func toScheduleResponse(req scheduleRequest, result *scheduler.Result) scheduleResponse {
	rows := make([]scheduleRow, 0, len(result.Grid.StaffIDs()))
	for _, id := range result.Grid.StaffIDs() {
		cells := make([]string, 0, result.Grid.Days)
		for day := 1; day <= result.Grid.Days; day++ {
			cells = append(cells, result.Grid.Cell(id, day).Display())
		}
		rows = append(rows, scheduleRow{StaffID: id, Cells: cells})
	}

	return scheduleResponse{
		Year:   req.Year,
		Month:  req.Month,
		Days:   result.Grid.Days,
		Rows:   rows,
		Report: result.Report,
	}
}
