package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"law-agenda-api/internal/calendar"
	"law-agenda-api/internal/model"
	"law-agenda-api/internal/store"
	"law-agenda-api/internal/timewindow"
)

type createScheduleRequest struct {
	Lawyer        string `json:"lawyer" binding:"required"`
	Client        string `json:"client" binding:"required"`
	ProcessNumber string `json:"process_number"`
	Online        bool   `json:"online"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Notes         string `json:"notes"`
}

func (h *Handler) CreateSchedule(c *gin.Context) {
	var req createScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lawyer, client, date and time required"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if !timewindow.Valid(req.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time must fall between 06:00 and 18:00"})
		return
	}

	// no overlap check: identical slots are allowed to coexist
	sc := &model.Schedule{
		Lawyer:        req.Lawyer,
		Client:        req.Client,
		ProcessNumber: req.ProcessNumber,
		Online:        req.Online,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
	}
	if err := h.store.CreateSchedule(c.Request.Context(), sc); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": sc.ID})
}

func (h *Handler) ListSchedules(c *gin.Context) {
	schedules, err := h.store.ListSchedules(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

var dateKey = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// GetSchedule dispatches on the path key: a numeric id fetches one record,
// a YYYY-MM-DD date lists that day's appointments.
func (h *Handler) GetSchedule(c *gin.Context) {
	key := c.Param("key")
	if dateKey.MatchString(key) {
		schedules, err := h.store.ListSchedulesByDate(c.Request.Context(), key)
		if err != nil {
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"date": key, "schedules": schedules})
		return
	}

	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule id"})
		return
	}
	sc, err := h.store.GetSchedule(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": sc})
}

type updateScheduleRequest struct {
	Online *bool `json:"online" binding:"required"`
}

// UpdateSchedule mutates only the online flag; anything else in the patch is
// dropped. Date, time and parties are fixed at creation.
func (h *Handler) UpdateSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule id"})
		return
	}
	var req updateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Online == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "online field required"})
		return
	}

	err = h.store.SetScheduleOnline(c.Request.Context(), id, *req.Online)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "online": *req.Online})
}

func (h *Handler) DeleteSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule id"})
		return
	}
	err = h.store.DeleteSchedule(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "schedule not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Calendar returns the month grid with appointment days marked.
func (h *Handler) Calendar(c *gin.Context) {
	year, yerr := strconv.Atoi(c.Param("year"))
	month, merr := strconv.Atoi(c.Param("month"))
	if yerr != nil || merr != nil || year < 1 || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year or month"})
		return
	}

	dates, err := h.store.ScheduleDatesInMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		internalError(c, err)
		return
	}
	cells := calendar.ProjectMonth(year, time.Month(month), dates)
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "cells": cells})
}
