package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"weddingconsole/models"
	"weddingconsole/services/hall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HallManagerHandler serves the hall-manager dashboard endpoints.
type HallManagerHandler struct {
	Service hall.HallService
}

func NewHallManagerHandler(svc hall.HallService) *HallManagerHandler {
	return &HallManagerHandler{Service: svc}
}

// Dashboard handles GET /api/hall-manager/dashboard.
func (h *HallManagerHandler) Dashboard(c *gin.Context) {
	view, err := h.Service.Dashboard(c.Request.Context(), accountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateHall handles PATCH /api/hall-manager/hall (multipart form).
func (h *HallManagerHandler) UpdateHall(c *gin.Context) {
	indices, err := parseIndices(c.PostFormArray("deleteIndices"))
	if err != nil {
		respondBindError(c, err)
		return
	}
	edit := models.HallEdit{
		FullName:        c.PostForm("fullName"),
		HallName:        c.PostForm("hallName"),
		HallAddress:     c.PostForm("hallAddress"),
		HallDescription: c.PostForm("hallDescription"),
		HallCapacity:    c.PostForm("hallCapacity"),
		HallPrice:       c.PostForm("hallPrice"),
		HallPhone:       c.PostForm("hallPhone"),
		DeleteIndices:   indices,
	}

	form, err := c.MultipartForm()
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		respondBindError(c, err)
		return
	}
	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	if form != nil {
		for _, fh := range form.File["images"] {
			f, err := fh.Open()
			if err != nil {
				respondBindError(c, err)
				return
			}
			opened = append(opened, f)
			edit.NewImages = append(edit.NewImages, models.ImageUpload{Filename: fh.Filename, Content: f})
		}
	}

	manager, err := h.Service.UpdateHall(c.Request.Context(), accountID(c), edit)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Hall updated", zap.String("managerId", manager.ID), zap.Int("images", len(manager.Images)))
	c.JSON(http.StatusOK, manager)
}

// DecideBooking handles PUT /api/hall-manager/bookings/:id/status.
func (h *HallManagerHandler) DecideBooking(c *gin.Context) {
	var req models.StatusChange
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	booking, err := h.Service.DecideBooking(c.Request.Context(), accountID(c), c.Param("id"), req.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// parseIndices accepts repeated fields and comma-separated lists.
func parseIndices(values []string) ([]int, error) {
	var out []int
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				return nil, errors.New("deleteIndices must be integers")
			}
			out = append(out, n)
		}
	}
	return out, nil
}
