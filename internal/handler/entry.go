package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/micronlogivdev/iftaway/internal/export"
	"github.com/micronlogivdev/iftaway/internal/middleware"
	"github.com/micronlogivdev/iftaway/internal/model"
	"github.com/micronlogivdev/iftaway/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// 导入文件大小上限
const maxImportSize = 10 << 20

// EntryHandler 加油记录处理器
type EntryHandler struct {
	entries *service.EntryService
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entries *service.EntryService) *EntryHandler {
	return &EntryHandler{entries: entries}
}

// RegisterRoutes 注册路由
func (h *EntryHandler) RegisterRoutes(r *gin.RouterGroup, importLimit gin.HandlerFunc) {
	entries := r.Group("/entries")
	{
		entries.GET("", h.ListEntries)
		entries.POST("", h.CreateEntry)
		entries.PUT("/:id", h.UpdateEntry)
		entries.PUT("/:id/ignore", h.IgnoreEntry)
		entries.DELETE("/:id", h.DeleteEntry)
		entries.GET("/import/template", h.ImportTemplate)
		if importLimit != nil {
			entries.POST("/import", importLimit, h.ImportEntries)
		} else {
			entries.POST("/import", h.ImportEntries)
		}
	}

	trucks := r.Group("/trucks")
	{
		trucks.GET("", h.ListTrucks)
		trucks.POST("", h.CreateTruck)
		trucks.DELETE("/:id", h.DeleteTruck)
	}
}

// ListEntries 获取加油记录
// @Summary List fuel entries
// @Tags Entries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.FuelEntry
// @Router /entries [get]
func (h *EntryHandler) ListEntries(c *gin.Context) {
	entries, err := h.entries.ListEntries(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if entries == nil {
		entries = []model.FuelEntry{}
	}

	c.JSON(http.StatusOK, entries)
}

// CreateEntry 创建加油记录
// @Summary Create fuel entry
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body model.FuelEntryRequest true "Fuel entry"
// @Success 201 {object} model.FuelEntry
// @Failure 400 {object} ErrorResponse
// @Router /entries [post]
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req model.FuelEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.entries.CreateEntry(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// UpdateEntry 更新加油记录
// @Summary Update fuel entry
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param entry body model.FuelEntryRequest true "Fuel entry"
// @Success 200 {object} model.FuelEntry
// @Failure 404 {object} ErrorResponse
// @Router /entries/{id} [put]
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.FuelEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.entries.UpdateEntry(c.Request.Context(), middleware.UserID(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// IgnoreEntry 忽略/恢复加油记录
// @Summary Ignore or restore a fuel entry
// @Tags Entries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param body body model.IgnoreEntryRequest true "Ignore flag"
// @Success 200 {object} model.FuelEntry
// @Router /entries/{id}/ignore [put]
func (h *EntryHandler) IgnoreEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req model.IgnoreEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.entries.SetIgnored(c.Request.Context(), middleware.UserID(c), id, req.IsIgnored)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteEntry 删除加油记录
// @Summary Delete fuel entry
// @Tags Entries
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 204
// @Router /entries/{id} [delete]
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.entries.DeleteEntry(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ImportEntries 批量导入加油记录
// @Summary Import fuel entries
// @Description Upload a CSV or XLSX file as multipart field "file", or post CSV as the raw body
// @Tags Entries
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file false "CSV or XLSX file"
// @Success 201 {object} service.ImportResult
// @Failure 400 {object} map[string]interface{}
// @Router /entries/import [post]
func (h *EntryHandler) ImportEntries(c *gin.Context) {
	var (
		reader io.Reader
		format = service.ImportCSV
	)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		if fileHeader.Size > maxImportSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is too large"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
			return
		}
		defer file.Close()

		if strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
			format = service.ImportXLSX
		}
		reader = file
	} else {
		reader = io.LimitReader(c.Request.Body, maxImportSize)
	}

	result, err := h.entries.Import(c.Request.Context(), middleware.UserID(c), format, reader)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ImportTemplate 下载导入模板
// @Summary Download the XLSX import template
// @Tags Entries
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /entries/import/template [get]
func (h *EntryHandler) ImportTemplate(c *gin.Context) {
	buf, err := export.ImportTemplateXLSX()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=fuel_entries_template.xlsx")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ListTrucks 获取车辆列表
// @Summary List trucks
// @Tags Trucks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Truck
// @Router /trucks [get]
func (h *EntryHandler) ListTrucks(c *gin.Context) {
	trucks, err := h.entries.ListTrucks(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if trucks == nil {
		trucks = []model.Truck{}
	}

	c.JSON(http.StatusOK, trucks)
}

// CreateTruck 创建车辆
// @Summary Create truck
// @Tags Trucks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param truck body model.CreateTruckRequest true "Truck"
// @Success 201 {object} model.Truck
// @Router /trucks [post]
func (h *EntryHandler) CreateTruck(c *gin.Context) {
	var req model.CreateTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	truck, err := h.entries.CreateTruck(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, truck)
}

// DeleteTruck 删除车辆
// @Summary Delete truck
// @Tags Trucks
// @Security BearerAuth
// @Param id path int true "Truck ID"
// @Success 204
// @Router /trucks/{id} [delete]
func (h *EntryHandler) DeleteTruck(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.entries.DeleteTruck(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
