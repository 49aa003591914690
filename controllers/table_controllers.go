package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/models"
	"github.com/yeremiapane/restaurant-floorplan/utils"
)

type TableController struct {
	Planner *floorplan.Planner
}

func NewTableController(planner *floorplan.Planner) *TableController {
	return &TableController{Planner: planner}
}

// GetAllTables -> menampilkan seluruh meja, bisa difilter ?status=
func (tc *TableController) GetAllTables(c *gin.Context) {
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseTableStatus(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, ErrUnknownStatus)
			return
		}
		tables, err := tc.Planner.TablesByStatus(status)
		if err != nil {
			respondFloorError(c, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Tables with status: "+raw, tables)
		return
	}

	tables, err := tc.Planner.Tables()
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail satu meja
func (tc *TableController) GetTableByID(c *gin.Context) {
	table, err := tc.Planner.Table(c.Param("table_id"))
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTableStatus -> update status meja, semua status boleh dari status manapun
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	status, err := models.ParseTableStatus(body.Status)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, ErrUnknownStatus)
		return
	}

	table, err := tc.Planner.Table(c.Param("table_id"))
	if err != nil {
		respondFloorError(c, err)
		return
	}

	updated, err := tc.Planner.SetStatus(table, status)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d status changed from %s to %s", updated.Number, table.Status, updated.Status)
	utils.RespondJSON(c, http.StatusOK, "Table status updated", updated)
}

// GetFloorPlan -> meja dikelompokkan per area
func (tc *TableController) GetFloorPlan(c *gin.Context) {
	sections, err := tc.Planner.FloorPlan()
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Floor plan", sections)
}

// GetFloorStats -> statistik meja untuk dashboard
func (tc *TableController) GetFloorStats(c *gin.Context) {
	stats, err := tc.Planner.Stats()
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Floor stats", stats)
}
