package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/services"
	"github.com/yeremiapane/restaurant-floorplan/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReservationController struct {
	Planner *floorplan.Planner
}

func NewReservationController(planner *floorplan.Planner) *ReservationController {
	return &ReservationController{Planner: planner}
}

type assignRequest struct {
	TableID string `json:"table_id"`
}

// GetReservations -> semua reservasi, atau satu hari dengan ?date=YYYY-MM-DD
func (rc *ReservationController) GetReservations(c *gin.Context) {
	date, err := utils.ParseDateParam(c.Query("date"), "")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	reservations, err := rc.Planner.Reservations(date)
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetUnassignedReservations -> reservasi yang belum dapat meja, default hari ini
func (rc *ReservationController) GetUnassignedReservations(c *gin.Context) {
	date, err := utils.ParseDateParam(c.Query("date"), utils.Today())
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	reservations, err := rc.Planner.Unassigned(date)
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Unassigned reservations for "+date, reservations)
}

// ValidateAssignment -> cek saja tanpa menyimpan (dipakai saat drag di atas meja)
func (rc *ReservationController) ValidateAssignment(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.TableID == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrTableIDRequired)
		return
	}

	a, err := rc.Planner.TryAssign(c.Param("reservation_id"), req.TableID)
	if err != nil {
		respondFloorError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table can be assigned", a)
}

// AssignTable -> validasi lalu simpan meja ke reservasi
func (rc *ReservationController) AssignTable(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.TableID == "" {
		utils.RespondError(c, http.StatusBadRequest, ErrTableIDRequired)
		return
	}

	reservationID := c.Param("reservation_id")
	a, err := rc.Planner.Assign(reservationID, req.TableID)
	if err != nil {
		respondFloorError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d assigned to reservation %s (%s, party of %d)",
		a.Table.Number, reservationID, a.Reservation.CustomerName, a.Reservation.PartySize)
	utils.RespondJSON(c, http.StatusOK, "Table assigned", a)
}

// ExportReservations -> download sheet .xlsx untuk host stand
func (rc *ReservationController) ExportReservations(c *gin.Context) {
	date, err := utils.ParseDateParam(c.Query("date"), utils.Today())
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	reservations, err := rc.Planner.Reservations(date)
	if err != nil {
		respondFloorError(c, err)
		return
	}
	tables, err := rc.Planner.Tables()
	if err != nil {
		respondFloorError(c, err)
		return
	}

	data, err := services.GenerateReservationSheet(date, reservations, tables)
	if err != nil {
		utils.ErrorLogger.Printf("Error generating reservation sheet for %s: %v", date, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reservations-`+date+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
