package attendance

import (
	"net/http"
	"strconv"

	"go-academy/internal/shared/apperror"
	"go-academy/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	response.FromError(c, err)
}

func writeBindError(c *gin.Context, err error) {
	response.FromError(c, apperror.MapValidationError(err))
}

func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}
	return page, pageSize
}

// GetDaily lists one day's raw events, newest first.
func (h *Handler) GetDaily(c *gin.Context) {
	var q DailyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.GetDaily(c.Request.Context(), c.GetString("tenant_id"), q.Date)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, pageSize := pageParams(c)
	start, end := response.Paginate(len(resp), page, pageSize)
	meta := response.NewPaginationMeta(int64(len(resp)), page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) GetMonthly(c *gin.Context) {
	var q MonthlyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.GetMonthly(c.Request.Context(), c.GetString("tenant_id"), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetStats(c *gin.Context) {
	var q StatsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.GetStats(c.Request.Context(), c.GetString("tenant_id"), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetStudentHistory(c *gin.Context) {
	var q HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.GetStudentHistory(c.Request.Context(), c.GetString("tenant_id"), c.Param("studentId"), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) LookupAttendanceNumber(c *gin.Context) {
	var req KioskLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.LookupByAttendanceNumber(c.Request.Context(), c.GetString("tenant_id"), req.AttendanceNumber)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDeviceRecords(c *gin.Context) {
	var q DeviceRecordsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	resp, err := h.service.GetDeviceRecords(c.Request.Context(), c.GetString("tenant_id"), c.Param("studentId"), q.Limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// GetStatuses serves the attendance vocabulary for clients that render labels.
func (h *Handler) GetStatuses(c *gin.Context) {
	type item struct {
		Code       Status `json:"code"`
		Label      string `json:"label"`
		CheckedIn  bool   `json:"checked_in"`
		CheckedOut bool   `json:"checked_out"`
	}
	statuses := Statuses()
	out := make([]item, len(statuses))
	for i, s := range statuses {
		out[i] = item{Code: s.Code, Label: s.Label, CheckedIn: s.CheckedIn, CheckedOut: s.CheckedOut}
	}
	response.Success(c, http.StatusOK, out, nil)
}
