package dailystatus

import (
	"net/http"
	"time"

	"go-academy/internal/attendance"
	dailystatuserrors "go-academy/internal/dailystatus/errors"
	"go-academy/internal/shared/apperror"
	"go-academy/internal/shared/contextutil"
	"go-academy/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	wsWriteWait    = 10 * time.Second
	wsPingInterval = 30 * time.Second
)

type Handler struct {
	registry *Registry
	source   EventSource
	roster   Roster
	cache    *BoardCache
	clock    DayClock
	loc      *time.Location
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewHandler(registry *Registry, source EventSource, roster Roster, cache *BoardCache, clk DayClock, loc *time.Location, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.L()
	}
	return &Handler{
		registry: registry,
		source:   source,
		roster:   roster,
		cache:    cache,
		clock:    clk,
		loc:      loc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger.Named("dailystatus.handler"),
	}
}

func writeBindError(c *gin.Context, err error) {
	response.FromError(c, apperror.MapValidationError(err))
}

// GetBoard serves today's board from the tenant's session. Any other date is aggregated
// from the store on demand.
func (h *Handler) GetBoard(c *gin.Context) {
	var q BoardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	tenantID := c.GetString("tenant_id")

	session, err := h.registry.Get(ctx, tenantID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if q.Date == "" || q.Date == session.DayKey() {
		response.Success(c, http.StatusOK, MapSnapshot(session.Snapshot(), h.loc), nil)
		return
	}

	snap, err := Compute(ctx, h.source, h.roster, tenantID, q.Date)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, MapSnapshot(snap, h.loc), nil)
}

func (h *Handler) RecordStatus(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("studentId"))
	if err != nil {
		response.FromError(c, dailystatuserrors.ErrInvalidStudentID)
		return
	}

	var req RecordStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	status, ok := attendance.ParseStatus(req.Status)
	if !ok {
		response.FromError(c, dailystatuserrors.ErrInvalidStatus)
		return
	}

	ctx := c.Request.Context()
	session, err := h.registry.Get(ctx, c.GetString("tenant_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	event, err := session.RecordStatusChange(ctx, studentID, status, req.Notes)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.writeRecorded(c, session, event)
}

// RecordKiosk records a change entered at a kiosk after the student was identified by
// attendance number.
func (h *Handler) RecordKiosk(c *gin.Context) {
	var req KioskRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		response.FromError(c, dailystatuserrors.ErrInvalidStudentID)
		return
	}
	status, ok := attendance.ParseStatus(req.Status)
	if !ok {
		response.FromError(c, dailystatuserrors.ErrInvalidStatus)
		return
	}

	ctx := c.Request.Context()
	session, err := h.registry.Get(ctx, c.GetString("tenant_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	event, err := session.RecordDeviceStatusChange(ctx, studentID, status, req.Comment, req.DeviceID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.writeRecorded(c, session, event)
}

func (h *Handler) writeRecorded(c *gin.Context, session *Session, event attendance.Event) {
	resp := RecordStatusResponse{Event: attendance.MapEvent(event)}
	if st, ok := session.StatusMap()[event.StudentID]; ok {
		mapped := attendance.MapDailyStatus(st, h.loc)
		resp.Student = &mapped
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

// Reload re-reads today from the store, replacing whatever the session holds.
func (h *Handler) Reload(c *gin.Context) {
	ctx := c.Request.Context()
	session, err := h.registry.Get(ctx, c.GetString("tenant_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	session.LoadDay(ctx, h.clock.Today())
	response.Success(c, http.StatusOK, MapSnapshot(session.Snapshot(), h.loc), nil)
}

// GetSnapshot returns the board last written to the cache by the event consumer.
func (h *Handler) GetSnapshot(c *gin.Context) {
	var q BoardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}
	if q.Date == "" {
		q.Date = h.clock.Today()
	}

	board, err := h.cache.Get(c.Request.Context(), c.GetString("tenant_id"), q.Date)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, board, nil)
}

// Stream pushes the board over a websocket: once on connect, then after every change.
// A slow client only ever receives the newest board.
func (h *Handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()
	logger := contextutil.GetLogger(ctx, h.logger)

	session, err := h.registry.Get(ctx, c.GetString("tenant_id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	updates := make(chan Snapshot, 1)
	push := func(s Snapshot) {
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- s:
		default:
		}
	}
	unsubscribe := session.OnStatusMapChanged(push)
	defer unsubscribe()
	push(session.Snapshot())

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	var lastVersion uint64
	sent := false
	for {
		select {
		case <-closed:
			return
		case <-session.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(wsWriteWait))
			return
		case snap := <-updates:
			if sent && snap.Version <= lastVersion {
				continue
			}
			lastVersion, sent = snap.Version, true
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(MapSnapshot(snap, h.loc)); err != nil {
				logger.Debug("websocket write failed", zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
