package forwarder

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PratikDhanave/event-forwarder-service/internal/config"
	"github.com/PratikDhanave/event-forwarder-service/internal/models"
	"github.com/PratikDhanave/event-forwarder-service/internal/supabase"
)

// Handler translates one inbound business-event request into one outbound
// record insertion. It holds no state that outlives a single invocation.
type Handler struct {
	cfg      config.Config
	inserter supabase.Inserter
	log      *zap.SugaredLogger
}

// New builds a Handler with its configuration and outbound dependency
// injected, so tests can substitute a fake backend.
func New(cfg config.Config, ins supabase.Inserter, log *zap.SugaredLogger) *Handler {
	return &Handler{cfg: cfg, inserter: ins, log: log}
}

// Track handles the forward endpoint.
//
// Pre-flight OPTIONS requests are answered immediately with no body.
// Everything else runs parse → validate → forward, and every failure —
// parse, validation, configuration, upstream — collapses to the same
// 500 envelope, distinguishable only by message text.
func (h *Handler) Track(c *gin.Context) {
	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusOK)
		return
	}

	var req models.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, fmt.Errorf("invalid JSON payload: %w", err))
		return
	}

	name, ok := eventName(req.Event)
	if !ok {
		h.fail(c, ErrEventRequired)
		return
	}

	if !h.cfg.SupabaseConfigured() {
		h.fail(c, ErrConfigMissing)
		return
	}

	rec := buildRecord(req, name)

	if err := h.inserter.Insert(c.Request.Context(), rec); err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// fail logs the failure (message only, never the credential) and writes the
// uniform error envelope.
func (h *Handler) fail(c *gin.Context, err error) {
	h.log.Errorw("event forward failed",
		"error", err.Error(),
		"request_id", c.GetString("request_id"),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// eventName applies the contract's truthiness rule to the loosely typed
// event field. "", 0, false, null and absent are all rejected; any other
// value names the event, stringified if it is not already a string.
func eventName(v any) (string, bool) {
	switch ev := v.(type) {
	case nil:
		return "", false
	case string:
		return ev, ev != ""
	case bool:
		return "true", ev
	case float64:
		if ev == 0 {
			return "", false
		}
		return strconv.FormatFloat(ev, 'f', -1, 64), true
	default:
		// Objects and arrays are truthy; render them the way the record
		// message would.
		b, _ := json.Marshal(ev)
		return string(b), true
	}
}

// buildRecord constructs the outbound health record for a validated request.
//
// metrics.timestamp and checked_at default independently, so they can differ
// by microseconds when the request omits its timestamp. That matches the data
// the backend already holds; do not collapse them into one capture.
func buildRecord(req models.TrackRequest, name string) models.HealthRecord {
	value := float64(1)
	if req.Value != nil && *req.Value != 0 {
		value = *req.Value
	}

	ts := req.Timestamp
	if ts == "" {
		ts = time.Now().UTC().Format(time.RFC3339Nano)
	}

	checkedAt := req.Timestamp
	if checkedAt == "" {
		checkedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}

	return models.HealthRecord{
		Component: models.ComponentBusinessMetrics,
		Status:    models.StatusHealthy,
		Message:   fmt.Sprintf("Business event: %s", name),
		Details: models.RecordDetails{
			Event:      name,
			Value:      req.Value,
			Properties: req.Properties,
			UserID:     req.UserID,
		},
		Metrics: models.RecordMetrics{
			Event:     name,
			Value:     value,
			Timestamp: ts,
		},
		CheckedAt: checkedAt,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
}
