package handlers

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/darzi-app/darzi/internal/domain/model"
)

// StreamHandler exposes live job snapshots as server-sent events.
type StreamHandler struct {
	facade StreamFacade
}

// NewStreamHandler constructs StreamHandler.
func NewStreamHandler(facade StreamFacade) *StreamHandler {
	return &StreamHandler{facade: facade}
}

// Jobs handles GET /api/jobs/stream. The filter comes from query params; the
// stream ends when the client disconnects. A slow client skips intermediate
// snapshots rather than backing up the subscription.
func (h *StreamHandler) Jobs(c *gin.Context) {
	filter := model.JobFilter{
		Status:     model.JobStatus(c.Query("status")),
		CustomerID: c.Query("customer_id"),
		TailorID:   c.Query("tailor_id"),
	}

	snapshots := make(chan []model.Job, 1)
	cancel := h.facade.SubscribeJobs(filter, func(jobs []model.Job) {
		select {
		case snapshots <- jobs:
		default:
		}
	})
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case jobs := <-snapshots:
			c.SSEvent("jobs", toJobResponses(jobs))
			return true
		}
	})
}
