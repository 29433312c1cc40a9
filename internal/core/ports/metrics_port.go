package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	RecordSubmission(outcome string)
	RecordExport(kind string)
	RecordLogin(outcome string)
	RecordIdleTransition(state string)
}
