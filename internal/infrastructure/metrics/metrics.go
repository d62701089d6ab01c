package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values shared by services and middleware.
const (
	ScanRecorded     = "scan_recorded"
	QuotaDenied      = "quota_denied"
	AnalysisSaved    = "analysis_saved"
	PlanChanged      = "plan_changed"
	FileUploaded     = "file_uploaded"
	WebhookApplied   = "webhook_applied"
	WebhookDuplicate = "webhook_duplicate"
)

func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resumeapi",
			Name:      "general_counters",
		},
		[]string{"result"})
}
