// internal/workers/tasks.go
package workers

const (
	TypeSalesReport     = "report:sales"
	TypeDrugStatusSweep = "drugs:status_sweep"
	TypeSendEmail       = "email:send"
	TypeCleanupOldJobs  = "cleanup:old_jobs"
)

// SalesReportPayload carries the parameters for an async sales report job.
type SalesReportPayload struct {
	JobID       string `json:"job_id"`
	CustomerID  int64  `json:"customer_id"`
	RequestedBy string `json:"requested_by,omitempty"`
}

// EmailPayload carries an outbound notification email.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
