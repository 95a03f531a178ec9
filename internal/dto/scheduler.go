package dto

// SweepError records a single user's failure during a batch sweep
type SweepError struct {
	UserID string `json:"user_id"`
	Error  string `json:"error"`
}

// SweepReport is the outcome of a monthly batch sweep invocation.
// Errors holds at most the first MaxReportedErrors failures; ErrorCount
// is the true total.
type SweepReport struct {
	Success           bool         `json:"success"`
	Skipped           bool         `json:"skipped"`
	Reason            string       `json:"reason,omitempty"`
	UsersProcessed    int          `json:"users_processed"`
	TotalUsers        int          `json:"total_users"`
	InsightsGenerated int          `json:"insights_generated"`
	Errors            []SweepError `json:"errors"`
	ErrorCount        int          `json:"error_count"`
	ElapsedMs         int64        `json:"elapsed_ms"`
}

// SweepFailureResponse is returned when the sweep itself fails before or
// during user discovery
type SweepFailureResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	ElapsedMs int64  `json:"elapsed_ms"`
}
