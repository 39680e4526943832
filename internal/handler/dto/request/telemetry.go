package request

// LogErrorRequest is the client-side error telemetry payload. Fields are
// free-form; the sink only logs them.
type LogErrorRequest struct {
	Message   string  `json:"message" binding:"required"`
	Stack     *string `json:"stack"`
	URL       *string `json:"url"`
	UserAgent *string `json:"userAgent"`
}
