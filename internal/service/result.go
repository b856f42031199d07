package service

// Reasons attached to a failed ActionResult. Handlers map each one onto an HTTP status.
const (
	ReasonDuplicate     = "duplicate"
	ReasonNotPending    = "not_pending"
	ReasonExpired       = "expired"
	ReasonEmailMismatch = "mismatch"
	ReasonInvalidToken  = "invalid_token"
	ReasonNotSubscribed = "not_subscribed"
)

// ActionResult is the outcome of a state-changing operation whose expected failures
// are reported to the caller rather than returned as errors
type ActionResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Reason  string      `json:"-"`
}

func succeeded(message string, data interface{}) *ActionResult {
	return &ActionResult{Success: true, Message: message, Data: data}
}

func failed(reason, message string) *ActionResult {
	return &ActionResult{Success: false, Message: message, Reason: reason}
}
