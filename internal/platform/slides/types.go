package slides

// generateRequest is the body submitted to the generation endpoint.
type generateRequest struct {
	Prompt  string          `json:"prompt"`
	Options generateOptions `json:"options"`
}

// generateOptions carries per-request generation options.
type generateOptions struct {
	Language string `json:"language"`
}

// statusResponse is the payload of the job status endpoint.
type statusResponse struct {
	Status string       `json:"status"`
	Result statusResult `json:"result"`
}

// statusResult holds the artifact pointers of a finished job. Depending on
// service version the view URL arrives as gammaUrl or url.
type statusResult struct {
	ExportURL string `json:"exportUrl"`
	GammaURL  string `json:"gammaUrl"`
	URL       string `json:"url"`
}

// Job status values reported by the generation service. Only the literal
// "completed" is a successful terminal state.
const (
	statusCompleted = "completed"
	statusFailed    = "failed"
	statusError     = "error"
)
