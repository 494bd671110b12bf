package models

// CategorizeRequest is the body accepted by POST /categorize.
// Text is a pointer so an explicit "" is accepted while a missing or null
// field fails the required check.
type CategorizeRequest struct {
	Text *string `json:"text" form:"text" binding:"required"`
}

// CategorizeResponse carries the tags and priority assigned to a text.
type CategorizeResponse struct {
	Tags     []Tag    `json:"tags"`
	Priority Priority `json:"priority"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// StatusOK is the only status the service ever reports.
const StatusOK = "ok"
