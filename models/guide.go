package models

// GuideAnswer is the Sanctuary Guide's reply. Response is the model's raw
// markdown; HTML is that markdown rendered and sanitized server-side. The
// browser must only ever inject HTML, never Response.
type GuideAnswer struct {
	Response string `json:"response"`
	HTML     string `json:"html"`
}
