package messaging

import "net/url"

// TrackingLink builds the opaque customer lookup reference for a job:
// {origin}?track={jobId}. The token is just the job id; the tracking page
// resolves it without authentication.
func TrackingLink(origin, jobID string) string {
	if origin == "" || jobID == "" {
		return ""
	}
	return origin + "?track=" + url.QueryEscape(jobID)
}

// WaMeLink builds a wa.me deep link that opens a chat with the shop number,
// optionally pre-filled. Used for customer-initiated conversations.
func WaMeLink(shopPhone, prefilled string) string {
	base := "https://wa.me/" + NormalizeDispatchPhone(shopPhone)
	if prefilled == "" {
		return base
	}
	return base + "?text=" + url.QueryEscape(prefilled)
}
