package interfaces

import "context"

// IMessageDispatcher abstracts the external messaging channel (WhatsApp
// Cloud API in production).
//
// Send receives the phone number exactly as stored on the job; any
// dispatch-target normalization (country code prefixing) happens inside the
// dispatcher and never mutates stored records. There is no delivery
// contract beyond "accepted for dispatch".
//
// TrackingLink builds the opaque customer lookup reference
// ({origin}?track={jobId}) appended to composed messages.

type IMessageDispatcher interface {
	Send(ctx context.Context, phone, message string) error
	TrackingLink(jobID string) string
}
