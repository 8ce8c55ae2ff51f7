package types

import "github.com/google/uuid"

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// DeliveryID is the X-GitHub-Delivery header of a webhook.
type DeliveryID string
