package model

import "time"

// Message represents a contact-form submission from a public visitor.
// The JSON field names are the canonical contact-form schema and must not
// be renamed; stored messages and both front-ends rely on them.
type Message struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"FullName"`
	Email        string    `json:"Email"`
	Subject      string    `json:"Subject"`
	Body         string    `json:"Message"`
	MobileNumber int64     `json:"Mobile_Number"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateMessageRequest is the public submission payload. Every field is
// required; the mobile number must be numeric.
type CreateMessageRequest struct {
	FullName     string `json:"FullName" binding:"required"`
	Email        string `json:"Email" binding:"required"`
	Subject      string `json:"Subject" binding:"required"`
	Body         string `json:"Message" binding:"required"`
	MobileNumber int64  `json:"Mobile_Number" binding:"required"`
}
