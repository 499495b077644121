// Package service defines interfaces for core, stateless domain logic.
package service

import "context"

// MailSender delivers templated notification email. Delivery failure is an
// operational concern, not a business error: implementations log it and report
// false, they never return an error to the caller.
type MailSender interface {
	// Send renders the reset-password template with the recipient name and
	// action URL and delivers it to the address. Reports whether delivery
	// was handed off successfully.
	Send(ctx context.Context, toAddress, recipientName, subject, actionURL string) bool
}
