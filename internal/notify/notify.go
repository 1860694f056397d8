// Package notify defines the messaging collaborator used for
// accountability-pod invitations and nudges. The core never talks to a
// mail provider directly; it hands a Notification to a Notifier.
package notify

import "context"

// Kind identifies the type of pod notification.
type Kind string

const (
	KindPodInvite Kind = "pod_invite"
	KindPodNudge  Kind = "pod_nudge"
)

// Notification is a single outbound message to a pod member.
type Notification struct {
	Kind      Kind
	Recipient string
	Subject   string
	Body      string
}

// Notifier delivers notifications. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
