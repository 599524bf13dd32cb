package domain

import "time"

// NotificationType affects only how a notice is presented.
type NotificationType string

const (
	NotificationInfo     NotificationType = "info"
	NotificationWarning  NotificationType = "warning"
	NotificationCritical NotificationType = "critical"
	NotificationSuccess  NotificationType = "success"
)

// Notification is a system notice shown in the notification dropdown.
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
}
