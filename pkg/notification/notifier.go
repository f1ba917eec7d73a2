package notification

// NotificationData carries the per-message fields for a notification.
type NotificationData struct {
	To      string            // Recipient identifier (e.g., email address)
	Subject string            // Optional: overrides the template subject
	Body    string            // Optional: pre-rendered content
	Data    map[string]string // Template data (e.g., the verification code)
}

// Notifier delivers a notification of the given type through one channel.
type Notifier interface {
	Send(noticeType NoticeType, notification NotificationData, template NoticeTemplate) error
}
