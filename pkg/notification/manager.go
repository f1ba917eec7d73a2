package notification

import (
	"fmt"
)

// NotificationSystem represents a delivery channel (e.g., email).
type NotificationSystem string

// NoticeType identifies a kind of notification (e.g., "verification_code").
type NoticeType string

const (
	EmailSystem NotificationSystem = "email"

	// VerificationCodeNotice is the one-time code email sent during
	// verification.
	VerificationCodeNotice NoticeType = "verification_code"

	ExampleNotice NoticeType = "example"
)

// NoticeTemplate holds the subject and the text/HTML bodies for a notice.
// At least one of Text or Html must be set.
type NoticeTemplate struct {
	Subject string
	Text    string
	Html    string
}

// NotificationManager routes notices to the notifiers registered for them.
type NotificationManager struct {
	notifiers            map[NotificationSystem]Notifier
	notificationRegistry map[NoticeType]map[NotificationSystem]NoticeTemplate
}

// NewNotificationManager creates and returns a new NotificationManager.
func NewNotificationManager() *NotificationManager {
	return &NotificationManager{
		notifiers:            make(map[NotificationSystem]Notifier),
		notificationRegistry: make(map[NoticeType]map[NotificationSystem]NoticeTemplate),
	}
}

// RegisterNotifier registers a notifier for a specific system.
func (nm *NotificationManager) RegisterNotifier(system NotificationSystem, notifier Notifier) {
	nm.notifiers[system] = notifier
}

// RegisterNotification adds a notice template to the registry.
func (nm *NotificationManager) RegisterNotification(noticeType NoticeType, system NotificationSystem, template NoticeTemplate) error {
	if noticeType == "" || system == "" {
		return fmt.Errorf("invalid input: notice type and system cannot be empty")
	}
	if template.Subject == "" || (template.Text == "" && template.Html == "") {
		return fmt.Errorf("invalid template: subject and at least one of text/html are required")
	}

	if _, exists := nm.notificationRegistry[noticeType]; !exists {
		nm.notificationRegistry[noticeType] = make(map[NotificationSystem]NoticeTemplate)
	}
	nm.notificationRegistry[noticeType][system] = template
	return nil
}

// Send delivers a notice through every system that has a template registered
// for it. It fails if no template or no notifier is registered.
func (nm *NotificationManager) Send(noticeType NoticeType, notification NotificationData) error {
	systemTemplates, exists := nm.notificationRegistry[noticeType]
	if !exists || len(systemTemplates) == 0 {
		return fmt.Errorf("no templates registered for notice type: %s", noticeType)
	}

	for system, template := range systemTemplates {
		notifier, exists := nm.notifiers[system]
		if !exists {
			return fmt.Errorf("no notifier registered for system: %s under notice type: %s", system, noticeType)
		}
		if err := notifier.Send(noticeType, notification, template); err != nil {
			return err
		}
	}
	return nil
}
