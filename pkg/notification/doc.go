// Package notification provides a small notifier abstraction used to deliver
// the verification code email.
//
// A NotificationManager maps notice types to registered channel templates and
// notifiers. The only channel wired today is SMTP email (go-mail); the
// Notifier interface keeps the door open for others and MockNotifier backs
// the tests.
//
//	nm, err := notification.NewNotificationManagerWithOptions(
//	    notification.WithSMTP(smtpConfig),
//	    notification.WithVerificationCodeTemplate(),
//	)
//	err = nm.Send(notification.VerificationCodeNotice, notification.NotificationData{
//	    To:   "brutus.1@osu.edu",
//	    Data: map[string]string{"Code": "042137"},
//	})
package notification
