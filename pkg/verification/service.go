package verification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cse-discord/verify-bot/pkg/audit"
	"github.com/cse-discord/verify-bot/pkg/notification"
)

// RoleProvider is the platform-side owner of the verified role. The service
// only reads it (to short-circuit already-verified users) and grants it on a
// successful code match.
type RoleProvider interface {
	HasRole(ctx context.Context, userID string) (bool, error)
	GrantRole(ctx context.Context, userID string) error
}

// Service drives verification attempts through their lifecycle. Every inbound
// platform event is translated into exactly one of its methods; each method
// returns an Outcome for the caller to render.
type Service struct {
	repo                AttemptRepository
	validator           *Validator
	roles               RoleProvider
	notificationManager *notification.NotificationManager
	auditRecorder       audit.Recorder
}

// NewService creates a new verification service.
func NewService(
	repo AttemptRepository,
	validator *Validator,
	roles RoleProvider,
	notificationManager *notification.NotificationManager,
	auditRecorder audit.Recorder,
) *Service {
	return &Service{
		repo:                repo,
		validator:           validator,
		roles:               roles,
		notificationManager: notificationManager,
		auditRecorder:       auditRecorder,
	}
}

// RequestEmailEntry handles the "enter email" button. If an attempt is
// already pending the caller gets a re-entry offer instead of the form.
func (s *Service) RequestEmailEntry(ctx context.Context, userID string) Outcome {
	if out, done := s.checkAlreadyVerified(ctx, userID); done {
		return out
	}

	pending, err := s.repo.HasPending(ctx, userID)
	if err != nil {
		slog.Error("Failed to check pending attempt", "user_id", userID, "err", err)
		return OutcomeFailed
	}
	if pending {
		return OutcomeReentryOffer
	}
	return OutcomeShowEmailForm
}

// RequestReentry handles the re-entry button: the user asked for the email
// form again, so it is shown regardless of the pending attempt.
func (s *Service) RequestReentry(ctx context.Context, userID string) Outcome {
	if out, done := s.checkAlreadyVerified(ctx, userID); done {
		return out
	}
	return OutcomeShowEmailForm
}

// SubmitEmail validates the submitted address, binds a fresh code to the
// user's attempt (overwriting any prior one) and emails the code. Email
// delivery is best effort: the attempt is already recorded, so a send
// failure is logged and the user is still told to check their inbox.
func (s *Service) SubmitEmail(ctx context.Context, userID, raw string) Outcome {
	if out, done := s.checkAlreadyVerified(ctx, userID); done {
		return out
	}

	email, err := s.validator.Normalize(raw)
	if err != nil {
		return OutcomeInvalidEmail
	}

	code, err := GenerateCode()
	if err != nil {
		slog.Error("Failed to generate verification code", "user_id", userID, "err", err)
		return OutcomeFailed
	}

	attempt, err := s.repo.Put(ctx, userID, email, code)
	if err != nil {
		slog.Error("Failed to store verification attempt", "user_id", userID, "err", err)
		return OutcomeFailed
	}
	slog.Info("Created verification code", "user_id", userID, "email", email, "attempt_id", attempt.ID)

	if err := s.sendCodeEmail(email, code); err != nil {
		slog.Error("Failed to send verification email", "user_id", userID, "email", email, "err", err)
	}
	return OutcomeCodeSent
}

// RequestCodeEntry handles the "enter code" button.
func (s *Service) RequestCodeEntry(ctx context.Context, userID string) Outcome {
	if out, done := s.checkAlreadyVerified(ctx, userID); done {
		return out
	}

	pending, err := s.repo.HasPending(ctx, userID)
	if err != nil {
		slog.Error("Failed to check pending attempt", "user_id", userID, "err", err)
		return OutcomeFailed
	}
	if !pending {
		return OutcomeNoPendingAttempt
	}
	return OutcomeShowCodeForm
}

// SubmitCode compares the submitted code against the bound attempt. On a
// match the role is granted first, then the audit line is written, then the
// attempt is removed, in that order, so a crash mid-way leaves the user
// verified rather than stranded without role or attempt. A mismatch leaves
// the attempt intact; retries are unlimited.
func (s *Service) SubmitCode(ctx context.Context, userID, displayName, raw string) Outcome {
	if out, done := s.checkAlreadyVerified(ctx, userID); done {
		return out
	}

	attempt, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNoAttempt) {
		return OutcomeNoPendingAttempt
	}
	if err != nil {
		slog.Error("Failed to load verification attempt", "user_id", userID, "err", err)
		return OutcomeFailed
	}

	if raw != attempt.Code {
		return OutcomeCodeMismatch
	}

	if err := s.roles.GrantRole(ctx, userID); err != nil {
		slog.Error("Failed to grant verified role", "user_id", userID, "err", err)
		return OutcomeFailed
	}

	if s.auditRecorder != nil {
		entry := audit.Entry{
			UserID:      userID,
			Email:       attempt.Email,
			Timestamp:   time.Now().UTC(),
			DisplayName: displayName,
		}
		if err := s.auditRecorder.Record(ctx, entry); err != nil {
			// The role is already granted; never roll completion back on the audit sink.
			slog.Error("Failed to write audit record", "user_id", userID, "err", err)
		}
	}

	if err := s.repo.Remove(ctx, userID); err != nil {
		slog.Error("Failed to remove verification attempt", "user_id", userID, "err", err)
	}

	slog.Info("User verified", "user_id", userID, "email", attempt.Email, "attempt_id", attempt.ID)
	return OutcomeComplete
}

// checkAlreadyVerified runs the role short-circuit shared by every input.
// The second return value reports whether the transition is already decided.
func (s *Service) checkAlreadyVerified(ctx context.Context, userID string) (Outcome, bool) {
	verified, err := s.roles.HasRole(ctx, userID)
	if err != nil {
		slog.Error("Failed to check verified role", "user_id", userID, "err", err)
		return OutcomeFailed, true
	}
	if verified {
		return OutcomeAlreadyVerified, true
	}
	return "", false
}

func (s *Service) sendCodeEmail(email, code string) error {
	if s.notificationManager == nil {
		slog.Warn("Notification manager not configured, skipping email send")
		return nil
	}

	data := notification.NotificationData{
		To: email,
		Data: map[string]string{
			"Code": code,
		},
	}
	return s.notificationManager.Send(notification.VerificationCodeNotice, data)
}
