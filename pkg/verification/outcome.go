package verification

// Outcome is the tag a transition reports back to the caller. The caller
// renders it into a platform message; the service never builds UI payloads.
type Outcome string

const (
	// OutcomeAlreadyVerified short-circuits every input for users that already hold the role.
	OutcomeAlreadyVerified Outcome = "already_verified"

	// OutcomeShowEmailForm asks the caller to present the email entry form.
	OutcomeShowEmailForm Outcome = "show_email_form"

	// OutcomeReentryOffer asks the caller to offer re-entering the email instead
	// of showing the form again, because an attempt is already pending.
	OutcomeReentryOffer Outcome = "reentry_offer"

	// OutcomeInvalidEmail reports a malformed institutional address.
	OutcomeInvalidEmail Outcome = "invalid_email"

	// OutcomeCodeSent reports that a code was bound to the attempt and emailed.
	OutcomeCodeSent Outcome = "code_sent"

	// OutcomeShowCodeForm asks the caller to present the code entry form.
	OutcomeShowCodeForm Outcome = "show_code_form"

	// OutcomeNoPendingAttempt reports a code-side input with no attempt on file.
	OutcomeNoPendingAttempt Outcome = "no_pending_attempt"

	// OutcomeCodeMismatch reports a wrong code; the attempt stays intact.
	OutcomeCodeMismatch Outcome = "code_mismatch"

	// OutcomeComplete reports a successful verification: role granted,
	// audit line written, attempt removed.
	OutcomeComplete Outcome = "verification_complete"

	// OutcomeFailed reports a collaborator failure; no state was mutated.
	OutcomeFailed Outcome = "verification_failed"
)
