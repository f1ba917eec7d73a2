// Package verification implements the email verification state machine for
// the Discord community.
//
// A member proves control of an institutional email address in two steps:
// they submit the address through a modal, receive a one-time 6-digit code by
// email, and submit the code back. On a match the bot grants the verified
// role and appends an audit line.
//
// # Lifecycle
//
// Per user the flow is Unverified-NoAttempt -> Unverified-PendingCode ->
// Verified. The states are not stored; they are derived from attempt-store
// membership and the platform role. A user that already holds the role is
// Verified no matter what the store says.
//
//	svc := verification.NewService(repo, validator, roles, notificationManager, recorder)
//
//	out := svc.SubmitEmail(ctx, userID, "brutus.1@osu.edu") // OutcomeCodeSent
//	out = svc.SubmitCode(ctx, userID, displayName, code)    // OutcomeComplete
//
// # Invariants
//
//   - At most one live attempt per user; a new valid email submission
//     replaces the attempt in place.
//   - An attempt exists iff the user submitted a valid email and has not yet
//     completed verification.
//   - Success ordering: role grant, then audit write, then attempt removal.
//     A grant failure aborts the transition with no mutation.
//
// Attempts never expire and wrong codes can be retried indefinitely; both are
// accepted scope limitations of the deployment.
//
// Collaborator failures (role lookup/grant, email send, audit write) are
// logged; only a failed role read or grant surfaces to the user, as
// OutcomeFailed.
package verification
