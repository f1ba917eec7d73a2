package config

// VerificationConfig holds the email-validation and audit settings.
type VerificationConfig struct {
	// EmailDomain is the fixed institutional domain accepted by the validator.
	EmailDomain string `env:"VERIFY_EMAIL_DOMAIN" env-default:"osu.edu"`

	// EmailAliasPrefix is the long-form domain alias stripped before
	// validation.
	EmailAliasPrefix string `env:"VERIFY_EMAIL_ALIAS_PREFIX" env-default:"buckeyemail."`

	// AuditLogPath is the append-only CSV file recording successful
	// verifications.
	AuditLogPath string `env:"VERIFY_AUDIT_LOG_PATH" env-default:"verified.csv"`
}
