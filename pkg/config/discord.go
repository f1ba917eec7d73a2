package config

// DiscordConfig holds the platform credentials and identifiers the bot needs.
type DiscordConfig struct {
	BotToken string `env:"DISCORD_BOT_TOKEN"`

	// PublicKey is the hex-encoded application public key used to verify
	// interaction webhook signatures.
	PublicKey string `env:"DISCORD_PUBLIC_KEY"`

	GuildID        string `env:"DISCORD_GUILD_ID"`
	VerifiedRoleID string `env:"DISCORD_VERIFIED_ROLE_ID"`

	// VerificationChannelID is where cmd/announce posts the instructions message.
	VerificationChannelID string `env:"DISCORD_VERIFICATION_CHANNEL_ID"`

	// HelpChannelID is mentioned in the instructions message for members who
	// get stuck.
	HelpChannelID string `env:"DISCORD_HELP_CHANNEL_ID"`
}
