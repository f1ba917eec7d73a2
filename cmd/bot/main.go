// Package main runs the verification bot: a webhook server receiving Discord
// interactions and driving the email verification flow.
package main

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tendant/chi-demo/app"

	"github.com/cse-discord/verify-bot/pkg/audit"
	pkgconfig "github.com/cse-discord/verify-bot/pkg/config"
	"github.com/cse-discord/verify-bot/pkg/discord"
	"github.com/cse-discord/verify-bot/pkg/notification"
	"github.com/cse-discord/verify-bot/pkg/verification"
)

type Config struct {
	Discord      pkgconfig.DiscordConfig
	Email        pkgconfig.EmailConfig
	Verification pkgconfig.VerificationConfig
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	config := Config{}
	cleanenv.ReadEnv(&config)

	if config.Discord.BotToken == "" || config.Discord.PublicKey == "" {
		slog.Error("DISCORD_BOT_TOKEN and DISCORD_PUBLIC_KEY are required")
		os.Exit(-1)
	}

	publicKey, err := discord.ParsePublicKey(config.Discord.PublicKey)
	if err != nil {
		slog.Error("Failed to parse application public key", "err", err)
		os.Exit(-1)
	}

	notificationManager, err := notification.NewNotificationManagerWithOptions(
		notification.WithSMTP(config.Email.ToSMTPConfig()),
		notification.WithVerificationCodeTemplate(),
	)
	if err != nil {
		slog.Error("Failed to create notification manager", "err", err)
		os.Exit(-1)
	}

	recorder, err := audit.NewFileRecorder(config.Verification.AuditLogPath)
	if err != nil {
		slog.Error("Failed to open audit log", "path", config.Verification.AuditLogPath, "err", err)
		os.Exit(-1)
	}
	defer recorder.Close()

	client := discord.NewClient(config.Discord.BotToken)
	roleGate := discord.NewRoleGate(client, config.Discord.GuildID, config.Discord.VerifiedRoleID)

	validator := verification.NewValidator(config.Verification.EmailDomain, config.Verification.EmailAliasPrefix)
	repo := verification.NewInMemoryAttemptRepository()
	svc := verification.NewService(repo, validator, roleGate, notificationManager, recorder)

	handle := discord.NewHandle(svc)

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)

	server.R.Route("/discord", func(r chi.Router) {
		r.Use(discord.SignatureVerifier(publicKey))
		r.Post("/interactions", handle.HandleInteraction)
	})

	slog.Info("Verification bot ready",
		"guild_id", config.Discord.GuildID,
		"verified_role_id", config.Discord.VerifiedRoleID,
		"email_domain", config.Verification.EmailDomain)
	server.Run()
}
