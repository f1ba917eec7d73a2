// Package main posts the how-to-verify instructions message (embed plus the
// two entry buttons) to the verification channel, then exits.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	pkgconfig "github.com/cse-discord/verify-bot/pkg/config"
	"github.com/cse-discord/verify-bot/pkg/discord"
)

type Config struct {
	Discord pkgconfig.DiscordConfig
}

func main() {
	config := Config{}
	cleanenv.ReadEnv(&config)

	if config.Discord.BotToken == "" || config.Discord.VerificationChannelID == "" {
		slog.Error("DISCORD_BOT_TOKEN and DISCORD_VERIFICATION_CHANNEL_ID are required")
		os.Exit(-1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := discord.NewClient(config.Discord.BotToken)
	message := discord.InstructionsMessage(config.Discord.HelpChannelID)

	if err := client.CreateMessage(ctx, config.Discord.VerificationChannelID, message); err != nil {
		slog.Error("Failed to post instructions message", "channel_id", config.Discord.VerificationChannelID, "err", err)
		os.Exit(-1)
	}

	slog.Info("Posted instructions message", "channel_id", config.Discord.VerificationChannelID)
}
