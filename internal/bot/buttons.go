package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Copy buttons carry a "copy-<kind>-<userID>" custom ID. Vouch copies read
// the embed text back from the message itself; address copies go through the
// team store so the reply reflects the current saved value.
func (b *Bot) onInteractionCreate(session *discordgo.Session, event *discordgo.InteractionCreate) {
	if event.Type != discordgo.InteractionMessageComponent {
		return
	}
	customID := event.MessageComponentData().CustomID
	if !strings.HasPrefix(customID, "copy-") {
		return
	}
	parts := strings.SplitN(customID, "-", 3)
	if len(parts) != 3 {
		return
	}
	kind, userID := parts[1], parts[2]

	var payload string
	if kind == "vouch" {
		if msg := event.Message; msg != nil && len(msg.Embeds) > 0 {
			payload = msg.Embeds[0].Description
		}
	} else if addr, ok := b.team.Address(userID, kind); ok {
		payload = addr
	}
	if payload == "" {
		payload = "❌ No data found to copy."
	}
	b.respondEphemeral(session, event.Interaction, payload)
}

func (b *Bot) respondEphemeral(session *discordgo.Session, interaction *discordgo.Interaction, content string) {
	err := session.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Debug("interaction response failed", zap.Error(err))
	}
}
