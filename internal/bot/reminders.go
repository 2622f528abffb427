package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"assistant-bot/internal/utils"
)

func (b *Bot) cmdRemind(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	user := mentionedUser(msg)
	if user == nil || len(args) < 3 {
		return usage(b.cfg.Prefix + "remind @user 10s <message>")
	}
	delay, ok := utils.ParseDelay(args[1])
	if !ok {
		return usage(b.cfg.Prefix + "remind @user 10s <message>")
	}
	text := strings.Join(args[2:], " ")
	targetID := user.ID
	targetTag := user.String()

	b.reminders.Schedule(delay, func() {
		channel, err := session.UserChannelCreate(targetID)
		if err != nil {
			b.logger.Debug("reminder channel failed", zap.String("user_id", targetID), zap.Error(err))
			return
		}
		if _, err := session.ChannelMessageSend(channel.ID, "⏰ Reminder: "+text); err != nil {
			b.logger.Debug("reminder delivery failed", zap.String("user_id", targetID), zap.Error(err))
		}
	})

	b.reply(session, msg, fmt.Sprintf("✅ Reminder set for %s in %s", targetTag, args[1]))
	return nil
}
