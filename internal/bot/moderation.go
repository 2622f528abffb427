package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"assistant-bot/internal/store"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func mentionedUser(msg *discordgo.MessageCreate) *discordgo.User {
	if len(msg.Mentions) == 0 {
		return nil
	}
	return msg.Mentions[0]
}

func (b *Bot) cmdClear(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	amount := 0
	if len(args) > 0 {
		amount, _ = strconv.Atoi(args[0])
	}
	if amount < 1 || amount > 100 {
		return usage(b.cfg.Prefix + "clear <1-100>")
	}
	if !b.botHasPermission(session, msg.GuildID, discordgo.PermissionManageMessages) {
		return reject("❌ I don't have permission to manage messages.")
	}

	messages, err := session.ChannelMessages(msg.ChannelID, amount, msg.ID, "", "")
	if err != nil {
		return reject("❌ Unable to delete messages.")
	}
	ids := make([]string, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID)
	}
	if err := session.ChannelMessagesBulkDelete(msg.ChannelID, ids); err != nil {
		return reject("❌ Unable to delete messages.")
	}

	b.sendModLog(session, msg.GuildID, b.simpleEmbed("Clear",
		fmt.Sprintf("%s deleted %d messages in <#%s>", msg.Author.String(), len(ids), msg.ChannelID)))

	confirm, err := session.ChannelMessageSendReply(msg.ChannelID, fmt.Sprintf("✅ Deleted %d messages", len(ids)), msg.Reference())
	if err == nil && confirm != nil {
		channelID, confirmID := msg.ChannelID, confirm.ID
		b.reminders.Schedule(3*time.Second, func() {
			_ = session.ChannelMessageDelete(channelID, confirmID)
		})
	}
	return nil
}

// cmdNuke clones the invoking channel in place, then deletes the original.
// The two steps are not atomic: a failed delete leaves both channels behind.
func (b *Bot) cmdNuke(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	if !b.botHasPermission(session, msg.GuildID, discordgo.PermissionManageChannels) {
		return reject("❌ I don't have permission to manage channels.")
	}
	channel, err := session.State.Channel(msg.ChannelID)
	if err != nil || channel == nil {
		channel, err = session.Channel(msg.ChannelID)
		if err != nil {
			return reject("❌ Unable to nuke this channel.")
		}
	}

	clone, err := session.GuildChannelCreateComplex(msg.GuildID, discordgo.GuildChannelCreateData{
		Name:                 channel.Name,
		Type:                 channel.Type,
		Topic:                channel.Topic,
		NSFW:                 channel.NSFW,
		RateLimitPerUser:     channel.RateLimitPerUser,
		Position:             channel.Position,
		PermissionOverwrites: channel.PermissionOverwrites,
		ParentID:             channel.ParentID,
	})
	if err != nil {
		return reject("❌ Unable to nuke this channel.")
	}
	if _, err := session.ChannelDelete(msg.ChannelID); err != nil {
		b.logger.Warn("nuke delete failed", zap.String("channel_id", msg.ChannelID), zap.Error(err))
	}

	b.sendModLog(session, msg.GuildID, b.simpleEmbed("Nuke",
		fmt.Sprintf("%s nuked <#%s>", msg.Author.String(), clone.ID)))
	return nil
}

func (b *Bot) cmdLock(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	if err := b.setSendLock(session, msg, true); err != nil {
		return err
	}
	b.sendModLog(session, msg.GuildID, b.simpleEmbed("Lock",
		fmt.Sprintf("%s locked <#%s>", msg.Author.String(), msg.ChannelID)))
	b.reply(session, msg, "🔒 Channel locked.")
	return nil
}

func (b *Bot) cmdUnlock(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	if err := b.setSendLock(session, msg, false); err != nil {
		return err
	}
	b.sendModLog(session, msg.GuildID, b.simpleEmbed("Unlock",
		fmt.Sprintf("%s unlocked <#%s>", msg.Author.String(), msg.ChannelID)))
	b.reply(session, msg, "🔓 Channel unlocked.")
	return nil
}

// setSendLock toggles SendMessages for @everyone on the invoking channel,
// preserving whatever else the overwrite already carries.
func (b *Bot) setSendLock(session *discordgo.Session, msg *discordgo.MessageCreate, locked bool) error {
	if !b.botHasPermission(session, msg.GuildID, discordgo.PermissionManageRoles) {
		return reject("❌ I don't have permission to manage channel permissions.")
	}
	channel, err := session.State.Channel(msg.ChannelID)
	if err != nil || channel == nil {
		channel, err = session.Channel(msg.ChannelID)
		if err != nil {
			return reject("❌ Unable to update channel permissions.")
		}
	}

	var allow, deny int64
	for _, overwrite := range channel.PermissionOverwrites {
		if overwrite.Type == discordgo.PermissionOverwriteTypeRole && overwrite.ID == msg.GuildID {
			allow = overwrite.Allow
			deny = overwrite.Deny
			break
		}
	}
	if locked {
		deny |= discordgo.PermissionSendMessages
		allow &^= discordgo.PermissionSendMessages
	} else {
		allow |= discordgo.PermissionSendMessages
		deny &^= discordgo.PermissionSendMessages
	}

	if err := session.ChannelPermissionSet(msg.ChannelID, msg.GuildID, discordgo.PermissionOverwriteTypeRole, allow, deny); err != nil {
		return reject("❌ Unable to update channel permissions.")
	}
	return nil
}

func (b *Bot) cmdSlowmode(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	if len(args) == 0 {
		return usage(b.cfg.Prefix + "slowmode <seconds> (0-21600)")
	}
	seconds, err := strconv.Atoi(args[0])
	if err != nil || seconds < 0 || seconds > 21600 {
		return usage(b.cfg.Prefix + "slowmode <seconds> (0-21600)")
	}
	if !b.botHasPermission(session, msg.GuildID, discordgo.PermissionManageChannels) {
		return reject("❌ I don't have permission to manage channels.")
	}

	if _, err := session.ChannelEditComplex(msg.ChannelID, &discordgo.ChannelEdit{RateLimitPerUser: &seconds}); err != nil {
		return reject("❌ Unable to set slowmode.")
	}
	b.sendModLog(session, msg.GuildID, b.simpleEmbed("Slowmode",
		fmt.Sprintf("%s set slowmode to %d seconds in <#%s>", msg.Author.String(), seconds, msg.ChannelID)))
	b.reply(session, msg, fmt.Sprintf("✅ Slowmode set to %d seconds.", seconds))
	return nil
}

func (b *Bot) cmdWarn(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	user := mentionedUser(msg)
	if user == nil {
		return usage(b.cfg.Prefix + "warn @user reason")
	}
	reason := "No reason provided."
	if len(args) > 1 {
		reason = strings.Join(args[1:], " ")
	}

	if err := b.warnings.Add(user.ID, store.NewWarning(reason, msg.Author.ID)); err != nil {
		b.logger.Warn("warning save failed", zap.String("user_id", user.ID), zap.Error(err))
	}
	b.sendModLog(session, msg.GuildID, b.simpleEmbed("Warn",
		fmt.Sprintf("%s warned by %s\nReason: %s", user.String(), msg.Author.String(), reason)))
	b.reply(session, msg, fmt.Sprintf("✅ %s has been warned.", user.String()))
	return nil
}

func (b *Bot) cmdWarnings(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	user := mentionedUser(msg)
	if user == nil {
		user = msg.Author
	}
	list := b.warnings.List(user.ID)
	if len(list) == 0 {
		b.reply(session, msg, "✅ No warnings.")
		return nil
	}

	lines := make([]string, 0, len(list))
	for i, warning := range list {
		lines = append(lines, fmt.Sprintf("**%d.** %s (by <@%s>)", i+1, warning.Reason, warning.By))
	}
	b.replyEmbed(session, msg, b.simpleEmbed("Warnings", strings.Join(lines, "\n")))
	return nil
}

func (b *Bot) cmdClearWarnings(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	user := mentionedUser(msg)
	if user == nil {
		return usage(b.cfg.Prefix + "clearwarnings @user")
	}
	if err := b.warnings.Clear(user.ID); err != nil {
		b.logger.Warn("warning clear save failed", zap.String("user_id", user.ID), zap.Error(err))
	}
	b.reply(session, msg, fmt.Sprintf("✅ Cleared all warnings for %s", user.String()))
	return nil
}

func (b *Bot) cmdKick(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	user := mentionedUser(msg)
	if user == nil {
		return usage(b.cfg.Prefix + "kick @user")
	}
	if b.member(session, msg.GuildID, user.ID) == nil {
		return reject("❌ Member not found.")
	}
	if !b.botHasPermission(session, msg.GuildID, discordgo.PermissionKickMembers) {
		return reject("❌ I don't have permission to kick.")
	}

	if err := session.GuildMemberDeleteWithReason(msg.GuildID, user.ID, "Kicked by bot"); err != nil {
		return reject("❌ Failed to kick.")
	}
	b.sendModLog(session, msg.GuildID, b.simpleEmbed("Kick",
		fmt.Sprintf("%s was kicked by %s", user.String(), msg.Author.String())))
	b.reply(session, msg, fmt.Sprintf("✅ %s has been kicked.", user.String()))
	return nil
}

func (b *Bot) cmdBan(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	user := mentionedUser(msg)
	if user == nil {
		return usage(b.cfg.Prefix + "ban @user")
	}
	if b.member(session, msg.GuildID, user.ID) == nil {
		return reject("❌ Member not found.")
	}
	if !b.botHasPermission(session, msg.GuildID, discordgo.PermissionBanMembers) {
		return reject("❌ I don't have permission to ban.")
	}

	if err := session.GuildBanCreateWithReason(msg.GuildID, user.ID, "Banned by bot", 0); err != nil {
		return reject("❌ Failed to ban.")
	}
	b.sendModLog(session, msg.GuildID, b.simpleEmbed("Ban",
		fmt.Sprintf("%s was banned by %s", user.String(), msg.Author.String())))
	b.reply(session, msg, fmt.Sprintf("✅ %s has been banned.", user.String()))
	return nil
}

func (b *Bot) cmdUnban(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	if len(args) == 0 {
		return usage(b.cfg.Prefix + "unban <userId>")
	}
	userID := args[0]
	if !b.botHasPermission(session, msg.GuildID, discordgo.PermissionBanMembers) {
		return reject("❌ I don't have permission to unban.")
	}

	if err := session.GuildBanDelete(msg.GuildID, userID); err != nil {
		return reject("❌ Failed to unban.")
	}
	b.sendModLog(session, msg.GuildID, b.simpleEmbed("Unban",
		fmt.Sprintf("<@%s> was unbanned by %s", userID, msg.Author.String())))
	b.reply(session, msg, fmt.Sprintf("✅ Unbanned %s", userID))
	return nil
}

func (b *Bot) cmdMute(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	return b.setVoiceMute(session, msg, true)
}

func (b *Bot) cmdUnmute(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	return b.setVoiceMute(session, msg, false)
}

func (b *Bot) setVoiceMute(session *discordgo.Session, msg *discordgo.MessageCreate, muted bool) error {
	verb := "mute"
	if !muted {
		verb = "unmute"
	}
	user := mentionedUser(msg)
	if user == nil {
		return usage(b.cfg.Prefix + verb + " @user")
	}
	if b.member(session, msg.GuildID, user.ID) == nil {
		return reject("❌ Member not found.")
	}
	if !b.botHasPermission(session, msg.GuildID, discordgo.PermissionVoiceMuteMembers) {
		return reject("❌ I don't have permission to " + verb + ".")
	}

	if err := session.GuildMemberMute(msg.GuildID, user.ID, muted); err != nil {
		return reject("❌ Failed to " + verb + ".")
	}
	title := "Mute"
	past := "muted"
	if !muted {
		title = "Unmute"
		past = "unmuted"
	}
	b.sendModLog(session, msg.GuildID, b.simpleEmbed(title,
		fmt.Sprintf("%s was %s by %s", user.String(), past, msg.Author.String())))
	b.reply(session, msg, fmt.Sprintf("✅ %s has been %s.", user.String(), past))
	return nil
}

func (b *Bot) cmdModlog(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	if len(args) == 0 {
		return usage(b.cfg.Prefix + "modlog #channel")
	}
	channelID, ok := parseChannelMention(args[0])
	if !ok {
		return usage(b.cfg.Prefix + "modlog #channel")
	}
	channel, err := session.State.Channel(channelID)
	if err != nil || channel == nil {
		channel, err = session.Channel(channelID)
		if err != nil {
			return reject("❌ That channel doesn't exist.")
		}
	}

	if err := b.modlog.Set(msg.GuildID, channel.ID); err != nil {
		b.logger.Warn("modlog save failed", zap.String("guild_id", msg.GuildID), zap.Error(err))
	}
	b.reply(session, msg, "✅ Modlog set to "+channel.Name)
	return nil
}

func parseChannelMention(token string) (string, bool) {
	if !strings.HasPrefix(token, "<#") || !strings.HasSuffix(token, ">") {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(token, "<#"), ">")
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}
