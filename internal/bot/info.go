package bot

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/Knetic/govaluate"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

func (b *Bot) cmdCalc(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	expr := strings.Join(args, " ")
	if expr == "" {
		return usage(b.cfg.Prefix + "calc <expression>")
	}
	expression, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return reject("❌ Invalid expression.")
	}
	result, err := expression.Evaluate(nil)
	if err != nil {
		return reject("❌ Invalid expression.")
	}

	b.replyEmbed(session, msg, b.simpleEmbed("Calculator", fmt.Sprintf("`%s` → **%v**", expr, result)))
	return nil
}

func (b *Bot) cmdStats(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	users := 0
	for _, guild := range session.State.Guilds {
		if guild != nil {
			users += guild.MemberCount
		}
	}
	uptime := int(time.Since(b.startedAt).Minutes())

	embed := b.simpleEmbed("Bot Stats", fmt.Sprintf(
		"**Guilds:** %d\n**Users:** %d\n**Uptime:** %d mins\n**Memory:** %.2f MB\n**Platform:** %s %s",
		len(session.State.Guilds), users, uptime,
		float64(mem.HeapAlloc)/1024/1024, runtime.GOOS, runtime.GOARCH))
	embed.Footer = &discordgo.MessageEmbedFooter{Text: b.cfg.Footer}
	b.replyEmbed(session, msg, embed)
	return nil
}

func (b *Bot) cmdPing(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	sent, err := session.ChannelMessageSendReply(msg.ChannelID, "🏓 Pinging...", msg.Reference())
	if err != nil {
		return fmt.Errorf("send ping probe: %w", err)
	}
	latency := sent.Timestamp.Sub(msg.Timestamp).Milliseconds()
	api := session.HeartbeatLatency().Milliseconds()
	if _, err := session.ChannelMessageEdit(msg.ChannelID, sent.ID,
		fmt.Sprintf("🏓 Pong! Latency: %dms | API: %dms", latency, api)); err != nil {
		return fmt.Errorf("edit ping probe: %w", err)
	}
	return nil
}

func (b *Bot) cmdUserinfo(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	user := mentionedUser(msg)
	if user == nil {
		user = msg.Author
	}
	member := b.member(session, msg.GuildID, user.ID)

	joined := "N/A"
	if member != nil && !member.JoinedAt.IsZero() {
		joined = fmt.Sprintf("<t:%d:R>", member.JoinedAt.Unix())
	}
	created := "N/A"
	if ts, err := discordgo.SnowflakeTimestamp(user.ID); err == nil {
		created = fmt.Sprintf("<t:%d:R>", ts.Unix())
	}
	isBot := "No"
	if user.Bot {
		isBot = "Yes"
	}
	status := "offline"
	if presence, err := session.State.Presence(msg.GuildID, user.ID); err == nil && presence != nil && presence.Status != "" {
		status = string(presence.Status)
	}

	embed := &discordgo.MessageEmbed{
		Title:     "User Info: " + user.String(),
		Color:     b.cfg.EmbedColor,
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: user.AvatarURL("256")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User ID", Value: user.ID, Inline: true},
			{Name: "Bot?", Value: isBot, Inline: true},
			{Name: "Status", Value: status, Inline: true},
			{Name: "Joined Server", Value: joined, Inline: true},
			{Name: "Account Created", Value: created, Inline: true},
		},
		Footer: b.embedFooter(session, msg),
	}
	b.replyEmbed(session, msg, embed)
	return nil
}

func (b *Bot) cmdServerinfo(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	guild := b.guild(session, msg.GuildID)
	if guild == nil {
		return reject("❌ Unable to load server info.")
	}

	description := guild.Description
	if description == "" {
		description = "No description"
	}
	created := "N/A"
	if ts, err := discordgo.SnowflakeTimestamp(guild.ID); err == nil {
		created = fmt.Sprintf("<t:%d:R>", ts.Unix())
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Server Info",
		Description: description,
		Color:       b.cfg.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Name", Value: guild.Name, Inline: true},
			{Name: "Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "Owner", Value: guild.OwnerID, Inline: true},
			{Name: "Created", Value: created, Inline: true},
		},
	}
	b.replyEmbed(session, msg, embed)
	return nil
}

func (b *Bot) cmdAvatar(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	user := mentionedUser(msg)
	if user == nil {
		user = msg.Author
	}
	embed := &discordgo.MessageEmbed{
		Title: user.String() + "'s Avatar",
		Color: b.cfg.EmbedColor,
		Image: &discordgo.MessageEmbedImage{URL: user.AvatarURL("1024")},
	}
	b.replyEmbed(session, msg, embed)
	return nil
}

func (b *Bot) cmdSay(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		return usage(b.cfg.Prefix + "say <message>")
	}
	if _, err := session.ChannelMessageSend(msg.ChannelID, text); err != nil {
		return fmt.Errorf("say: %w", err)
	}
	return nil
}

func (b *Bot) cmdPoll(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	question := strings.Join(args, " ")
	if question == "" {
		return usage(b.cfg.Prefix + "poll <question>")
	}
	poll, err := session.ChannelMessageSendEmbed(msg.ChannelID, b.simpleEmbed("Poll", question))
	if err != nil {
		return fmt.Errorf("send poll: %w", err)
	}
	for _, emoji := range []string{"✅", "❌"} {
		if err := session.MessageReactionAdd(msg.ChannelID, poll.ID, emoji); err != nil {
			b.logger.Debug("poll reaction failed", zap.String("emoji", emoji), zap.Error(err))
		}
	}
	return nil
}

func (b *Bot) cmdHelp(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	p := b.cfg.Prefix
	embed := &discordgo.MessageEmbed{
		Title:       "Assistant Bot Commands",
		Description: "Prefix: `" + p + "` • Support role required for most commands.",
		Color:       b.cfg.EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Payments", Value: p + "upi " + p + "ltc " + p + "usdt (show saved)"},
			{Name: "Utility", Value: p + "calc " + p + "remind " + p + "vouch " + p + "notify " + p + "snipe " + p + "say " + p + "poll " + p + "avatar"},
			{Name: "Info", Value: p + "stats " + p + "ping " + p + "userinfo " + p + "serverinfo"},
			{Name: "Moderation", Value: p + "clear " + p + "nuke " + p + "lock " + p + "unlock " + p + "slowmode " + p + "warn " + p + "warnings " + p + "clearwarnings " + p + "kick " + p + "ban " + p + "unban " + p + "mute " + p + "unmute " + p + "modlog"},
			{Name: "Owner", Value: p + "addaddy " + p + "broadcast"},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: b.cfg.Footer},
	}
	b.replyEmbed(session, msg, embed)
	return nil
}

func (b *Bot) cmdNotify(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	user := mentionedUser(msg)
	if user == nil || len(args) < 2 {
		return usage(b.cfg.Prefix + "notify @user <message>")
	}
	text := strings.Join(args[1:], " ")

	if channel, err := session.UserChannelCreate(user.ID); err == nil {
		notice := fmt.Sprintf("📢 You have been notified by **%s** in <#%s>:\n\n%s", msg.Author.String(), msg.ChannelID, text)
		if _, err := session.ChannelMessageSend(channel.ID, notice); err != nil {
			b.logger.Debug("notify delivery failed", zap.String("user_id", user.ID), zap.Error(err))
		}
	}
	b.reply(session, msg, fmt.Sprintf("✅ %s has been notified.", user.String()))
	return nil
}

func (b *Bot) cmdBroadcast(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		return usage(b.cfg.Prefix + "broadcast <message>")
	}
	if msg.GuildID == "" {
		return reject("❌ This command can't be used in DMs.")
	}
	guild := b.guild(session, msg.GuildID)
	if guild == nil {
		return reject("❌ Unable to load this server.")
	}

	members := guild.Members
	if len(members) == 0 {
		members, _ = session.GuildMembers(msg.GuildID, "", 1000)
	}
	notice := fmt.Sprintf("📣 Broadcast from **%s**:\n\n%s", guild.Name, text)
	for _, member := range members {
		if member == nil || member.User == nil || member.User.Bot {
			continue
		}
		channel, err := session.UserChannelCreate(member.User.ID)
		if err != nil {
			continue
		}
		if _, err := session.ChannelMessageSend(channel.ID, notice); err != nil {
			b.logger.Debug("broadcast delivery failed", zap.String("user_id", member.User.ID), zap.Error(err))
		}
	}
	b.reply(session, msg, "✅ Broadcast sent to all members.")
	return nil
}

func (b *Bot) cmdSnipe(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	snap, ok := b.snipes.Get(msg.ChannelID)
	if !ok {
		return reject("❌ No message to snipe.")
	}

	content := snap.Content
	if content == "" {
		content = "No text content"
	}
	embed := &discordgo.MessageEmbed{
		Title:       "Sniped Message",
		Description: content,
		Color:       b.cfg.EmbedColor,
		Author:      &discordgo.MessageEmbedAuthor{Name: snap.AuthorTag, IconURL: snap.AvatarURL},
		Footer:      &discordgo.MessageEmbedFooter{Text: "Deleted message"},
	}
	if snap.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: snap.ImageURL}
	}
	b.replyEmbed(session, msg, embed)
	return nil
}
