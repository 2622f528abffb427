package bot

import (
	"context"
	"sync"
	"time"

	"assistant-bot/internal/config"
	"assistant-bot/internal/remind"
	"assistant-bot/internal/snipe"
	"assistant-bot/internal/store"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type Bot struct {
	cfg        config.Config
	logger     *zap.Logger
	team       *store.TeamStore
	warnings   *store.WarningStore
	modlog     *store.ModlogStore
	snipes     *snipe.Cache
	reminders  *remind.Scheduler
	session    *discordgo.Session
	routes     map[string]route
	startedAt  time.Time
	statusOnce sync.Once
	statusStop chan struct{}
}

func New(cfg config.Config, logger *zap.Logger, team *store.TeamStore, warnings *store.WarningStore, modlog *store.ModlogStore, snipes *snipe.Cache, reminders *remind.Scheduler) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsGuildVoiceStates

	// Snipe needs the pre-delete message, which only the state cache can
	// provide once the gateway reports a deletion.
	session.State.MaxMessageCount = 1000

	b := &Bot{
		cfg:       cfg,
		logger:    logger,
		team:      team,
		warnings:  warnings,
		modlog:    modlog,
		snipes:    snipes,
		reminders: reminders,
		session:   session,
	}
	b.routes = b.buildRoutes()

	return b, nil
}

func (b *Bot) Start() error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onMessageCreate)
	b.session.AddHandler(b.onMessageDelete)
	b.session.AddHandler(b.onInteractionCreate)

	if err := b.session.Open(); err != nil {
		return err
	}
	b.startedAt = time.Now()
	return nil
}

func (b *Bot) Close(ctx context.Context) error {
	_ = ctx
	b.stopStatusRotation()
	if b.session != nil {
		return b.session.Close()
	}
	return nil
}

func (b *Bot) onReady(session *discordgo.Session, event *discordgo.Ready) {
	b.logger.Info("discord ready", zap.String("user", session.State.User.Username))
	b.startStatusRotation(session)
}

func (b *Bot) onMessageDelete(session *discordgo.Session, event *discordgo.MessageDelete) {
	msg := event.BeforeDelete
	if msg == nil || msg.Author == nil {
		// uncached deletion, nothing to snipe
		return
	}
	if msg.Content == "" && len(msg.Attachments) == 0 {
		return
	}

	snap := snipe.Snapshot{
		Content:   msg.Content,
		AuthorTag: msg.Author.String(),
		AvatarURL: msg.Author.AvatarURL(""),
		Time:      time.Now(),
	}
	if len(msg.Attachments) > 0 && msg.Attachments[0] != nil {
		snap.ImageURL = msg.Attachments[0].ProxyURL
	}
	b.snipes.Put(event.ChannelID, snap)
}

func (b *Bot) reply(session *discordgo.Session, msg *discordgo.MessageCreate, content string) {
	if _, err := session.ChannelMessageSendReply(msg.ChannelID, content, msg.Reference()); err != nil {
		b.logger.Warn("reply failed", zap.String("channel_id", msg.ChannelID), zap.Error(err))
	}
}

func (b *Bot) replyEmbed(session *discordgo.Session, msg *discordgo.MessageCreate, embed *discordgo.MessageEmbed) {
	send := &discordgo.MessageSend{
		Embeds:    []*discordgo.MessageEmbed{embed},
		Reference: msg.Reference(),
	}
	if _, err := session.ChannelMessageSendComplex(msg.ChannelID, send); err != nil {
		b.logger.Warn("embed reply failed", zap.String("channel_id", msg.ChannelID), zap.Error(err))
	}
}

func (b *Bot) simpleEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       b.cfg.EmbedColor,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

func (b *Bot) embedFooter(session *discordgo.Session, msg *discordgo.MessageCreate) *discordgo.MessageEmbedFooter {
	name := "DM"
	if msg.GuildID != "" {
		if guild, err := session.State.Guild(msg.GuildID); err == nil && guild != nil {
			name = guild.Name
		}
	}
	return &discordgo.MessageEmbedFooter{Text: name + " | " + b.cfg.Footer}
}

// sendModLog delivers an audit embed to the guild's bound mod-log channel.
// Best-effort: a missing binding or failed send never blocks the action.
func (b *Bot) sendModLog(session *discordgo.Session, guildID string, embed *discordgo.MessageEmbed) {
	if guildID == "" {
		return
	}
	channelID, ok := b.modlog.Channel(guildID)
	if !ok {
		return
	}
	if _, err := session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		b.logger.Debug("modlog delivery failed", zap.String("guild_id", guildID), zap.Error(err))
	}
}

func (b *Bot) guild(session *discordgo.Session, guildID string) *discordgo.Guild {
	guild, err := session.State.Guild(guildID)
	if err == nil && guild != nil {
		return guild
	}
	guild, _ = session.Guild(guildID)
	return guild
}

func (b *Bot) member(session *discordgo.Session, guildID, userID string) *discordgo.Member {
	member, err := session.State.Member(guildID, userID)
	if err == nil && member != nil {
		return member
	}
	member, _ = session.GuildMember(guildID, userID)
	return member
}

// botHasPermission reports whether the bot's own member carries the given
// permission bit in the guild, administrator implying everything.
func (b *Bot) botHasPermission(session *discordgo.Session, guildID string, permission int64) bool {
	guild := b.guild(session, guildID)
	if guild == nil || session.State.User == nil {
		return false
	}
	me := b.member(session, guildID, session.State.User.ID)
	if me == nil {
		return false
	}

	perms := int64(0)
	roleMap := make(map[string]*discordgo.Role, len(guild.Roles))
	for _, role := range guild.Roles {
		roleMap[role.ID] = role
		if role.ID == guild.ID {
			perms |= role.Permissions
		}
	}
	for _, roleID := range me.Roles {
		if role := roleMap[roleID]; role != nil {
			perms |= role.Permissions
		}
	}
	if perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	return perms&permission != 0
}
