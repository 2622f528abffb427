package bot

import (
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type authClass int

const (
	authPublic authClass = iota
	authSupport
	authOwner
)

type handlerFunc func(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error

type route struct {
	auth authClass
	run  handlerFunc
}

// Handler errors form a closed taxonomy: usage errors echo the correct
// invocation, reject errors carry a user-visible refusal, and anything else
// is logged and answered with a generic failure reply.

type usageError struct{ usage string }

func (e usageError) Error() string { return "Usage: " + e.usage }

func usage(text string) error { return usageError{usage: text} }

type rejectError struct{ message string }

func (e rejectError) Error() string { return e.message }

func reject(message string) error { return rejectError{message: message} }

// buildRoutes is the full command table. A name missing here is silently
// ignored by the dispatcher, so stray prefixed chatter never draws a reply.
func (b *Bot) buildRoutes() map[string]route {
	return map[string]route{
		"calc":          {authSupport, b.cmdCalc},
		"upi":           {authSupport, b.addressCommand("upi")},
		"ltc":           {authSupport, b.addressCommand("ltc")},
		"usdt":          {authSupport, b.addressCommand("usdt")},
		"vouch":         {authSupport, b.cmdVouch},
		"remind":        {authSupport, b.cmdRemind},
		"addaddy":       {authOwner, b.cmdAddAddy},
		"showaddy":      {authPublic, b.cmdShowAddy},
		"stats":         {authSupport, b.cmdStats},
		"ping":          {authSupport, b.cmdPing},
		"userinfo":      {authSupport, b.cmdUserinfo},
		"notify":        {authSupport, b.cmdNotify},
		"broadcast":     {authOwner, b.cmdBroadcast},
		"clear":         {authSupport, b.cmdClear},
		"nuke":          {authSupport, b.cmdNuke},
		"lock":          {authSupport, b.cmdLock},
		"unlock":        {authSupport, b.cmdUnlock},
		"slowmode":      {authSupport, b.cmdSlowmode},
		"warn":          {authSupport, b.cmdWarn},
		"warnings":      {authSupport, b.cmdWarnings},
		"clearwarnings": {authSupport, b.cmdClearWarnings},
		"kick":          {authSupport, b.cmdKick},
		"ban":           {authSupport, b.cmdBan},
		"unban":         {authSupport, b.cmdUnban},
		"mute":          {authSupport, b.cmdMute},
		"unmute":        {authSupport, b.cmdUnmute},
		"modlog":        {authSupport, b.cmdModlog},
		"serverinfo":    {authSupport, b.cmdServerinfo},
		"say":           {authSupport, b.cmdSay},
		"poll":          {authSupport, b.cmdPoll},
		"avatar":        {authSupport, b.cmdAvatar},
		"help":          {authSupport, b.cmdHelp},
		"snipe":         {authSupport, b.cmdSnipe},
	}
}

// splitCommand strips the prefix and tokenizes on whitespace runs. The first
// token, lower-cased, is the command name.
func splitCommand(prefix, content string) (string, []string, bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

func (b *Bot) onMessageCreate(session *discordgo.Session, msg *discordgo.MessageCreate) {
	if msg.Author == nil || msg.Author.Bot || msg.Author.System {
		return
	}
	name, args, ok := splitCommand(b.cfg.Prefix, msg.Content)
	if !ok {
		return
	}
	rt, known := b.routes[name]
	if !known {
		return
	}

	if err := b.authorize(rt.auth, session, msg); err != nil {
		b.reply(session, msg, err.Error())
		return
	}

	if err := rt.run(session, msg, args); err != nil {
		var ue usageError
		var re rejectError
		switch {
		case errors.As(err, &ue):
			b.reply(session, msg, ue.Error())
		case errors.As(err, &re):
			b.reply(session, msg, re.Error())
		default:
			b.logger.Warn("command failed", zap.String("command", name), zap.String("user_id", msg.Author.ID), zap.Error(err))
			b.reply(session, msg, "❌ Something went wrong.")
		}
	}
}

// authorize applies the static class check before any handler runs. Owner
// identity and the support role are fixed configuration, not computed.
func (b *Bot) authorize(auth authClass, session *discordgo.Session, msg *discordgo.MessageCreate) error {
	switch auth {
	case authOwner:
		if msg.Author.ID != b.cfg.OwnerID {
			return reject("❌ You are not allowed to use that command.")
		}
	case authSupport:
		if msg.GuildID == "" {
			return reject("❌ This command can't be used in DMs.")
		}
		member := msg.Member
		if member == nil && session != nil {
			member = b.member(session, msg.GuildID, msg.Author.ID)
		}
		if !hasRole(member, b.cfg.SupportRoleID) {
			return reject("❌ Only support role can use this command.")
		}
	}
	return nil
}

func hasRole(member *discordgo.Member, roleID string) bool {
	if member == nil || roleID == "" {
		return false
	}
	for _, id := range member.Roles {
		if id == roleID {
			return true
		}
	}
	return false
}
