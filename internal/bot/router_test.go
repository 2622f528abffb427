package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"assistant-bot/internal/config"
)

func testBot() *Bot {
	cfg := config.DefaultConfig()
	cfg.OwnerID = "owner-1"
	cfg.SupportRoleID = "role-support"
	b := &Bot{cfg: cfg, logger: zap.NewNop()}
	b.routes = b.buildRoutes()
	return b
}

func guildMessage(authorID string, roles ...string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		GuildID: "guild-1",
		Author:  &discordgo.User{ID: authorID},
		Member:  &discordgo.Member{Roles: roles},
	}}
}

func TestSplitCommand(t *testing.T) {
	cases := []struct {
		content string
		name    string
		args    []string
		ok      bool
	}{
		{",ping", "ping", nil, true},
		{",WARN @u spam", "warn", []string{"@u", "spam"}, true},
		{",say   hello   world", "say", []string{"hello", "world"}, true},
		{",", "", nil, false},
		{",   ", "", nil, false},
		{"ping", "", nil, false},
		{"hello there", "", nil, false},
	}
	for _, tc := range cases {
		name, args, ok := splitCommand(",", tc.content)
		if ok != tc.ok || name != tc.name {
			t.Fatalf("splitCommand(%q) = %q, %v, %v; want %q, %v", tc.content, name, args, ok, tc.name, tc.ok)
		}
		if len(args) != len(tc.args) {
			t.Fatalf("splitCommand(%q) args = %v; want %v", tc.content, args, tc.args)
		}
		for i := range args {
			if args[i] != tc.args[i] {
				t.Fatalf("splitCommand(%q) args = %v; want %v", tc.content, args, tc.args)
			}
		}
	}
}

func TestRouteTableComplete(t *testing.T) {
	b := testBot()
	names := []string{
		"calc", "upi", "ltc", "usdt", "vouch", "remind", "addaddy", "showaddy",
		"stats", "ping", "userinfo", "notify", "broadcast", "clear", "nuke",
		"lock", "unlock", "slowmode", "warn", "warnings", "clearwarnings",
		"kick", "ban", "unban", "mute", "unmute", "modlog", "serverinfo",
		"say", "poll", "avatar", "help", "snipe",
	}
	for _, name := range names {
		rt, ok := b.routes[name]
		if !ok {
			t.Fatalf("route table missing %q", name)
		}
		if rt.run == nil {
			t.Fatalf("route %q has no handler", name)
		}
	}
	if len(b.routes) != len(names) {
		t.Fatalf("route table has %d entries, want %d", len(b.routes), len(names))
	}
	for _, name := range []string{"addaddy", "broadcast"} {
		if b.routes[name].auth != authOwner {
			t.Fatalf("route %q should be owner-only", name)
		}
	}
	if b.routes["warn"].auth != authSupport {
		t.Fatalf("route warn should require the support role")
	}
	if b.routes["showaddy"].auth != authPublic {
		t.Fatalf("route showaddy should be unrestricted")
	}
}

func TestAuthorizeOwner(t *testing.T) {
	b := testBot()
	if err := b.authorize(authOwner, nil, guildMessage("owner-1")); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
	err := b.authorize(authOwner, nil, guildMessage("someone-else"))
	if err == nil {
		t.Fatal("non-owner accepted for owner-only command")
	}
	if err.Error() != "❌ You are not allowed to use that command." {
		t.Fatalf("unexpected refusal: %q", err.Error())
	}
}

func TestAuthorizeSupportRole(t *testing.T) {
	b := testBot()
	if err := b.authorize(authSupport, nil, guildMessage("u1", "role-other", "role-support")); err != nil {
		t.Fatalf("support member rejected: %v", err)
	}
	err := b.authorize(authSupport, nil, guildMessage("u1", "role-other"))
	if err == nil {
		t.Fatal("member without support role accepted")
	}
	if err.Error() != "❌ Only support role can use this command." {
		t.Fatalf("unexpected refusal: %q", err.Error())
	}
}

func TestAuthorizeSupportRejectsDMs(t *testing.T) {
	b := testBot()
	msg := &discordgo.MessageCreate{Message: &discordgo.Message{
		Author: &discordgo.User{ID: "u1"},
	}}
	err := b.authorize(authSupport, nil, msg)
	if err == nil {
		t.Fatal("support command accepted in a DM")
	}
	if err.Error() != "❌ This command can't be used in DMs." {
		t.Fatalf("unexpected refusal: %q", err.Error())
	}
}

func TestHandlerErrorTaxonomy(t *testing.T) {
	if got := usage(",warn @user [reason]").Error(); got != "Usage: ,warn @user [reason]" {
		t.Fatalf("usage error = %q", got)
	}
	if got := reject("❌ Member not found.").Error(); got != "❌ Member not found." {
		t.Fatalf("reject error = %q", got)
	}
}
