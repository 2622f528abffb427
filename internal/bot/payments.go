package bot

import (
	"fmt"
	"strings"

	"assistant-bot/internal/store"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// addressCommand builds the handler behind ,upi ,ltc and ,usdt: show the
// invoker's saved address for one kind with a copy button.
func (b *Bot) addressCommand(kind string) handlerFunc {
	return func(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
		address, ok := b.team.Address(msg.Author.ID, kind)
		if !ok {
			return reject("❌ No saved address found.")
		}

		embed := &discordgo.MessageEmbed{
			Title:       strings.ToUpper(kind) + " Address",
			Description: "```" + address + "```",
			Color:       b.cfg.EmbedColor,
			Footer:      b.embedFooter(session, msg),
		}
		send := &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: copyButtonRow("Copy Address", "copy-"+kind+"-"+msg.Author.ID),
			Reference:  msg.Reference(),
		}
		if _, err := session.ChannelMessageSendComplex(msg.ChannelID, send); err != nil {
			return fmt.Errorf("send address embed: %w", err)
		}
		return nil
	}
}

func (b *Bot) cmdVouch(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	if len(args) < 2 {
		return usage(b.cfg.Prefix + "vouch <product> <price>")
	}
	price := args[len(args)-1]
	product := strings.Join(args[:len(args)-1], " ")

	embed := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("+rep %s | Legit Purchased **%s** for **%s**", msg.Author.ID, product, price),
		Color:       b.cfg.EmbedColor,
		Footer:      b.embedFooter(session, msg),
	}
	send := &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: copyButtonRow("Copy Vouch", "copy-vouch-"+msg.Author.ID),
		Reference:  msg.Reference(),
	}
	if _, err := session.ChannelMessageSendComplex(msg.ChannelID, send); err != nil {
		return fmt.Errorf("send vouch embed: %w", err)
	}
	return nil
}

func (b *Bot) cmdAddAddy(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	if len(args) < 3 {
		return usage(b.cfg.Prefix + "addaddy <userId> <upi|ltc|usdt> <address>")
	}
	userID := args[0]
	kind := strings.ToLower(args[1])
	address := strings.Join(args[2:], " ")
	if !store.ValidKind(kind) {
		return reject("Type must be upi/ltc/usdt")
	}

	if err := b.team.SetAddress(userID, kind, address); err != nil {
		// the in-memory map is updated; only the flush to disk failed
		b.logger.Warn("team store save failed", zap.Error(err))
	}
	b.reply(session, msg, fmt.Sprintf("✅ Saved %s for <@%s>: `%s`", strings.ToUpper(kind), userID, address))
	return nil
}

func (b *Bot) cmdShowAddy(session *discordgo.Session, msg *discordgo.MessageCreate, args []string) error {
	userID := msg.Author.ID
	if len(args) > 0 {
		userID = args[0]
	}
	addresses := b.team.Addresses(userID)
	if len(addresses) == 0 {
		return reject("❌ No addresses for that user.")
	}

	lines := make([]string, 0, len(addresses))
	for _, kind := range store.AddressKinds {
		if address, ok := addresses[kind]; ok {
			lines = append(lines, fmt.Sprintf("**%s**: `%s`", strings.ToUpper(kind), address))
		}
	}
	b.replyEmbed(session, msg, b.simpleEmbed("Addresses for "+userID, strings.Join(lines, "\n")))
	return nil
}

func copyButtonRow(label, customID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    label,
					Style:    discordgo.SecondaryButton,
					CustomID: customID,
				},
			},
		},
	}
}
