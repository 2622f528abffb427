package bot

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// startStatusRotation cycles the configured presence lines on a fixed period.
// Purely cosmetic; nothing depends on it.
func (b *Bot) startStatusRotation(session *discordgo.Session) {
	if len(b.cfg.Statuses) == 0 {
		return
	}
	b.statusOnce.Do(func() {
		b.statusStop = make(chan struct{})
		period := time.Duration(b.cfg.StatusPeriodSeconds) * time.Second
		go func() {
			ticker := time.NewTicker(period)
			defer ticker.Stop()
			index := 0
			for {
				select {
				case <-ticker.C:
					if err := session.UpdateWatchStatus(0, b.cfg.Statuses[index]); err != nil {
						b.logger.Warn("status update failed", zap.Error(err))
					}
					index = (index + 1) % len(b.cfg.Statuses)
				case <-b.statusStop:
					return
				}
			}
		}()
	})
}

func (b *Bot) stopStatusRotation() {
	if b.statusStop != nil {
		close(b.statusStop)
		b.statusStop = nil
	}
}
