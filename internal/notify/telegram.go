// Package notify pushes out-of-band alerts to the authority Telegram channel.
// Notifications are best effort: failures are logged, never propagated.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"campusvoice/backend/internal/models"
)

// Service sends alerts to a single authority chat. A nil *Service is a valid
// no-op notifier, used when no bot token is configured.
type Service struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// New builds the notifier. An empty token disables notifications and returns
// (nil, nil) rather than an error, since the alert channel is optional.
func New(token string, chatID int64) (*Service, error) {
	if token == "" {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("notify: authorize bot: %w", err)
	}
	bot.Debug = false
	log.Printf("notify: authorized on account %s", bot.Self.UserName)
	return &Service{bot: bot, chatID: chatID}, nil
}

// ComplaintFiled alerts the authority channel about a new critical complaint.
func (s *Service) ComplaintFiled(c *models.Complaint) {
	if s == nil {
		return
	}
	text := fmt.Sprintf(
		"🚨 Critical complaint filed\n\n%s\n\nCategory: %s\nAssigned to: %s\nID: %s",
		c.Title, c.Category, c.AssignedAuthority, c.ID,
	)
	s.send(text)
}

// PriorityEscalated alerts the authority channel that votes pushed a
// complaint to a higher priority.
func (s *Service) PriorityEscalated(complaintID, oldPriority, newPriority string) {
	if s == nil {
		return
	}
	text := fmt.Sprintf(
		"⚠️ Complaint %s escalated from %s to %s by student votes",
		complaintID, oldPriority, newPriority,
	)
	s.send(text)
}

func (s *Service) send(text string) {
	msg := tgbotapi.NewMessage(s.chatID, text)
	if _, err := s.bot.Send(msg); err != nil {
		log.Printf("notify: send telegram message: %v", err)
	}
}
