// Package telegram notifies subscribed administrators about complaint
// lifecycle events. The notifier is a one-way feed consumer: admins manage
// their subscription with bot commands, everything else flows outward.
package telegram

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lskolhar/complain-hub/internal/models"
)

// NotifierService receives feed events and forwards them to every
// subscribed Telegram chat whose category filter matches.
type NotifierService struct {
	BotAPI *tgbotapi.BotAPI
	DB     *gorm.DB
	Send   chan models.ComplaintEvent
}

// NewNotifierService creates the notifier and authorizes the bot.
func NewNotifierService(token string, db *gorm.DB) (*NotifierService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("Authorized on account %s", bot.Self.UserName)

	return &NotifierService{
		BotAPI: bot,
		DB:     db,
		Send:   make(chan models.ComplaintEvent, 64),
	}, nil
}

// --- feed.Client implementation ---

func (s *NotifierService) GetID() string { return "telegram-notifier" }

func (s *NotifierService) GetSendChannel() chan<- models.ComplaintEvent { return s.Send }

// Run starts the delivery loop and the command loop.
func (s *NotifierService) Run() {
	go s.deliverLoop()
	go s.commandLoop()
}

// Close closes the Send channel, which stops the delivery loop.
func (s *NotifierService) Close() {
	close(s.Send)
}

func (s *NotifierService) deliverLoop() {
	for event := range s.Send {
		s.notify(event)
	}
}

func (s *NotifierService) notify(event models.ComplaintEvent) {
	var subscribers []models.AdminSubscriber
	if err := s.DB.Find(&subscribers).Error; err != nil {
		log.Printf("Error loading notifier subscribers: %v", err)
		return
	}

	text := formatEvent(event)
	for _, sub := range subscribers {
		// The category filter only applies to events that carry one.
		if event.Category != "" && !sub.WantsCategory(event.Category) {
			continue
		}
		msg := tgbotapi.NewMessage(sub.ChatID, text)
		if _, err := s.BotAPI.Send(msg); err != nil {
			log.Printf("Error notifying chat %d: %v", sub.ChatID, err)
		}
	}
}

func formatEvent(event models.ComplaintEvent) string {
	switch event.Type {
	case models.EventComplaintCreated:
		return fmt.Sprintf("New complaint [%s]: %s (status: %s)",
			event.Category, event.Title, event.Status)
	case models.EventStatusChanged:
		return fmt.Sprintf("Complaint %s moved to %s by %s",
			event.ComplaintID, event.Status, event.Actor)
	case models.EventCommentAdded:
		return fmt.Sprintf("New comment on complaint %s by %s",
			event.ComplaintID, event.Actor)
	default:
		return fmt.Sprintf("Complaint %s: %s", event.ComplaintID, event.Type)
	}
}

// commandLoop handles the /subscribe and /unsubscribe bot commands.
func (s *NotifierService) commandLoop() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := s.BotAPI.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		chatID := update.Message.Chat.ID
		switch update.Message.Command() {
		case "subscribe":
			categories := splitCategories(update.Message.CommandArguments())
			if err := s.Subscribe(chatID, categories); err != nil {
				log.Printf("Error subscribing chat %d: %v", chatID, err)
				continue
			}
			reply := "Subscribed to all complaint categories."
			if len(categories) > 0 {
				reply = "Subscribed to categories: " + strings.Join(categories, ", ")
			}
			s.reply(chatID, reply)
		case "unsubscribe":
			if err := s.Unsubscribe(chatID); err != nil {
				log.Printf("Error unsubscribing chat %d: %v", chatID, err)
				continue
			}
			s.reply(chatID, "Unsubscribed from complaint notifications.")
		}
	}
}

func (s *NotifierService) reply(chatID int64, text string) {
	if _, err := s.BotAPI.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Error replying to chat %d: %v", chatID, err)
	}
}

// Subscribe upserts a chat's subscription. An empty category list means
// every category.
func (s *NotifierService) Subscribe(chatID int64, categories []string) error {
	sub := models.AdminSubscriber{ChatID: chatID, Categories: categories}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "chat_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"categories"}),
	}).Create(&sub).Error
}

// Unsubscribe removes a chat's subscription.
func (s *NotifierService) Unsubscribe(chatID int64) error {
	return s.DB.Where("chat_id = ?", chatID).Delete(&models.AdminSubscriber{}).Error
}

func splitCategories(args string) []string {
	var out []string
	for _, part := range strings.Split(args, ",") {
		if c := strings.TrimSpace(part); c != "" {
			out = append(out, c)
		}
	}
	return out
}
