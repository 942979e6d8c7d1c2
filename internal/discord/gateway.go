// Package discord connects the dispatcher to Discord. Each channel:user pair
// gets its own conversation session, so parallel conversations in one channel
// never share history.
package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/prushal/supportbot/internal/dispatch"
	"github.com/prushal/supportbot/internal/logging"
)

// Config holds Discord connection settings.
type Config struct {
	Token     string
	ChannelID string // optional: restrict to a single channel
}

// Gateway listens for messages and replies with dispatcher output.
type Gateway struct {
	session    *discordgo.Session
	channelID  string
	botID      string
	dispatcher *dispatch.Dispatcher
}

// NewGateway creates a gateway bound to the dispatcher.
func NewGateway(cfg Config, d *dispatch.Dispatcher) (*Gateway, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	g := &Gateway{
		session:    session,
		channelID:  cfg.ChannelID,
		dispatcher: d,
	}

	session.AddHandler(g.handleMessage)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

	return g, nil
}

// Start connects to Discord and begins answering messages.
func (g *Gateway) Start() error {
	if err := g.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	g.botID = g.session.State.User.ID
	logging.Info("discord", "Connected as %s", g.session.State.User.Username)
	return nil
}

// Stop disconnects from Discord.
func (g *Gateway) Stop() error {
	return g.session.Close()
}

func (g *Gateway) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == g.botID {
		return
	}
	if g.channelID != "" && m.ChannelID != g.channelID {
		return
	}

	sessionID := sessionKey(m.ChannelID, m.Author.ID)
	res, err := g.dispatcher.Respond(sessionID, m.Content)
	if err != nil {
		if errors.Is(err, dispatch.ErrEmptyUtterance) {
			return
		}
		logging.Warn("discord", "dispatch failed: %v", err)
		return
	}

	logging.Debug("discord", "%s: %s -> %s", sessionID, logging.Truncate(m.Content, 40), res.Category)

	if _, err := s.ChannelMessageSend(m.ChannelID, res.Text); err != nil {
		logging.Warn("discord", "failed to send reply: %v", err)
	}
}

// sessionKey scopes conversation history to one user in one channel.
func sessionKey(channelID, userID string) string {
	return channelID + ":" + userID
}
