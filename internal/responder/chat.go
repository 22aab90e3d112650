package responder

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/hey-rash/PlacementNex/internal/ai"
	"github.com/hey-rash/PlacementNex/internal/logger"
)

// Reply sources.
const (
	SourcePhrase   = "phrase"
	SourceFallback = "fallback"
	SourceDefault  = "default"
)

const (
	unknownReply     = "I don't know that yet. Try asking 'highest package' or 'top recruiter'."
	unavailableReply = "I'm having trouble connecting to AI. Try 'highest package' or 'cse students'."
	emptyReply       = "I couldn't process that."
)

// Reply is the answer to one chat message.
type Reply struct {
	Text   string
	Source string
}

// Chat answers from the phrase table first and asks the fallback otherwise.
type Chat struct {
	phrases  *Trie
	fallback ai.Fallback
	logger   *zap.Logger
}

// NewChat creates a chat over the given phrases. The fallback may be nil.
func NewChat(phrases *Trie, fallback ai.Fallback, log *zap.Logger) *Chat {
	if phrases == nil {
		phrases = NewTrie()
	}
	return &Chat{
		phrases:  phrases,
		fallback: fallback,
		logger:   logger.ForComponent(log, "chat"),
	}
}

// Reply answers a message. Only a cancelled context is returned as an error;
// fallback failures turn into a canned reply.
func (c *Chat) Reply(ctx context.Context, message string) (Reply, error) {
	message = strings.TrimSpace(message)

	if text, ok := c.phrases.Lookup(message); ok {
		c.logger.Debug("phrase matched", zap.String("message", message))
		return Reply{Text: text, Source: SourcePhrase}, nil
	}

	if c.fallback == nil || message == "" {
		return Reply{Text: unknownReply, Source: SourceDefault}, nil
	}

	answer, err := c.fallback.Answer(ctx, message)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Reply{}, err
		}
		c.logger.Warn("fallback failed", zap.Error(err))
		return Reply{Text: unavailableReply, Source: SourceDefault}, nil
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = emptyReply
	}

	return Reply{Text: answer, Source: SourceFallback}, nil
}
