package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"
)

// AssistantDirective is the fixed system instruction sent with every
// assistant exchange.
const AssistantDirective = "You are the Bengal Welding Assistant. Help customers with commercial kitchen equipment inquiries, maintenance schedules, and fabrication terminology. Keep answers concise and professional. The products we offer are Cookers, Extraction Hoods, Grease Cleaning Plans, Hot Cupboards, Stockpots, and Table/Gantry units."

// Replies shown when the assistant cannot answer.
const (
	AssistantEmptyReplyFallback = "I'm sorry, I couldn't process that. Please contact our support team."
	AssistantErrorFallback      = "Error connecting to AI service. Please try again later."
)

// AssistantExchange is the result of one question. Degraded is set when the
// reply is a fallback message instead of an assistant answer.
type AssistantExchange struct {
	Reply    entities.ChatTurn
	History  []entities.ChatTurn
	Degraded bool
}

// IAssistantUseCase runs the support chat kept on this device.
type IAssistantUseCase interface {
	Ask(ctx context.Context, content string) (AssistantExchange, error)
	History(ctx context.Context) ([]entities.ChatTurn, error)
	ClearHistory(ctx context.Context) error
}

type AssistantUseCase struct {
	history   interfaces.IChatHistoryRepository
	assistant interfaces.IAssistant
	metrics   interfaces.ILifecycleMetrics

	mu sync.Mutex
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(history interfaces.IChatHistoryRepository, assistant interfaces.IAssistant, metrics interfaces.ILifecycleMetrics) *AssistantUseCase {
	return &AssistantUseCase{history: history, assistant: assistant, metrics: metrics}
}

// Ask appends the question, asks the assistant and stores the exchange.
// Assistant failures never fail the call; they are answered with a
// fallback message.
func (u *AssistantUseCase) Ask(ctx context.Context, content string) (AssistantExchange, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return AssistantExchange{}, validationError("message is required")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	turns, err := u.load(ctx)
	if err != nil {
		return AssistantExchange{}, err
	}
	turns = append(turns, entities.ChatTurn{Role: entities.ChatRoleUser, Content: content})

	text, err := u.reply(ctx, turns)
	degraded := err != nil
	if degraded {
		log.Printf("[assistant][usecase] degraded reply err=%v", err)
	}

	reply := entities.ChatTurn{Role: entities.ChatRoleAssistant, Content: text}
	turns = append(turns, reply)
	if err := u.history.Save(ctx, turns); err != nil {
		log.Printf("[assistant][usecase] history persist failed err=%v", err)
		return AssistantExchange{}, err
	}
	log.Printf("[assistant][usecase] exchange stored turns=%d degraded=%t", len(turns), degraded)
	return AssistantExchange{Reply: reply, History: turns, Degraded: degraded}, nil
}

// reply returns the assistant answer, or a fallback text together with an
// error wrapping ErrAssistantUnavailable.
func (u *AssistantUseCase) reply(ctx context.Context, turns []entities.ChatTurn) (string, error) {
	if u.assistant == nil {
		u.recordFallback("not_configured")
		return AssistantErrorFallback, fmt.Errorf("%w: not configured", ErrAssistantUnavailable)
	}
	text, err := u.assistant.Reply(ctx, AssistantDirective, turns)
	if err != nil {
		u.recordFallback("error")
		return AssistantErrorFallback, fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}
	if strings.TrimSpace(text) == "" {
		u.recordFallback("empty")
		return AssistantEmptyReplyFallback, fmt.Errorf("%w: empty reply", ErrAssistantUnavailable)
	}
	return text, nil
}

func (u *AssistantUseCase) History(ctx context.Context) ([]entities.ChatTurn, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.load(ctx)
}

func (u *AssistantUseCase) ClearHistory(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.history.Clear(ctx); err != nil {
		log.Printf("[assistant][usecase] clear failed err=%v", err)
		return err
	}
	log.Printf("[assistant][usecase] history cleared")
	return nil
}

// load reads the stored conversation. An unreadable one reads as empty.
func (u *AssistantUseCase) load(ctx context.Context) ([]entities.ChatTurn, error) {
	turns, err := u.history.Load(ctx)
	if errors.Is(err, ErrCorruptCollection) {
		log.Printf("[assistant][usecase] stored history unreadable; starting empty err=%v", err)
		return []entities.ChatTurn{}, nil
	}
	if err != nil {
		return nil, err
	}
	if turns == nil {
		turns = []entities.ChatTurn{}
	}
	return turns, nil
}

func (u *AssistantUseCase) recordFallback(reason string) {
	if u.metrics != nil {
		u.metrics.IncAssistantFallback(reason)
	}
}
