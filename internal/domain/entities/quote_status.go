package entities

// QuoteStatus represents the lifecycle of a quote request.
//
// Unlike jobs, quotes only move forward: NEW -> QUOTED -> PAID. A quoted
// request may be re-priced (QUOTED -> QUOTED) until the customer pays.
type QuoteStatus string

const (
	QuoteStatusNew    QuoteStatus = "NEW"
	QuoteStatusQuoted QuoteStatus = "QUOTED"
	QuoteStatusPaid   QuoteStatus = "PAID"
)

var quoteTransitions = map[QuoteStatus]map[QuoteStatus]bool{
	QuoteStatusNew:    {QuoteStatusQuoted: true},
	QuoteStatusQuoted: {QuoteStatusQuoted: true, QuoteStatusPaid: true},
	QuoteStatusPaid:   {},
}

func (s QuoteStatus) IsValid() bool {
	_, ok := quoteTransitions[s]
	return ok
}

// CanTransitionTo reports whether the quote transition table allows s -> next.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	return quoteTransitions[s][next]
}

// TransitionTo returns next when the move is allowed and
// ErrInvalidTransition otherwise.
func (s QuoteStatus) TransitionTo(next QuoteStatus) (QuoteStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, invalidTransition("quote", s, next)
	}
	return next, nil
}

// IsPending reports whether the quote still awaits pricing or payment.
func (s QuoteStatus) IsPending() bool {
	return s == QuoteStatusNew || s == QuoteStatusQuoted
}
