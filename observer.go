package body

// State is the final state of a single Parse call.
type State uint8

const (
	Skipped State = iota
	Parsed
	Failed
)

func (s State) String() string {
	switch s {
	case Skipped:
		return "skipped"
	case Parsed:
		return "parsed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Skip reasons.
const (
	ReasonMethod      = "method"
	ReasonClosed      = "closed"
	ReasonContentType = "content_type"
)

// Outcome describes how a single Parse call ended.
type Outcome struct {
	State State
	// Reason is one of Reason* constants if the body was skipped.
	Reason string
	// Kind is the negotiated kind. KindNone if the request was skipped before negotiating.
	Kind Kind
	// Codings are the Content-Encoding tokens of the request, if it reached negotiation.
	Codings []string
	// Size is the number of decoded bytes.
	Size int
	Body Body
	Err  *Error
}

// Observer is notified once per Parse call. It's called synchronously, so must not block.
type Observer interface {
	Observe(Outcome)
}

type ObserverFunc func(Outcome)

func (o ObserverFunc) Observe(outcome Outcome) {
	o(outcome)
}

type nopObserver struct{}

func (nopObserver) Observe(Outcome) {}
