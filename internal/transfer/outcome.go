package transfer

type OutcomeKind int

const (
	SentDirect OutcomeKind = iota
	Done
	DoneLarge
	Failed
)

// Outcome is the result of one item transfer, rendered into the batch progress line.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
}

func (o Outcome) Success() bool {
	return o.Kind != Failed
}

func (o Outcome) String() string {
	switch o.Kind {
	case SentDirect:
		return "Sent directly."
	case Done:
		return "Done."
	case DoneLarge:
		return "Done (Large file)."
	}
	if o.Reason == "" {
		return "Failed."
	}
	return "Error: " + o.Reason
}

func failed(reason string) Outcome {
	return Outcome{Kind: Failed, Reason: Truncate(reason, 60)}
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
