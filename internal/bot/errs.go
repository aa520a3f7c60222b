package bot

import "fmt"

// BotError marks failures of the main bot client itself, as opposed to handler errors.
type BotError struct {
	Op  string
	Err error
}

func (e *BotError) Error() string {
	if e.Err == nil {
		return "bot: " + e.Op
	}
	return fmt.Sprintf("bot: %s: %v", e.Op, e.Err)
}

func (e *BotError) Unwrap() error {
	return e.Err
}

func NewBotError(op string, err error) *BotError {
	return &BotError{Op: op, Err: err}
}
