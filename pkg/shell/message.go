package shell

import "fmt"

type MessageKind uint8

const (
	MessageOther = MessageKind(iota)
	MessageCommand
	MessageClose
	MessageDestroy
	MessageQueryEndSession
	MessageEndSession
)

func (this MessageKind) String() string {
	switch this {
	case MessageOther:
		return "other"
	case MessageCommand:
		return "command"
	case MessageClose:
		return "close"
	case MessageDestroy:
		return "destroy"
	case MessageQueryEndSession:
		return "queryEndSession"
	case MessageEndSession:
		return "endSession"
	default:
		return fmt.Sprintf("illegal-message-kind-%d", this)
	}
}

// Message is a window message reduced to what the Shell understands.
type Message struct {
	Kind MessageKind
	// Command is only set for MessageCommand.
	Command Command
	// Ending is only set for MessageEndSession and tells whether the
	// session really ends.
	Ending bool
}

func CommandMessage(c Command) Message {
	return Message{Kind: MessageCommand, Command: c}
}

func (this Message) String() string {
	switch this.Kind {
	case MessageCommand:
		return fmt.Sprintf("%v(%v)", this.Kind, this.Command)
	case MessageEndSession:
		return fmt.Sprintf("%v(ending=%v)", this.Kind, this.Ending)
	default:
		return this.Kind.String()
	}
}

// Result tells the window procedure how to answer a Message.
type Result uint8

const (
	// ResultUnhandled delegates to the default window procedure.
	ResultUnhandled = Result(iota)
	ResultHandled
	// ResultAllow answers with TRUE, e.g. to let the session end.
	ResultAllow
)

func (this Result) String() string {
	switch this {
	case ResultUnhandled:
		return "unhandled"
	case ResultHandled:
		return "handled"
	case ResultAllow:
		return "allow"
	default:
		return fmt.Sprintf("illegal-result-%d", this)
	}
}
