package tui

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the current error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}

// MsgClearNotice is sent to clear the status notice.
// Seq guards against clearing a newer notice.
type MsgClearNotice struct {
	Seq int
}

func (MsgClearNotice) sealed() {}
