package session

// ConversationList holds the state of the conversation list widget.
type ConversationList struct {
	IDs      []string
	Loading  bool
	Selected string
	// Cursor is the highlighted row.
	Cursor int
	// PendingDelete is the id awaiting delete confirmation, "" when none.
	PendingDelete string
}

// SetIDs replaces the ids, keeping the cursor on the same id when it still exists.
func (l *ConversationList) SetIDs(ids []string) {
	var current string
	if l.Cursor >= 0 && l.Cursor < len(l.IDs) {
		current = l.IDs[l.Cursor]
	}
	l.IDs = ids
	l.Cursor = 0
	for i, id := range ids {
		if id == current {
			l.Cursor = i
			break
		}
	}
	if l.PendingDelete != "" && l.index(l.PendingDelete) == -1 {
		l.PendingDelete = ""
	}
}

// Up moves the cursor up one row.
func (l *ConversationList) Up() {
	if l.PendingDelete != "" || l.Cursor <= 0 {
		return
	}
	l.Cursor--
}

// Down moves the cursor down one row.
func (l *ConversationList) Down() {
	if l.PendingDelete != "" || l.Cursor >= len(l.IDs)-1 {
		return
	}
	l.Cursor++
}

// Current returns the id under the cursor.
func (l *ConversationList) Current() (string, bool) {
	if l.Loading || l.Cursor < 0 || l.Cursor >= len(l.IDs) {
		return "", false
	}
	return l.IDs[l.Cursor], true
}

// Select returns the id under the cursor to open.
// Nothing is selected while a delete confirmation is pending.
func (l *ConversationList) Select() (string, bool) {
	if l.PendingDelete != "" {
		return "", false
	}
	return l.Current()
}

// RequestDelete asks for confirmation before deleting the id under the cursor.
func (l *ConversationList) RequestDelete() bool {
	id, ok := l.Current()
	if !ok || l.PendingDelete != "" {
		return false
	}
	l.PendingDelete = id
	return true
}

// ConfirmDelete returns the id whose deletion was confirmed.
func (l *ConversationList) ConfirmDelete() (string, bool) {
	id := l.PendingDelete
	l.PendingDelete = ""
	return id, id != ""
}

// CancelDelete drops a pending confirmation.
func (l *ConversationList) CancelDelete() {
	l.PendingDelete = ""
}

func (l *ConversationList) index(id string) int {
	for i, existing := range l.IDs {
		if existing == id {
			return i
		}
	}
	return -1
}
