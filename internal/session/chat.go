package session

import (
	"strings"

	"github.com/abhisek/odootrail/internal/tutor"
)

// Transcript returns the chat history in order.
func (s *Session) Transcript() []tutor.Turn { return s.chat.transcript }

// ChatPending reports whether a tutor reply is in flight.
func (s *Session) ChatPending() bool { return s.chat.pending }

// SendChat appends the user turn optimistically and marks a reply pending.
// It returns the generation token for ResolveChat and the transcript prior
// to this message (what the tutor call should see as history). Empty or
// whitespace-only input, or an already-pending reply, is a no-op.
func (s *Session) SendChat(message string) (gen int, history []tutor.Turn, ok bool) {
	if strings.TrimSpace(message) == "" || s.chat.pending {
		return 0, nil, false
	}
	history = append([]tutor.Turn{}, s.chat.transcript...)
	s.chat.transcript = append(s.chat.transcript, tutor.Turn{Role: tutor.RoleUser, Text: message})
	s.chat.pending = true
	s.chat.gen++
	return s.chat.gen, history, true
}

// ResolveChat appends the assistant reply and clears the pending guard.
// Stale generations are discarded.
func (s *Session) ResolveChat(gen int, reply string) {
	if gen != s.chat.gen {
		return
	}
	s.chat.transcript = append(s.chat.transcript, tutor.Turn{Role: tutor.RoleAssistant, Text: reply})
	s.chat.pending = false
}
