package session

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Session is the per-client state carried in the signed cookie. The zero
// value is a fresh anonymous session. Mutations flip the dirty flag so
// handlers only set the cookie when something actually changed.
type Session struct {
	ID       string
	Visits   int
	UserID   int
	Remember bool

	flashes []Flash
	dirty   bool
}

// Authenticated reports whether a user is logged in on this session.
func (s *Session) Authenticated() bool {
	return s.UserID != 0
}

// RecordVisit increments the per-session visit counter and returns the
// new value. The first visit returns 1.
func (s *Session) RecordVisit() int {
	s.Visits++
	s.dirty = true
	return s.Visits
}

// SetUser marks the session authenticated as the given user id.
func (s *Session) SetUser(id int, remember bool) {
	s.UserID = id
	s.Remember = remember
	s.dirty = true
}

// ClearUser removes authentication state only; visit count and any
// pending flashes survive.
func (s *Session) ClearUser() {
	s.UserID = 0
	s.Remember = false
	s.dirty = true
}

// AddFlash queues a flash message for the next rendered page.
func (s *Session) AddFlash(level, message string) {
	s.flashes = append(s.flashes, Flash{Level: level, Message: message})
	s.dirty = true
}

// PopFlashes drains and returns the pending flash messages.
func (s *Session) PopFlashes() []Flash {
	if len(s.flashes) == 0 {
		return nil
	}
	out := s.flashes
	s.flashes = nil
	s.dirty = true
	return out
}

// Dirty reports whether the session changed since it was loaded.
func (s *Session) Dirty() bool {
	return s.dirty
}
