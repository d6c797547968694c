package privilege

// Identity is the logged-in account holder.
type Identity interface {
	Key() string
	DisplayName() string
}

// Session is the privilege state of the single interactive user.
type Session struct {
	level          Level
	identity       Identity
	permanentAdmin bool
}

// NewSession starts at Basic, or Admin when permanently elevated.
func NewSession(permanentAdmin bool) *Session {
	s := &Session{permanentAdmin: permanentAdmin}
	s.level = s.baseLevel()
	return s
}

// Level reports the current level.
func (s *Session) Level() Level { return s.level }

// Identity returns the logged-in identity, if any.
func (s *Session) Identity() (Identity, bool) {
	return s.identity, s.identity != nil
}

// PermanentAdmin reports whether permanent elevation is on.
func (s *Session) PermanentAdmin() bool { return s.permanentAdmin }

// RaiseTo lifts the session to level. Permanent elevation is never lowered.
func (s *Session) RaiseTo(level Level) {
	if s.permanentAdmin && level < LevelAdmin {
		return
	}
	s.level = level
}

// Login binds identity at level.
func (s *Session) Login(identity Identity, level Level) {
	s.identity = identity
	s.level = level
	if s.permanentAdmin {
		s.level = LevelAdmin
	}
}

// Rebind swaps the identity after the account holder's record changed.
func (s *Session) Rebind(identity Identity) {
	if s.identity != nil {
		s.identity = identity
	}
}

// ResetToBase clears the identity and drops to the base level.
func (s *Session) ResetToBase() {
	s.identity = nil
	s.level = s.baseLevel()
}

// SetPermanentAdmin toggles permanent elevation. Enabling it raises the
// session to Admin; disabling leaves the current level until the next reset.
func (s *Session) SetPermanentAdmin(enabled bool) {
	s.permanentAdmin = enabled
	if enabled {
		s.level = LevelAdmin
	}
}

// IsSelf reports whether key belongs to the logged-in identity.
func (s *Session) IsSelf(key string) bool {
	return s.identity != nil && s.identity.Key() == key
}

func (s *Session) baseLevel() Level {
	if s.permanentAdmin {
		return LevelAdmin
	}
	return LevelBasic
}
