package app

// Test hooks for inspecting and forcing modifier assignment.

func (s *Session) DailyDoubleIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return keys(s.dailyDoubles)
}

func (s *Session) MandatoryIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return keys(s.mandatories)
}

// SetModifiers overrides the sampled modifier assignment so tests can pin
// down specific board layouts.
func (s *Session) SetModifiers(dailyDoubles, mandatories []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dailyDoubles = make(map[string]bool, len(dailyDoubles))
	for _, id := range dailyDoubles {
		s.dailyDoubles[id] = true
	}
	s.mandatories = make(map[string]bool, len(mandatories))
	for _, id := range mandatories {
		s.mandatories[id] = true
	}
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
