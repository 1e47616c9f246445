package playback

// Mode returns the shuffle and repeat settings.
func (s *Service) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Mode{Shuffle: s.shuffle, Repeat: s.repeat}
}

// SetShuffle enables or disables shuffle.
func (s *Service) SetShuffle(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shuffle == enabled {
		return
	}
	s.shuffle = enabled
	s.persistLocked()
	s.notifyModeLocked()
}

// ToggleShuffle flips shuffle and returns the new setting.
func (s *Service) ToggleShuffle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shuffle = !s.shuffle
	s.persistLocked()
	s.notifyModeLocked()
	return s.shuffle
}

// SetRepeatMode sets the repeat mode.
func (s *Service) SetRepeatMode(m RepeatMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.repeat == m {
		return
	}
	s.repeat = m
	s.persistLocked()
	s.notifyModeLocked()
}

// ToggleRepeat cycles off, all, one and returns the new mode.
func (s *Service) ToggleRepeat() RepeatMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repeat = s.repeat.Next()
	s.persistLocked()
	s.notifyModeLocked()
	return s.repeat
}

// Theme returns the color scheme.
func (s *Service) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme switches between light and dark and returns the new theme.
func (s *Service) ToggleTheme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	s.persistLocked()
	s.notifyModeLocked()
	return s.theme
}
