package exam

import "time"

// timerTickMsg drives the one-second countdown.
type timerTickMsg time.Time

// autosaveTickMsg drives the periodic snapshot save.
type autosaveTickMsg time.Time

// submittedMsg carries the exam to the report after a submit
// (manual, or the keypress that dismisses the time-up banner).
type submittedMsg struct{}
