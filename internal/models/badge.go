package models

import (
	"time"
)

type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	IsUnlocked  bool       `json:"isUnlocked"`
	UnlockDate  *time.Time `json:"unlockDate,omitempty"`
}

// Clone copies the badge including its unlock timestamp.
func (b Badge) Clone() Badge {
	cp := b
	if b.UnlockDate != nil {
		t := *b.UnlockDate
		cp.UnlockDate = &t
	}
	return cp
}

func CloneBadges(badges []Badge) []Badge {
	if badges == nil {
		return nil
	}
	out := make([]Badge, len(badges))
	for i, b := range badges {
		out[i] = b.Clone()
	}
	return out
}

// CountUnlocked returns how many badges in the slice are unlocked.
func CountUnlocked(badges []Badge) int {
	n := 0
	for _, b := range badges {
		if b.IsUnlocked {
			n++
		}
	}
	return n
}
