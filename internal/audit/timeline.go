package audit

import (
	"time"

	"github.com/google/uuid"
)

// Outcome merangkum hasil satu perintah.
type Outcome string

const (
	OutcomeOK     Outcome = "ok"
	OutcomeFailed Outcome = "failed"
	OutcomeDenied Outcome = "denied"
)

// Entry mewakili satu baris jejak perintah.
type Entry struct {
	ID      uuid.UUID
	At      time.Time
	Actor   string
	Input   string
	Kind    string
	Outcome Outcome
}

// TimelineFilters menampung filter dasar untuk jejak perintah.
type TimelineFilters struct {
	From     time.Time
	To       time.Time
	Actor    string
	Kind     string
	Outcome  Outcome
	Page     int
	PageSize int
}

// PagingInfo menyimpan metadata pagination sederhana.
type PagingInfo struct {
	Page     int
	HasNext  bool
	PageSize int
	PrevPage int
	NextPage int
}

// Result membungkus hasil timeline dengan informasi paging.
type Result struct {
	Rows   []Entry
	Paging PagingInfo
}

func (f TimelineFilters) match(e Entry) bool {
	if !f.From.IsZero() && e.At.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.At.After(f.To) {
		return false
	}
	if f.Actor != "" && e.Actor != f.Actor {
		return false
	}
	if f.Kind != "" && e.Kind != f.Kind {
		return false
	}
	if f.Outcome != "" && e.Outcome != f.Outcome {
		return false
	}
	return true
}
