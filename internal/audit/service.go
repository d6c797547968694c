package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultCapacity = 50

// Trail menyimpan jejak perintah terbaru di memori dengan kapasitas tetap.
type Trail struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
	now      func() time.Time
}

// NewTrail membuat trail dengan kapasitas capacity.
func NewTrail(capacity int) *Trail {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Trail{capacity: capacity, now: time.Now}
}

// Record menambahkan entry; ID dan waktu diisi bila kosong. Entry tertua
// dibuang ketika kapasitas penuh.
func (t *Trail) Record(e Entry) Entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.At.IsZero() {
		e.At = t.now().UTC()
	}
	t.entries = append(t.entries, e)
	if over := len(t.entries) - t.capacity; over > 0 {
		t.entries = append([]Entry(nil), t.entries[over:]...)
	}
	return e
}

// Recent mengembalikan n entry terbaru, terbaru lebih dulu.
func (t *Trail) Recent(n int) []Entry {
	res := t.Timeline(TimelineFilters{PageSize: n})
	return res.Rows
}

// Len melaporkan jumlah entry tersimpan.
func (t *Trail) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Timeline mengambil entry yang cocok dengan filter, terbaru lebih dulu,
// dengan paging.
func (t *Trail) Timeline(filters TimelineFilters) Result {
	pageSize := filters.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > t.capacity {
		pageSize = t.capacity
	}
	page := filters.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * pageSize

	t.mu.Lock()
	matched := make([]Entry, 0, len(t.entries))
	for i := len(t.entries) - 1; i >= 0; i-- {
		if filters.match(t.entries[i]) {
			matched = append(matched, t.entries[i])
		}
	}
	t.mu.Unlock()

	var rows []Entry
	if offset < len(matched) {
		rows = matched[offset:]
	}
	hasNext := len(rows) > pageSize
	if hasNext {
		rows = rows[:pageSize]
	}
	paging := PagingInfo{Page: page, PageSize: pageSize, HasNext: hasNext}
	if page > 1 {
		paging.PrevPage = page - 1
	}
	if hasNext {
		paging.NextPage = page + 1
	}
	return Result{Rows: rows, Paging: paging}
}
