package domain

import "time"

// Novel is the root content entity. Everything else in the catalog hangs
// off a novel.
type Novel struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Description string    `json:"description,omitempty"`
	CoverURL    string    `json:"coverUrl,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Chapter is an ordered slice of a novel's text.
type Chapter struct {
	ID        string    `json:"id"`
	NovelID   string    `json:"novelId"`
	Index     int       `json:"index"` // 1-based position within the novel
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Video is a lecture or analysis clip attached to a novel.
type Video struct {
	ID        string    `json:"id"`
	NovelID   string    `json:"novelId"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Duration  int       `json:"duration"` // seconds
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Note is study material written by staff for a novel.
type Note struct {
	ID        string    `json:"id"`
	NovelID   string    `json:"novelId"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Quiz holds its questions as an opaque JSON document. The server never
// interprets individual questions, it only stores and serves them.
type Quiz struct {
	ID        string    `json:"id"`
	NovelID   string    `json:"novelId"`
	Title     string    `json:"title"`
	Questions string    `json:"questions,omitempty"` // JSON array
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary is a condensed retelling of a novel or a part of it.
type Summary struct {
	ID        string    `json:"id"`
	NovelID   string    `json:"novelId"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
