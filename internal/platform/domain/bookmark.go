package domain

import (
	"errors"
	"time"
)

// ItemType discriminates what kind of catalog item a bookmark points at.
// Chapters are deliberately not bookmarkable; reading position is a client
// concern.
type ItemType string

const (
	ItemTypeVideo   ItemType = "Video"
	ItemTypeNote    ItemType = "Note"
	ItemTypeQuiz    ItemType = "Quiz"
	ItemTypeSummary ItemType = "Summary"
)

// ErrInvalidItemType reports an ItemType outside the known set.
var ErrInvalidItemType = errors.New("domain: invalid bookmark item type")

// ParseItemType validates a wire-level itemType string. Anything outside
// the four known values is rejected; callers translate the error to a 400.
func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(s); t {
	case ItemTypeVideo, ItemTypeNote, ItemTypeQuiz, ItemTypeSummary:
		return t, nil
	default:
		return "", ErrInvalidItemType
	}
}

// ItemRef is the tagged union a bookmark dereferences through. Every site
// that touches the referenced item switches exhaustively on Type; there is
// no "look the id up in every table" path.
type ItemRef struct {
	Type ItemType `json:"itemType"`
	ID   string   `json:"itemId"`
}

type Bookmark struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Item      ItemRef   `json:"item"`
	CreatedAt time.Time `json:"createdAt"`
}
