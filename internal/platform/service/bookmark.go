package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/pkg/idx"
)

var ErrItemNotFound = errors.New("bookmark item not found")

// BookmarkService toggles and lists a user's bookmarks across the four
// bookmarkable item kinds.
type BookmarkService struct {
	Store store.Store
}

// Toggle flips the bookmark state for (user, item). Returns true if the
// call created a bookmark, false if it removed one. The referenced item
// must exist; the create-or-delete runs in a transaction so two racing
// toggles can't double-create past the unique index.
func (s *BookmarkService) Toggle(ctx context.Context, userID string, item domain.ItemRef) (bool, error) {
	if _, err := domain.ParseItemType(string(item.Type)); err != nil {
		return false, err
	}

	if err := s.itemExists(ctx, item); err != nil {
		return false, err
	}

	var created bool
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		_, err := tx.Bookmarks().GetBookmark(ctx, userID, item)
		switch {
		case err == nil:
			created = false
			return tx.Bookmarks().DeleteBookmark(ctx, userID, item)

		case errors.Is(err, store.ErrNotFound):
			created = true
			return tx.Bookmarks().CreateBookmark(ctx, domain.Bookmark{
				ID:     idx.New().String(),
				UserID: userID,
				Item:   item,
			})

		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

// List returns the caller's bookmarks, newest first.
func (s *BookmarkService) List(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	return s.Store.Bookmarks().ListBookmarksByUser(ctx, userID)
}

// itemExists dereferences the tagged union. The switch is exhaustive over
// domain.ItemType; an unknown type can't reach here because Toggle parses
// first, but the default arm keeps the invariant honest.
func (s *BookmarkService) itemExists(ctx context.Context, item domain.ItemRef) error {
	var err error
	switch item.Type {
	case domain.ItemTypeVideo:
		_, err = s.Store.Videos().GetVideoByID(ctx, item.ID)
	case domain.ItemTypeNote:
		_, err = s.Store.Notes().GetNoteByID(ctx, item.ID)
	case domain.ItemTypeQuiz:
		_, err = s.Store.Quizzes().GetQuizByID(ctx, item.ID)
	case domain.ItemTypeSummary:
		_, err = s.Store.Summaries().GetSummaryByID(ctx, item.ID)
	default:
		return fmt.Errorf("%w: %q", domain.ErrInvalidItemType, item.Type)
	}

	if errors.Is(err, store.ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}
