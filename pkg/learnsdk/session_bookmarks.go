package learnsdk

import (
	"context"
	"net/http"
)

// Bookmarks lists the user's bookmarks.
func (s *Session) Bookmarks(ctx context.Context) ([]Bookmark, error) {
	var out []Bookmark
	if err := s.getJSON(ctx, "/v1/bookmarks", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleBookmark bookmarks the item if it is not bookmarked, and removes the
// bookmark otherwise. itemType must be one of Video, Note, Quiz or Summary.
func (s *Session) ToggleBookmark(ctx context.Context, itemType, itemID string) (bool, error) {
	var out BookmarkResponse
	err := s.postJSON(ctx, "/v1/bookmarks", BookmarkRequest{ItemType: itemType, ItemID: itemID}, &out, http.StatusOK)
	if err != nil {
		return false, err
	}
	return out.Bookmarked, nil
}
