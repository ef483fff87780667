package learnsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Read side of the catalog. All endpoints require authentication.

func (s *Session) Novels(ctx context.Context) ([]Novel, error) {
	var out []Novel
	if err := s.getJSON(ctx, "/v1/novels", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Novel(ctx context.Context, id string) (*Novel, error) {
	var out Novel
	if err := s.getJSON(ctx, "/v1/novels/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Chapters(ctx context.Context, novelID string) ([]Chapter, error) {
	var out []Chapter
	if err := s.getJSON(ctx, fmt.Sprintf("/v1/novels/%s/chapters", url.PathEscape(novelID)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Chapter(ctx context.Context, id string) (*Chapter, error) {
	var out Chapter
	if err := s.getJSON(ctx, "/v1/chapters/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Videos(ctx context.Context, novelID string) ([]Video, error) {
	var out []Video
	if err := s.getJSON(ctx, fmt.Sprintf("/v1/novels/%s/videos", url.PathEscape(novelID)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Notes(ctx context.Context, novelID string) ([]Note, error) {
	var out []Note
	if err := s.getJSON(ctx, fmt.Sprintf("/v1/novels/%s/notes", url.PathEscape(novelID)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Quizzes(ctx context.Context, novelID string) ([]Quiz, error) {
	var out []Quiz
	if err := s.getJSON(ctx, fmt.Sprintf("/v1/novels/%s/quizzes", url.PathEscape(novelID)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) Summaries(ctx context.Context, novelID string) ([]Summary, error) {
	var out []Summary
	if err := s.getJSON(ctx, fmt.Sprintf("/v1/novels/%s/summaries", url.PathEscape(novelID)), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Admin write side. The server enforces the admin role; these calls return
// an *APIError with status 403 for non-admin sessions.

func (s *Session) CreateNovel(ctx context.Context, novel Novel) (*Novel, error) {
	var out Novel
	if err := s.postJSON(ctx, "/v1/admin/novels", novel, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateNovel(ctx context.Context, novel Novel) (*Novel, error) {
	var out Novel
	path := "/v1/admin/novels/" + url.PathEscape(novel.ID)
	if err := s.putJSON(ctx, path, novel, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteNovel(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/admin/novels/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (s *Session) CreateChapter(ctx context.Context, chapter Chapter) (*Chapter, error) {
	var out Chapter
	if err := s.postJSON(ctx, "/v1/admin/chapters", chapter, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateVideo(ctx context.Context, video Video) (*Video, error) {
	var out Video
	if err := s.postJSON(ctx, "/v1/admin/videos", video, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateNote(ctx context.Context, note Note) (*Note, error) {
	var out Note
	if err := s.postJSON(ctx, "/v1/admin/notes", note, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateQuiz(ctx context.Context, quiz Quiz) (*Quiz, error) {
	var out Quiz
	if err := s.postJSON(ctx, "/v1/admin/quizzes", quiz, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateSummary(ctx context.Context, summary Summary) (*Summary, error) {
	var out Summary
	if err := s.postJSON(ctx, "/v1/admin/summaries", summary, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
