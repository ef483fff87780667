package service

import (
	"context"
	"errors"
	"strings"

	"github.com/inkwell-edu/inkwell/internal/platform/domain"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/pkg/idx"
)

var ErrValidation = errors.New("validation failed")

// CatalogService owns the content catalog: novels and the material that
// hangs off them. Reads are open to any authenticated user; the HTTP layer
// restricts writes to admins.
type CatalogService struct {
	Store store.Store
}

/* Novels */

func (s *CatalogService) GetNovel(ctx context.Context, id string) (domain.Novel, error) {
	return s.Store.Novels().GetNovelByID(ctx, id)
}

func (s *CatalogService) ListNovels(ctx context.Context) ([]domain.Novel, error) {
	return s.Store.Novels().ListNovels(ctx)
}

func (s *CatalogService) CreateNovel(ctx context.Context, n domain.Novel) (domain.Novel, error) {
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.Author) == "" {
		return domain.Novel{}, ErrValidation
	}
	n.ID = idx.New().String()
	if err := s.Store.Novels().CreateNovel(ctx, n); err != nil {
		return domain.Novel{}, err
	}
	return s.Store.Novels().GetNovelByID(ctx, n.ID)
}

func (s *CatalogService) UpdateNovel(ctx context.Context, n domain.Novel) (domain.Novel, error) {
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.Author) == "" {
		return domain.Novel{}, ErrValidation
	}
	if err := s.Store.Novels().UpdateNovel(ctx, n); err != nil {
		return domain.Novel{}, err
	}
	return s.Store.Novels().GetNovelByID(ctx, n.ID)
}

func (s *CatalogService) DeleteNovel(ctx context.Context, id string) error {
	return s.Store.Novels().DeleteNovel(ctx, id)
}

/* Chapters */

func (s *CatalogService) GetChapter(ctx context.Context, id string) (domain.Chapter, error) {
	return s.Store.Chapters().GetChapterByID(ctx, id)
}

func (s *CatalogService) ListChapters(ctx context.Context, novelID string) ([]domain.Chapter, error) {
	if _, err := s.Store.Novels().GetNovelByID(ctx, novelID); err != nil {
		return nil, err
	}
	return s.Store.Chapters().ListChaptersByNovel(ctx, novelID)
}

func (s *CatalogService) CreateChapter(ctx context.Context, c domain.Chapter) (domain.Chapter, error) {
	if strings.TrimSpace(c.Title) == "" || c.Index < 1 {
		return domain.Chapter{}, ErrValidation
	}
	if _, err := s.Store.Novels().GetNovelByID(ctx, c.NovelID); err != nil {
		return domain.Chapter{}, err
	}
	c.ID = idx.New().String()
	if err := s.Store.Chapters().CreateChapter(ctx, c); err != nil {
		return domain.Chapter{}, err
	}
	return s.Store.Chapters().GetChapterByID(ctx, c.ID)
}

func (s *CatalogService) UpdateChapter(ctx context.Context, c domain.Chapter) (domain.Chapter, error) {
	if strings.TrimSpace(c.Title) == "" || c.Index < 1 {
		return domain.Chapter{}, ErrValidation
	}
	if err := s.Store.Chapters().UpdateChapter(ctx, c); err != nil {
		return domain.Chapter{}, err
	}
	return s.Store.Chapters().GetChapterByID(ctx, c.ID)
}

func (s *CatalogService) DeleteChapter(ctx context.Context, id string) error {
	return s.Store.Chapters().DeleteChapter(ctx, id)
}

/* Videos */

func (s *CatalogService) GetVideo(ctx context.Context, id string) (domain.Video, error) {
	return s.Store.Videos().GetVideoByID(ctx, id)
}

func (s *CatalogService) ListVideos(ctx context.Context, novelID string) ([]domain.Video, error) {
	if _, err := s.Store.Novels().GetNovelByID(ctx, novelID); err != nil {
		return nil, err
	}
	return s.Store.Videos().ListVideosByNovel(ctx, novelID)
}

func (s *CatalogService) CreateVideo(ctx context.Context, v domain.Video) (domain.Video, error) {
	if strings.TrimSpace(v.Title) == "" || strings.TrimSpace(v.URL) == "" {
		return domain.Video{}, ErrValidation
	}
	if _, err := s.Store.Novels().GetNovelByID(ctx, v.NovelID); err != nil {
		return domain.Video{}, err
	}
	v.ID = idx.New().String()
	if err := s.Store.Videos().CreateVideo(ctx, v); err != nil {
		return domain.Video{}, err
	}
	return s.Store.Videos().GetVideoByID(ctx, v.ID)
}

func (s *CatalogService) UpdateVideo(ctx context.Context, v domain.Video) (domain.Video, error) {
	if strings.TrimSpace(v.Title) == "" || strings.TrimSpace(v.URL) == "" {
		return domain.Video{}, ErrValidation
	}
	if err := s.Store.Videos().UpdateVideo(ctx, v); err != nil {
		return domain.Video{}, err
	}
	return s.Store.Videos().GetVideoByID(ctx, v.ID)
}

func (s *CatalogService) DeleteVideo(ctx context.Context, id string) error {
	return s.Store.Videos().DeleteVideo(ctx, id)
}

/* Notes */

func (s *CatalogService) GetNote(ctx context.Context, id string) (domain.Note, error) {
	return s.Store.Notes().GetNoteByID(ctx, id)
}

func (s *CatalogService) ListNotes(ctx context.Context, novelID string) ([]domain.Note, error) {
	if _, err := s.Store.Novels().GetNovelByID(ctx, novelID); err != nil {
		return nil, err
	}
	return s.Store.Notes().ListNotesByNovel(ctx, novelID)
}

func (s *CatalogService) CreateNote(ctx context.Context, n domain.Note) (domain.Note, error) {
	if strings.TrimSpace(n.Title) == "" {
		return domain.Note{}, ErrValidation
	}
	if _, err := s.Store.Novels().GetNovelByID(ctx, n.NovelID); err != nil {
		return domain.Note{}, err
	}
	n.ID = idx.New().String()
	if err := s.Store.Notes().CreateNote(ctx, n); err != nil {
		return domain.Note{}, err
	}
	return s.Store.Notes().GetNoteByID(ctx, n.ID)
}

func (s *CatalogService) UpdateNote(ctx context.Context, n domain.Note) (domain.Note, error) {
	if strings.TrimSpace(n.Title) == "" {
		return domain.Note{}, ErrValidation
	}
	if err := s.Store.Notes().UpdateNote(ctx, n); err != nil {
		return domain.Note{}, err
	}
	return s.Store.Notes().GetNoteByID(ctx, n.ID)
}

func (s *CatalogService) DeleteNote(ctx context.Context, id string) error {
	return s.Store.Notes().DeleteNote(ctx, id)
}

/* Quizzes */

func (s *CatalogService) GetQuiz(ctx context.Context, id string) (domain.Quiz, error) {
	return s.Store.Quizzes().GetQuizByID(ctx, id)
}

func (s *CatalogService) ListQuizzes(ctx context.Context, novelID string) ([]domain.Quiz, error) {
	if _, err := s.Store.Novels().GetNovelByID(ctx, novelID); err != nil {
		return nil, err
	}
	return s.Store.Quizzes().ListQuizzesByNovel(ctx, novelID)
}

func (s *CatalogService) CreateQuiz(ctx context.Context, q domain.Quiz) (domain.Quiz, error) {
	if strings.TrimSpace(q.Title) == "" {
		return domain.Quiz{}, ErrValidation
	}
	if _, err := s.Store.Novels().GetNovelByID(ctx, q.NovelID); err != nil {
		return domain.Quiz{}, err
	}
	if q.Questions == "" {
		q.Questions = "[]"
	}
	q.ID = idx.New().String()
	if err := s.Store.Quizzes().CreateQuiz(ctx, q); err != nil {
		return domain.Quiz{}, err
	}
	return s.Store.Quizzes().GetQuizByID(ctx, q.ID)
}

func (s *CatalogService) UpdateQuiz(ctx context.Context, q domain.Quiz) (domain.Quiz, error) {
	if strings.TrimSpace(q.Title) == "" {
		return domain.Quiz{}, ErrValidation
	}
	if err := s.Store.Quizzes().UpdateQuiz(ctx, q); err != nil {
		return domain.Quiz{}, err
	}
	return s.Store.Quizzes().GetQuizByID(ctx, q.ID)
}

func (s *CatalogService) DeleteQuiz(ctx context.Context, id string) error {
	return s.Store.Quizzes().DeleteQuiz(ctx, id)
}

/* Summaries */

func (s *CatalogService) GetSummary(ctx context.Context, id string) (domain.Summary, error) {
	return s.Store.Summaries().GetSummaryByID(ctx, id)
}

func (s *CatalogService) ListSummaries(ctx context.Context, novelID string) ([]domain.Summary, error) {
	if _, err := s.Store.Novels().GetNovelByID(ctx, novelID); err != nil {
		return nil, err
	}
	return s.Store.Summaries().ListSummariesByNovel(ctx, novelID)
}

func (s *CatalogService) CreateSummary(ctx context.Context, sm domain.Summary) (domain.Summary, error) {
	if strings.TrimSpace(sm.Title) == "" {
		return domain.Summary{}, ErrValidation
	}
	if _, err := s.Store.Novels().GetNovelByID(ctx, sm.NovelID); err != nil {
		return domain.Summary{}, err
	}
	sm.ID = idx.New().String()
	if err := s.Store.Summaries().CreateSummary(ctx, sm); err != nil {
		return domain.Summary{}, err
	}
	return s.Store.Summaries().GetSummaryByID(ctx, sm.ID)
}

func (s *CatalogService) UpdateSummary(ctx context.Context, sm domain.Summary) (domain.Summary, error) {
	if strings.TrimSpace(sm.Title) == "" {
		return domain.Summary{}, ErrValidation
	}
	if err := s.Store.Summaries().UpdateSummary(ctx, sm); err != nil {
		return domain.Summary{}, err
	}
	return s.Store.Summaries().GetSummaryByID(ctx, sm.ID)
}

func (s *CatalogService) DeleteSummary(ctx context.Context, id string) error {
	return s.Store.Summaries().DeleteSummary(ctx, id)
}
