package platform_test

import (
	"testing"

	"github.com/inkwell-edu/inkwell/pkg/learnsdk"
	"github.com/stretchr/testify/require"
)

// TestCatalogCRUD tests the full content lifecycle through the SDK:
// create a novel with child resources, read everything back, update the
// novel, then delete it and verify the cascade.
func TestCatalogCRUD(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := learnsdk.NewClient(baseURL)
	bootstrapAdmin(t, client)
	ctx := t.Context()

	session := loginAdmin(t, client)
	novel, chapter, video := seedNovel(t, session)

	// Reads.
	novels, err := session.Novels(ctx)
	require.NoError(t, err)
	require.Len(t, novels, 1)
	require.Equal(t, novel.ID, novels[0].ID)

	chapters, err := session.Chapters(ctx, novel.ID)
	require.NoError(t, err)
	require.Len(t, chapters, 1)
	require.Equal(t, chapter.Title, chapters[0].Title)

	gotChapter, err := session.Chapter(ctx, chapter.ID)
	require.NoError(t, err)
	require.Equal(t, chapter.Body, gotChapter.Body)

	videos, err := session.Videos(ctx, novel.ID)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, video.URL, videos[0].URL)

	// Update.
	novel.Description = "Updated for the new term."
	updated, err := session.UpdateNovel(ctx, *novel)
	require.NoError(t, err)
	require.Equal(t, "Updated for the new term.", updated.Description)

	// Delete cascades to child resources.
	require.NoError(t, session.DeleteNovel(ctx, novel.ID))

	_, err = session.Novel(ctx, novel.ID)
	requireAPIError(t, err, 404)

	_, err = session.Chapter(ctx, chapter.ID)
	requireAPIError(t, err, 404)
}

// TestCatalogValidation verifies the admin write endpoints reject bad input.
func TestCatalogValidation(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := learnsdk.NewClient(baseURL)
	bootstrapAdmin(t, client)
	ctx := t.Context()

	session := loginAdmin(t, client)

	// Title is required.
	_, err := session.CreateNovel(ctx, learnsdk.Novel{Author: "Anonymous"})
	requireAPIError(t, err, 400)

	// Child resources need an existing parent novel.
	_, err = session.CreateChapter(ctx, learnsdk.Chapter{
		NovelID: "01K00000000000000000000000",
		Index:   1,
		Title:   "Orphan chapter",
	})
	requireAPIError(t, err, 404)

	// Deleting a missing novel is a 404, not a silent success.
	err = session.DeleteNovel(ctx, "01K00000000000000000000000")
	requireAPIError(t, err, 404)
}

// TestCatalogRemainingResources exercises notes, quizzes and summaries,
// which share the create/list plumbing with chapters and videos.
func TestCatalogRemainingResources(t *testing.T) {
	baseURL, cleanup := setupPlatformContainer(t)
	defer cleanup()

	client := learnsdk.NewClient(baseURL)
	bootstrapAdmin(t, client)
	ctx := t.Context()

	session := loginAdmin(t, client)

	novel, err := session.CreateNovel(ctx, learnsdk.Novel{
		Title:     "Jane Eyre",
		Author:    "Charlotte Brontë",
		Published: true,
	})
	require.NoError(t, err)

	note, err := session.CreateNote(ctx, learnsdk.Note{
		NovelID: novel.ID,
		Title:   "Themes of independence",
		Body:    "Track Jane's refusals across volumes.",
	})
	require.NoError(t, err)

	quiz, err := session.CreateQuiz(ctx, learnsdk.Quiz{
		NovelID:   novel.ID,
		Title:     "Volume I check",
		Questions: `[{"q":"Where does Jane attend school?","a":"Lowood"}]`,
	})
	require.NoError(t, err)

	summary, err := session.CreateSummary(ctx, learnsdk.Summary{
		NovelID: novel.ID,
		Title:   "Volume I summary",
		Body:    "Gateshead to Lowood to Thornfield.",
	})
	require.NoError(t, err)

	notes, err := session.Notes(ctx, novel.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, note.ID, notes[0].ID)

	quizzes, err := session.Quizzes(ctx, novel.ID)
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	require.Equal(t, quiz.ID, quizzes[0].ID)

	summaries, err := session.Summaries(ctx, novel.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, summary.ID, summaries[0].ID)
}
