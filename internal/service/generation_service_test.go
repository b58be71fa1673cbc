package service_test

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quill/backend/internal/config"
	"quill/backend/internal/model"
	"quill/backend/internal/repository"
	"quill/backend/internal/repository/testutil"
	"quill/backend/internal/service"
	"quill/backend/internal/service/ai"
	aimock "quill/backend/internal/service/ai/mock"
)

const generatedReply = `TITLE: Harbour Terminal Opens
EXCERPT: The new terminal doubles capacity.
CONTENT:
<h2>Opening</h2><p>The terminal opened today.</p><script>alert(1)</script>`

type generationFixture struct {
	db       *sql.DB
	repos    repository.Repositories
	provider *aimock.MockProvider
	svc      service.GenerationService
	sourceID int64
}

func newGenerationFixture(t *testing.T, defaults config.AIDefaults, timeout time.Duration) *generationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	db := testutil.NewTestDB(t)
	repos := repository.NewRepositories(db)
	provider := aimock.NewMockProvider(ctrl)
	provider.EXPECT().Name().Return("mock").AnyTimes()
	provider.EXPECT().Model().Return("mock-model").AnyTimes()

	limiter := ai.NewRateLimiter(100)
	settings := service.NewSettingsService(repos.Settings, repos.Publishing, defaults, limiter)
	factory := func(cfg ai.Config) (ai.Provider, error) { return provider, nil }
	svc := service.NewGenerationService(repos.Items, repository.NewTransactor(db), settings, limiter, factory, timeout, 2, 5)

	return &generationFixture{
		db:       db,
		repos:    repos,
		provider: provider,
		svc:      svc,
		sourceID: testutil.SeedSource(t, db, model.FeedSource{URL: "https://feed.example.com/rss", Active: true}),
	}
}

func configuredAI() config.AIDefaults {
	return config.AIDefaults{Provider: ai.ProviderOpenAI, APIKey: "sk-test-key-123", Model: "mock-model", Language: "en-US"}
}

func (f *generationFixture) seedPending(t *testing.T, title string) int64 {
	t.Helper()
	return testutil.SeedItem(t, f.db, model.FetchedItem{
		SourceID:      f.sourceID,
		OriginalTitle: testutil.Ptr(title),
		OriginalBody:  testutil.Ptr("Body of " + title),
	})
}

func (f *generationFixture) status(t *testing.T, id int64) model.ItemStatus {
	t.Helper()
	item, err := f.repos.Items.GetByID(context.Background(), id)
	require.NoError(t, err)
	return item.Status
}

func TestGenerationService_GenerateItem_Success(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), time.Second)
	id := f.seedPending(t, "Terminal")
	ctx := context.Background()

	f.provider.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req ai.CompletionRequest) (string, error) {
			require.Equal(t, "mock-model", req.Model)
			require.Equal(t, ai.GenerationTemperature, req.Temperature)
			require.Equal(t, ai.GenerationMaxTokens, req.MaxTokens)
			require.Len(t, req.Messages, 2)
			require.Equal(t, ai.RoleSystem, req.Messages[0].Role)
			require.Contains(t, req.Messages[1].Content, "Title: Terminal")
			return generatedReply, nil
		})

	item, err := f.svc.GenerateItem(ctx, id)
	require.NoError(t, err)
	require.Equal(t, model.StatusApproved, item.Status)
	require.Equal(t, "Harbour Terminal Opens", *item.GeneratedTitle)
	require.Equal(t, "The new terminal doubles capacity.", *item.GeneratedExcerpt)
	require.Contains(t, *item.GeneratedBody, "<p>The terminal opened today.</p>")
	require.NotContains(t, *item.GeneratedBody, "script")
	require.NotNil(t, item.ProcessedAt)
}

func TestGenerationService_GenerateItem_ProviderErrorRollsBack(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), time.Second)
	id := f.seedPending(t, "Terminal")

	f.provider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("upstream 500"))

	_, err := f.svc.GenerateItem(context.Background(), id)
	require.ErrorIs(t, err, service.ErrGenerationFailed)
	require.Equal(t, model.StatusPending, f.status(t, id))
}

func TestGenerationService_GenerateItem_EmptyReplyRollsBack(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), time.Second)
	id := f.seedPending(t, "Terminal")

	f.provider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("TITLE: Only a title\nCONTENT:\n", nil)

	_, err := f.svc.GenerateItem(context.Background(), id)
	require.ErrorIs(t, err, service.ErrGenerationFailed)
	require.Equal(t, model.StatusPending, f.status(t, id))
}

func TestGenerationService_GenerateItem_TimeoutRollsBack(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), 50*time.Millisecond)
	id := f.seedPending(t, "Slow")

	f.provider.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req ai.CompletionRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	_, err := f.svc.GenerateItem(context.Background(), id)
	require.ErrorIs(t, err, service.ErrGenerationFailed)
	require.Equal(t, model.StatusPending, f.status(t, id))
}

func TestGenerationService_GenerateItem_RequiresPending(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), time.Second)
	id := testutil.SeedItem(t, f.db, model.FetchedItem{SourceID: f.sourceID, Status: model.StatusApproved})

	_, err := f.svc.GenerateItem(context.Background(), id)
	require.ErrorIs(t, err, service.ErrStatusConflict)

	_, err = f.svc.GenerateItem(context.Background(), 999)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestGenerationService_GenerateItem_ProviderNotConfigured(t *testing.T) {
	f := newGenerationFixture(t, config.AIDefaults{Provider: ai.ProviderOpenAI}, time.Second)
	id := f.seedPending(t, "Terminal")

	_, err := f.svc.GenerateItem(context.Background(), id)
	require.ErrorIs(t, err, service.ErrProviderNotConfigured)
	require.Equal(t, model.StatusPending, f.status(t, id))
}

func TestGenerationService_GenerateCombined(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), time.Second)
	first := f.seedPending(t, "First")
	second := f.seedPending(t, "Second")
	third := f.seedPending(t, "Third")
	ctx := context.Background()

	f.provider.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req ai.CompletionRequest) (string, error) {
			require.Contains(t, req.Messages[0].Content, "Merge the 3 source articles")
			user := req.Messages[1].Content
			require.True(t, strings.Index(user, "Title: First") < strings.Index(user, "Title: Third"))
			return generatedReply, nil
		})

	item, err := f.svc.GenerateCombined(ctx, []int64{first, second, third, second})
	require.NoError(t, err)
	require.Equal(t, first, item.ID)
	require.Equal(t, model.StatusApproved, item.Status)

	for _, id := range []int64{second, third} {
		absorbed, err := f.repos.Items.GetByID(ctx, id)
		require.NoError(t, err)
		require.Equal(t, model.StatusAbsorbed, absorbed.Status)
		require.NotNil(t, absorbed.AbsorbedInto)
		require.Equal(t, first, *absorbed.AbsorbedInto)
		require.Nil(t, absorbed.PostID)
	}
}

func TestGenerationService_GenerateCombined_FailureRollsBackAll(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), time.Second)
	first := f.seedPending(t, "First")
	second := f.seedPending(t, "Second")

	f.provider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("boom"))

	_, err := f.svc.GenerateCombined(context.Background(), []int64{first, second})
	require.ErrorIs(t, err, service.ErrGenerationFailed)
	require.Equal(t, model.StatusPending, f.status(t, first))
	require.Equal(t, model.StatusPending, f.status(t, second))
}

func TestGenerationService_GenerateCombined_LostPrimaryReleasesSecondaries(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), time.Second)
	first := f.seedPending(t, "First")
	second := f.seedPending(t, "Second")
	third := f.seedPending(t, "Third")
	ctx := context.Background()

	f.provider.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, ai.CompletionRequest) (string, error) {
			// Another writer takes the primary while the provider is busy.
			ok, err := f.repos.Items.TransitionStatus(ctx, first, model.StatusProcessing, model.StatusRejected)
			require.NoError(t, err)
			require.True(t, ok)
			return generatedReply, nil
		})

	_, err := f.svc.GenerateCombined(ctx, []int64{first, second, third})
	require.ErrorIs(t, err, service.ErrStatusConflict)
	require.Equal(t, model.StatusRejected, f.status(t, first))
	require.Equal(t, model.StatusPending, f.status(t, second))
	require.Equal(t, model.StatusPending, f.status(t, third))
}

func TestGenerationService_GenerateCombined_Validation(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), time.Second)
	first := f.seedPending(t, "First")
	approved := testutil.SeedItem(t, f.db, model.FetchedItem{SourceID: f.sourceID, Status: model.StatusApproved})
	ctx := context.Background()

	_, err := f.svc.GenerateCombined(ctx, []int64{first, first})
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = f.svc.GenerateCombined(ctx, []int64{first, 424242})
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = f.svc.GenerateCombined(ctx, []int64{first, approved})
	require.ErrorIs(t, err, service.ErrStatusConflict)
	require.Equal(t, model.StatusPending, f.status(t, first))
}

func TestGenerationService_GenerateBatch_CountsFailures(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), time.Second)
	ok1 := f.seedPending(t, "Alpha")
	bad := f.seedPending(t, "Broken")
	ok2 := f.seedPending(t, "Gamma")

	f.provider.EXPECT().Complete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req ai.CompletionRequest) (string, error) {
			if strings.Contains(req.Messages[1].Content, "Title: Broken") {
				return "", errors.New("rejected by provider")
			}
			return generatedReply, nil
		}).Times(3)

	summary, err := f.svc.GenerateBatch(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, service.GenerationSummary{Processed: 2, Errors: 1}, summary)
	require.Equal(t, model.StatusApproved, f.status(t, ok1))
	require.Equal(t, model.StatusApproved, f.status(t, ok2))
	require.Equal(t, model.StatusPending, f.status(t, bad))
}

func TestGenerationService_GenerateBatch_RespectsLimitAndOrder(t *testing.T) {
	f := newGenerationFixture(t, configuredAI(), time.Second)
	base := time.Now().Add(-time.Hour)
	var ids []int64
	for i, title := range []string{"Oldest", "Middle", "Newest"} {
		ids = append(ids, testutil.SeedItem(t, f.db, model.FetchedItem{
			SourceID:      f.sourceID,
			OriginalTitle: testutil.Ptr(title),
			FetchedAt:     base.Add(time.Duration(i) * time.Minute),
		}))
	}

	f.provider.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(generatedReply, nil).Times(2)

	summary, err := f.svc.GenerateBatch(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Processed)
	require.Equal(t, model.StatusApproved, f.status(t, ids[0]))
	require.Equal(t, model.StatusApproved, f.status(t, ids[1]))
	require.Equal(t, model.StatusPending, f.status(t, ids[2]))
}

func TestGenerationService_GenerateBatch_NoPendingSkipsProvider(t *testing.T) {
	f := newGenerationFixture(t, config.AIDefaults{}, time.Second)

	summary, err := f.svc.GenerateBatch(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, service.GenerationSummary{}, summary)
}
