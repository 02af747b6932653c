package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	deliverycontext "fogbuilds/internal/delivery/context"
	"fogbuilds/internal/domain/entity"
	domainerrors "fogbuilds/internal/domain/errors"
	"fogbuilds/internal/domain/repository"
	mockRepo "fogbuilds/internal/mocks/repository"
	"fogbuilds/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func TestCatalogService_List(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()
	stored := []*entity.CatalogEntry{
		{ID: 1, Type: entity.CharacterTypeKiller, Name: "Trapper", Description: "Sets bear traps"},
		{ID: 2, Type: entity.CharacterTypeSurvivor, Name: "Dwight", Description: "Leader"},
	}

	repo.EXPECT().FindAll(ctx).Return(stored, nil)

	entries, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, entries)
}

func TestCatalogService_List_EmptyIsSuccess(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantItem, repo, newTestLogger())

	ctx := context.Background()

	repo.EXPECT().FindAll(ctx).Return([]*entity.CatalogEntry{}, nil)

	entries, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCatalogService_ListByType(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()
	killers := []*entity.CatalogEntry{
		{ID: 1, Type: entity.CharacterTypeKiller, Name: "Wraith", Description: "Cloaks"},
	}

	repo.EXPECT().FindByType(ctx, entity.CharacterTypeKiller).Return(killers, nil)

	entries, err := service.ListByType(ctx, usecase.ListByTypeRequest{Type: strPtr("KILLER")})
	require.NoError(t, err)
	assert.Equal(t, killers, entries)
}

func TestCatalogService_ListByType_MissingType(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	entries, err := service.ListByType(context.Background(), usecase.ListByTypeRequest{})
	require.ErrorIs(t, err, domainerrors.ErrNoTypeGiven)
	assert.Nil(t, entries)
	assert.Equal(t, "No type given", domainerrors.ErrNoTypeGiven.Message())
}

func TestCatalogService_ListByType_InvalidType(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	entries, err := service.ListByType(context.Background(), usecase.ListByTypeRequest{Type: strPtr("killer")})
	require.ErrorIs(t, err, domainerrors.ErrInvalidTypeGiven)
	assert.Nil(t, entries)
	assert.Equal(t, "Invalid type given", domainerrors.ErrInvalidTypeGiven.Message())
}

// Client errors raised during a request must carry the request-scoped
// logger's fields, not the service's bare logger.
func TestCatalogService_ListByType_UsesRequestScopedLogger(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-123"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	_, err := service.ListByType(ctx, usecase.ListByTypeRequest{})
	require.ErrorIs(t, err, domainerrors.ErrNoTypeGiven)

	assert.Contains(t, buf.String(), "No type given")
	assert.Contains(t, buf.String(), "req-123")
}

func TestCatalogService_Get(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantPerk, repo, newTestLogger())

	ctx := context.Background()
	stored := &entity.CatalogEntry{ID: 3, Type: entity.CharacterTypeSurvivor, Name: "Sprint Burst", Description: "Run fast"}

	repo.EXPECT().FindByID(ctx, int64(3)).Return(stored, nil)

	entry, err := service.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, stored, entry)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrEntryNotFound)

	entry, err := service.Get(ctx, 42)
	require.Error(t, err)
	assert.Nil(t, entry)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "There is no character with id, 42", appErr.Message())
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestCatalogService_Create(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()

	repo.EXPECT().FindUniqueByName(ctx, "Nurse").Return(nil, repository.ErrEntryNotFound)
	repo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.CatalogEntry")).
		Run(func(ctx context.Context, entry *entity.CatalogEntry) {
			entry.ID = 9
		}).
		Return(nil)

	entry, err := service.Create(ctx, usecase.CreateEntryRequest{
		Name:        strPtr("Nurse"),
		Description: strPtr("Blinks through walls"),
		Type:        strPtr("KILLER"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), entry.ID)
	assert.Equal(t, entity.CharacterTypeKiller, entry.Type)
	assert.Equal(t, "Nurse", entry.Name)
	assert.Equal(t, "Blinks through walls", entry.Description)
}

// A created entry reads back under its generated ID with every field intact.
func TestCatalogService_CreateThenGetRoundTrip(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantItem, repo, newTestLogger())

	ctx := context.Background()

	var saved *entity.CatalogEntry
	repo.EXPECT().FindUniqueByName(ctx, "Toolbox").Return(nil, repository.ErrEntryNotFound)
	repo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.CatalogEntry")).
		Run(func(ctx context.Context, entry *entity.CatalogEntry) {
			entry.ID = 12
			saved = entry
		}).
		Return(nil)

	created, err := service.Create(ctx, usecase.CreateEntryRequest{
		Name:        strPtr("Toolbox"),
		Description: strPtr("Repairs generators"),
		Type:        strPtr("SURVIVOR"),
	})
	require.NoError(t, err)

	repo.EXPECT().FindByID(ctx, int64(12)).Return(saved, nil)

	fetched, err := service.Get(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
	assert.Equal(t, "Toolbox", fetched.Name)
	assert.Equal(t, "Repairs generators", fetched.Description)
	assert.Equal(t, entity.CharacterTypeSurvivor, fetched.Type)
}

func TestCatalogService_Create_MissingData(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()

	// A payload with only unrecognized fields binds to an empty request.
	tests := []struct {
		name string
		req  usecase.CreateEntryRequest
	}{
		{name: "empty payload", req: usecase.CreateEntryRequest{}},
		{name: "missing type", req: usecase.CreateEntryRequest{Name: strPtr("Hag"), Description: strPtr("Teleports")}},
		{name: "missing name", req: usecase.CreateEntryRequest{Description: strPtr("Teleports"), Type: strPtr("KILLER")}},
		{name: "missing description", req: usecase.CreateEntryRequest{Name: strPtr("Hag"), Type: strPtr("KILLER")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := service.Create(ctx, tt.req)
			require.ErrorIs(t, err, domainerrors.ErrMissingData)
			assert.Nil(t, entry)
		})
	}

	assert.Equal(t, "Some data missing from request.", domainerrors.ErrMissingData.Message())
}

func TestCatalogService_Create_DuplicateName(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantAddon, repo, newTestLogger())

	ctx := context.Background()
	existing := &entity.CatalogEntry{ID: 1, Type: entity.CharacterTypeKiller, Name: "Speed Limiter", Description: "Slower but safer"}

	repo.EXPECT().FindUniqueByName(ctx, "Speed Limiter").Return(existing, nil)

	entry, err := service.Create(ctx, usecase.CreateEntryRequest{
		Name:        strPtr("Speed Limiter"),
		Description: strPtr("Something else"),
		Type:        strPtr("KILLER"),
	})
	require.Error(t, err)
	assert.Nil(t, entry)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "A addon already exists with the name, Speed Limiter", appErr.Message())
}

// A duplicate name combined with an invalid type must report the duplicate:
// the name check runs before the type token is parsed.
func TestCatalogService_Create_DuplicateNameWinsOverInvalidType(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()
	existing := &entity.CatalogEntry{ID: 1, Type: entity.CharacterTypeKiller, Name: "Trapper", Description: "Sets bear traps"}

	repo.EXPECT().FindUniqueByName(ctx, "Trapper").Return(existing, nil)

	entry, err := service.Create(ctx, usecase.CreateEntryRequest{
		Name:        strPtr("Trapper"),
		Description: strPtr("Again"),
		Type:        strPtr("DEMON"),
	})
	require.Error(t, err)
	assert.Nil(t, entry)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "A character already exists with the name, Trapper", appErr.Message())
}

func TestCatalogService_Create_InvalidType(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()

	repo.EXPECT().FindUniqueByName(ctx, "Legion").Return(nil, repository.ErrEntryNotFound)

	entry, err := service.Create(ctx, usecase.CreateEntryRequest{
		Name:        strPtr("Legion"),
		Description: strPtr("Runs in a pack"),
		Type:        strPtr("DEMON"),
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCharacterType)
	assert.Nil(t, entry)
	assert.Equal(t, "The CharacterType supplied was invalid", domainerrors.ErrInvalidCharacterType.Message())
}

// Enum parsing is exact: lowercase or padded tokens are rejected.
func TestCatalogService_Create_TypeTokenIsCaseSensitive(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()

	for _, token := range []string{"killer", "Killer", " KILLER", "SURVIVOR "} {
		repo.EXPECT().FindUniqueByName(ctx, "Ghost Face").Return(nil, repository.ErrEntryNotFound).Once()

		entry, err := service.Create(ctx, usecase.CreateEntryRequest{
			Name:        strPtr("Ghost Face"),
			Description: strPtr("Stalks"),
			Type:        strPtr(token),
		})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCharacterType, "token %q", token)
		assert.Nil(t, entry)
	}
}

// The unique constraint closes the window between the duplicate check and
// the insert; a constraint hit reports the same duplicate outcome.
func TestCatalogService_Create_ConstraintRaceMapsToDuplicate(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()

	repo.EXPECT().FindUniqueByName(ctx, "Oni").Return(nil, repository.ErrEntryNotFound)
	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.CatalogEntry")).Return(repository.ErrDuplicateName)

	entry, err := service.Create(ctx, usecase.CreateEntryRequest{
		Name:        strPtr("Oni"),
		Description: strPtr("Absorbs blood"),
		Type:        strPtr("KILLER"),
	})
	require.Error(t, err)
	assert.Nil(t, entry)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "A character already exists with the name, Oni", appErr.Message())
}

// Updating a single field leaves every other field untouched.
func TestCatalogService_Update_MergesPresentFields(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()
	stored := &entity.CatalogEntry{ID: 7, Type: entity.CharacterTypeKiller, Name: "Billy", Description: "Old description"}

	repo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)
	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.CatalogEntry")).Return(nil)

	entry, err := service.Update(ctx, 7, usecase.UpdateEntryRequest{
		Description: strPtr("Revs a chainsaw"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Billy", entry.Name)
	assert.Equal(t, entity.CharacterTypeKiller, entry.Type)
	assert.Equal(t, "Revs a chainsaw", entry.Description)
}

func TestCatalogService_Update_TypeAlone(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()
	stored := &entity.CatalogEntry{ID: 5, Type: entity.CharacterTypeKiller, Name: "Mikaela", Description: "Lights candles"}

	repo.EXPECT().FindByID(ctx, int64(5)).Return(stored, nil)
	repo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.CatalogEntry")).Return(nil)

	entry, err := service.Update(ctx, 5, usecase.UpdateEntryRequest{
		Type: strPtr("SURVIVOR"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CharacterTypeSurvivor, entry.Type)
	assert.Equal(t, "Mikaela", entry.Name)
	assert.Equal(t, "Lights candles", entry.Description)
}

// An invalid type token discards the whole update; nothing is persisted.
func TestCatalogService_Update_InvalidTypeAbortsWholeUpdate(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()
	stored := &entity.CatalogEntry{ID: 7, Type: entity.CharacterTypeKiller, Name: "Billy", Description: "Old description"}

	repo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)

	entry, err := service.Update(ctx, 7, usecase.UpdateEntryRequest{
		Name: strPtr("New Billy"),
		Type: strPtr("DEMON"),
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCharacterType)
	assert.Nil(t, entry)
}

// An update carrying no fields persists and returns the stored entry
// unchanged.
func TestCatalogService_Update_EmptyPayloadIsNoOp(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()
	stored := &entity.CatalogEntry{ID: 7, Type: entity.CharacterTypeKiller, Name: "Billy", Description: "Revs a chainsaw"}

	repo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)

	var saved *entity.CatalogEntry
	repo.EXPECT().
		Save(ctx, mock.AnythingOfType("*entity.CatalogEntry")).
		Run(func(ctx context.Context, entry *entity.CatalogEntry) {
			saved = entry
		}).
		Return(nil)

	entry, err := service.Update(ctx, 7, usecase.UpdateEntryRequest{})
	require.NoError(t, err)

	want := &entity.CatalogEntry{ID: 7, Type: entity.CharacterTypeKiller, Name: "Billy", Description: "Revs a chainsaw"}
	assert.Equal(t, want, entry)
	assert.Equal(t, want, saved)
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantItem, repo, newTestLogger())

	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrEntryNotFound)

	entry, err := service.Update(ctx, 404, usecase.UpdateEntryRequest{Name: strPtr("Toolbox")})
	require.Error(t, err)
	assert.Nil(t, entry)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "There is no item with id, 404", appErr.Message())
}

func TestCatalogService_Delete_ReturnsLastState(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantPerk, repo, newTestLogger())

	ctx := context.Background()
	stored := &entity.CatalogEntry{ID: 11, Type: entity.CharacterTypeSurvivor, Name: "Dead Hard", Description: "Dash forward"}

	repo.EXPECT().FindByID(ctx, int64(11)).Return(stored, nil)
	repo.EXPECT().Delete(ctx, stored).Return(nil)

	entry, err := service.Delete(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, stored, entry)
}

func TestCatalogService_Delete_NotFound(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantPerk, repo, newTestLogger())

	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, int64(8)).Return(nil, repository.ErrEntryNotFound)

	entry, err := service.Delete(ctx, 8)
	require.Error(t, err)
	assert.Nil(t, entry)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "There is no perk with id, 8", appErr.Message())
}

func TestCatalogService_List_RepositoryFailure(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(entity.VariantCharacter, repo, newTestLogger())

	ctx := context.Background()

	repo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection refused"))

	entries, err := service.List(ctx)
	require.Error(t, err)
	assert.Nil(t, entries)

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr), "infrastructure failures must not classify as client errors")
}
