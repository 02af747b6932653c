package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fogbuilds/internal/delivery/http/validator"
	"fogbuilds/internal/domain/entity"
	"fogbuilds/internal/domain/repository"
	mockRepo "fogbuilds/internal/mocks/repository"
	"fogbuilds/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogHandler(t *testing.T, variant entity.Variant) (*CatalogHandler, *mockRepo.MockCatalogRepository) {
	repo := mockRepo.NewMockCatalogRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := impl.NewCatalogService(variant, repo, logger)

	return NewCatalogHandler(variant, service, logger), repo
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCatalogHandler_List(t *testing.T) {
	handler, repo := newCatalogHandler(t, entity.VariantCharacter)

	stored := []*entity.CatalogEntry{
		{ID: 1, Type: entity.CharacterTypeKiller, Name: "Trapper", Description: "Sets bear traps"},
	}
	repo.EXPECT().FindAll(mock.Anything).Return(stored, nil)

	c, rec := newContext(http.MethodGet, "/characters", "")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Trapper"`)
}

// An empty collection is a bodiless success, not an error.
func TestCatalogHandler_List_EmptyGivesNoContent(t *testing.T) {
	handler, repo := newCatalogHandler(t, entity.VariantItem)

	repo.EXPECT().FindAll(mock.Anything).Return([]*entity.CatalogEntry{}, nil)

	c, rec := newContext(http.MethodGet, "/items", "")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCatalogHandler_ListByType_MissingTypeField(t *testing.T) {
	handler, _ := newCatalogHandler(t, entity.VariantCharacter)

	// A payload carrying only unrecognized fields binds to an empty filter.
	c, rec := newContext(http.MethodGet, "/characters/type", `{"boost":"chuck"}`)

	require.NoError(t, handler.ListByType(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No type given")
}

func TestCatalogHandler_ListByType(t *testing.T) {
	handler, repo := newCatalogHandler(t, entity.VariantCharacter)

	survivors := []*entity.CatalogEntry{
		{ID: 2, Type: entity.CharacterTypeSurvivor, Name: "Dwight", Description: "Leader"},
	}
	repo.EXPECT().FindByType(mock.Anything, entity.CharacterTypeSurvivor).Return(survivors, nil)

	c, rec := newContext(http.MethodGet, "/characters/type", `{"type":"SURVIVOR"}`)

	require.NoError(t, handler.ListByType(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Dwight"`)
}

func TestCatalogHandler_Get_InvalidID(t *testing.T) {
	handler, _ := newCatalogHandler(t, entity.VariantCharacter)

	c, rec := newContext(http.MethodGet, "/characters/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestCatalogHandler_Get_NotFound(t *testing.T) {
	handler, repo := newCatalogHandler(t, entity.VariantCharacter)

	repo.EXPECT().FindByID(mock.Anything, int64(42)).Return(nil, repository.ErrEntryNotFound)

	c, rec := newContext(http.MethodGet, "/characters/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "There is no character with id, 42")
}

func TestCatalogHandler_Create(t *testing.T) {
	handler, repo := newCatalogHandler(t, entity.VariantCharacter)

	repo.EXPECT().FindUniqueByName(mock.Anything, "Nurse").Return(nil, repository.ErrEntryNotFound)
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.CatalogEntry")).Return(nil)

	c, rec := newContext(http.MethodPost, "/characters",
		`{"name":"Nurse","description":"Blinks through walls","type":"KILLER"}`)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Nurse"`)
}

func TestCatalogHandler_Create_DuplicateName(t *testing.T) {
	handler, repo := newCatalogHandler(t, entity.VariantCharacter)

	existing := &entity.CatalogEntry{ID: 1, Type: entity.CharacterTypeKiller, Name: "Trapper", Description: "Sets bear traps"}
	repo.EXPECT().FindUniqueByName(mock.Anything, "Trapper").Return(existing, nil)

	c, rec := newContext(http.MethodPost, "/characters",
		`{"name":"Trapper","description":"Again","type":"KILLER"}`)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "A character already exists with the name, Trapper")
}

func TestCatalogHandler_Create_MissingData(t *testing.T) {
	handler, _ := newCatalogHandler(t, entity.VariantCharacter)

	c, rec := newContext(http.MethodPost, "/characters", `{"description":"chuck"}`)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Some data missing from request.")
}

// A name wider than the store's column is rejected by payload validation
// before any repository access.
func TestCatalogHandler_Create_OverlongNameRejected(t *testing.T) {
	handler, _ := newCatalogHandler(t, entity.VariantCharacter)

	longName := strings.Repeat("x", 256)
	c, rec := newContext(http.MethodPost, "/characters",
		`{"name":"`+longName+`","description":"Too wide","type":"KILLER"}`)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCatalogHandler_Update(t *testing.T) {
	handler, repo := newCatalogHandler(t, entity.VariantCharacter)

	stored := &entity.CatalogEntry{ID: 7, Type: entity.CharacterTypeKiller, Name: "Billy", Description: "Old description"}
	repo.EXPECT().FindByID(mock.Anything, int64(7)).Return(stored, nil)
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.CatalogEntry")).Return(nil)

	c, rec := newContext(http.MethodPut, "/characters/7", `{"description":"Revs a chainsaw"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Revs a chainsaw")
	assert.Contains(t, rec.Body.String(), `"Billy"`)
}

func TestCatalogHandler_Delete(t *testing.T) {
	handler, repo := newCatalogHandler(t, entity.VariantPerk)

	stored := &entity.CatalogEntry{ID: 11, Type: entity.CharacterTypeSurvivor, Name: "Dead Hard", Description: "Dash forward"}
	repo.EXPECT().FindByID(mock.Anything, int64(11)).Return(stored, nil)
	repo.EXPECT().Delete(mock.Anything, stored).Return(nil)

	c, rec := newContext(http.MethodDelete, "/perks/11", "")
	c.SetParamNames("id")
	c.SetParamValues("11")

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dead Hard")
}
