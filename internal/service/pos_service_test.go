package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campus-coffee-backend/internal/address"
	"campus-coffee-backend/internal/model"
	"campus-coffee-backend/internal/osm"
)

// MockStore is a mock implementation of the store.Store interface.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, pos model.Pos) (model.Pos, error) {
	args := m.Called(ctx, pos)
	return args.Get(0).(model.Pos), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, pos model.Pos) (model.Pos, error) {
	args := m.Called(ctx, pos)
	return args.Get(0).(model.Pos), args.Error(1)
}

func (m *MockStore) FindByID(ctx context.Context, id int64) (model.Pos, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Pos), args.Error(1)
}

func (m *MockStore) FindAll(ctx context.Context) ([]model.Pos, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Pos), args.Error(1)
}

func (m *MockStore) FindByCampus(ctx context.Context, campus model.Campus) ([]model.Pos, error) {
	args := m.Called(ctx, campus)
	return args.Get(0).([]model.Pos), args.Error(1)
}

// MockFetcher is a mock implementation of the osm.NodeFetcher interface.
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchNode(ctx context.Context, nodeID int64) (osm.Node, error) {
	args := m.Called(ctx, nodeID)
	return args.Get(0).(osm.Node), args.Error(1)
}

func newTestService(s *MockStore, f *MockFetcher) *PosService {
	return NewPosService(s, f, zerolog.Nop())
}

func posFixture() model.Pos {
	return model.Pos{
		Name:   "Café Central",
		Type:   model.TypeCafe,
		Campus: model.CampusAltstadt,
		Address: model.Address{
			Street:            "Hauptstr.",
			HouseNumberDigits: "5",
			PostalCode:        "69117",
			City:              "Heidelberg",
		},
	}
}

func TestUpsert_CreatePath(t *testing.T) {
	mockStore := new(MockStore)
	svc := newTestService(mockStore, new(MockFetcher))

	input := posFixture()
	now := time.Now().UTC()
	stored := input
	stored.ID = 1
	stored.CreatedAt = now
	stored.UpdatedAt = now

	mockStore.On("Create", mock.Anything, input).Return(stored, nil)

	result, err := svc.Upsert(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, result.CreatedAt, result.UpdatedAt)
	mockStore.AssertExpectations(t)
}

func TestUpsert_CreateInvalidNeverHitsStore(t *testing.T) {
	mockStore := new(MockStore)
	svc := newTestService(mockStore, new(MockFetcher))

	input := posFixture()
	input.Name = ""

	_, err := svc.Upsert(context.Background(), input)
	var verr model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	mockStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpsert_CreateDuplicateName(t *testing.T) {
	mockStore := new(MockStore)
	svc := newTestService(mockStore, new(MockFetcher))

	input := posFixture()
	mockStore.On("Create", mock.Anything, input).
		Return(model.Pos{}, model.DuplicateNameError{Name: input.Name})

	_, err := svc.Upsert(context.Background(), input)
	var dup model.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Café Central", dup.Name)
}

func TestUpsert_UpdatePath(t *testing.T) {
	mockStore := new(MockStore)
	svc := newTestService(mockStore, new(MockFetcher))

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	existing := posFixture()
	existing.ID = 7
	existing.CreatedAt = created
	existing.UpdatedAt = created

	input := posFixture()
	input.ID = 7
	input.Description = "new description"

	expectedWrite := existing.WithFieldsFrom(input)
	written := expectedWrite
	written.UpdatedAt = time.Now().UTC()

	mockStore.On("FindByID", mock.Anything, int64(7)).Return(existing, nil)
	mockStore.On("Update", mock.Anything, expectedWrite).Return(written, nil)

	result, err := svc.Upsert(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, created, result.CreatedAt)
	assert.Equal(t, "new description", result.Description)
	assert.True(t, result.UpdatedAt.After(created))
	mockStore.AssertExpectations(t)
}

func TestUpsert_UpdateMissingID(t *testing.T) {
	mockStore := new(MockStore)
	svc := newTestService(mockStore, new(MockFetcher))

	input := posFixture()
	input.ID = 99
	mockStore.On("FindByID", mock.Anything, int64(99)).
		Return(model.Pos{}, model.NotFoundError{ID: 99})

	_, err := svc.Upsert(context.Background(), input)
	var nf model.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(99), nf.ID)
	mockStore.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestGetByCampus_EmptyIsNotAnError(t *testing.T) {
	mockStore := new(MockStore)
	svc := newTestService(mockStore, new(MockFetcher))

	mockStore.On("FindByCampus", mock.Anything, model.CampusINF).Return([]model.Pos{}, nil)

	result, err := svc.GetByCampus(context.Background(), model.CampusINF)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestImportFromOsm(t *testing.T) {
	mockStore := new(MockStore)
	mockFetcher := new(MockFetcher)
	svc := newTestService(mockStore, mockFetcher)

	node := osm.Node{
		NodeID:      5589879349,
		Name:        "Café Botanik",
		Street:      "Im Neuenheimer Feld",
		HouseNumber: "304a",
		PostalCode:  "69120",
		City:        "Heidelberg",
	}
	mockFetcher.On("FetchNode", mock.Anything, int64(5589879349)).Return(node, nil)
	mockStore.On("Create", mock.Anything, mock.MatchedBy(func(p model.Pos) bool {
		return p.Name == "Café Botanik" &&
			p.Campus == model.CampusINF &&
			p.Address.HouseNumberDigits == "304" &&
			p.Address.HouseNumberSuffix == "a"
	})).Return(model.Pos{ID: 1, Name: "Café Botanik"}, nil)

	result, err := svc.ImportFromOsm(context.Background(), 5589879349)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	mockFetcher.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestImportFromOsm_UnknownNode(t *testing.T) {
	mockStore := new(MockStore)
	mockFetcher := new(MockFetcher)
	svc := newTestService(mockStore, mockFetcher)

	mockFetcher.On("FetchNode", mock.Anything, int64(42)).
		Return(osm.Node{}, osm.NodeNotFoundError{NodeID: 42})

	_, err := svc.ImportFromOsm(context.Background(), 42)
	var nf osm.NodeNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, int64(42), nf.NodeID)
	mockStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestImportFromOsm_BadHouseNumber(t *testing.T) {
	mockStore := new(MockStore)
	mockFetcher := new(MockFetcher)
	svc := newTestService(mockStore, mockFetcher)

	node := osm.Node{
		NodeID:      5589879349,
		Name:        "Café Botanik",
		Street:      "Im Neuenheimer Feld",
		HouseNumber: "304-306",
		PostalCode:  "69120",
		City:        "Heidelberg",
	}
	mockFetcher.On("FetchNode", mock.Anything, int64(5589879349)).Return(node, nil)

	_, err := svc.ImportFromOsm(context.Background(), 5589879349)
	assert.ErrorIs(t, err, address.ErrInvalidHouseNumber)
}

func TestImportFromOsm_UnmappedPostalCode(t *testing.T) {
	mockStore := new(MockStore)
	mockFetcher := new(MockFetcher)
	svc := newTestService(mockStore, mockFetcher)

	node := osm.Node{
		NodeID:      5589879349,
		Name:        "Café Botanik",
		Street:      "Im Neuenheimer Feld",
		HouseNumber: "304",
		PostalCode:  "12345",
		City:        "Heidelberg",
	}
	mockFetcher.On("FetchNode", mock.Anything, int64(5589879349)).Return(node, nil)

	_, err := svc.ImportFromOsm(context.Background(), 5589879349)
	var verr model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "address.postal_code", verr.Field)
}
