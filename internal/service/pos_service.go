package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"campus-coffee-backend/internal/address"
	"campus-coffee-backend/internal/model"
	"campus-coffee-backend/internal/osm"
	"campus-coffee-backend/internal/store"
)

// PosService contains the business logic for points of sale: the
// create-or-update orchestration, the read paths and the OSM import.
type PosService struct {
	store store.Store
	osm   osm.NodeFetcher
	log   zerolog.Logger
}

// NewPosService creates a new pos service.
func NewPosService(s store.Store, fetcher osm.NodeFetcher, log zerolog.Logger) *PosService {
	return &PosService{store: s, osm: fetcher, log: log}
}

// Upsert creates the pos when it carries no ID and updates the existing row
// otherwise. Updates require prior existence and keep the original ID and
// CreatedAt; the storage layer refreshes UpdatedAt on every write. Nothing is
// retried: a duplicate name or missing ID reflects the caller's input.
func (s *PosService) Upsert(ctx context.Context, pos model.Pos) (model.Pos, error) {
	if err := pos.Validate(); err != nil {
		return model.Pos{}, err
	}

	if pos.ID == 0 {
		created, err := s.store.Create(ctx, pos)
		if err != nil {
			return model.Pos{}, err
		}
		s.log.Info().Int64("id", created.ID).Str("name", created.Name).Msg("pos created")
		return created, nil
	}

	existing, err := s.store.FindByID(ctx, pos.ID)
	if err != nil {
		return model.Pos{}, err
	}

	updated, err := s.store.Update(ctx, existing.WithFieldsFrom(pos))
	if err != nil {
		return model.Pos{}, err
	}
	s.log.Info().Int64("id", updated.ID).Str("name", updated.Name).Msg("pos updated")
	return updated, nil
}

// GetAll returns every pos, ordered by ascending ID.
func (s *PosService) GetAll(ctx context.Context) ([]model.Pos, error) {
	return s.store.FindAll(ctx)
}

// GetByID returns a single pos or NotFoundError.
func (s *PosService) GetByID(ctx context.Context, id int64) (model.Pos, error) {
	return s.store.FindByID(ctx, id)
}

// GetByCampus returns the pos records on a campus; an empty slice when none.
func (s *PosService) GetByCampus(ctx context.Context, campus model.Campus) ([]model.Pos, error) {
	return s.store.FindByCampus(ctx, campus)
}

// campusByPostalCode maps Heidelberg postal codes onto campus areas.
var campusByPostalCode = map[string]model.Campus{
	"69117": model.CampusAltstadt,
	"69115": model.CampusBergheim,
	"69120": model.CampusINF,
}

// ImportFromOsm fetches an OSM node and upserts it as a pos. The house number
// goes through the normalizer, the campus is inferred from the postal code
// and the type defaults to CAFE since OSM carries no equivalent tag.
func (s *PosService) ImportFromOsm(ctx context.Context, nodeID int64) (model.Pos, error) {
	node, err := s.osm.FetchNode(ctx, nodeID)
	if err != nil {
		return model.Pos{}, err
	}

	split, err := address.Split(node.HouseNumber)
	if err != nil {
		return model.Pos{}, fmt.Errorf("osm node %d: %w", nodeID, err)
	}

	campus, ok := campusByPostalCode[node.PostalCode]
	if !ok {
		return model.Pos{}, model.ValidationError{
			Field:  "address.postal_code",
			Reason: fmt.Sprintf("no campus mapped for postal code %q", node.PostalCode),
		}
	}

	pos := model.Pos{
		Name:        node.Name,
		Description: fmt.Sprintf("imported from OSM node %d", node.NodeID),
		Type:        model.TypeCafe,
		Campus:      campus,
		Address: model.Address{
			Street:            node.Street,
			HouseNumberDigits: split.Digits,
			HouseNumberSuffix: split.Suffix,
			PostalCode:        node.PostalCode,
			City:              node.City,
		},
	}

	s.log.Info().Int64("node_id", nodeID).Str("name", pos.Name).Msg("importing pos from OSM")
	return s.Upsert(ctx, pos)
}
