package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/delivery-quote/internal/core/domain"
)

const (
	collectionCityZones     = "city_zones"
	collectionRegionalZones = "regional_zones"
	collectionCrossZoneFees = "cross_zone_fees"
	collectionStoreHubs     = "store_hubs"
)

type crossZoneFeeDoc struct {
	From   string `bson:"from"`
	To     string `bson:"to"`
	FeeNgn int64  `bson:"fee_ngn"`
}

type storeHubDoc struct {
	HubID    string             `bson:"hub_id"`
	Location domain.Coordinates `bson:"location"`
}

// ZoneRepository loads the zone catalog from MongoDB.
type ZoneRepository struct {
	db *mongo.Database
}

func NewZoneRepository(db *mongo.Database) *ZoneRepository {
	return &ZoneRepository{db: db}
}

// LoadCatalog reads both zone catalogs, the cross-zone fee table and the store
// hubs. Zones are filtered to active ones and ordered by sort_order.
func (r *ZoneRepository) LoadCatalog(ctx context.Context) (domain.ZoneCatalog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	city, err := r.findZones(ctx, collectionCityZones)
	if err != nil {
		return domain.ZoneCatalog{}, err
	}
	regional, err := r.findZones(ctx, collectionRegionalZones)
	if err != nil {
		return domain.ZoneCatalog{}, err
	}

	var fees []crossZoneFeeDoc
	if err := r.findAll(ctx, collectionCrossZoneFees, bson.M{}, nil, &fees); err != nil {
		return domain.ZoneCatalog{}, err
	}
	var hubs []storeHubDoc
	if err := r.findAll(ctx, collectionStoreHubs, bson.M{}, nil, &hubs); err != nil {
		return domain.ZoneCatalog{}, err
	}

	return domain.ZoneCatalog{
		CityZones:     city,
		RegionalZones: regional,
		CrossZoneFees: buildFeeTable(fees),
		Hubs:          buildHubIndex(hubs),
	}, nil
}

func (r *ZoneRepository) findZones(ctx context.Context, collection string) ([]domain.ZoneConfig, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "code", Value: 1}})
	var zones []domain.ZoneConfig
	if err := r.findAll(ctx, collection, bson.M{"is_active": true}, opts, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *ZoneRepository) findAll(ctx context.Context, collection string, filter bson.M, opts *options.FindOptions, out any) error {
	cur, err := r.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// buildFeeTable indexes fee rows origin → destination. Later rows win.
func buildFeeTable(docs []crossZoneFeeDoc) map[string]map[string]int64 {
	table := make(map[string]map[string]int64, len(docs))
	for _, d := range docs {
		if d.From == "" || d.To == "" {
			continue
		}
		if table[d.From] == nil {
			table[d.From] = make(map[string]int64)
		}
		table[d.From][d.To] = d.FeeNgn
	}
	return table
}

func buildHubIndex(docs []storeHubDoc) map[string]domain.Coordinates {
	hubs := make(map[string]domain.Coordinates, len(docs))
	for _, d := range docs {
		if d.HubID != "" {
			hubs[d.HubID] = d.Location
		}
	}
	return hubs
}

// EnsureIndexes creates the lookup indexes of the catalog collections.
func (r *ZoneRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	zoneIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "sort_order", Value: 1}}},
	}
	for _, coll := range []string{collectionCityZones, collectionRegionalZones} {
		if _, err := r.db.Collection(coll).Indexes().CreateMany(ctx, zoneIndexes); err != nil {
			return fmt.Errorf("indexes %s: %w", coll, err)
		}
	}

	if _, err := r.db.Collection(collectionCrossZoneFees).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "from", Value: 1}, {Key: "to", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("indexes %s: %w", collectionCrossZoneFees, err)
	}

	_, err := r.db.Collection(collectionStoreHubs).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "hub_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
