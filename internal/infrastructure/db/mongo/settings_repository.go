package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/delivery-quote/internal/core/domain"
)

const (
	collectionSettings = "delivery_settings"
	globalSettingsID   = "global"
)

type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

// GetSettings reads the global settings document. Fields missing from the
// document keep their domain.DefaultSettings value.
func (r *SettingsRepository) GetSettings(ctx context.Context) (domain.GlobalSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	s := domain.DefaultSettings()
	err := r.col.FindOne(ctx, bson.M{"_id": globalSettingsID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.GlobalSettings{}, domain.ErrSettingsNotFound
		}
		return domain.GlobalSettings{}, err
	}
	return s, nil
}
