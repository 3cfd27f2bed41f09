package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/medsched/hospital-scheduler/internal/models"
)

const emailKeyPrefix = "profile_email:"

// EmailResolver maps actor user ids to display emails for audit-log
// rendering. Redis in front when configured, profiles table behind;
// cache misses and cache errors both fall through to the db.
type EmailResolver struct {
	db  *gorm.DB
	rdb *redis.Client
	ttl time.Duration
}

func NewEmailResolver(db *gorm.DB, rdb *redis.Client) *EmailResolver {
	return &EmailResolver{
		db:  db,
		rdb: rdb,
		ttl: 15 * time.Minute,
	}
}

func (r *EmailResolver) Resolve(
	ctx context.Context,
	userIDs []string,
) map[string]string {

	out := make(map[string]string, len(userIDs))

	var missing []string
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		if r.rdb != nil {
			if v, err := r.rdb.Get(ctx, emailKeyPrefix+id).Result(); err == nil {
				out[id] = v
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return out
	}

	var profiles []models.Profile
	if err := r.db.WithContext(ctx).
		Select("id", "email").
		Where("id IN ?", missing).
		Find(&profiles).Error; err != nil {
		return out
	}

	for _, p := range profiles {
		out[p.ID] = p.Email
		if r.rdb != nil {
			r.rdb.Set(ctx, emailKeyPrefix+p.ID, p.Email, r.ttl)
		}
	}

	return out
}
