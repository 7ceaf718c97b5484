package repository

import (
	"context"

	"github.com/doqhuy/moviechill-backend/internal/models"

	"gorm.io/gorm"
)

// FollowRepository defines persistence operations for the follow graph.
// Each directed edge is stored exactly once; follower and following views
// are both derived from the same rows.
type FollowRepository interface {
	IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error)
	Toggle(ctx context.Context, followerID, followeeID uint) (nowFollowing bool, err error)
	Followers(ctx context.Context, userID uint) ([]models.User, error)
	Following(ctx context.Context, userID uint) ([]models.User, error)
	FollowerIDs(ctx context.Context, userID uint) (map[uint]struct{}, error)
	FollowingIDs(ctx context.Context, userID uint) (map[uint]struct{}, error)
	Counts(ctx context.Context, userID uint) (followers, following int64, err error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Toggle removes the edge if present and creates it otherwise. The delete
// and the create run in one transaction; the unique index on the edge makes
// a racing create converge on the followed state.
func (r *followRepository) Toggle(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var nowFollowing bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			nowFollowing = false
			return nil
		}
		edge := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
		if err := tx.Create(&edge).Error; err != nil {
			if isUniqueConstraintError(err) {
				// Lost a race with a concurrent toggle; the edge exists.
				nowFollowing = true
				return nil
			}
			return err
		}
		nowFollowing = true
		return nil
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return nowFollowing, nil
}

func (r *followRepository) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) Following(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *followRepository) FollowerIDs(ctx context.Context, userID uint) (map[uint]struct{}, error) {
	return r.edgeIDs(ctx, "follower_id", "followee_id = ?", userID)
}

func (r *followRepository) FollowingIDs(ctx context.Context, userID uint) (map[uint]struct{}, error) {
	return r.edgeIDs(ctx, "followee_id", "follower_id = ?", userID)
}

func (r *followRepository) edgeIDs(ctx context.Context, selectCol, whereClause string, userID uint) (map[uint]struct{}, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where(whereClause, userID).
		Pluck(selectCol, &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

func (r *followRepository) Counts(ctx context.Context, userID uint) (int64, int64, error) {
	var followers, following int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Count(&followers).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&following).Error; err != nil {
		return 0, 0, models.NewInternalError(err)
	}
	return followers, following, nil
}
