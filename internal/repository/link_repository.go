package repository

import (
	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"

	"gorm.io/gorm"
)

type LinkRepository struct {
	DB *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{DB: db}
}

func (r *LinkRepository) Create(link *model.Link) error {
	return r.DB.Create(link).Error
}

func (r *LinkRepository) FindByID(id uint) (*model.Link, error) {
	var link model.Link
	err := r.DB.First(&link, id).Error
	return &link, err
}

func (r *LinkRepository) FindByToken(token string) (*model.Link, error) {
	var link model.Link
	err := r.DB.Where("token = ?", token).First(&link).Error
	return &link, err
}

func (r *LinkRepository) FindByCreator(creatorID uint) ([]*model.Link, error) {
	var links []*model.Link
	err := r.DB.Where("created_by_id = ?", creatorID).
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

func (r *LinkRepository) IncrementVisits(id uint) error {
	return r.DB.Model(&model.Link{}).
		Where("id = ?", id).
		Update("visits_count", gorm.Expr("visits_count + 1")).
		Error
}

// ConsumeUse bumps used_count only while the cap is not reached and
// reports the count after the claim. An unclaimed return means the link
// was already exhausted, possibly by a concurrent taker.
func (r *LinkRepository) ConsumeUse(id uint) (claimed bool, usedCount int, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Link{}).
			Where("id = ? AND used_count < max_uses", id).
			Update("used_count", gorm.Expr("used_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		claimed = true
		var link model.Link
		if err := tx.Select("used_count").First(&link, id).Error; err != nil {
			return err
		}
		usedCount = link.UsedCount
		return nil
	})
	return claimed, usedCount, err
}

// CountsByCreator tallies a user's links for stat recomputation.
func (r *LinkRepository) CountsByCreator(userID uint) (model.LinkStats, error) {
	var out model.LinkStats
	var row struct {
		Created int
		Active  int
		Visits  int
		Usages  int
	}
	err := r.DB.Model(&model.Link{}).
		Select("COUNT(*) AS created, "+
			"SUM(CASE WHEN used_count < max_uses THEN 1 ELSE 0 END) AS active, "+
			"COALESCE(SUM(visits_count), 0) AS visits, "+
			"COALESCE(SUM(used_count), 0) AS usages").
		Where("created_by_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return out, err
	}
	out.Created = row.Created
	out.Active = row.Active
	out.TotalVisits = row.Visits
	out.TotalUsages = row.Usages
	return out, nil
}

func (r *LinkRepository) Delete(link *model.Link) error {
	return r.DB.Delete(link).Error
}
