package repository

import (
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// FindOrCreateDaily returns the stat row for a user's day, creating an
// empty one when the day has not been touched yet. Dates are stored
// truncated to UTC midnight.
func (r *StatsRepository) FindOrCreateDaily(userID uint, role model.UserRole, supervisorID *uint, date time.Time) (*model.Stat, error) {
	day := DayOf(date)
	var stat model.Stat
	err := r.DB.Where("user_id = ? AND date = ?", userID, day).First(&stat).Error
	if err == nil {
		return &stat, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	stat = model.Stat{
		UserID:       userID,
		Role:         role,
		SupervisorID: supervisorID,
		Date:         day,
	}
	if err := r.DB.Create(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *StatsRepository) SaveDaily(stat *model.Stat) error {
	return r.DB.Save(stat).Error
}

func (r *StatsRepository) FindDailyRange(userID uint, from, to time.Time) ([]model.Stat, error) {
	var stats []model.Stat
	err := r.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, DayOf(from), to).
		Order("date").
		Find(&stats).Error
	return stats, err
}

func (r *StatsRepository) DeleteDailyRange(userID uint, from, to time.Time) error {
	return r.DB.Where("user_id = ? AND date >= ? AND date < ?", userID, DayOf(from), to).
		Delete(&model.Stat{}).Error
}

// FindOrCreateUserStat returns the lifetime aggregate row for a user.
func (r *StatsRepository) FindOrCreateUserStat(userID uint, role model.UserRole, supervisorID *uint) (*model.UserStat, error) {
	var stat model.UserStat
	err := r.DB.Where("user_id = ?", userID).First(&stat).Error
	if err == nil {
		return &stat, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	stat = model.UserStat{
		UserID:       userID,
		Role:         role,
		SupervisorID: supervisorID,
	}
	if err := r.DB.Create(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *StatsRepository) SaveUserStat(stat *model.UserStat) error {
	return r.DB.Save(stat).Error
}

func (r *StatsRepository) FindUserStat(userID uint) (*model.UserStat, error) {
	var stat model.UserStat
	err := r.DB.Where("user_id = ?", userID).First(&stat).Error
	return &stat, err
}

func (r *StatsRepository) ResetUserStat(userID uint) error {
	return r.DB.Where("user_id = ?", userID).Delete(&model.UserStat{}).Error
}

// DayOf truncates a timestamp to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
