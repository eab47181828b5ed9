package repository

import (
	"time"

	"github.com/yaxyobekuz/ielts-mock-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByPhone(phone string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("phone = ?", phone).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastSeen(userID uint, at time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", at).
		Error
}

// FindBySupervisor lists the teachers attached to a supervisor account.
func (r *UserRepository) FindBySupervisor(supervisorID uint) ([]*model.User, error) {
	var users []*model.User
	err := r.DB.Where("supervisor_id = ?", supervisorID).Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByRole(role model.UserRole) ([]*model.User, error) {
	var users []*model.User
	err := r.DB.Where("role = ?", role).Find(&users).Error
	return users, err
}

func (r *UserRepository) FindAllIDs() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&model.User{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}
