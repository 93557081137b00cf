package repositories

import (
	"admin-backoffice/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetList(params models.ListQuery) ([]models.User, int64, error)
	UpdateStatus(id uint, status models.UserStatus) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

var userList = listScope{
	table: "users",
	filterCols: map[string]string{
		"gender": "gender",
		"role":   "role",
		"status": "status",
	},
	intFilters: map[string]bool{"gender": true},
	sortCols: map[string]string{
		"display_name": "display_name",
		"created_at":   "created_at",
	},
	defaultSort:  "id desc",
	searchFields: []string{"username", "display_name", "nickname", "email"},
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetList(params models.ListQuery) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query, err := userList.apply(r.db.Model(&models.User{}), params)
	if err != nil {
		return nil, 0, err
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err = query.Order(userList.order(params)).
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&users).Error

	return users, total, err
}

func (r *userRepository) UpdateStatus(id uint, status models.UserStatus) error {
	res := r.db.Model(&models.User{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) Delete(id uint) error {
	res := r.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
