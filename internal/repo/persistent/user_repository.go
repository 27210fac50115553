package persistent

import (
	"strings"
	"time"

	"gamehub/internal/entity"
	"gamehub/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListParams are the admin listing filters. Page is 1-based.
type ListParams struct {
	Page           int
	PageSize       int
	Search         string
	Roles          []string
	IsActive       *bool
	SortBy         string
	SortOrder      string
	CreatedAtStart *time.Time
	CreatedAtEnd   *time.Time
}

// Columns the admin listing may sort on. Anything else falls back to
// created_at so query input can never reach the ORDER BY clause raw.
var sortableColumns = map[string]string{
	"username":   "username",
	"email":      "email",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type UserRepository interface {
	Create(user *entity.User) error

	// GetByID resolves live accounts only (deleted_at IS NULL).
	GetByID(id string) (*entity.User, error)
	// GetByIDUnscoped resolves soft-deleted accounts too.
	GetByIDUnscoped(id string) (*entity.User, error)
	GetActiveByEmail(email string) (*entity.User, error)
	GetByGoogleID(googleID string) (*entity.User, error)
	UsernameTaken(username string) (bool, error)

	List(params ListParams) ([]*entity.User, int64, error)
	ListDeletedBefore(cutoff time.Time) ([]*entity.User, error)

	UpdateUsername(id, username string) error
	UpdateProfile(id, username, email string) error
	SetImage(id, imageID string) error

	TokenVersion(id string) (int, error)
	IncrementTokenVersion(id string) error
	// IncrementTokenVersionAll bumps every live active account except the
	// given one and returns how many rows changed.
	IncrementTokenVersionAll(exceptID string) (int64, error)

	SetDeletedAt(id string, deletedAt *time.Time) error
	// HardDelete removes the user row and every dependent game record in a
	// single transaction.
	HardDelete(id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// live scopes a query to accounts that are not in the trash.
func (r *userRepository) live() *gorm.DB {
	return r.db.Where("deleted_at IS NULL")
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.live().Preload("Image").Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByIDUnscoped(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Preload("Image").Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetActiveByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.live().Preload("Image").Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByGoogleID(googleID string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.live().Where("google_id = ?", googleID).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) UsernameTaken(username string) (bool, error) {
	var count int64
	if err := r.live().Model(&model.UserModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) List(params ListParams) ([]*entity.User, int64, error) {
	query := r.live().Model(&model.UserModel{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ?", pattern, pattern)
	}
	if len(params.Roles) > 0 {
		query = query.Where("roles && ?", pq.StringArray(params.Roles))
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}
	if params.CreatedAtStart != nil {
		query = query.Where("created_at >= ?", *params.CreatedAtStart)
	}
	if params.CreatedAtEnd != nil {
		query = query.Where("created_at <= ?", *params.CreatedAtEnd)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortableColumns[params.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(params.SortOrder, "asc") {
		direction = "ASC"
	}

	offset := (params.Page - 1) * params.PageSize

	var userModels []model.UserModel
	err := query.
		Preload("Image").
		Order(column + " " + direction).
		Offset(offset).
		Limit(params.PageSize).
		Find(&userModels).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, total, nil
}

func (r *userRepository) ListDeletedBefore(cutoff time.Time) ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Where("deleted_at < ?", cutoff).Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
	}
	return users, nil
}

func (r *userRepository) UpdateUsername(id, username string) error {
	return r.live().Model(&model.UserModel{}).Where("id = ?", id).
		Update("username", username).Error
}

func (r *userRepository) UpdateProfile(id, username, email string) error {
	return r.live().Model(&model.UserModel{}).Where("id = ?", id).
		Updates(map[string]interface{}{"username": username, "email": email}).Error
}

func (r *userRepository) SetImage(id, imageID string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).
		Update("image_id", imageID).Error
}

func (r *userRepository) TokenVersion(id string) (int, error) {
	var userModel model.UserModel
	err := r.live().Select("token_version").Where("id = ?", id).First(&userModel).Error
	if err != nil {
		return 0, err
	}
	return userModel.TokenVersion, nil
}

func (r *userRepository) IncrementTokenVersion(id string) error {
	return r.live().Model(&model.UserModel{}).Where("id = ?", id).
		Update("token_version", gorm.Expr("token_version + 1")).Error
}

func (r *userRepository) IncrementTokenVersionAll(exceptID string) (int64, error) {
	result := r.db.Model(&model.UserModel{}).
		Where("id <> ? AND deleted_at IS NULL AND is_active = true", exceptID).
		Update("token_version", gorm.Expr("token_version + 1"))
	return result.RowsAffected, result.Error
}

func (r *userRepository) SetDeletedAt(id string, deletedAt *time.Time) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).
		Update("deleted_at", deletedAt).Error
}

func (r *userRepository) HardDelete(id string) error {
	return hardDeleteUsers(r.db, []string{id})
}

// hardDeleteUsers removes the given users and every dependent game record in
// one transaction; a failed dependent delete leaves the user rows untouched.
// Image rows are intentionally left behind (they are shared-asset bookkeeping,
// not user data).
func hardDeleteUsers(db *gorm.DB, ids []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id IN ?", ids).Delete(&model.ReviewModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id IN ?", ids).Delete(&model.GameInteractionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id IN ?", ids).Delete(&model.GameScoreModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id IN ?", ids).Delete(&model.SavedGameModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("host_id IN ?", ids).Delete(&model.GameRoomModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id IN ?", ids).Delete(&model.RoomPlayerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("inviter_id IN ? OR invitee_id IN ?", ids, ids).Delete(&model.GameInviteModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("uploaded_by_id IN ?", ids).Delete(&model.TempUploadModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&model.UserModel{}).Error
	})
}
