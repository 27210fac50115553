package usecase

import (
	"bytes"
	"io"
	"sync"
	"time"

	"gamehub/internal/entity"
	"gamehub/internal/repo/persistent"
	"gamehub/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func testLogger() *logger.Logger {
	return logger.New()
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User

	hardDeleted []string
	failAll     error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, user := range users {
		if user.ID == "" {
			user.ID = uuid.New().String()
		}
		repo.users[user.ID] = user
	}
	return repo
}

func (f *fakeUserRepo) clone(user *entity.User) *entity.User {
	copied := *user
	return &copied
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return f.failAll
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = f.clone(user)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.clone(user), nil
}

func (f *fakeUserRepo) GetByIDUnscoped(id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return nil, f.failAll
	}
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f.clone(user), nil
}

func (f *fakeUserRepo) GetActiveByEmail(email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email && user.DeletedAt == nil {
			return f.clone(user), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByGoogleID(googleID string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.GoogleID == googleID && user.DeletedAt == nil {
			return f.clone(user), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UsernameTaken(username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username && user.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) List(params persistent.ListParams) ([]*entity.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, user := range f.users {
		if user.DeletedAt != nil {
			continue
		}
		if len(params.Roles) > 0 && !hasAnyRole(user.Roles, params.Roles) {
			continue
		}
		if params.IsActive != nil && user.IsActive != *params.IsActive {
			continue
		}
		out = append(out, f.clone(user))
	}
	return out, int64(len(out)), nil
}

func hasAnyRole(roles []entity.Role, names []string) bool {
	for _, name := range names {
		for _, role := range roles {
			if string(role) == name {
				return true
			}
		}
	}
	return false
}

func (f *fakeUserRepo) ListDeletedBefore(cutoff time.Time) ([]*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.User
	for _, user := range f.users {
		if user.DeletedAt != nil && user.DeletedAt.Before(cutoff) {
			out = append(out, f.clone(user))
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateUsername(id, username string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Username = username
	return nil
}

func (f *fakeUserRepo) UpdateProfile(id, username, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.Username = username
	user.Email = email
	return nil
}

func (f *fakeUserRepo) SetImage(id, imageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.ImageID = imageID
	return nil
}

func (f *fakeUserRepo) TokenVersion(id string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok || user.DeletedAt != nil {
		return 0, gorm.ErrRecordNotFound
	}
	return user.TokenVersion, nil
}

func (f *fakeUserRepo) IncrementTokenVersion(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll != nil {
		return f.failAll
	}
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.TokenVersion++
	return nil
}

func (f *fakeUserRepo) IncrementTokenVersionAll(exceptID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, user := range f.users {
		if user.ID == exceptID || user.DeletedAt != nil || !user.IsActive {
			continue
		}
		user.TokenVersion++
		count++
	}
	return count, nil
}

func (f *fakeUserRepo) SetDeletedAt(id string, deletedAt *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.DeletedAt = deletedAt
	return nil
}

func (f *fakeUserRepo) HardDelete(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	f.hardDeleted = append(f.hardDeleted, id)
	return nil
}

func (f *fakeUserRepo) tokenVersionOf(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		return user.TokenVersion
	}
	return -1
}

func (f *fakeUserRepo) deletedAtOf(id string) *time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		return user.DeletedAt
	}
	return nil
}

type fakeImageRepo struct {
	mu     sync.Mutex
	images map[string]*entity.Image
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: make(map[string]*entity.Image)}
}

func (f *fakeImageRepo) Create(image *entity.Image) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	copied := *image
	f.images[image.ID] = &copied
	return nil
}

func (f *fakeImageRepo) GetByID(id string) (*entity.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	image, ok := f.images[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *image
	return &copied, nil
}

func (f *fakeImageRepo) Update(image *entity.Image) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.images[image.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *image
	f.images[image.ID] = &copied
	return nil
}

type fakeTempUploadRepo struct {
	mu      sync.Mutex
	uploads map[string]*entity.TempUpload
}

func newFakeTempUploadRepo() *fakeTempUploadRepo {
	return &fakeTempUploadRepo{uploads: make(map[string]*entity.TempUpload)}
}

func (f *fakeTempUploadRepo) Create(upload *entity.TempUpload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if upload.ID == "" {
		upload.ID = uuid.New().String()
	}
	upload.CreatedAt = time.Now()
	copied := *upload
	f.uploads[upload.ID] = &copied
	return nil
}

func (f *fakeTempUploadRepo) ListByUser(userID string) ([]*entity.TempUpload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.TempUpload
	for _, upload := range f.uploads {
		if upload.UploadedByID == userID {
			copied := *upload
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeTempUploadRepo) DeleteByUser(userID string) ([]*entity.TempUpload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed []*entity.TempUpload
	for id, upload := range f.uploads {
		if upload.UploadedByID == userID {
			removed = append(removed, upload)
			delete(f.uploads, id)
		}
	}
	return removed, nil
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []entity.ImpersonationLog
}

func (f *fakeAuditRepo) Create(adminID, impersonatedID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entity.ImpersonationLog{
		AdminID:        adminID,
		ImpersonatedID: impersonatedID,
	})
	return nil
}

type fakeObjectStore struct {
	mu       sync.Mutex
	uploaded map[string][]byte
	deleted  []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{uploaded: make(map[string][]byte)}
}

func (f *fakeObjectStore) UploadFile(key string, body io.Reader, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return "", err
	}
	f.uploaded[key] = buf.Bytes()
	return "http://store.local/" + key, nil
}

func (f *fakeObjectStore) DeleteFile(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, key)
	return nil
}
