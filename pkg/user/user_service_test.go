package user

import (
	"context"
	"errors"
	"testing"

	"Gastos-API/domain"
	"Gastos-API/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memoryUserRepository struct {
	byEmail map[string]*entities.User
	byID    map[string]*entities.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{
		byEmail: make(map[string]*entities.User),
		byID:    make(map[string]*entities.User),
	}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

func (r *memoryUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *memoryUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *memoryUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

type fakeJWTService struct {
	userID string
	role   string
	err    error
}

func (f *fakeJWTService) GenerateTokenUser(userID string, role string) string {
	return "token-" + userID
}

func (f *fakeJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeJWTService) GetUserIDByToken(token string) (string, string, error) {
	return f.userID, f.role, f.err
}

func registerRequest() domain.RegisterRequest {
	return domain.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "supersecret",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemoryUserRepository()
	service := NewUserService(repo, &fakeJWTService{})

	res, err := service.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Email != "ana@example.com" {
		t.Errorf("email = %q", res.Email)
	}

	stored := repo.byEmail["ana@example.com"]
	if stored.Password == "supersecret" {
		t.Error("password must not be stored in plain text")
	}

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "ana@example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if login.Token == "" || login.Role != domain.RoleUser {
		t.Errorf("unexpected login response: %+v", login)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &fakeJWTService{})

	if _, err := service.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Register(context.Background(), registerRequest()); !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &fakeJWTService{})

	if _, err := service.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		req  domain.LoginRequest
	}{
		{"unknown email", domain.LoginRequest{Email: "nadie@example.com", Password: "supersecret"}},
		{"wrong password", domain.LoginRequest{Email: "ana@example.com", Password: "wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.Login(context.Background(), tt.req); !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Errorf("error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestMeUnknownUser(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &fakeJWTService{})

	if _, err := service.Me(context.Background(), uuid.New().String()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("error = %v, want ErrUserNotFound", err)
	}
}

func TestVerifyEmail(t *testing.T) {
	repo := newMemoryUserRepository()
	jwtService := &fakeJWTService{}
	service := NewUserService(repo, jwtService)

	res, err := service.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jwtService.userID = res.ID
	jwtService.role = domain.RoleUser

	if err := service.VerifyEmail(context.Background(), "token-"+res.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.byID[res.ID].IsVerified {
		t.Error("user should be verified")
	}
}

func TestVerifyEmailBadToken(t *testing.T) {
	service := NewUserService(newMemoryUserRepository(), &fakeJWTService{err: domain.ErrTokenInvalid})

	if err := service.VerifyEmail(context.Background(), "garbage"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("error = %v, want ErrTokenInvalid", err)
	}
}
