package service

import (
	"context"
	"testing"

	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/entity"
	"cinemotion-be/internal/repository/specification"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	byEmail map[string]*entity.User
	created []*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	r.created = append(r.created, user)
	return nil
}

func (r *memUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *memUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, spec := range specs {
		if byEmail, ok := spec.(specification.ByEmail); ok {
			return r.byEmail[byEmail.Email], nil
		}
	}
	return nil, nil
}

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newMemUserRepo()
	svc := NewAuthService(&stubUowFactory{uow: &stubUow{users: repo}}, nil)

	got, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "an@example.vn",
		Password: "secret123",
		Name:     "An",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if got.User.Email != "an@example.vn" || got.User.Name != "An" {
		t.Errorf("user = %+v", got.User)
	}
	if got.Token == "" {
		t.Fatal("token is empty")
	}

	// Token must carry the new user's id and verify with JWT_SECRET.
	token, err := jwt.Parse(got.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["user_id"] != got.User.Id.String() {
		t.Errorf("user_id claim = %v, want %s", claims["user_id"], got.User.Id)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created = %d users, want 1", len(repo.created))
	}
	u := repo.created[0]
	if u.Locale != "vi" || u.Region != "VN" || !u.ComfortOnDefault {
		t.Errorf("defaults = locale %q region %q comfort %v", u.Locale, u.Region, u.ComfortOnDefault)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	repo.byEmail["an@example.vn"] = &entity.User{Id: uuid.New(), Email: "an@example.vn"}
	svc := NewAuthService(&stubUowFactory{uow: &stubUow{users: repo}}, nil)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "an@example.vn",
		Password: "secret123",
	})
	if err == nil {
		t.Fatal("Register() accepted a duplicate email")
	}
	if len(repo.created) != 0 {
		t.Errorf("created = %d users, want 0", len(repo.created))
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := newMemUserRepo()
	repo.byEmail["an@example.vn"] = &entity.User{
		Id:           uuid.New(),
		Email:        "an@example.vn",
		Name:         "An",
		PasswordHash: string(hash),
	}
	svc := NewAuthService(&stubUowFactory{uow: &stubUow{users: repo}}, nil)

	got, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "an@example.vn",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if got.Token == "" {
		t.Error("token is empty")
	}

	tests := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Email: "an@example.vn", Password: "wrong"}},
		{"unknown email", dto.LoginRequest{Email: "nobody@example.vn", Password: "secret123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &tt.req)
			if err == nil || err.Error() != "invalid credentials" {
				t.Errorf("Login() error = %v, want invalid credentials", err)
			}
		})
	}
}
