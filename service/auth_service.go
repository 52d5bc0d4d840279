package service

import (
	"context"
	"time"
	"unicode"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"food-express-backend/models"
	"food-express-backend/repository"
	"food-express-backend/storage"
)

const tokenTTL = 24 * time.Hour

var (
	// ErrInvalidCredentials is returned on login with an unknown email or
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrWeakPassword is returned on registration when the password does not
	// meet the policy: at least 6 characters with an upper-case letter, a
	// lower-case letter and a digit.
	ErrWeakPassword = errors.New("password must be at least 6 characters with an uppercase letter, a lowercase letter and a number")

	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims carried in the signed token.
type TokenClaims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// AuthService handles registration, login and token verification. Passwords
// are stored as bcrypt hashes; tokens are HS256 signed and expire after 24h.
type AuthService struct {
	users    repository.UserRepositoryInterface
	sessions *storage.SessionStore
	secret   []byte
}

func NewAuthService(users repository.UserRepositoryInterface, sessions *storage.SessionStore, secret string) *AuthService {
	return &AuthService{users: users, sessions: sessions, secret: []byte(secret)}
}

// Register creates a new account. The email must be unused and the password
// must satisfy the policy; the first registered role is always "user".
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" {
		return nil, &ValidationError{Missing: missingOf(map[string]string{
			"name":  req.Name,
			"email": req.Email,
		})}
	}
	if !passwordMeetsPolicy(req.Password) {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         models.RoleUser,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✓ Registered user %s (%s)", user.Name, user.Email)
	public := *user
	public.PasswordHash = ""
	return &public, nil
}

// Login verifies the credentials, opens a session carrying the user's
// identity and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, *storage.Session, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, nil, err
	}

	sess := s.sessions.Create()
	sess.Set(storage.SessionUserID, user.ID)
	sess.Set(storage.SessionUserName, user.Name)
	sess.Set(storage.SessionUserEmail, user.Email)
	sess.Set(storage.SessionUserRole, user.Role)

	public := *user
	public.PasswordHash = ""
	log.Printf("✓ User %s logged in", user.Email)
	return &models.LoginResponse{Token: token, User: public}, sess, nil
}

// Logout drops the session and all its checkout scratch state.
func (s *AuthService) Logout(sess *storage.Session) {
	if sess == nil {
		return
	}
	s.sessions.Drop(sess.ID)
}

// VerifyToken parses and verifies a bearer token.
func (s *AuthService) VerifyToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(tokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// passwordMeetsPolicy checks length plus character-class requirements.
func passwordMeetsPolicy(password string) bool {
	if len(password) < 6 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func missingOf(fields map[string]string) []string {
	var missing []string
	for _, name := range []string{"name", "email"} {
		if fields[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
