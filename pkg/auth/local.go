package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/glebarez/go-sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// credential is a stored account of the local provider.
type credential struct {
	UID          string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (credential) TableName() string {
	return "credentials"
}

// claims are the claims of an ID token.
type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

const issuer = "dashboard"

// LocalConfig configures a Local provider.
type LocalConfig struct {
	// Secret signs the ID tokens
	Secret []byte

	// TokenTTL is the lifetime of ID tokens, 24 hours if zero
	TokenTTL time.Duration

	// Cost is the bcrypt cost, bcrypt.DefaultCost if zero
	Cost int
}

// Local is a Provider that keeps bcrypt hashed credentials in the database
// and issues signed ID tokens.
type Local struct {
	db       *gorm.DB
	config   LocalConfig
	validate *validator.Validate

	mu        sync.Mutex
	current   *Principal
	listeners map[int]StateFunc
	nextID    int
}

var _ Provider = (*Local)(nil)

// NewLocal returns a Local provider storing its credentials in db.
func NewLocal(db *gorm.DB, config LocalConfig) (*Local, error) {
	if len(config.Secret) == 0 {
		return nil, errors.New("token secret must not be empty")
	}
	if config.TokenTTL == 0 {
		config.TokenTTL = 24 * time.Hour
	}
	if config.Cost == 0 {
		config.Cost = bcrypt.DefaultCost
	}

	if err := db.AutoMigrate(&credential{}); err != nil {
		return nil, err
	}

	return &Local{
		db:        db,
		config:    config,
		validate:  validator.New(),
		listeners: make(map[int]StateFunc),
	}, nil
}

// normalizeEmail lowercases and trims an email address and checks its
// format.
func (l *Local) normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := l.validate.Var(email, "required,email"); err != nil {
		return "", newError(CodeInvalidEmail, err)
	}
	return email, nil
}

// SignIn implements Provider.
func (l *Local) SignIn(ctx context.Context, email, password string) (Principal, error) {
	email, err := l.normalizeEmail(email)
	if err != nil {
		return Principal{}, err
	}

	var c credential
	err = l.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Principal{}, newError(CodeInvalidCredential, nil)
	} else if err != nil {
		return Principal{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return Principal{}, newError(CodeInvalidCredential, nil)
	}

	p := Principal{UID: c.UID, Email: c.Email}
	l.setCurrent(&p)
	return p, nil
}

// SignOut implements Provider.
func (l *Local) SignOut(context.Context) error {
	l.setCurrent(nil)
	return nil
}

// CreateUser implements Provider.
func (l *Local) CreateUser(ctx context.Context, email, password string) (Principal, error) {
	email, err := l.normalizeEmail(email)
	if err != nil {
		return Principal{}, err
	}

	if len(password) < MinPasswordLength {
		return Principal{}, newError(CodeWeakPassword, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), l.config.Cost)
	if err != nil {
		return Principal{}, err
	}

	uid, err := uuid.NewRandom()
	if err != nil {
		return Principal{}, err
	}

	c := credential{
		UID:          uid.String(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := l.db.WithContext(ctx).Create(&c).Error; err != nil {
		if isUniqueViolation(err) {
			return Principal{}, newError(CodeEmailInUse, nil)
		}
		return Principal{}, err
	}

	return Principal{UID: c.UID, Email: c.Email}, nil
}

// OnAuthStateChange implements Provider.
func (l *Local) OnAuthStateChange(fn StateFunc) func() {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	current := l.current
	l.mu.Unlock()

	fn(current)

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		delete(l.listeners, id)
	}
}

// Current returns the signed in principal, nil if nobody is signed in.
func (l *Local) Current() *Principal {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.current == nil {
		return nil
	}
	p := *l.current
	return &p
}

func (l *Local) setCurrent(p *Principal) {
	l.mu.Lock()
	l.current = p
	listeners := make([]StateFunc, 0, len(l.listeners))
	for _, fn := range l.listeners {
		listeners = append(listeners, fn)
	}
	l.mu.Unlock()

	for _, fn := range listeners {
		if p == nil {
			fn(nil)
			continue
		}

		copied := *p
		fn(&copied)
	}
}

// IDToken returns a signed ID token for the principal.
func (l *Local) IDToken(p Principal) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(l.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   p.UID,
		},
	})

	return token.SignedString(l.config.Secret)
}

// Verify validates an ID token and returns the principal it was issued
// for.
func (l *Local) Verify(token string) (Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return l.config.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, newError(CodeTokenExpired, err)
		}
		return Principal{}, newError(CodeInvalidToken, err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return Principal{}, newError(CodeInvalidToken, nil)
	}

	return Principal{UID: c.Subject, Email: c.Email}, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint
// violation.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		// SQLITE_CONSTRAINT_UNIQUE, SQLITE_CONSTRAINT_PRIMARYKEY
		return sqliteErr.Code() == 2067 || sqliteErr.Code() == 1555
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
