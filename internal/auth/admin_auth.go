package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const CookieName = "admin_session"

var ErrInvalidCredentials = errors.New("invalid email or password")

// Manager issues and verifies the admin session tokens carried in a cookie.
type Manager struct {
	DB     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewManager(db *gorm.DB, secret string) *Manager {
	return &Manager{
		DB:     db,
		secret: []byte(secret),
		ttl:    12 * time.Hour,
	}
}

// SeedAdmin makes sure the configured admin account exists. The password is
// stored bcrypt-hashed; an existing row is left untouched.
func (m *Manager) SeedAdmin(email, password string) error {
	if email == "" || password == "" {
		log.Println("⚠️ Admin credentials not configured, admin login disabled")
		return nil
	}

	var count int64
	if err := m.DB.Model(&models.AdminUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := m.DB.Create(&models.AdminUser{Email: email, PasswordHash: string(hash)}).Error; err != nil {
		return err
	}
	log.Printf("✅ Admin account seeded for %s", email)
	return nil
}

// Login verifies credentials and returns a signed session token.
func (m *Manager) Login(email, password string) (string, error) {
	var admin models.AdminUser
	if err := m.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return m.issueToken(email)
}

func (m *Manager) issueToken(email string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// VerifyToken parses a session token and returns the admin email.
func (m *Manager) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}
	return claims.Subject, nil
}

// RequireAdmin guards API routes: a missing or invalid session cookie yields
// a 401 JSON response.
func (m *Manager) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "admin session required",
			})
			return
		}

		email, err := m.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid or expired session",
			})
			return
		}

		c.Set("admin_email", email)
		c.Next()
	}
}
