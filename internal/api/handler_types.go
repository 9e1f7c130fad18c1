package api

import (
	"html/template"
	"time"

	"stride/internal/db"
	"stride/internal/services"

	"gorm.io/gorm"
)

const (
	sessionCookieName = "stride_session"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	templates    map[string]*template.Template
	loginLimiter *attemptLimiter

	repositories    *db.Repositories
	authService     *services.AuthService
	taskService     *services.TaskService
	scheduleService *services.ScheduleService
	ledgerService   *services.LedgerService
	entryService    *services.EntryService
	settingsService *services.SettingsService
}

// NewHandler wires the handler against the database and parses the embedded
// page templates.
func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		templates:    templates,
		loginLimiter: newAttemptLimiter(loginAttemptsLimit, loginAttemptsWindow),
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
