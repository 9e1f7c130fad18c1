package api

import (
	"stride/internal/db"
	"stride/internal/services"

	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.taskService = services.NewTaskService(handler.repositories.Tasks, handler.location)
	handler.scheduleService = services.NewScheduleService(handler.repositories.Tasks, handler.repositories.Completions)
	handler.ledgerService = services.NewLedgerService(handler.repositories.Tasks, handler.repositories.Completions)
	handler.entryService = services.NewEntryService(handler.repositories.Entries, handler.location)
	handler.settingsService = services.NewSettingsService(handler.repositories.Settings)
	return handler
}
