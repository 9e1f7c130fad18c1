package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Tasks       *TaskRepository
	Completions *CompletionRepository
	Entries     *EntryRepository
	Settings    *SettingRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Tasks:       NewTaskRepository(database),
		Completions: NewCompletionRepository(database),
		Entries:     NewEntryRepository(database),
		Settings:    NewSettingRepository(database),
	}
}
