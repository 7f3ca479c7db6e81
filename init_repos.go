package main

import (
	"database/sql"

	"github.com/vishaldubey2210/portfolio/repository"
)

// Repositories holds every repository instance.
type Repositories struct {
	User          repository.UserRepository
	Session       repository.SessionRepository
	Project       repository.ProjectRepository
	Blog          repository.BlogRepository
	Certification repository.CertificationRepository
	Contact       repository.ContactRepository
}

// initRepositories builds the repositories over one shared pool.
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		User:          repository.NewSQLiteUserRepo(conn),
		Session:       repository.NewSQLiteSessionRepo(conn),
		Project:       repository.NewSQLiteProjectRepo(conn),
		Blog:          repository.NewSQLiteBlogRepo(conn),
		Certification: repository.NewSQLiteCertificationRepo(conn),
		Contact:       repository.NewSQLiteContactRepo(conn),
	}
}
