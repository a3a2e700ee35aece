// Package database provides PostgreSQL connectivity and repositories.
//
// Uses pgx for connection pooling and plain SQL migrations. Repositories
// implement domain interfaces: AppRepository, UserRepository.
package database
