// Package repository holds the gorm-backed queries behind the site's
// handlers. Each repository wraps the shared *gorm.DB and takes the request
// context on every call.
package repository
