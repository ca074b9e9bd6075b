// Package domain contains the core business entities of the school records
// system: users, students, teachers, and courses. It represents the heart of
// the application, independent of any specific infrastructure or delivery
// mechanism.
package domain
