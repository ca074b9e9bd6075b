// Package mocks provides test doubles for the application's interfaces:
// a configurable JWT service mock and in-memory store fakes that back
// service and handler tests without a database.
package mocks
