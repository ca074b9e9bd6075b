// Package api handles incoming HTTP requests, request validation, and
// response formatting. It acts as an adapter between external clients and
// the internal services, translating HTTP concerns to business operations
// and domain errors back to stable status codes.
package api
