// Package auth implements ports.TokenVerifier for the supported identity
// providers: Firebase ID tokens in production and HS256 JWTs for local
// development and tests.
package auth
