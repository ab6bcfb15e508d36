// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/group, domain/post) and the
// day arithmetic every streak decision depends on lives in domain/calendar.
// This root package holds sentinel errors and validation types shared by all of them.
package domain
