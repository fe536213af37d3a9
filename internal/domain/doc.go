// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (lines, sentinels, errors) and contracts only.
package domain
