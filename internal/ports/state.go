package ports

import "vaultdiff/internal/domain"

// Settings is the host's persisted key/value store. Values survive process
// restarts; presence is the only schema.
type Settings interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// ReviewLog records resolution actions for the history command.
type ReviewLog interface {
	Append(rec domain.ReviewRecord) error
	Recent(limit int) ([]domain.ReviewRecord, error)
}
