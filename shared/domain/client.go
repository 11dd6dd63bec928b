package domain

import "time"

// Client is a caller of the gateway, identified by the subject of its token.
type Client struct {
	Name     string
	IssuedAt time.Time
}
