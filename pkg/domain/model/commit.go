package model

import "time"

// Commit is a normalized commit. Every string field is HTML escaped.
type Commit struct {
	SHA     string    `json:"sha"`
	Author  string    `json:"author"`
	Message string    `json:"message"`
	URL     string    `json:"url"`
	Date    time.Time `json:"date"`
}
