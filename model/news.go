package model

import "time"

type NewsArticle struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Source    string    `json:"source,omitempty"`
	Published time.Time `json:"published"`
}
