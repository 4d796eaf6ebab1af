package model

import "time"

type SocialMediaPost struct {
	ID          int64      `db:"id" json:"id"`
	Platform    string     `db:"platform" json:"platform"` // instagram/facebook/twitter/telegram
	AdID        *int64     `db:"ad_id" json:"ad_id"`
	PostTitle   string     `db:"post_title" json:"post_title"`
	PostContent string     `db:"post_content" json:"post_content"`
	PostURL     string     `db:"post_url" json:"post_url"`
	Status      string     `db:"status" json:"status"` // draft/scheduled/published
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at"`
	PublishedAt *time.Time `db:"published_at" json:"published_at"`
	Views       int        `db:"views" json:"views"`
	Likes       int        `db:"likes" json:"likes"`
	Shares      int        `db:"shares" json:"shares"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
