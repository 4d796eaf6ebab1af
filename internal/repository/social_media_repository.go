package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/FeyzullahTemel0/AldinSattinAdminPanel/internal/model"
)

type SocialMediaRepository struct {
	DB *sqlx.DB
}

func NewSocialMediaRepository(db *sqlx.DB) *SocialMediaRepository {
	return &SocialMediaRepository{DB: db}
}

type SocialMediaFilter struct {
	Platform string
	Status   string
	AdID     string
}

var socialMediaUpdateColumns = []string{
	"post_title", "post_content", "post_url", "status",
	"scheduled_at", "published_at", "views", "likes", "shares",
}

func (r *SocialMediaRepository) List(ctx context.Context, f SocialMediaFilter) ([]model.SocialMediaPost, error) {
	var w whereBuilder
	w.EqFilter("platform", f.Platform)
	w.EqFilter("status", f.Status)
	if f.AdID != "" {
		w.Eq("ad_id", f.AdID)
	}

	query := "SELECT * FROM social_media_posts" + w.Clause() + " ORDER BY created_at DESC"

	var posts []model.SocialMediaPost
	err := r.DB.SelectContext(ctx, &posts, query, w.Args()...)
	return posts, err
}

func (r *SocialMediaRepository) GetByID(ctx context.Context, id int64) (*model.SocialMediaPost, error) {
	var p model.SocialMediaPost
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM social_media_posts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SocialMediaRepository) Create(ctx context.Context, p *model.SocialMediaPost) error {
	const query = `
		INSERT INTO social_media_posts (platform, ad_id, post_title, post_content, post_url, status, scheduled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`
	return r.DB.QueryRowxContext(ctx, query,
		p.Platform, p.AdID, p.PostTitle, p.PostContent, p.PostURL, p.Status, p.ScheduledAt,
	).StructScan(p)
}

func (r *SocialMediaRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*model.SocialMediaPost, error) {
	set, args, err := buildSet(fields, socialMediaUpdateColumns)
	if err != nil {
		return nil, err
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE social_media_posts SET %s, updated_at = NOW() WHERE id = $%d RETURNING *`, set, len(args))

	var p model.SocialMediaPost
	if err := r.DB.QueryRowxContext(ctx, query, args...).StructScan(&p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *SocialMediaRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM social_media_posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
