package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Cheertaboi/catalog-coupon-service/internal/models"
)

type CategoryRepo struct {
	db *sql.DB
}

func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

const categoryColumns = `id, name, slug, description, image, is_active, sort_order,
		seo_title, seo_description, seo_keywords, created_at, updated_at`

// UpdateMain writes only the fields set on in and returns the resulting row.
func (r *CategoryRepo) UpdateMain(ctx context.Context, in *models.UpdateMainCategoryInput) (*models.MainCategory, error) {
	if in.IsEmpty() {
		return r.GetMain(ctx, in.ID)
	}

	var updates []string
	var args []interface{}
	argID := 1

	set := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if in.Name != nil {
		set("name", *in.Name)
	}
	if in.Slug != nil {
		set("slug", *in.Slug)
	}
	if in.Description != nil {
		set("description", *in.Description)
	}
	if in.Image != nil {
		set("image", *in.Image)
	}
	if in.IsActive != nil {
		set("is_active", *in.IsActive)
	}
	if in.Order != nil {
		set("sort_order", *in.Order)
	}
	if in.SeoTitle != nil {
		set("seo_title", *in.SeoTitle)
	}
	if in.SeoDescription != nil {
		set("seo_description", *in.SeoDescription)
	}
	if in.SeoKeywords != nil {
		set("seo_keywords", *in.SeoKeywords)
	}

	updates = append(updates, "updated_at = NOW()")

	query := "UPDATE main_categories SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING ", argID) + categoryColumns
	args = append(args, in.ID)

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("update main category: %w", err)
	}

	return c, nil
}

func (r *CategoryRepo) GetMain(ctx context.Context, id uuid.UUID) (*models.MainCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM main_categories WHERE id = $1`

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get main category: %w", err)
	}

	return c, nil
}

func scanCategory(row *sql.Row) (*models.MainCategory, error) {
	var c models.MainCategory
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.Image,
		&c.IsActive,
		&c.Order,
		&c.SeoTitle,
		&c.SeoDescription,
		&c.SeoKeywords,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
