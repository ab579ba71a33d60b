package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cvbuilder-backend/internal/resume"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, name, template_id, profession, document, ats_score, is_public, share_token, downloads, created_at, updated_at`

// Create inserts a resume.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	doc, err := json.Marshal(res.Document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	const query = `
INSERT INTO resumes (id, user_id, name, template_id, profession, document, ats_score, is_public, share_token, downloads, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.DB.ExecContext(ctx, query,
		res.ID,
		res.UserID,
		res.Name,
		res.TemplateID,
		nullableString(res.Profession),
		doc,
		res.ATSScore,
		res.IsPublic,
		nullableString(res.ShareToken),
		res.Downloads,
		res.CreatedAt,
		res.UpdatedAt,
	)
	return err
}

// GetByID returns a resume by ID scoped to its owner.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 AND user_id = $2 LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, resumeID, userID))
}

// ListByUser lists resumes newest-updated first, honoring filters and paging,
// and returns the total matching count.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Resume, int, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	where := []string{"user_id = $1"}
	args := []any{userID}
	if name := strings.TrimSpace(filter.Name); name != "" {
		args = append(args, "%"+name+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if tmpl := strings.TrimSpace(filter.TemplateID); tmpl != "" {
		args = append(args, tmpl)
		where = append(where, fmt.Sprintf("template_id = $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM resumes WHERE ` + cond
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	listQuery := fmt.Sprintf(`SELECT %s FROM resumes WHERE %s ORDER BY updated_at DESC LIMIT $%d OFFSET $%d`,
		resumeColumns, cond, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		res, err := r.scanOne(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, res)
	}
	return out, total, rows.Err()
}

// Update overwrites a resume's mutable fields. Last write wins at the field
// level; there is no optimistic concurrency token.
func (r *PGRepo) Update(ctx context.Context, res Resume) error {
	doc, err := json.Marshal(res.Document)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	const query = `
UPDATE resumes
SET name = $3, template_id = $4, profession = $5, document = $6, ats_score = $7, updated_at = $8
WHERE id = $1 AND user_id = $2`
	result, err := r.DB.ExecContext(ctx, query,
		res.ID,
		res.UserID,
		res.Name,
		res.TemplateID,
		nullableString(res.Profession),
		doc,
		res.ATSScore,
		res.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes a resume. Hard delete, no tombstone.
func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) error {
	const query = `DELETE FROM resumes WHERE id = $1 AND user_id = $2`
	result, err := r.DB.ExecContext(ctx, query, resumeID, userID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// SetSharing flips the public flag and share token in one statement.
func (r *PGRepo) SetSharing(ctx context.Context, userID, resumeID string, isPublic bool, shareToken string) (Resume, error) {
	query := `
UPDATE resumes
SET is_public = $3, share_token = $4, updated_at = now()
WHERE id = $1 AND user_id = $2
RETURNING ` + resumeColumns
	return r.scanOne(r.DB.QueryRowContext(ctx, query, resumeID, userID, isPublic, nullableString(shareToken)))
}

// GetByShareToken resolves a public resume and bumps its download counter in
// the same statement. Concurrent readers may under-count, never corrupt.
func (r *PGRepo) GetByShareToken(ctx context.Context, token string) (Resume, error) {
	query := `
UPDATE resumes
SET downloads = downloads + 1
WHERE share_token = $1 AND is_public
RETURNING ` + resumeColumns
	return r.scanOne(r.DB.QueryRowContext(ctx, query, token))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Resume, error) {
	var res Resume
	var profession sql.NullString
	var shareToken sql.NullString
	var doc []byte
	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.Name,
		&res.TemplateID,
		&profession,
		&doc,
		&res.ATSScore,
		&res.IsPublic,
		&shareToken,
		&res.Downloads,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if profession.Valid {
		res.Profession = profession.String
	}
	if shareToken.Valid {
		res.ShareToken = shareToken.String
	}
	if len(doc) > 0 {
		var parsed resume.Document
		if err := json.Unmarshal(doc, &parsed); err != nil {
			return Resume{}, fmt.Errorf("unmarshal document: %w", err)
		}
		res.Document = parsed
	}
	return res, nil
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
