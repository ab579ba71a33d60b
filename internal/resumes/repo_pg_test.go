package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cvbuilder-backend/internal/resume"
)

func newPGRepoTest(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func testResume() Resume {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return Resume{
		ID:         "resume-1",
		UserID:     "user-1",
		Name:       "My CV",
		TemplateID: "classic",
		Profession: "software engineer",
		Document: resume.Document{
			PersonalInfo: resume.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
		},
		ATSScore:  42,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func resumeRows(res Resume) *sqlmock.Rows {
	doc, _ := json.Marshal(res.Document)
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "name", "template_id", "profession", "document",
		"ats_score", "is_public", "share_token", "downloads", "created_at", "updated_at",
	})
	var token any
	if res.ShareToken != "" {
		token = res.ShareToken
	}
	rows.AddRow(res.ID, res.UserID, res.Name, res.TemplateID, res.Profession, doc,
		res.ATSScore, res.IsPublic, token, res.Downloads, res.CreatedAt, res.UpdatedAt)
	return rows
}

func TestPGRepoCreateStoresDocumentJSON(t *testing.T) {
	repo, mock := newPGRepoTest(t)
	res := testResume()

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			res.ID,
			res.UserID,
			res.Name,
			res.TemplateID,
			res.Profession,
			sqlmock.AnyArg(), // document JSON
			res.ATSScore,
			res.IsPublic,
			nil, // share_token
			res.Downloads,
			res.CreatedAt,
			res.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDScopesToOwner(t *testing.T) {
	repo, mock := newPGRepoTest(t)
	res := testResume()

	mock.ExpectQuery("SELECT .+ FROM resumes WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(res.ID, res.UserID).
		WillReturnRows(resumeRows(res))

	got, err := repo.GetByID(context.Background(), res.UserID, res.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != res.ID || got.Name != res.Name {
		t.Fatalf("GetByID returned %q/%q, want %q/%q", got.ID, got.Name, res.ID, res.Name)
	}
	if got.Document.PersonalInfo.FullName != "Ada Lovelace" {
		t.Fatalf("document not round-tripped: %+v", got.Document.PersonalInfo)
	}
}

func TestPGRepoGetByIDMissingRowIsNotFound(t *testing.T) {
	repo, mock := newPGRepoTest(t)

	mock.ExpectQuery("SELECT .+ FROM resumes").
		WithArgs("resume-x", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), "user-1", "resume-x")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID error = %v, want ErrNotFound", err)
	}
}

func TestPGRepoListByUserAppliesFilters(t *testing.T) {
	repo, mock := newPGRepoTest(t)
	res := testResume()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM resumes WHERE user_id = \\$1 AND name ILIKE \\$2 AND template_id = \\$3").
		WithArgs("user-1", "%cv%", "classic").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT .+ FROM resumes WHERE user_id = \\$1 AND name ILIKE \\$2 AND template_id = \\$3 ORDER BY updated_at DESC LIMIT \\$4 OFFSET \\$5").
		WithArgs("user-1", "%cv%", "classic", 10, 0).
		WillReturnRows(resumeRows(res))

	items, total, err := repo.ListByUser(context.Background(), "user-1", ListFilter{
		Name:       "cv",
		TemplateID: "classic",
		Limit:      10,
	})
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("ListByUser returned %d items, total %d", len(items), total)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateMissingRowIsNotFound(t *testing.T) {
	repo, mock := newPGRepoTest(t)
	res := testResume()

	mock.ExpectExec("UPDATE resumes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), res); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update error = %v, want ErrNotFound", err)
	}
}

func TestPGRepoDeleteMissingRowIsNotFound(t *testing.T) {
	repo, mock := newPGRepoTest(t)

	mock.ExpectExec("DELETE FROM resumes WHERE id = \\$1 AND user_id = \\$2").
		WithArgs("resume-x", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "user-1", "resume-x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete error = %v, want ErrNotFound", err)
	}
}

func TestPGRepoSetSharingReturnsUpdatedRow(t *testing.T) {
	repo, mock := newPGRepoTest(t)
	res := testResume()
	res.IsPublic = true
	res.ShareToken = "token-1"

	mock.ExpectQuery("UPDATE resumes").
		WithArgs(res.ID, res.UserID, true, "token-1").
		WillReturnRows(resumeRows(res))

	got, err := repo.SetSharing(context.Background(), res.UserID, res.ID, true, "token-1")
	if err != nil {
		t.Fatalf("SetSharing: %v", err)
	}
	if !got.IsPublic || got.ShareToken != "token-1" {
		t.Fatalf("SetSharing returned isPublic=%v token=%q", got.IsPublic, got.ShareToken)
	}
}

func TestPGRepoGetByShareTokenIncrementsDownloads(t *testing.T) {
	repo, mock := newPGRepoTest(t)
	res := testResume()
	res.IsPublic = true
	res.ShareToken = "token-1"
	res.Downloads = 4

	mock.ExpectQuery("UPDATE resumes\\s+SET downloads = downloads \\+ 1\\s+WHERE share_token = \\$1 AND is_public").
		WithArgs("token-1").
		WillReturnRows(resumeRows(res))

	got, err := repo.GetByShareToken(context.Background(), "token-1")
	if err != nil {
		t.Fatalf("GetByShareToken: %v", err)
	}
	if got.Downloads != 4 {
		t.Fatalf("Downloads = %d, want 4", got.Downloads)
	}
}

func TestPGRepoGetByShareTokenPrivateIsNotFound(t *testing.T) {
	repo, mock := newPGRepoTest(t)

	mock.ExpectQuery("UPDATE resumes").
		WithArgs("token-x").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByShareToken(context.Background(), "token-x")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByShareToken error = %v, want ErrNotFound", err)
	}
}
