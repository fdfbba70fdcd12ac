package seeder

import (
	"context"
	"fmt"

	"internhub/internal/database"
	"internhub/internal/domain/file"
	"internhub/internal/domain/page"
	"internhub/internal/domain/user"
	"internhub/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const (
	DemoRecruiterEmail = "recruiter@internhub.dev"
	DemoCandidateEmail = "ana@internhub.dev"
	demoPassword       = "changeme123"
)

type demoUser struct {
	Email    string
	FullName string
	Role     user.Role
	WithCV   bool
}

var demoUsers = []demoUser{
	{Email: DemoRecruiterEmail, FullName: "Rita Recruiter", Role: user.RoleRecruiter},
	{Email: DemoCandidateEmail, FullName: "Ana Candidate", Role: user.RoleCandidate, WithCV: true},
	{Email: "ben@internhub.dev", FullName: "Ben Candidate", Role: user.RoleCandidate},
}

// UsersSeeder creates the demo accounts and gives the first candidate a
// CV. Accounts that already exist are left alone.
type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "role", "full_name", "cv_file_id", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "files", "id", "owner_id", "type", "filename", "content_type", "size_bytes", "storage_key", "created_at"); err != nil {
		return err
	}

	users := repository.NewPostgresUserRepository(db)
	files := repository.NewPostgresFileRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, du := range demoUsers {
		u, found, err := users.FindByEmail(ctx, du.Email)
		if err != nil {
			return err
		}
		if !found {
			u, err = users.Create(ctx, user.User{
				Email:        du.Email,
				PasswordHash: string(hash),
				Role:         du.Role,
				FullName:     du.FullName,
			})
			if err != nil {
				return fmt.Errorf("create %s: %w", du.Email, err)
			}
		}

		if !du.WithCV || u.CVFileID != nil {
			continue
		}
		if err := attachDemoCV(ctx, users, files, u); err != nil {
			return err
		}
	}
	return nil
}

func attachDemoCV(ctx context.Context, users *repository.PostgresUserRepository, files *repository.PostgresFileRepository, u user.User) error {
	existing, err := files.FindByOwner(ctx, u.ID, file.TypeCV, page.Request{Page: 0, Size: 1})
	if err != nil {
		return err
	}

	var cv file.StoredFile
	if len(existing.Items) > 0 {
		cv = existing.Items[0]
	} else {
		cv, err = files.Create(ctx, file.StoredFile{
			OwnerID:     u.ID,
			Type:        file.TypeCV,
			FileName:    "cv.pdf",
			ContentType: "application/pdf",
			Size:        48213,
			StorageKey:  "demo/" + u.ID.String() + "/cv.pdf",
		})
		if err != nil {
			return fmt.Errorf("create cv for %s: %w", u.Email, err)
		}
	}

	if _, err := users.SetCVFile(ctx, u.ID, &cv.ID); err != nil {
		return fmt.Errorf("attach cv for %s: %w", u.Email, err)
	}
	return nil
}
