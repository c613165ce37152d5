package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/m1nazuk1/cloud-storage/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current UTC time truncated to microseconds, matching
// PostgreSQL timestamptz precision so round-tripped values compare equal.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedUser creates an enabled user. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:       uuid.New(),
		Username: "testuser-" + suffix,
		Email:    "testuser-" + suffix + "@example.com",
		Enabled:  true,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, enabled) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.Email, user.Enabled,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedGroup creates a group with a CREATOR membership for creator.
// Returns the filled domain.Group.
func SeedGroup(t *testing.T, pool *pgxpool.Pool, creator domain.User) domain.Group {
	t.Helper()
	ctx := context.Background()

	now := Now()
	group := domain.Group{
		ID:          uuid.New(),
		Name:        "group-" + uniqueSuffix(),
		InviteToken: uniqueSuffix(),
		CreatorID:   creator.ID,
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO groups (id, name, description, invite_token, creator_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		group.ID, group.Name, group.Description, group.InviteToken, group.CreatorID, group.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup insert group: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO memberships (id, user_id, group_id, role, joined_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), creator.ID, group.ID, string(domain.RoleCreator), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup insert creator membership: %v", err)
	}

	return group
}

// SeedMembership adds a user to a group with the given role.
func SeedMembership(t *testing.T, pool *pgxpool.Pool, user domain.User, group domain.Group, role domain.Role) domain.Membership {
	t.Helper()
	ctx := context.Background()

	m := domain.Membership{
		ID:       uuid.New(),
		UserID:   user.ID,
		GroupID:  group.ID,
		Role:     role,
		JoinedAt: Now(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO memberships (id, user_id, group_id, role, joined_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.UserID, m.GroupID, string(m.Role), m.JoinedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMembership insert: %v", err)
	}

	return m
}

// SeedFile creates an active file record in a group.
func SeedFile(t *testing.T, pool *pgxpool.Pool, group domain.Group, uploader domain.User, name string, size int64) domain.FileRecord {
	t.Helper()
	ctx := context.Background()

	now := Now()
	f := domain.FileRecord{
		ID:           uuid.New(),
		OriginalName: name,
		StoredKey:    uuid.New().String(),
		Size:         size,
		Type:         "pdf",
		MimeType:     "application/pdf",
		UploaderID:   uploader.ID,
		GroupID:      group.ID,
		UploadedAt:   now,
		LastModified: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO files (id, original_name, stored_key, size, file_type, mime_type,
		                    uploader_id, group_id, uploaded_at, last_modified, deleted)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, false)`,
		f.ID, f.OriginalName, f.StoredKey, f.Size, f.Type, f.MimeType,
		f.UploaderID, f.GroupID, f.UploadedAt, f.LastModified,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFile insert: %v", err)
	}

	return f
}
