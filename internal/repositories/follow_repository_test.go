package repositories

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/nkotova/yatube/internal/models"
)

func TestCreateFollowIdempotent(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresFollowRepository(db)
	reader := mustCreateUser(t, db, "reader")
	author := mustCreateUser(t, db, "author")

	if err := repo.CreateFollow(reader.ID, author.ID); err != nil {
		t.Fatalf("first follow: %v", err)
	}
	if err := repo.CreateFollow(reader.ID, author.ID); err != nil {
		t.Fatalf("second follow: %v", err)
	}

	var count int64
	db.Model(&models.Follow{}).Count(&count)
	if count != 1 {
		t.Errorf("follow rows = %d, want 1", count)
	}

	following, err := repo.IsFollowing(reader.ID, author.ID)
	if err != nil || !following {
		t.Errorf("IsFollowing = %v, %v; want true, nil", following, err)
	}
}

func TestDeleteFollow(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresFollowRepository(db)
	reader := mustCreateUser(t, db, "reader")
	author := mustCreateUser(t, db, "author")

	if err := repo.DeleteFollow(reader.ID, author.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("delete missing relation: err = %v, want ErrRecordNotFound", err)
	}

	if err := repo.CreateFollow(reader.ID, author.ID); err != nil {
		t.Fatal(err)
	}
	if err := repo.DeleteFollow(reader.ID, author.ID); err != nil {
		t.Fatalf("delete existing relation: %v", err)
	}
	following, _ := repo.IsFollowing(reader.ID, author.ID)
	if following {
		t.Error("relation still present after delete")
	}
}

func TestGetFollowedAuthorIDs(t *testing.T) {
	db := testDB(t)
	repo := NewPostgresFollowRepository(db)
	reader := mustCreateUser(t, db, "reader")
	a := mustCreateUser(t, db, "a")
	b := mustCreateUser(t, db, "b")
	mustCreateUser(t, db, "unrelated")

	for _, author := range []uint{a.ID, b.ID} {
		if err := repo.CreateFollow(reader.ID, author); err != nil {
			t.Fatal(err)
		}
	}

	ids, err := repo.GetFollowedAuthorIDs(reader.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 {
		t.Fatalf("followed ids = %v, want 2 entries", ids)
	}
}
