package repositories

import (
	"testing"
	"time"

	"github.com/nkotova/yatube/internal/models"
)

func TestGetCommentsByPostIDNewestFirst(t *testing.T) {
	db := testDB(t)
	postRepo := NewPostgresPostRepository(db)
	repo := NewPostgresCommentRepository(db)
	author := mustCreateUser(t, db, "author")

	post := &models.Post{Text: "a post", AuthorID: author.ID}
	if err := postRepo.CreatePost(post); err != nil {
		t.Fatal(err)
	}
	other := &models.Post{Text: "another", AuthorID: author.ID}
	if err := postRepo.CreatePost(other); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2023, 2, 6, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second"} {
		comment := &models.Comment{
			Text:      text,
			AuthorID:  author.ID,
			PostID:    post.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.CreateComment(comment); err != nil {
			t.Fatal(err)
		}
	}
	stray := &models.Comment{Text: "elsewhere", AuthorID: author.ID, PostID: other.ID}
	if err := repo.CreateComment(stray); err != nil {
		t.Fatal(err)
	}

	comments, err := repo.GetCommentsByPostID(post.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(comments) != 2 {
		t.Fatalf("comments = %d, want 2", len(comments))
	}
	if comments[0].Text != "second" || comments[1].Text != "first" {
		t.Errorf("order = %s, %s; want second, first", comments[0].Text, comments[1].Text)
	}
	if comments[0].Author.Username != "author" {
		t.Errorf("author not preloaded: %+v", comments[0].Author)
	}
}
