package service_test

import (
	"context"
	"errors"
	"testing"

	"sahaayak/internal/service"
)

func TestAddPostBlockedContentNeverPersisted(t *testing.T) {
	t.Parallel()
	svc, st := newTestService(t)

	_, err := svc.AddPost(context.Background(), "user_1", "Asha", "circle_exams", "venting", "you are all so stupid")
	if !errors.Is(err, service.ErrContentBlocked) {
		t.Fatalf("expected ErrContentBlocked, got %v", err)
	}

	posts, err := st.ListPosts("circle_exams")
	if err != nil {
		t.Fatalf("ListPosts() error = %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("blocked post must not be stored, got %+v", posts)
	}
}

func TestAddPostBlockedTitleAlsoRejected(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.AddPost(context.Background(), "user_1", "Asha", "circle_exams", "I hate everyone here", "just tired today")
	if !errors.Is(err, service.ErrContentBlocked) {
		t.Fatalf("expected ErrContentBlocked for unsafe title, got %v", err)
	}
}

func TestAddPostAndCommentFlow(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	post, err := svc.AddPost(context.Background(), "user_1", "Asha", "circle_exams", "Exam tips?", "How do you all stay on top of revision?")
	if err != nil {
		t.Fatalf("AddPost() error = %v", err)
	}
	if post.ID == "" || post.AuthorID != "user_1" {
		t.Fatalf("unexpected post %+v", post)
	}

	comment, err := svc.AddComment(context.Background(), "user_2", "Ravi", post.ID, "Short sessions with breaks work for me.")
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}
	if comment.PostID != post.ID {
		t.Fatalf("unexpected comment %+v", comment)
	}

	comments, err := svc.ListComments(post.ID)
	if err != nil {
		t.Fatalf("ListComments() error = %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
}

func TestAddCommentOnMissingPost(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	if _, err := svc.AddComment(context.Background(), "user_1", "Asha", "missing", "hello"); err != service.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestTogglePostLikeIsSetToggle(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	post, err := svc.AddPost(context.Background(), "user_1", "Asha", "circle_exams", "Hello", "first post here")
	if err != nil {
		t.Fatalf("AddPost() error = %v", err)
	}

	liked, err := svc.TogglePostLike("user_2", post.ID)
	if err != nil {
		t.Fatalf("TogglePostLike() error = %v", err)
	}
	if len(liked.Likes) != 1 || liked.Likes[0] != "user_2" {
		t.Fatalf("expected one like from user_2, got %v", liked.Likes)
	}

	liked, err = svc.TogglePostLike("user_3", post.ID)
	if err != nil {
		t.Fatalf("TogglePostLike() error = %v", err)
	}
	if len(liked.Likes) != 2 {
		t.Fatalf("expected two likes, got %v", liked.Likes)
	}

	unliked, err := svc.TogglePostLike("user_2", post.ID)
	if err != nil {
		t.Fatalf("TogglePostLike() error = %v", err)
	}
	if len(unliked.Likes) != 1 || unliked.Likes[0] != "user_3" {
		t.Fatalf("expected user_2 removed, got %v", unliked.Likes)
	}
}

func TestToggleCommentLike(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	post, err := svc.AddPost(context.Background(), "user_1", "Asha", "circle_exams", "Hello", "first post here")
	if err != nil {
		t.Fatalf("AddPost() error = %v", err)
	}
	comment, err := svc.AddComment(context.Background(), "user_2", "Ravi", post.ID, "welcome!")
	if err != nil {
		t.Fatalf("AddComment() error = %v", err)
	}

	liked, err := svc.ToggleCommentLike("user_1", comment.ID)
	if err != nil {
		t.Fatalf("ToggleCommentLike() error = %v", err)
	}
	if len(liked.Likes) != 1 {
		t.Fatalf("expected one like, got %v", liked.Likes)
	}
	unliked, err := svc.ToggleCommentLike("user_1", comment.ID)
	if err != nil {
		t.Fatalf("ToggleCommentLike() error = %v", err)
	}
	if len(unliked.Likes) != 0 {
		t.Fatalf("expected like removed, got %v", unliked.Likes)
	}
}
