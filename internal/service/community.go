package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"sahaayak/internal/model"
)

// AddPost moderates the post before anything is persisted. A rejected or
// unverifiable post never reaches the store.
func (s *Service) AddPost(ctx context.Context, userID, authorName, circleID, title, content string) (model.CommunityPost, error) {
	if strings.TrimSpace(userID) == "" {
		return model.CommunityPost{}, nil
	}
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return model.CommunityPost{}, ErrTitleRequired
	}
	if content == "" {
		return model.CommunityPost{}, ErrContentRequired
	}

	verdict := s.moderator.Moderate(ctx, title+"\n"+content)
	if !verdict.IsSafe {
		return model.CommunityPost{}, fmt.Errorf("%w: %s", ErrContentBlocked, verdict.Reason)
	}

	post := model.CommunityPost{
		ID:         uuid.NewString(),
		CircleID:   circleID,
		AuthorID:   userID,
		AuthorName: authorName,
		Title:      title,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		Likes:      []string{},
	}
	if err := s.store.SavePost(post); err != nil {
		return model.CommunityPost{}, err
	}
	return post, nil
}

func (s *Service) ListPosts(circleID string) ([]model.CommunityPost, error) {
	return s.store.ListPosts(circleID)
}

func (s *Service) AddComment(ctx context.Context, userID, authorName, postID, content string) (model.CommunityComment, error) {
	if strings.TrimSpace(userID) == "" {
		return model.CommunityComment{}, nil
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return model.CommunityComment{}, ErrContentRequired
	}
	if _, found, err := s.store.GetPost(postID); err != nil {
		return model.CommunityComment{}, err
	} else if !found {
		return model.CommunityComment{}, ErrPostNotFound
	}

	verdict := s.moderator.Moderate(ctx, content)
	if !verdict.IsSafe {
		return model.CommunityComment{}, fmt.Errorf("%w: %s", ErrContentBlocked, verdict.Reason)
	}

	comment := model.CommunityComment{
		ID:         uuid.NewString(),
		PostID:     postID,
		AuthorID:   userID,
		AuthorName: authorName,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		Likes:      []string{},
	}
	if err := s.store.SaveComment(comment); err != nil {
		return model.CommunityComment{}, err
	}
	return comment, nil
}

func (s *Service) ListComments(postID string) ([]model.CommunityComment, error) {
	return s.store.ListCommentsByPost(postID)
}

// TogglePostLike flips the user's membership in the post's likes set.
func (s *Service) TogglePostLike(userID string, postID string) (model.CommunityPost, error) {
	if strings.TrimSpace(userID) == "" {
		return model.CommunityPost{}, nil
	}
	post, found, err := s.store.GetPost(postID)
	if err != nil {
		return model.CommunityPost{}, err
	}
	if !found {
		return model.CommunityPost{}, ErrPostNotFound
	}
	post.Likes = toggleMember(post.Likes, userID)
	if err := s.store.SavePost(post); err != nil {
		return model.CommunityPost{}, err
	}
	return post, nil
}

func (s *Service) ToggleCommentLike(userID string, commentID string) (model.CommunityComment, error) {
	if strings.TrimSpace(userID) == "" {
		return model.CommunityComment{}, nil
	}
	comment, found, err := s.store.GetComment(commentID)
	if err != nil {
		return model.CommunityComment{}, err
	}
	if !found {
		return model.CommunityComment{}, ErrCommentNotFound
	}
	comment.Likes = toggleMember(comment.Likes, userID)
	if err := s.store.SaveComment(comment); err != nil {
		return model.CommunityComment{}, err
	}
	return comment, nil
}

func toggleMember(set []string, member string) []string {
	for i, v := range set {
		if v == member {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, member)
}
