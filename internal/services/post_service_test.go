package services

import (
	"testing"
	"time"

	"mentordash/internal/testutil"
)

func TestCreatePost(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPostService(db)
		user := testutil.CreateTestUser(t, db)

		post, err := svc.CreatePost(user.ID, "instagram", "Behind the scenes", "", time.Now())
		testutil.AssertNoError(t, err)

		if post.Platform != "instagram" {
			t.Errorf("expected platform instagram, got %s", post.Platform)
		}
		if post.ImageURL != "" {
			t.Errorf("expected no image URL, got %s", post.ImageURL)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewPostService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreatePost(user.ID, "", "Caption", "", time.Now())
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")

		_, err = svc.CreatePost(user.ID, "instagram", "", "", time.Now())
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestGetUserPosts_SortedByDateDesc(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPostService(db)
	user := testutil.CreateTestUser(t, db)

	_, err := svc.CreatePost(user.ID, "instagram", "Older", "", time.Now().AddDate(0, 0, -3))
	testutil.AssertNoError(t, err)
	_, err = svc.CreatePost(user.ID, "tiktok", "Newer", "", time.Now())
	testutil.AssertNoError(t, err)

	result, err := svc.GetUserPosts(user.ID, pageAll())
	testutil.AssertNoError(t, err)

	if len(result.Data) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(result.Data))
	}
	if result.Data[0].Caption != "Newer" {
		t.Errorf("expected most recent post first, got %s", result.Data[0].Caption)
	}
}

func TestUpdatePost(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPostService(db)
	user := testutil.CreateTestUser(t, db)
	post := testutil.CreateTestPost(t, db, user.ID)

	updated, err := svc.UpdatePost(user.ID, post.ID, "youtube", "", "https://cdn.example.com/thumb.png", nil)
	testutil.AssertNoError(t, err)

	if updated.Platform != "youtube" {
		t.Errorf("expected platform youtube, got %s", updated.Platform)
	}
	if updated.ImageURL != "https://cdn.example.com/thumb.png" {
		t.Errorf("expected image URL updated, got %s", updated.ImageURL)
	}
}

func TestDeletePost(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPostService(db)
	user := testutil.CreateTestUser(t, db)
	post := testutil.CreateTestPost(t, db, user.ID)

	testutil.AssertNoError(t, svc.DeletePost(user.ID, post.ID))

	err := svc.DeletePost(user.ID, post.ID)
	testutil.AssertAppError(t, err, "POST_NOT_FOUND")
}
