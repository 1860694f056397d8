package services

import (
	"testing"
	"time"

	"mentordash/internal/testutil"
)

func TestCreateHabit(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHabitService(db)
		user := testutil.CreateTestUser(t, db)

		habit, err := svc.CreateHabit(user.ID, "Read 30 minutes")
		testutil.AssertNoError(t, err)

		if habit.ID == "" {
			t.Fatal("expected non-empty habit ID")
		}
		if habit.Streak != 0 {
			t.Errorf("expected streak 0 for new habit, got %d", habit.Streak)
		}
		if habit.LastCheckedAt != nil {
			t.Error("expected no last check-in for new habit")
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHabitService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateHabit(user.ID, "")
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})
}

func TestCheckIn(t *testing.T) {
	now := time.Date(2026, time.March, 15, 9, 0, 0, 0, time.Local)

	t.Run("first_check_in_starts_streak", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHabitService(db)
		user := testutil.CreateTestUser(t, db)
		habit := testutil.CreateTestHabit(t, db, user.ID, 0, nil)

		updated, err := svc.CheckIn(user.ID, habit.ID, now)
		testutil.AssertNoError(t, err)

		if updated.Streak != 1 {
			t.Errorf("expected streak 1, got %d", updated.Streak)
		}
		if !updated.Checked {
			t.Error("expected habit to show as checked after check-in")
		}
	})

	t.Run("consecutive_day_continues_streak", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHabitService(db)
		user := testutil.CreateTestUser(t, db)

		yesterday := now.AddDate(0, 0, -1)
		habit := testutil.CreateTestHabit(t, db, user.ID, 5, &yesterday)

		updated, err := svc.CheckIn(user.ID, habit.ID, now)
		testutil.AssertNoError(t, err)

		if updated.Streak != 6 {
			t.Errorf("expected streak 6, got %d", updated.Streak)
		}
	})

	t.Run("gap_resets_streak", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHabitService(db)
		user := testutil.CreateTestUser(t, db)

		threeDaysAgo := now.AddDate(0, 0, -3)
		habit := testutil.CreateTestHabit(t, db, user.ID, 17, &threeDaysAgo)

		updated, err := svc.CheckIn(user.ID, habit.ID, now)
		testutil.AssertNoError(t, err)

		if updated.Streak != 1 {
			t.Errorf("expected streak reset to 1, got %d", updated.Streak)
		}
	})

	t.Run("same_day_is_idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHabitService(db)
		user := testutil.CreateTestUser(t, db)
		habit := testutil.CreateTestHabit(t, db, user.ID, 0, nil)

		first, err := svc.CheckIn(user.ID, habit.ID, now)
		testutil.AssertNoError(t, err)

		// Second check-in later the same day must not change the streak.
		later := now.Add(5 * time.Hour)
		second, err := svc.CheckIn(user.ID, habit.ID, later)
		testutil.AssertNoError(t, err)

		if second.Streak != first.Streak {
			t.Errorf("expected streak unchanged at %d, got %d", first.Streak, second.Streak)
		}

		// The stored row must still carry the first check-in's values.
		stored, err := svc.GetHabitByID(user.ID, habit.ID)
		testutil.AssertNoError(t, err)
		if stored.Streak != first.Streak {
			t.Errorf("expected stored streak %d, got %d", first.Streak, stored.Streak)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHabitService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CheckIn(user.ID, "00000000-0000-0000-0000-000000000000", now)
		testutil.AssertAppError(t, err, "HABIT_NOT_FOUND")
	})

	t.Run("other_users_habit_not_visible", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewHabitService(db)
		owner := testutil.CreateTestUser(t, db)
		intruder := testutil.CreateTestUser(t, db)
		habit := testutil.CreateTestHabit(t, db, owner.ID, 0, nil)

		_, err := svc.CheckIn(intruder.ID, habit.ID, now)
		testutil.AssertAppError(t, err, "HABIT_NOT_FOUND")
	})
}

func TestGetUserHabits_RecomputesChecked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewHabitService(db)
	user := testutil.CreateTestUser(t, db)

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)
	checkedToday := testutil.CreateTestHabit(t, db, user.ID, 3, &today)
	checkedYesterday := testutil.CreateTestHabit(t, db, user.ID, 2, &yesterday)
	neverChecked := testutil.CreateTestHabit(t, db, user.ID, 0, nil)

	result, err := svc.GetUserHabits(user.ID, pageAll())
	testutil.AssertNoError(t, err)

	checked := make(map[string]bool, len(result.Data))
	for _, h := range result.Data {
		checked[h.ID] = h.Checked
	}

	if !checked[checkedToday.ID] {
		t.Error("habit checked today must display as checked")
	}
	if checked[checkedYesterday.ID] {
		t.Error("habit checked yesterday must display as unchecked")
	}
	if checked[neverChecked.ID] {
		t.Error("never-checked habit must display as unchecked")
	}
}

func TestRenameHabit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewHabitService(db)
	user := testutil.CreateTestUser(t, db)
	habit := testutil.CreateTestHabit(t, db, user.ID, 0, nil)

	_, err := svc.RenameHabit(user.ID, habit.ID, "Meditate")
	testutil.AssertNoError(t, err)

	stored, err := svc.GetHabitByID(user.ID, habit.ID)
	testutil.AssertNoError(t, err)
	if stored.Name != "Meditate" {
		t.Errorf("expected renamed habit, got %s", stored.Name)
	}

	_, err = svc.RenameHabit(user.ID, habit.ID, "")
	testutil.AssertAppError(t, err, "VALIDATION_ERROR")
}

func TestDeleteHabit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewHabitService(db)
	user := testutil.CreateTestUser(t, db)
	habit := testutil.CreateTestHabit(t, db, user.ID, 0, nil)

	testutil.AssertNoError(t, svc.DeleteHabit(user.ID, habit.ID))

	_, err := svc.GetHabitByID(user.ID, habit.ID)
	testutil.AssertAppError(t, err, "HABIT_NOT_FOUND")
}
