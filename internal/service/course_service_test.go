package service

import (
	"testing"

	"vsl_edu_backend/internal/model"
	"vsl_edu_backend/internal/repository"
	"vsl_edu_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCourseService(db *gorm.DB) *CourseService {
	return NewCourseService(repository.NewCourseRepository(db))
}

func TestEnroll_OncePerCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	course, err := svc.Create(CourseRequest{Title: "VSL Basics"})
	require.NoError(t, err)

	_, err = svc.Enroll(1, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(1, course.ID)
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)

	_, err = svc.Enroll(2, course.ID)
	assert.NoError(t, err)
}

func TestEnroll_UnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	_, err := svc.Enroll(1, 999)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestListEnrolled_OnlyLiveCourses(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	kept, err := svc.Create(CourseRequest{Title: "Kept"})
	require.NoError(t, err)
	dropped, err := svc.Create(CourseRequest{Title: "Dropped"})
	require.NoError(t, err)

	_, err = svc.Enroll(1, kept.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(1, dropped.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(dropped.ID))

	courses, err := svc.ListEnrolled(1)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Kept", courses[0].Title)
}

func TestUpdateCourse_PartialFields(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	course, err := svc.Create(CourseRequest{Title: "Before", Description: "desc", Level: "beginner"})
	require.NoError(t, err)

	title := "After"
	updated, err := svc.Update(course.ID, CourseUpdateRequest{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "desc", updated.Description)
	assert.Equal(t, model.Beginner, updated.Level)
}

func TestDeleteCourse_HidesFromReads(t *testing.T) {
	db := newTestDB(t)
	svc := newCourseService(db)

	course, err := svc.Create(CourseRequest{Title: "Gone"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(course.ID))

	_, err = svc.Get(course.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	_, total, err := svc.List("", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}
