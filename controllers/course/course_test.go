package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sem485/eduforge-lms/config"
	"github.com/Sem485/eduforge-lms/database"
	"github.com/Sem485/eduforge-lms/middleware"
	"github.com/Sem485/eduforge-lms/models"
	courseRoutes "github.com/Sem485/eduforge-lms/routers/courseRoutes"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret-key",
		SaltRound: 4,
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createUser(t *testing.T, username, role string) (*models.User, string) {
	t.Helper()

	user := models.User{Username: username, Role: role, Password: "x"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return &user, token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	return resp.StatusCode, parsed
}

func createCourse(t *testing.T, app *fiber.App, token, title string) uint {
	t.Helper()

	status, resp := doRequest(t, app, "POST", "/course/create", token, fiber.Map{
		"title":       title,
		"description": "about " + title,
	})
	require.Equal(t, fiber.StatusOK, status, resp.Message)

	var course models.Course
	require.NoError(t, json.Unmarshal(resp.Data, &course))
	return course.ID
}

func TestInstructorCannotSeeForeignCourse(t *testing.T) {
	app := setupApp(t)
	_, tokenA := createUser(t, "alice", models.RoleInstructor)
	_, tokenB := createUser(t, "bob", models.RoleInstructor)

	courseID := createCourse(t, app, tokenA, "Alice's Course")

	status, _ := doRequest(t, app, "GET", fmt.Sprintf("/course/%d", courseID), tokenB, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	status, _ = doRequest(t, app, "GET", fmt.Sprintf("/course/%d", courseID), tokenA, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestAdminSeesEveryCourse(t *testing.T) {
	app := setupApp(t)
	_, tokenA := createUser(t, "alice", models.RoleInstructor)
	_, tokenAdmin := createUser(t, "root", models.RoleAdmin)

	courseID := createCourse(t, app, tokenA, "Alice's Course")

	status, _ := doRequest(t, app, "GET", fmt.Sprintf("/course/%d", courseID), tokenAdmin, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCourseListFilteredByAuthor(t *testing.T) {
	app := setupApp(t)
	_, tokenA := createUser(t, "alice", models.RoleInstructor)
	_, tokenB := createUser(t, "bob", models.RoleInstructor)

	createCourse(t, app, tokenA, "A1")
	createCourse(t, app, tokenA, "A2")
	createCourse(t, app, tokenB, "B1")

	status, resp := doRequest(t, app, "GET", "/course/list", tokenB, nil)
	require.Equal(t, fiber.StatusOK, status)

	var data struct {
		Courses []models.Course `json:"courses"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	require.Len(t, data.Courses, 1)
	assert.Equal(t, "B1", data.Courses[0].Title)
}

func TestDeleteCourseCascades(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "alice", models.RoleInstructor)

	courseID := createCourse(t, app, token, "Doomed")

	status, resp := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/module", courseID), token, fiber.Map{"title": "M1"})
	require.Equal(t, fiber.StatusOK, status, resp.Message)
	var module models.CourseModule
	require.NoError(t, json.Unmarshal(resp.Data, &module))

	status, resp = doRequest(t, app, "POST", fmt.Sprintf("/module/%d/lesson", module.ID), token, fiber.Map{"title": "L1"})
	require.Equal(t, fiber.StatusOK, status, resp.Message)
	var lesson models.Lesson
	require.NoError(t, json.Unmarshal(resp.Data, &lesson))

	status, _ = doRequest(t, app, "DELETE", fmt.Sprintf("/course/%d", courseID), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	db := database.Database.Db
	var count int64

	db.Model(&models.Course{}).Where("id = ? AND is_deleted = ?", courseID, false).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.CourseModule{}).Where("id = ? AND is_deleted = ?", module.ID, false).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Lesson{}).Where("id = ? AND is_deleted = ?", lesson.ID, false).Count(&count)
	assert.Zero(t, count)

	// Lesson routes treat the cascade-deleted lesson as gone
	status, _ = doRequest(t, app, "GET", fmt.Sprintf("/lesson/%d", lesson.ID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestBlockEditorFlow(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "alice", models.RoleInstructor)

	courseID := createCourse(t, app, token, "Editing")

	status, resp := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/module", courseID), token, fiber.Map{"title": "M1"})
	require.Equal(t, fiber.StatusOK, status, resp.Message)
	var module models.CourseModule
	require.NoError(t, json.Unmarshal(resp.Data, &module))

	status, resp = doRequest(t, app, "POST", fmt.Sprintf("/module/%d/lesson", module.ID), token, fiber.Map{"title": "L1"})
	require.Equal(t, fiber.StatusOK, status, resp.Message)
	var lesson models.Lesson
	require.NoError(t, json.Unmarshal(resp.Data, &lesson))

	// Insert a TEXT block
	status, resp = doRequest(t, app, "POST", fmt.Sprintf("/lesson/%d/blocks", lesson.ID), token, fiber.Map{"type": "TEXT"})
	require.Equal(t, fiber.StatusOK, status, resp.Message)

	var inserted struct {
		Block models.Block `json:"block"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &inserted))
	require.NotEmpty(t, inserted.Block.ID)
	assert.Equal(t, models.BlockText, inserted.Block.Type)

	// Unknown type is rejected by validation
	status, _ = doRequest(t, app, "POST", fmt.Sprintf("/lesson/%d/blocks", lesson.ID), token, fiber.Map{"type": "TABLE"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// Update content
	status, _ = doRequest(t, app, "PUT", fmt.Sprintf("/lesson/%d/blocks/%s", lesson.ID, inserted.Block.ID), token, fiber.Map{"content": "hello world"})
	require.Equal(t, fiber.StatusOK, status)

	// Render shows the content
	status, resp = doRequest(t, app, "GET", fmt.Sprintf("/lesson/%d/render", lesson.ID), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var rendered struct {
		Fragments []string `json:"fragments"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &rendered))
	require.Len(t, rendered.Fragments, 1)
	assert.Contains(t, rendered.Fragments[0], "hello world")

	// Duplicate, then delete the original
	status, _ = doRequest(t, app, "POST", fmt.Sprintf("/lesson/%d/blocks/%s/duplicate", lesson.ID, inserted.Block.ID), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, resp = doRequest(t, app, "DELETE", fmt.Sprintf("/lesson/%d/blocks/%s", lesson.ID, inserted.Block.ID), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var after struct {
		Blocks []models.Block `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &after))
	require.Len(t, after.Blocks, 1)
	assert.Equal(t, "hello world", after.Blocks[0].Content)
	assert.NotEqual(t, inserted.Block.ID, after.Blocks[0].ID)
}

func TestPresentationModeSettingsLocked(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "alice", models.RoleInstructor)

	courseID := createCourse(t, app, token, "Presenting")

	status, resp := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/module", courseID), token, fiber.Map{"title": "M1"})
	require.Equal(t, fiber.StatusOK, status)
	var module models.CourseModule
	require.NoError(t, json.Unmarshal(resp.Data, &module))

	status, resp = doRequest(t, app, "POST", fmt.Sprintf("/module/%d/lesson", module.ID), token, fiber.Map{"title": "L1"})
	require.Equal(t, fiber.StatusOK, status)
	var lesson models.Lesson
	require.NoError(t, json.Unmarshal(resp.Data, &lesson))

	for _, blockType := range []string{"TEXT", "QUOTE"} {
		status, _ = doRequest(t, app, "POST", fmt.Sprintf("/lesson/%d/blocks", lesson.ID), token, fiber.Map{"type": blockType})
		require.Equal(t, fiber.StatusOK, status)
	}

	status, resp = doRequest(t, app, "GET", fmt.Sprintf("/lesson/%d/presentation", lesson.ID), token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var data struct {
		Settings struct {
			Theme    string `json:"theme"`
			FontSize string `json:"font_size"`
		} `json:"settings"`
		Slides []struct {
			Index    int     `json:"index"`
			Progress float64 `json:"progress"`
		} `json:"slides"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))

	assert.Equal(t, "dark", data.Settings.Theme)
	assert.Equal(t, "huge", data.Settings.FontSize)
	require.Len(t, data.Slides, 2)
	assert.Equal(t, 0, data.Slides[0].Index)
	assert.InDelta(t, 0.5, data.Slides[0].Progress, 1e-9)
	assert.InDelta(t, 1.0, data.Slides[1].Progress, 1e-9)
}

func TestExportRequiresKnownFormat(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "alice", models.RoleInstructor)

	courseID := createCourse(t, app, token, "Exported")

	req := httptest.NewRequest("GET", fmt.Sprintf("/course/%d/export?format=docx", courseID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest("GET", fmt.Sprintf("/course/%d/export?format=zip", courseID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/zip", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Exported.zip")
}
