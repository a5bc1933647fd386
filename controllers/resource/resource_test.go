package resourceController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"path/filepath"
	"strings"
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
	resourceRoutes "github.com/Sem485/eduforge-lms/routers/resourceRoutes"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:        "test-secret-key",
		SaltRound:     4,
		UploadDir:     t.TempDir(),
		MaxUploadSize: 25 * 1024 * 1024,
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	resourceRoutes.SetupResourceRoutes(app)
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

func uploadFile(t *testing.T, app *fiber.App, token, filename string, content []byte) (int, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/resource/upload", &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	return resp.StatusCode, parsed
}

func TestSmallUploadStoredInline(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "alice", models.RoleInstructor)

	status, resp := uploadFile(t, app, token, "tiny.txt", []byte("small enough"))
	require.Equal(t, fiber.StatusOK, status, resp.Message)

	var resource models.ResourceFile
	require.NoError(t, json.Unmarshal(resp.Data, &resource))

	assert.True(t, strings.HasPrefix(resource.URL, "data:"), "URL: %s", resource.URL)
	assert.Equal(t, int64(len("small enough")), resource.Size)
	assert.Equal(t, "tiny.txt", resource.Name)
}

func TestLargeUploadStoredOnDisk(t *testing.T) {
	app := setupApp(t)
	_, token := createUser(t, "alice", models.RoleInstructor)

	big := bytes.Repeat([]byte("x"), 65*1024)
	status, resp := uploadFile(t, app, token, "big.bin", big)
	require.Equal(t, fiber.StatusOK, status, resp.Message)

	var resource models.ResourceFile
	require.NoError(t, json.Unmarshal(resp.Data, &resource))

	assert.True(t, strings.HasPrefix(resource.URL, "/uploads/"), "URL: %s", resource.URL)
	assert.Equal(t, int64(len(big)), resource.Size)
}

func TestUploadRejectedOverSizeLimit(t *testing.T) {
	app := setupApp(t)
	config.AppConfig.MaxUploadSize = 1024
	_, token := createUser(t, "alice", models.RoleInstructor)

	status, _ := uploadFile(t, app, token, "huge.bin", bytes.Repeat([]byte("x"), 2048))
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestResourceListFilteredByUploader(t *testing.T) {
	app := setupApp(t)
	_, tokenA := createUser(t, "alice", models.RoleInstructor)
	_, tokenB := createUser(t, "bob", models.RoleInstructor)

	status, _ := uploadFile(t, app, tokenA, "a.txt", []byte("a"))
	require.Equal(t, fiber.StatusOK, status)

	req := httptest.NewRequest("GET", "/resource/list", nil)
	req.Header.Set("Authorization", "Bearer "+tokenB)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))

	var data struct {
		Resources []models.ResourceFile `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(parsed.Data, &data))
	assert.Empty(t, data.Resources)
}
