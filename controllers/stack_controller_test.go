package controllers

import (
	"net/http"
	"testing"

	"PortfolioAPI/models"
	"PortfolioAPI/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStackRouter(store *fakeUserStore, images *fakeImageStore, user *models.User) *gin.Engine {
	cfg := testConfig()
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresDays)
	controller := NewStackController(store, images, tokens, cfg)

	r := newEngine()
	group := r.Group("/admin/stack", asUser(user))
	{
		group.POST("/create", controller.CreateStack)
		group.PUT("/update", controller.UpdateStack)
		group.DELETE("/delete", controller.DeleteStack)
	}
	return r
}

func TestCreateStackUploadsInOrder(t *testing.T) {
	store := newFakeUserStore()
	images := &fakeImageStore{}
	user := seedUser(t, store, nil)
	r := newStackRouter(store, images, user)

	w := performJSON(t, r, http.MethodPost, "/admin/stack/create", gin.H{
		"stack": []string{"go", "mongo", "gin"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"portfolioStack", "portfolioStack", "portfolioStack"}, images.folders)

	stored := store.users[user.ID]
	require.Len(t, stored.TechStack, 3)
	assert.Equal(t, images.uploads, stored.TechStack)
	assert.Empty(t, images.destroyed)
}

func TestCreateStackAcceptsSingleString(t *testing.T) {
	store := newFakeUserStore()
	images := &fakeImageStore{}
	user := seedUser(t, store, nil)
	r := newStackRouter(store, images, user)

	w := performJSON(t, r, http.MethodPost, "/admin/stack/create", gin.H{"stack": "go"})

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.users[user.ID].TechStack, 1)
}

func TestUpdateStackReplacesExactly(t *testing.T) {
	store := newFakeUserStore()
	images := &fakeImageStore{}
	user := seedUser(t, store, func(u *models.User) {
		u.TechStack = []models.Image{
			{PublicID: "old-1", URL: "https://img.test/1"},
			{PublicID: "old-2", URL: "https://img.test/2"},
		}
	})
	r := newStackRouter(store, images, user)

	w := performJSON(t, r, http.MethodPut, "/admin/stack/update", gin.H{
		"stack": []string{"n1", "n2", "n3"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	// exactly the old blobs destroyed, in collection order
	assert.Equal(t, []string{"old-1", "old-2"}, images.destroyed)

	// exactly the new list present, in submitted order
	stored := store.users[user.ID]
	require.Len(t, stored.TechStack, 3)
	assert.Equal(t, "n1-id", stored.TechStack[0].PublicID)
	assert.Equal(t, "n2-id", stored.TechStack[1].PublicID)
	assert.Equal(t, "n3-id", stored.TechStack[2].PublicID)
}

func TestDeleteStackDestroysAll(t *testing.T) {
	store := newFakeUserStore()
	images := &fakeImageStore{}
	user := seedUser(t, store, func(u *models.User) {
		u.TechStack = []models.Image{
			{PublicID: "old-1", URL: "https://img.test/1"},
			{PublicID: "old-2", URL: "https://img.test/2"},
		}
	})
	r := newStackRouter(store, images, user)

	w := performJSON(t, r, http.MethodDelete, "/admin/stack/delete", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"old-1", "old-2"}, images.destroyed)
	assert.Empty(t, store.users[user.ID].TechStack)
	assert.Empty(t, images.uploads)
}
