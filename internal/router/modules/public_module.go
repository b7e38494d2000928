package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/interface/http"
)

// PublicModule wires the read-only site surface: the paginated post list and
// single-post view. No auth, no rate limits.
type PublicModule struct {
	Posts *handlers.PostHandler
}

func NewPublicModule(posts *handlers.PostHandler) *PublicModule {
	return &PublicModule{Posts: posts}
}

func (m *PublicModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Posts.Home)
	rg.GET("/post/:id", m.Posts.ShowPost)
}
