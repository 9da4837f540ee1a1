package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/tamilnadu-explorer/assets"
)

// SetupAssets serves the embedded stylesheet and script under /assets.
func SetupAssets(r *gin.Engine) {
	r.StaticFS("/assets", http.FS(assets.Assets))
}
