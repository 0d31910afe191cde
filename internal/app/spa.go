package app

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// paymentKeyPlaceholder is the one substring in index.html eligible for
// substitution. This is a literal textual patch, not templating: if the
// placeholder is absent the page is served unmodified.
const paymentKeyPlaceholder = `window.__PAYMENT_KEY__=""`

// serveSPA answers every unmatched path with the static entry page so the
// client-side router can take over.
func (a *App) serveSPA(c *gin.Context) {
	content, err := os.ReadFile(filepath.Join(a.cfg.StaticDir, "index.html"))
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load page: %s", err.Error())
		return
	}

	html := string(content)
	if key := a.cfg.PaymentKey; key != "" {
		html = strings.Replace(html, paymentKeyPlaceholder, fmt.Sprintf(`window.__PAYMENT_KEY__=%q`, key), 1)
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
