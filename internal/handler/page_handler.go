package handler

import (
	"MovieList/internal/web"
	"net"

	"github.com/gofiber/fiber/v2"
)

type PageHandler struct {
	wsPort string
}

// MoviesPath is what the page fetches when there is no live view.
const MoviesPath = "/api/v1/movies/"

// NewPageHandler serves the movies page. With an empty wsPort the page fetches
// MoviesPath itself instead of using the live view.
func NewPageHandler(wsPort string) *PageHandler {
	return &PageHandler{wsPort: wsPort}
}

func (h *PageHandler) Index(c *fiber.Ctx) error {
	data := web.PageData{Endpoint: MoviesPath}
	if h.wsPort != "" {
		host, _, err := net.SplitHostPort(c.Hostname())
		if err != nil {
			host = c.Hostname()
		}
		data.SocketURL = c.Protocol() + "://" + net.JoinHostPort(host, h.wsPort)
	}

	c.Type("html", "utf-8")
	return web.Render(c, data)
}
