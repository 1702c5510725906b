package socketio

import (
	"MovieList/internal/loader"
	"context"

	"github.com/gofiber/fiber/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type SocketEvent string

const (
	FetchMovies SocketEvent = "fetchMovies"
	Movies      SocketEvent = "movies"
)

// SocketServer is the live view: every connected page gets its own loader whose
// trigger is the fetchMovies event and whose region is the movies event.
type SocketServer struct {
	io           *socket.Server
	loaderConfig loader.Config
}

func NewSocketServer(loaderConfig loader.Config) *SocketServer {
	return &SocketServer{loaderConfig: loaderConfig}
}

func (s *SocketServer) Start(addr string) {
	httpServer := types.NewWebServer(nil)

	serverOptions := socket.DefaultServerOptions()
	serverOptions.SetCors(&types.Cors{
		Origin:         "*",
		Methods:        "GET,POST",
		AllowedHeaders: "Content-Type",
	})
	s.io = socket.NewServer(httpServer, serverOptions)

	s.io.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		s.bind(client)
	})

	log.Infof("Socket.IO live view listening on %s", addr)
	httpServer.Listen(addr, nil)
}

func (s *SocketServer) bind(client *socket.Socket) {
	room := socket.Room(client.Id())
	client.Join(room)

	fetch := newLiveLoader(s.loaderConfig, func(cards string) error {
		return s.io.In(room).Emit(string(Movies), cards)
	})
	client.On(string(FetchMovies), func(...any) {
		go fetch(context.Background())
	})
}

// newLiveLoader builds the loader of one socket and returns what its fetchMovies
// event runs. Rendered cards go out through emit.
func newLiveLoader(cfg loader.Config, emit func(cards string) error) func(ctx context.Context) {
	button := loader.NewButton(loader.TriggerID)
	loader.New(cfg, button, newSocketRegion(emit))
	return button.Click
}
