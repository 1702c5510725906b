package main

import (
	"MovieList/internal/handler"
	"MovieList/internal/loader"
	"MovieList/internal/mongodb"
	"MovieList/internal/router"
	"MovieList/internal/socketio"
	"context"
	"os"

	repoMovie "MovieList/internal/repository/movie"
	movieService "MovieList/internal/service/movie"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

func main() {
	//env
	err := godotenv.Load(".env")
	if err != nil {
		log.Info("No .env file found")
	}
	if ok := testEnvs([]string{
		"MONGODB_URI",
		"DB_NAME"}); !ok {
		log.Fatal("Please add required envs")
	}

	ctx := context.Background()
	client, err := mongodb.NewClient(ctx, os.Getenv("MONGODB_URI"), os.Getenv("DB_NAME"))
	if err != nil {
		log.Fatal("Error while connecting to MongoDB:", err)
	}
	defer client.Close(ctx)

	movieRepo := repoMovie.NewMovieRepository(client)
	movieHandler := handler.NewMovieHandler(movieService.NewMovieService(movieRepo))

	port := getEnv("PORT", "5000")
	wsPort := os.Getenv("WS_PORT")

	//Http server
	config := fiber.Config{ErrorHandler: handler.ErrorHandler}
	if os.Getenv("IPV6_ONLY") == "true" {
		config.Network = "tcp6"
	}
	app := fiber.New(config)

	router.Register(app, movieHandler, handler.NewPageHandler(wsPort), getEnv("STATIC_DIR", "./static"))

	if wsPort != "" {
		live := socketio.NewSocketServer(loader.Config{
			Endpoint: getEnv("MOVIES_ENDPOINT", "http://127.0.0.1:"+port+"/api/v1/movies/"),
		})
		go live.Start(":" + wsPort)
	}

	log.Fatal(app.Listen(":" + port))
}

func testEnvs(enums []string) bool {
	successful := true
	for _, enum := range enums {
		if _, ok := os.LookupEnv(enum); !ok {
			successful = false
			log.Errorf("Env \"%s\" not found", enum)
		}
	}
	return successful
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
