package main

import (
	"MovieList/internal/loader"
	"MovieList/internal/schedule"
	"MovieList/internal/web"
	"bytes"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/PuerkitoBio/goquery"
	"github.com/alecthomas/kingpin/v2"
	"github.com/gofiber/fiber/v2/log"
)

var (
	app = kingpin.New("moviecards", "Fetch the movie collection and render it as cards into a page.")

	endpoint = app.Flag("endpoint", "Movie collection endpoint.").Default(loader.DefaultEndpoint).String()
	pagePath = app.Flag("page", "HTML page holding #fetchMovies and #movies; the built-in page when empty.").String()
	outPath  = app.Flag("out", "File the rendered page is written to; stdout when empty.").Short('o').String()

	renderCmd = app.Command("render", "Render the collection once.").Default()

	watchCmd = app.Command("watch", "Render the collection again on a schedule until interrupted.")
	every    = watchCmd.Flag("every", "Interval between renders.").Default("30s").Duration()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	doc, err := loadPage(*pagePath)
	if err != nil {
		log.Fatal("Error while loading page:", err)
	}
	button, err := loader.FindButton(doc, loader.TriggerID)
	if err != nil {
		log.Fatal(err)
	}
	region, err := loader.FindRegion(doc, loader.RegionID)
	if err != nil {
		log.Fatal(err)
	}

	sink := &pageSink{DocumentRegion: region, doc: doc, path: *outPath}
	cfg := loader.Config{Endpoint: *endpoint}

	switch cmd {
	case renderCmd.FullCommand():
		l := loader.New(cfg, button, sink)
		if err := l.Load(context.Background()); err != nil {
			os.Exit(1)
		}

	case watchCmd.FullCommand():
		trigger, err := schedule.NewTrigger(*every)
		if err != nil {
			log.Fatal(err)
		}
		loader.New(cfg, trigger, sink)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := trigger.Start(ctx); err != nil {
			log.Fatal(err)
		}
		log.Infof("Rendering %s every %s", *endpoint, *every)
		<-ctx.Done()

		if err := trigger.Stop(); err != nil {
			log.Error("Error while stopping scheduler:", err)
		}
	}
}

func loadPage(path string) (*goquery.Document, error) {
	var (
		b   []byte
		err error
	)
	if path == "" {
		b, err = web.Page(web.PageData{})
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(b))
}
