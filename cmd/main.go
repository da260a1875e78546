package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/ashton-hoops/Defense/cache"
	filecache "github.com/ashton-hoops/Defense/cache/file"
	pgcache "github.com/ashton-hoops/Defense/cache/postgres"
	"github.com/ashton-hoops/Defense/clip"
	"github.com/ashton-hoops/Defense/embedder"
	googleembedder "github.com/ashton-hoops/Defense/embedder/google"
	openaiembedder "github.com/ashton-hoops/Defense/embedder/openai"
	"github.com/ashton-hoops/Defense/searcher"
	httpserver "github.com/ashton-hoops/Defense/server/http"
	"github.com/ashton-hoops/Defense/store"
	pgstore "github.com/ashton-hoops/Defense/store/postgres"
	sqlitestore "github.com/ashton-hoops/Defense/store/sqlite"
)

var cli struct {
	DataDir string `help:"Directory for the local database and embedding cache." default:"data" env:"DATA_DIR"`

	Serve  ServeCmd  `cmd:"" help:"Run the clip API server."`
	Build  BuildCmd  `cmd:"" help:"Build embeddings for all clips."`
	Search SearchCmd `cmd:"" help:"Search clips with a natural language query."`
}

type AppContext struct {
	Store    store.Store
	Searcher *searcher.Searcher
}

type ServeCmd struct {
	Address string `help:"Listen address." default:":4000" env:"ADDRESS"`
}

func (c *ServeCmd) Run(app *AppContext) error {
	server := httpserver.NewServer(
		app.Searcher,
		app.Store,
		httpserver.WithAddress(c.Address),
		httpserver.WithMiddleware(httpserver.Logger),
	)

	return server.Run()
}

type BuildCmd struct{}

func (c *BuildCmd) Run(app *AppContext) error {
	report, err := app.Searcher.Rebuild(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("generated %d embeddings\n", report.Count)

	return nil
}

type SearchCmd struct {
	Query []string `arg:"" help:"Natural language query."`
	TopK  int      `help:"Number of results." default:"5"`
}

func (c *SearchCmd) Run(app *AppContext) error {
	query := strings.Join(c.Query, " ")

	results, err := app.Searcher.Search(context.Background(), query, searcher.WithLimit(c.TopK))
	if err != nil {
		return err
	}

	fmt.Printf("top %d results for %q:\n", len(results), query)

	for i, result := range results {
		text := clip.Project(result.Record)
		if len(text) > 150 {
			text = text[:150] + "..."
		}
		fmt.Printf("%d. %s (similarity: %.3f)\n   %s\n", i+1, result.Id, result.SimilarityScore, text)
	}

	return nil
}

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	kctx := kong.Parse(&cli,
		kong.Name("defense"),
		kong.Description("Basketball film annotation and semantic clip search."),
	)

	st, ch, err := newStoreAndCache()
	if err != nil {
		kctx.FatalIfErrorf(err)
	}
	defer st.Close()

	srch := searcher.New(
		searcher.WithStore(st),
		searcher.WithCache(ch),
		searcher.WithEmbedder(newEmbedder()),
	)

	kctx.FatalIfErrorf(kctx.Run(&AppContext{Store: st, Searcher: srch}))
}

// newStoreAndCache picks the deployment flavor: DATABASE_URL means cloud
// (postgres + pgvector), otherwise everything lives under the data dir.
func newStoreAndCache() (store.Store, cache.Cache, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		st, err := pgstore.NewStore(store.WithLocation(databaseURL))
		if err != nil {
			return nil, nil, err
		}

		ch, err := pgcache.NewCache(cache.WithLocation(databaseURL))
		if err != nil {
			st.Close()
			return nil, nil, err
		}

		return st, ch, nil
	}

	st, err := sqlitestore.NewStore(store.WithLocation(filepath.Join(cli.DataDir, "analytics.sqlite")))
	if err != nil {
		return nil, nil, err
	}

	ch := filecache.NewCache(cache.WithLocation(filepath.Join(cli.DataDir, "clip_embeddings.json")))

	return st, ch, nil
}

// newEmbedder returns nil when no provider credential is set; the
// searcher then reports semantic search as not configured.
func newEmbedder() embedder.Embedder {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		return openaiembedder.NewEmbedder(
			embedder.WithApiKey(apiKey),
			embedder.WithModel(os.Getenv("EMBEDDING_MODEL")),
		)
	}

	if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
		return googleembedder.NewEmbedder(
			embedder.WithApiKey(apiKey),
			embedder.WithModel(os.Getenv("EMBEDDING_MODEL")),
		)
	}

	slog.Warn("no embedding provider credential set, semantic search disabled")

	return nil
}
