package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/unrolled/render"

	"github.com/brndconsulting/nba-ui/controller"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory:  "templates",
		Layout:     "layout",
		Extensions: []string{".html"},
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"points":   pointsFormatter,
				"synctime": syncTimeFormatter,
				"record":   recordFormatter,
			},
		},
	})
}

// pointsFormatter renders a nullable point total. nil means the backend
// sent nothing numeric for that side.
func pointsFormatter(pts *float64) string {
	if pts == nil {
		return "–"
	}
	return fmt.Sprintf("%.1f", *pts)
}

func syncTimeFormatter(t time.Time) string {
	return syncTimeFormatterInternal(t, time.Now())
}

// syncTimeFormatterInternal renders a last-sync time relative to now.
func syncTimeFormatterInternal(t, n time.Time) string {
	if t.IsZero() {
		return "Never"
	}

	d := n.Sub(t)
	switch {
	case d < time.Minute:
		return "Just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
	return t.Format("2006-01-02")
}

func recordFormatter(wins, losses, ties string) string {
	if ties != "" && ties != "0" {
		return fmt.Sprintf("%s-%s-%s", wins, losses, ties)
	}
	return fmt.Sprintf("%s-%s", wins, losses)
}
