// Package fiber serves the JSON API over gofiber. The handlers are thin
// I/O wrappers: parameter parsing and response shaping only, with all
// extraction logic behind the domain services.
package fiber

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"scriptura"
)

// Server wires the HTTP API around the book and chapter services.
type Server struct {
	app      *fiber.App
	books    scriptura.BookService
	chapters scriptura.ChapterService
}

// NewServer creates the API server with its routes and middleware.
func NewServer(books scriptura.BookService, chapters scriptura.ChapterService) *Server {
	s := &Server{
		books:    books,
		chapters: chapters,
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 45 * time.Second,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/healthz", s.handleHealth)
	app.Get("/api/books", s.handleBooks)
	app.Get("/api/chapter", s.handleChapter)
	app.Get("/api/intro", s.handleIntro)

	s.app = app
	return s
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves the API on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}

func (s *Server) handleBooks(c *fiber.Ctx) error {
	lang := normalizeLang(c.Query("lang", "por"))

	books, err := s.books.BooksForLanguage(c.UserContext(), lang)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load books for " + lang + ": " + scriptura.ErrorMessage(err),
		})
	}

	return c.JSON(fiber.Map{"lang": lang, "books": books})
}

func (s *Server) handleChapter(c *fiber.Ctx) error {
	book := c.Query("book")
	chapterParam := c.Query("chapter")
	lang := normalizeLang(c.Query("lang", "por"))

	if book == "" || chapterParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing 'book' or 'chapter' parameter",
		})
	}
	chapter, err := strconv.Atoi(chapterParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Parameter 'chapter' must be a number",
		})
	}

	verses, err := s.chapters.Verses(c.UserContext(), book, chapter, lang)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Upstream fetch failed: " + scriptura.ErrorMessage(err),
		})
	}

	lines := make([]string, 0, len(verses))
	for _, v := range verses {
		lines = append(lines, v.String())
	}

	return c.JSON(fiber.Map{
		"verses":  lines,
		"book":    book,
		"chapter": chapter,
		"lang":    lang,
	})
}

// handleIntro always answers 200: intro extraction failure must not break
// the chapter page, so errors collapse into the zero intro.
func (s *Server) handleIntro(c *fiber.Ctx) error {
	book := strings.ToLower(strings.TrimSpace(c.Query("book")))
	chapter, _ := strconv.Atoi(c.Query("chapter"))
	lang := normalizeLang(c.Query("lang", "eng"))

	intro, err := s.chapters.Intro(c.UserContext(), book, chapter, lang)
	if err != nil {
		intro = scriptura.ChapterIntro{}
	}
	return c.JSON(intro)
}

// normalizeLang lower-cases and trims a language code. The book cache keys
// by language exactly as supplied, so normalization happens here at the
// edge.
func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
