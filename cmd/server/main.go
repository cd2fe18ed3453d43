package main

import (
	"embed"
	"fmt"
	"log"
	"net/http"

	crudview "github.com/dracory/crudview"
	"github.com/dracory/crudview/shared/urls"
)

// Task is the demo model. Form fields bind via the `form` tags and are
// checked against the `validate` tags on submission.
type Task struct {
	ID    uint   `gorm:"primaryKey" form:"-" json:"id"`
	Title string `form:"title" validate:"required,min=3" json:"title"`
	Notes string `form:"notes" json:"notes"`
	Done  bool   `form:"done" json:"done"`
}

//go:embed templates/*
var templatesFS embed.FS

func main() {
	// Load configuration (flags override env)
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	db, err := crudview.OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	if err := db.AutoMigrate(&Task{}); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	view, err := crudview.New[Task](db, crudview.Config{
		TemplateFolder: "templates/tasks",
		RedirectURL:    urls.List(cfg.BasePath),
		PaginateBy:     10,
	},
		crudview.WithTemplateFS[Task](templatesFS),
		crudview.WithJSON[Task](),
	)
	if err != nil {
		log.Fatalf("view error: %v", err)
	}

	router := crudview.NewRouter()
	if err := router.Register(cfg.BasePath, view, ""); err != nil {
		log.Fatalf("router error: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Printf("crudview demo listening on %s (mount %s)", addr, cfg.BasePath)
	log.Fatal(http.ListenAndServe(addr, router.Handler()))
}
