package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/eringen/presskit"
	"github.com/eringen/presskit/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: presskit new <site-name>")
			os.Exit(1)
		}
		if err := runNew(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "build":
		site := siteFromEnv()
		if err := site.Build(); err != nil {
			log.Fatal(err)
		}
		log.Printf("site built into %s", site.Config.OutputDir)
	case "serve":
		site := siteFromEnv()
		if err := site.Build(); err != nil {
			log.Fatal(err)
		}
		log.Printf("serving %s on %s", site.Config.OutputDir, site.Config.Addr)
		if err := site.Serve(site.Config.Addr); err != nil {
			log.Fatal(err)
		}
	case "version":
		fmt.Printf("presskit %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// siteFromEnv builds a Site from .env plus environment variables, with the
// same defaults a bare checkout gets.
func siteFromEnv() *presskit.Site {
	_ = godotenv.Load()

	cfg := presskit.Config{
		Site: views.SiteConfig{
			Name:           presskit.EnvOr("SITE_NAME", ""),
			URL:            presskit.EnvOr("SITE_URL", ""),
			Description:    presskit.EnvOr("SITE_DESCRIPTION", ""),
			Author:         presskit.EnvOr("SITE_AUTHOR", ""),
			DefaultOGImage: presskit.EnvOr("DEFAULT_OG_IMAGE", ""),
		},
		ContentDir:         presskit.EnvOr("CONTENT_DIR", ""),
		OutputDir:          presskit.EnvOr("OUTPUT_DIR", ""),
		StaticDir:          presskit.EnvOr("STATIC_DIR", ""),
		Addr:               presskit.EnvOr("ADDR", ""),
		MarkdownExtensions: presskit.FilterEmpty(strings.Split(presskit.EnvOr("MARKDOWN_EXTENSIONS", ""), ",")),
	}
	return presskit.New(cfg)
}

func printUsage() {
	fmt.Println(`presskit - a static blog generator built with Go, goldmark, and templ

Usage:
  presskit <command> [arguments]

Commands:
  new <name>    Create a new presskit site
  build         Build the site into the output directory
  serve         Build the site and serve it locally
  version       Print the presskit version
  help          Show this help message

Examples:
  presskit new myblog
  presskit build
  SITE_URL=https://example.com presskit build`)
}
